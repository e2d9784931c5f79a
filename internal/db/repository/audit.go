package repository

import (
	"context"
	"database/sql"
	"time"

	"primer/internal/domain"
)

// AuditRepo persists the audit trail in SQLite. Inserts go through the
// write pool, listings through the read pool.
type AuditRepo struct {
	write *sql.DB
	read  *sql.DB
}

// NewAuditRepo creates a new AuditRepo over a write/read pool pair.
func NewAuditRepo(write, read *sql.DB) *AuditRepo {
	return &AuditRepo{write: write, read: read}
}

func (r *AuditRepo) Insert(ctx context.Context, e *domain.AuditEntry) error {
	if e.ID == "" {
		e.ID = domain.NewID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := r.write.ExecContext(ctx,
		`INSERT INTO audit_log (id, person_name, action, detail, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.PersonName, e.Action, nullStr(e.Detail), e.CreatedAt)
	return mapDBError(err)
}

func (r *AuditRepo) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, int64, error) {
	where := ` WHERE (? IS NULL OR person_name = ?) AND (? IS NULL OR action = ?)`
	args := []any{
		nullStr(filter.PersonName), nullStr(filter.PersonName),
		nullStr(filter.Action), nullStr(filter.Action),
	}

	var total int64
	if err := r.read.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM audit_log`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listArgs := append(args, filter.Page.Limit(), filter.Page.Offset())
	rows, err := r.read.QueryContext(ctx,
		`SELECT id, person_name, action, detail, created_at
		 FROM audit_log`+where+` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		var detail sql.NullString
		if err := rows.Scan(&e.ID, &e.PersonName, &e.Action, &detail, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		e.Detail = ptrStr(detail)
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}
