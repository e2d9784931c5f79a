package repository

import (
	"context"
	"database/sql"
	"time"

	"primer/internal/domain"
)

// PersonRepo persists person records in SQLite. Writes go through the
// single-connection write pool, lookups and listings through the read pool.
type PersonRepo struct {
	write *sql.DB
	read  *sql.DB
}

// NewPersonRepo creates a new PersonRepo over a write/read pool pair.
func NewPersonRepo(write, read *sql.DB) *PersonRepo {
	return &PersonRepo{write: write, read: read}
}

func (r *PersonRepo) Create(ctx context.Context, p *domain.Person) (*domain.Person, error) {
	now := time.Now().UTC()
	created := *p
	created.ID = domain.NewID()
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.write.ExecContext(ctx,
		`INSERT INTO persons (id, name, age, occupation, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		created.ID, created.Name, created.Age, created.Occupation,
		created.CreatedAt, created.UpdatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &created, nil
}

func (r *PersonRepo) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	row := r.read.QueryRowContext(ctx,
		`SELECT id, name, age, occupation, created_at, updated_at
		 FROM persons WHERE id = ?`, id)
	return scanPerson(row)
}

func (r *PersonRepo) GetByName(ctx context.Context, name string) (*domain.Person, error) {
	row := r.read.QueryRowContext(ctx,
		`SELECT id, name, age, occupation, created_at, updated_at
		 FROM persons WHERE name = ?`, name)
	return scanPerson(row)
}

func (r *PersonRepo) List(ctx context.Context, page domain.PageRequest) ([]domain.Person, int64, error) {
	var total int64
	if err := r.read.QueryRowContext(ctx, `SELECT COUNT(*) FROM persons`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.read.QueryContext(ctx,
		`SELECT id, name, age, occupation, created_at, updated_at
		 FROM persons ORDER BY name LIMIT ? OFFSET ?`,
		page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var persons []domain.Person
	for rows.Next() {
		var p domain.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &p.Occupation, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		persons = append(persons, p)
	}
	return persons, total, rows.Err()
}

func (r *PersonRepo) Update(ctx context.Context, p *domain.Person) error {
	res, err := r.write.ExecContext(ctx,
		`UPDATE persons SET name = ?, age = ?, occupation = ?, updated_at = ?
		 WHERE id = ?`,
		p.Name, p.Age, p.Occupation, time.Now().UTC(), p.ID)
	if err != nil {
		return mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("person %s not found", p.ID)
	}
	return nil
}

func (r *PersonRepo) Delete(ctx context.Context, id string) error {
	res, err := r.write.ExecContext(ctx, `DELETE FROM persons WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("person %s not found", id)
	}
	return nil
}

func scanPerson(row *sql.Row) (*domain.Person, error) {
	var p domain.Person
	err := row.Scan(&p.ID, &p.Name, &p.Age, &p.Occupation, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &p, nil
}
