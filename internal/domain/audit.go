package domain

import "time"

// Audit actions recorded by the person service.
const (
	ActionCreatePerson = "CREATE_PERSON"
	ActionDeletePerson = "DELETE_PERSON"
	ActionBirthday     = "BIRTHDAY"
	ActionChangeJob    = "CHANGE_JOB"
)

// AuditEntry represents a single audit log record.
type AuditEntry struct {
	ID         string
	PersonName string
	Action     string
	Detail     *string
	CreatedAt  time.Time
}

// AuditFilter holds optional filters for listing audit entries.
type AuditFilter struct {
	PersonName *string
	Action     *string
	Page       PageRequest
}
