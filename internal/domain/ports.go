package domain

import "context"

// PersonRepository persists person records.
// Implemented by repository.PersonRepo.
type PersonRepository interface {
	Create(ctx context.Context, p *Person) (*Person, error)
	GetByID(ctx context.Context, id string) (*Person, error)
	GetByName(ctx context.Context, name string) (*Person, error)
	List(ctx context.Context, page PageRequest) ([]Person, int64, error)
	Update(ctx context.Context, p *Person) error
	Delete(ctx context.Context, id string) error
}

// AuditRepository persists the audit trail.
// Implemented by repository.AuditRepo.
type AuditRepository interface {
	Insert(ctx context.Context, e *AuditEntry) error
	List(ctx context.Context, filter AuditFilter) ([]AuditEntry, int64, error)
}
