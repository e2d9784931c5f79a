// Package service implements the application services over the repository ports.
package service

import (
	"context"

	"primer/internal/domain"
)

// PersonService provides person management operations.
type PersonService struct {
	repo  domain.PersonRepository
	audit domain.AuditRepository
}

// NewPersonService creates a new PersonService.
func NewPersonService(repo domain.PersonRepository, audit domain.AuditRepository) *PersonService {
	return &PersonService{repo: repo, audit: audit}
}

// Create validates and persists a new person.
func (s *PersonService) Create(ctx context.Context, req domain.CreatePersonRequest) (*domain.Person, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	p, err := s.repo.Create(ctx, &domain.Person{
		Name:       req.Name,
		Age:        req.Age,
		Occupation: req.Occupation,
	})
	if err != nil {
		return nil, err
	}
	s.logAudit(ctx, p.Name, domain.ActionCreatePerson, nil)
	return p, nil
}

// GetByID returns a person by ID.
func (s *PersonService) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByName returns a person by name.
func (s *PersonService) GetByName(ctx context.Context, name string) (*domain.Person, error) {
	return s.repo.GetByName(ctx, name)
}

// List returns a paginated list of persons.
func (s *PersonService) List(ctx context.Context, page domain.PageRequest) ([]domain.Person, int64, error) {
	return s.repo.List(ctx, page)
}

// Delete removes a person by ID.
func (s *PersonService) Delete(ctx context.Context, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logAudit(ctx, p.Name, domain.ActionDeletePerson, nil)
	return nil
}

// Greet returns the person's self-introduction.
func (s *PersonService) Greet(ctx context.Context, id string) (string, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return p.Greet(), nil
}

// Birthday increments the person's age by one year and returns the
// celebration message.
func (s *PersonService) Birthday(ctx context.Context, id string) (string, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	msg := p.Birthday()
	if err := s.repo.Update(ctx, p); err != nil {
		return "", err
	}
	s.logAudit(ctx, p.Name, domain.ActionBirthday, &msg)
	return msg, nil
}

// ChangeJob replaces the person's occupation and returns the transition message.
func (s *PersonService) ChangeJob(ctx context.Context, req domain.ChangeJobRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	p, err := s.repo.GetByID(ctx, req.PersonID)
	if err != nil {
		return "", err
	}
	msg := p.ChangeJob(req.NewOccupation)
	if err := s.repo.Update(ctx, p); err != nil {
		return "", err
	}
	s.logAudit(ctx, p.Name, domain.ActionChangeJob, &msg)
	return msg, nil
}

func (s *PersonService) logAudit(ctx context.Context, personName, action string, detail *string) {
	_ = s.audit.Insert(ctx, &domain.AuditEntry{
		PersonName: personName,
		Action:     action,
		Detail:     detail,
	})
}
