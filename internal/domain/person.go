package domain

import (
	"fmt"
	"time"
)

// MaxAge is the upper bound accepted for a person's age.
const MaxAge = 150

// Person represents a person record in the store.
type Person struct {
	ID         string
	Name       string
	Age        int
	Occupation string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Greet returns the person's self-introduction.
func (p *Person) Greet() string {
	return fmt.Sprintf("Hello, my name is %s. I am %d years old and I work as a %s.",
		p.Name, p.Age, p.Occupation)
}

// Birthday increments the person's age and returns the celebration message.
func (p *Person) Birthday() string {
	p.Age++
	return fmt.Sprintf("Happy Birthday! %s is now %d years old.", p.Name, p.Age)
}

// ChangeJob replaces the person's occupation and returns the transition message.
func (p *Person) ChangeJob(newOccupation string) string {
	old := p.Occupation
	p.Occupation = newOccupation
	return fmt.Sprintf("%s changed jobs from %s to %s.", p.Name, old, newOccupation)
}

// CreatePersonRequest holds parameters for creating a new person.
type CreatePersonRequest struct {
	Name       string
	Age        int
	Occupation string
}

// Validate checks that the request is well-formed.
func (r *CreatePersonRequest) Validate() error {
	if r.Name == "" {
		return ErrValidation("person name is required")
	}
	if r.Age < 0 || r.Age > MaxAge {
		return ErrValidation("age must be between 0 and %d", MaxAge)
	}
	if r.Occupation == "" {
		return ErrValidation("occupation is required")
	}
	return nil
}

// ChangeJobRequest holds parameters for changing a person's occupation.
type ChangeJobRequest struct {
	PersonID      string
	NewOccupation string
}

// Validate checks that the request is well-formed.
func (r *ChangeJobRequest) Validate() error {
	if r.PersonID == "" {
		return ErrValidation("person id is required")
	}
	if r.NewOccupation == "" {
		return ErrValidation("new occupation is required")
	}
	return nil
}
