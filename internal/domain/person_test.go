package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePersonRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreatePersonRequest
		wantErr string
	}{
		{
			name: "valid request",
			req:  CreatePersonRequest{Name: "Alice", Age: 28, Occupation: "Software Engineer"},
		},
		{
			name:    "empty name",
			req:     CreatePersonRequest{Age: 28, Occupation: "Software Engineer"},
			wantErr: "person name is required",
		},
		{
			name:    "negative age",
			req:     CreatePersonRequest{Name: "Alice", Age: -1, Occupation: "Software Engineer"},
			wantErr: "age must be between 0 and 150",
		},
		{
			name:    "age above bound",
			req:     CreatePersonRequest{Name: "Alice", Age: 151, Occupation: "Software Engineer"},
			wantErr: "age must be between 0 and 150",
		},
		{
			name:    "empty occupation",
			req:     CreatePersonRequest{Name: "Alice", Age: 28},
			wantErr: "occupation is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestChangeJobRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ChangeJobRequest
		wantErr string
	}{
		{
			name: "valid request",
			req:  ChangeJobRequest{PersonID: "p-1", NewOccupation: "Data Scientist"},
		},
		{
			name:    "empty id",
			req:     ChangeJobRequest{NewOccupation: "Data Scientist"},
			wantErr: "person id is required",
		},
		{
			name:    "empty occupation",
			req:     ChangeJobRequest{PersonID: "p-1"},
			wantErr: "new occupation is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPerson_Greet(t *testing.T) {
	p := &Person{Name: "Alice", Age: 28, Occupation: "Software Engineer"}
	assert.Equal(t,
		"Hello, my name is Alice. I am 28 years old and I work as a Software Engineer.",
		p.Greet())
}

func TestPerson_Birthday(t *testing.T) {
	p := &Person{Name: "Alice", Age: 28, Occupation: "Software Engineer"}
	msg := p.Birthday()
	assert.Equal(t, 29, p.Age)
	assert.Equal(t, "Happy Birthday! Alice is now 29 years old.", msg)
}

func TestPerson_ChangeJob(t *testing.T) {
	p := &Person{Name: "Alice", Age: 28, Occupation: "Software Engineer"}
	msg := p.ChangeJob("Data Scientist")
	assert.Equal(t, "Data Scientist", p.Occupation)
	assert.Equal(t, "Alice changed jobs from Software Engineer to Data Scientist.", msg)
}
