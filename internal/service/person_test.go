package service

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "primer/internal/db"
	"primer/internal/db/repository"
	"primer/internal/domain"
)

func setupServices(t *testing.T) (*PersonService, *AuditService) {
	t.Helper()
	writeDB, readDB := internaldb.OpenTestSQLite(t)
	auditRepo := repository.NewAuditRepo(writeDB, readDB)
	return NewPersonService(repository.NewPersonRepo(writeDB, readDB), auditRepo),
		NewAuditService(auditRepo)
}

func TestPersonService_CreateAndGreet(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, domain.CreatePersonRequest{
		Name: "Alice", Age: 28, Occupation: "Software Engineer",
	})
	require.NoError(t, err)

	greeting, err := svc.Greet(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t,
		"Hello, my name is Alice. I am 28 years old and I work as a Software Engineer.",
		greeting)
}

func TestPersonService_Create_Invalid(t *testing.T) {
	svc, _ := setupServices(t)

	_, err := svc.Create(context.Background(), domain.CreatePersonRequest{Age: 28})
	require.Error(t, err)
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestPersonService_Birthday(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, domain.CreatePersonRequest{
		Name: "Alice", Age: 28, Occupation: "Software Engineer",
	})
	require.NoError(t, err)

	msg, err := svc.Birthday(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Happy Birthday! Alice is now 29 years old.", msg)

	// The new age is persisted.
	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 29, got.Age)
}

func TestPersonService_ChangeJob(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, domain.CreatePersonRequest{
		Name: "Alice", Age: 28, Occupation: "Software Engineer",
	})
	require.NoError(t, err)

	msg, err := svc.ChangeJob(ctx, domain.ChangeJobRequest{
		PersonID: p.ID, NewOccupation: "Data Scientist",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice changed jobs from Software Engineer to Data Scientist.", msg)

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Data Scientist", got.Occupation)
}

func TestPersonService_ChangeJob_EmptyOccupation(t *testing.T) {
	svc, _ := setupServices(t)

	_, err := svc.ChangeJob(context.Background(), domain.ChangeJobRequest{PersonID: "p-1"})
	require.Error(t, err)
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestPersonService_Delete_Missing(t *testing.T) {
	svc, _ := setupServices(t)

	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestPersonService_AuditTrail(t *testing.T) {
	svc, audit := setupServices(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, domain.CreatePersonRequest{
		Name: "Alice", Age: 28, Occupation: "Software Engineer",
	})
	require.NoError(t, err)

	_, err = svc.Birthday(ctx, p.ID)
	require.NoError(t, err)

	_, err = svc.ChangeJob(ctx, domain.ChangeJobRequest{PersonID: p.ID, NewOccupation: "Data Scientist"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID))

	entries, total, err := audit.List(ctx, domain.AuditFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)

	var actions []string
	for _, e := range entries {
		assert.Equal(t, "Alice", e.PersonName)
		actions = append(actions, e.Action)
	}
	assert.ElementsMatch(t, []string{
		domain.ActionCreatePerson,
		domain.ActionBirthday,
		domain.ActionChangeJob,
		domain.ActionDeletePerson,
	}, actions)
}
