// Package app provides application-level wiring for the primer CLI.
package app

import (
	"database/sql"
	"io"
	"log/slog"

	"primer/internal/config"
	"primer/internal/db/repository"
	"primer/internal/service"
)

// Deps holds the external dependencies that the caller must provide:
// database handles, config, and the logger.
type Deps struct {
	Cfg     *config.Config
	WriteDB *sql.DB
	ReadDB  *sql.DB
	Logger  *slog.Logger
}

// Services groups the service pointers the CLI commands need.
type Services struct {
	Person *service.PersonService
	Audit  *service.AuditService
}

// App holds the fully-wired application.
type App struct {
	Services Services
	Logger   *slog.Logger
}

// New wires repositories and services from the provided deps. Writes go
// through the single-connection write pool; lookups and listings through
// the read pool.
func New(deps Deps) *App {
	personRepo := repository.NewPersonRepo(deps.WriteDB, deps.ReadDB)
	auditRepo := repository.NewAuditRepo(deps.WriteDB, deps.ReadDB)

	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &App{
		Services: Services{
			Person: service.NewPersonService(personRepo, auditRepo),
			Audit:  service.NewAuditService(auditRepo),
		},
		Logger: logger,
	}
}
