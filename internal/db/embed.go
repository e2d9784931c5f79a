package db

import "embed"

// EmbedMigrations holds the person-store schema migrations, compiled into
// the binary so the CLI can migrate any database it is pointed at.
//
//go:embed migrations/*.sql
var EmbedMigrations embed.FS
