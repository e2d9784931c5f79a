package cli

import (
	"fmt"
	"log/slog"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"primer/internal/app"
	"primer/internal/config"
	internaldb "primer/internal/db"
)

// openApp opens the SQLite store at the resolved path, runs pending
// migrations, and wires the application. The returned cleanup closes both
// pools and must be called when the command finishes.
func openApp(st *rootState) (*app.App, func(), error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, nil, err
	}
	if st.dbPath != "" {
		cfg.DBPath = st.dbPath
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	for _, w := range cfg.Warnings {
		logger.Warn(w)
	}

	writeDB, readDB, err := internaldb.OpenSQLitePair(cfg.DBPath, cfg.ReadPoolSize)
	if err != nil {
		return nil, nil, fmt.Errorf("open store %s: %w", cfg.DBPath, err)
	}
	cleanup := func() {
		_ = readDB.Close()
		_ = writeDB.Close()
	}

	if err := internaldb.RunMigrations(writeDB); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("migrate store %s: %w", cfg.DBPath, err)
	}

	return app.New(app.Deps{
		Cfg:     cfg,
		WriteDB: writeDB,
		ReadDB:  readDB,
		Logger:  logger,
	}), cleanup, nil
}
