package sqlite

import (
	"grasspit/internal/logger"
	"grasspit/internal/migration"
)

// migrations is append-only. Never edit a shipped entry; add a new version.
var migrations = []migration.Migration{
	{
		Version: 1,
		Name:    "init",
		SQL: `
			CREATE TABLE IF NOT EXISTS settings (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL
			);
			CREATE TABLE IF NOT EXISTS state (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL
			);
			CREATE TABLE IF NOT EXISTS sessions (
				id TEXT PRIMARY KEY,
				started_at TEXT NOT NULL,
				ended_at TEXT NOT NULL,
				duration_ms INTEGER NOT NULL
			);
		`,
	},
	{
		Version: 2,
		Name:    "sessions_started_at_index",
		SQL:     `CREATE INDEX IF NOT EXISTS idx_sessions_started_at ON sessions(started_at);`,
	},
}

// ensureSchema brings the database up to the latest schema version.
func (s *Store) ensureSchema() error {
	runner, err := migration.NewRunner(s.db, migrations)
	if err != nil {
		return err
	}
	_, err = runner.Apply(func(msg string) { logger.Info(msg) })
	return err
}
