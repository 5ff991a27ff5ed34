// Package migration versions the SQLite schema. Migrations are declared in
// code, applied in order inside transactions, and recorded in a
// schema_version table so upgrades are one-way and repeat runs are no-ops.
package migration

import (
	"database/sql"
	"errors"
	"fmt"
)

// Migration is a single schema step. SQL may contain multiple statements.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Runner applies an ordered list of migrations to a database.
type Runner struct {
	db         *sql.DB
	migrations []Migration
}

// NewRunner validates that versions are strictly increasing starting at 1.
func NewRunner(db *sql.DB, migrations []Migration) (*Runner, error) {
	for i, m := range migrations {
		if m.Version != i+1 {
			return nil, fmt.Errorf("migration %q has version %d, want %d", m.Name, m.Version, i+1)
		}
	}
	return &Runner{db: db, migrations: migrations}, nil
}

func (r *Runner) ensureVersionTable() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)`)
	return err
}

// CurrentVersion returns the applied schema version, 0 for a fresh database.
func (r *Runner) CurrentVersion() (int, error) {
	if err := r.ensureVersionTable(); err != nil {
		return 0, fmt.Errorf("failed to ensure schema_version table: %w", err)
	}

	var version int
	err := r.db.QueryRow("SELECT version FROM schema_version").Scan(&version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get current version: %w", err)
	}
	return version, nil
}

// LatestVersion returns the highest version this build knows about.
func (r *Runner) LatestVersion() int {
	if len(r.migrations) == 0 {
		return 0
	}
	return r.migrations[len(r.migrations)-1].Version
}

// Apply runs every pending migration and returns how many were applied.
// A database newer than this build is an error, never a rollback.
func (r *Runner) Apply(logFn func(string)) (int, error) {
	if logFn == nil {
		logFn = func(string) {}
	}

	current, err := r.CurrentVersion()
	if err != nil {
		return 0, err
	}
	latest := r.LatestVersion()
	if current > latest {
		return 0, fmt.Errorf("database schema version (%d) is newer than supported version (%d), upgrade the application", current, latest)
	}
	if current == latest {
		return 0, nil
	}

	applied := 0
	for _, m := range r.migrations {
		if m.Version <= current {
			continue
		}
		logFn(fmt.Sprintf("Applying migration %d: %s", m.Version, m.Name))

		tx, err := r.db.Begin()
		if err != nil {
			return applied, fmt.Errorf("failed to begin transaction for migration %d: %w", m.Version, err)
		}
		if _, err := tx.Exec(m.SQL); err != nil {
			_ = tx.Rollback()
			return applied, fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
			_ = tx.Rollback()
			return applied, fmt.Errorf("failed to clear version in migration %d: %w", m.Version, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			_ = tx.Rollback()
			return applied, fmt.Errorf("failed to set version in migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return applied, fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}
		applied++
	}

	return applied, nil
}
