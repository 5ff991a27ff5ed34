package storage

import (
	"os"
	"path/filepath"
	"strings"

	"grasspit/internal/storage/sqlite"
)

// NewSQLiteStore creates the default SQLite-backed provider, expanding a
// leading "~" in the path to the user's home directory.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(ExpandPath(path))
}

// ExpandPath expands a leading "~" to the user's home directory. Paths that
// cannot be expanded are returned unchanged.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
