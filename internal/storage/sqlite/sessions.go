package sqlite

import (
	"fmt"
	"time"

	"grasspit/internal/models"
)

func (s *Store) AddBrainrotSession(session models.BrainrotSession) error {
	_, err := s.db.Exec(`
		INSERT INTO sessions (id, started_at, ended_at, duration_ms)
		VALUES (?, ?, ?, ?)`,
		session.ID,
		session.StartedAt.UTC().Format(time.RFC3339),
		session.EndedAt.UTC().Format(time.RFC3339),
		session.DurationMs,
	)
	return err
}

func (s *Store) GetRecentBrainrotSessions(limit int) ([]models.BrainrotSession, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(`
		SELECT id, started_at, ended_at, duration_ms
		FROM sessions ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.BrainrotSession
	for rows.Next() {
		var sess models.BrainrotSession
		var startedAt, endedAt string
		if err := rows.Scan(&sess.ID, &startedAt, &endedAt, &sess.DurationMs); err != nil {
			return nil, err
		}
		sess.StartedAt, err = time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse started_at: %w", err)
		}
		sess.EndedAt, err = time.Parse(time.RFC3339, endedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ended_at: %w", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}
