package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"

	"grasspit/internal/constants"
	"grasspit/internal/models"
)

// getState reads one raw value from the state table. The second return is
// false when the key has never been written.
func (s *Store) getState(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM state WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) setState(key, value string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO state (key, value) VALUES (?, ?)", key, value)
	return err
}

func (s *Store) getStateJSON(key string, out any) (bool, error) {
	raw, ok, err := s.getState(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) setStateJSON(key string, in any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return s.setState(key, string(raw))
}

func (s *Store) GetCurrencyStats() (models.CurrencyStats, error) {
	stats := models.DefaultCurrencyStats()
	if _, err := s.getStateJSON(constants.StateKeyCurrency, &stats); err != nil {
		return models.DefaultCurrencyStats(), err
	}
	return stats, nil
}

func (s *Store) SaveCurrencyStats(stats models.CurrencyStats) error {
	return s.setStateJSON(constants.StateKeyCurrency, stats)
}

func (s *Store) GetUnlockedAchievements() ([]string, error) {
	var ids []string
	if _, err := s.getStateJSON(constants.StateKeyAchievements, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *Store) SaveUnlockedAchievements(ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return s.setStateJSON(constants.StateKeyAchievements, ids)
}

func (s *Store) GetSessionStats() (models.SessionStats, error) {
	stats := models.DefaultSessionStats()
	if _, err := s.getStateJSON(constants.StateKeyStats, &stats); err != nil {
		return models.DefaultSessionStats(), err
	}
	stats.EnsureMaps()
	return stats, nil
}

func (s *Store) SaveSessionStats(stats models.SessionStats) error {
	return s.setStateJSON(constants.StateKeyStats, stats)
}

func (s *Store) GetLastActiveDate() (string, error) {
	date, _, err := s.getState(constants.StateKeyLastActiveDate)
	return date, err
}

func (s *Store) SaveLastActiveDate(date string) error {
	return s.setState(constants.StateKeyLastActiveDate, date)
}

func (s *Store) GetPomodoroCounters() (models.PomodoroCounters, error) {
	var counters models.PomodoroCounters
	if _, err := s.getStateJSON(constants.StateKeyPomodoro, &counters); err != nil {
		return models.PomodoroCounters{}, err
	}
	return counters, nil
}

func (s *Store) SavePomodoroCounters(counters models.PomodoroCounters) error {
	return s.setStateJSON(constants.StateKeyPomodoro, counters)
}
