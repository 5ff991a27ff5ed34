package models

import "time"

// BrainrotSession is one contiguous interval of detected AI generation with
// the panel considered active. Logged for the stats display.
type BrainrotSession struct {
	ID         string    `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	EndedAt    time.Time `json:"ended_at"`
	DurationMs int64     `json:"duration_ms"`
}
