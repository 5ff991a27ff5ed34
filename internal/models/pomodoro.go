package models

// PomodoroMode is the current phase of the pomodoro cycle.
type PomodoroMode string

const (
	ModeWork      PomodoroMode = "work"
	ModeBreak     PomodoroMode = "break"
	ModeLongBreak PomodoroMode = "longBreak"
)

// PomodoroCounters is the persisted slice of pomodoro state. The live
// countdown is deliberately not persisted; on reload the timer starts paused
// with the full duration for its mode.
type PomodoroCounters struct {
	SessionsCompleted int `json:"sessions_completed"`
	TotalWorkTimeSec  int `json:"total_work_time_sec"`
	TotalBreakTimeSec int `json:"total_break_time_sec"`
}

// PomodoroState is a snapshot of the full timer state for the host UI.
type PomodoroState struct {
	IsActive          bool         `json:"is_active"`
	Mode              PomodoroMode `json:"mode"`
	TimeRemainingSec  int          `json:"time_remaining_sec"`
	SessionsCompleted int          `json:"sessions_completed"`
	TotalWorkTimeSec  int          `json:"total_work_time_sec"`
	TotalBreakTimeSec int          `json:"total_break_time_sec"`
}
