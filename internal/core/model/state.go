package model

// PomodoroState identifies the current phase of the pomodoro cycle.
type PomodoroState string

const (
	StateIdle PomodoroState = "idle"
	StateWork PomodoroState = "work"
	StateRest PomodoroState = "rest"
)

// Next returns the cyclic successor: Idle -> Work -> Rest -> Idle.
func (state PomodoroState) Next() PomodoroState {
	switch state {
	case StateIdle:
		return StateWork
	case StateWork:
		return StateRest
	default:
		return StateIdle
	}
}

// Label returns the display name shown in the menu bar status line.
func (state PomodoroState) Label() string {
	switch state {
	case StateWork:
		return "Working"
	case StateRest:
		return "Resting"
	default:
		return "Idle"
	}
}

// ActionLabel returns the menu text that advances out of this state.
func (state PomodoroState) ActionLabel() string {
	switch state {
	case StateWork:
		return "Take a Break"
	case StateRest:
		return "End Break"
	default:
		return "Start Work"
	}
}
