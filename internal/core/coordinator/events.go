package coordinator

import (
	"time"

	"pomobar/internal/core/model"
)

// EventType defines the type of coordinator event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
)

// Event represents a coordinator update for observers.
type Event struct {
	Type      EventType
	State     model.PomodoroState
	Remaining time.Duration
	At        time.Time
}
