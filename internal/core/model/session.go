package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// WorkSession is one completed work period. Immutable once finalized.
type WorkSession struct {
	ID        uuid.UUID `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// Duration returns the session length.
func (session WorkSession) Duration() time.Duration {
	return session.EndTime.Sub(session.StartTime)
}

// DailyStats aggregates the completed work sessions of one calendar day.
// Sessions are ordered by completion; Date is local midnight.
type DailyStats struct {
	Date     time.Time     `json:"date"`
	Sessions []WorkSession `json:"sessions"`
}

// SessionCount returns the number of completed sessions on this day.
func (day DailyStats) SessionCount() int {
	return len(day.Sessions)
}

// TotalWork returns the summed duration of the day's sessions.
func (day DailyStats) TotalWork() time.Duration {
	var total time.Duration
	for _, session := range day.Sessions {
		total += session.Duration()
	}
	return total
}

// FormattedTotal renders the day's total work time as HH:MM.
func (day DailyStats) FormattedTotal() string {
	total := day.TotalWork()
	if total < 0 {
		total = 0
	}
	minutes := int(total.Minutes())
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Midnight truncates a timestamp to the start of its local calendar day.
func Midnight(at time.Time) time.Time {
	year, month, day := at.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, at.Location())
}
