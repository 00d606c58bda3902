// Package stats records work sessions and aggregates them by calendar day.
package stats

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"pomobar/internal/core/model"
)

// Store persists the daily statistics collection.
type Store interface {
	Load() ([]model.DailyStats, error)
	Save(days []model.DailyStats) error
}

type openSession struct {
	id    uuid.UUID
	start time.Time
}

// Recorder owns the statistics collection. Days are kept sorted newest
// first, with at most one entry per calendar day.
type Recorder struct {
	mu     sync.Mutex
	days   []model.DailyStats
	open   *openSession
	store  Store
	logger zerolog.Logger
	now    func() time.Time
}

// NewRecorder loads persisted statistics. A missing or corrupt file
// degrades to an empty history; it is never fatal.
func NewRecorder(store Store, logger zerolog.Logger) *Recorder {
	days, err := store.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("load statistics failed, starting empty")
		days = nil
	}
	return &Recorder{
		days:   days,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// StartSession captures the beginning of a work period. An already open
// session is discarded, not stacked.
func (recorder *Recorder) StartSession() {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()

	if recorder.open != nil {
		recorder.logger.Debug().
			Str("session", recorder.open.id.String()).
			Msg("discarding open session")
	}
	recorder.open = &openSession{id: uuid.New(), start: recorder.now()}
}

// CompleteSession finalizes the open work period, folds it into its start
// day's entry and persists the collection. No-op when nothing is open.
func (recorder *Recorder) CompleteSession() {
	recorder.mu.Lock()
	if recorder.open == nil {
		recorder.mu.Unlock()
		return
	}

	session := model.WorkSession{
		ID:        recorder.open.id,
		StartTime: recorder.open.start,
		EndTime:   recorder.now(),
	}
	recorder.open = nil
	recorder.appendLocked(session)
	days := recorder.snapshotLocked()
	recorder.mu.Unlock()

	if err := recorder.store.Save(days); err != nil {
		recorder.logger.Error().Err(err).Msg("save statistics failed")
	}
}

// TodayStats returns the entry for the current calendar day, if any.
func (recorder *Recorder) TodayStats() (model.DailyStats, bool) {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()

	today := model.Midnight(recorder.now())
	for _, day := range recorder.days {
		if day.Date.Equal(today) {
			return copyDay(day), true
		}
	}
	return model.DailyStats{}, false
}

// Days returns a snapshot of all recorded days, newest first.
func (recorder *Recorder) Days() []model.DailyStats {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return recorder.snapshotLocked()
}

// SessionOpen reports whether a work period is currently being tracked.
func (recorder *Recorder) SessionOpen() bool {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return recorder.open != nil
}

func (recorder *Recorder) appendLocked(session model.WorkSession) {
	day := model.Midnight(session.StartTime)
	for i := range recorder.days {
		if recorder.days[i].Date.Equal(day) {
			recorder.days[i].Sessions = append(recorder.days[i].Sessions, session)
			return
		}
	}

	recorder.days = append(recorder.days, model.DailyStats{
		Date:     day,
		Sessions: []model.WorkSession{session},
	})
	sort.Slice(recorder.days, func(i, j int) bool {
		return recorder.days[i].Date.After(recorder.days[j].Date)
	})
}

func (recorder *Recorder) snapshotLocked() []model.DailyStats {
	days := make([]model.DailyStats, len(recorder.days))
	for i, day := range recorder.days {
		days[i] = copyDay(day)
	}
	return days
}

func copyDay(day model.DailyStats) model.DailyStats {
	sessions := make([]model.WorkSession, len(day.Sessions))
	copy(sessions, day.Sessions)
	return model.DailyStats{Date: day.Date, Sessions: sessions}
}
