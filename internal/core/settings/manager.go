// Package settings owns the live user preferences.
package settings

import (
	"sync"

	"github.com/rs/zerolog"

	"pomobar/internal/core/model"
)

// Store persists user settings.
type Store interface {
	Load() (model.Settings, error)
	Save(settings model.Settings) error
}

// Manager holds the active settings for the process lifetime. Settings are
// loaded once at construction and replaced wholesale on every valid save.
type Manager struct {
	mu      sync.Mutex
	current model.Settings
	store   Store
	logger  zerolog.Logger
}

// NewManager loads persisted settings, falling back to defaults when the
// store is missing, unreadable or holds invalid values.
func NewManager(store Store, logger zerolog.Logger) *Manager {
	current, err := store.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("load settings failed, using defaults")
		current = model.DefaultSettings()
	}
	if err := current.Validate(); err != nil {
		logger.Warn().Err(err).Msg("persisted settings invalid, using defaults")
		current = model.DefaultSettings()
	}
	return &Manager{current: current, store: store, logger: logger}
}

// Current returns the active settings.
func (manager *Manager) Current() model.Settings {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return manager.current
}

// Update validates, applies and persists new settings. An invalid update is
// returned to the caller and leaves the active settings untouched; a
// persistence failure is logged and the in-memory update still applies.
func (manager *Manager) Update(updated model.Settings) error {
	if err := updated.Validate(); err != nil {
		return err
	}

	manager.mu.Lock()
	manager.current = updated
	manager.mu.Unlock()

	if err := manager.store.Save(updated); err != nil {
		manager.logger.Error().Err(err).Msg("save settings failed")
	}
	return nil
}
