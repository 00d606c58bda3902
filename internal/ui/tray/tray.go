// Package tray renders the menu-bar dropdown.
package tray

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"pomobar/internal/core/model"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnAdvance   func()
	OnConfigure func()
	OnQuit      func()
}

// Manager handles menu-bar state. The menu is rebuilt on every refresh
// because item label edits alone are not repainted on all platforms.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	advanceItem *fyne.MenuItem
	callbacks   Callbacks
	state       model.PomodoroState
	remaining   time.Duration
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		state:     model.StateIdle,
	}

	manager.statusItem = fyne.NewMenuItem(model.StateIdle.Label(), nil)
	manager.statusItem.Disabled = true

	manager.advanceItem = fyne.NewMenuItem(model.StateIdle.ActionLabel(), func() {
		if manager.callbacks.OnAdvance != nil {
			manager.callbacks.OnAdvance()
		}
	})

	manager.refreshMenu()
	return manager
}

// SetState updates the rendered state and the advance action label.
func (manager *Manager) SetState(state model.PomodoroState) {
	manager.state = state
	manager.remaining = 0
	manager.advanceItem.Label = state.ActionLabel()
	manager.refreshStatus()
}

// SetRemaining updates the countdown shown in the status line.
func (manager *Manager) SetRemaining(remaining time.Duration) {
	manager.remaining = remaining
	manager.refreshStatus()
}

func (manager *Manager) refreshStatus() {
	if manager.state == model.StateIdle {
		manager.statusItem.Label = manager.state.Label()
	} else {
		manager.statusItem.Label = fmt.Sprintf("%s  %s", manager.state.Label(), formatRemaining(manager.remaining))
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Pomobar",
		manager.statusItem,
		manager.advanceItem,
		fyne.NewMenuItem("Configuration", func() {
			if manager.callbacks.OnConfigure != nil {
				manager.callbacks.OnConfigure()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}

func formatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
