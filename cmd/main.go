package main

import (
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"pomobar/internal/core/coordinator"
	"pomobar/internal/core/settings"
	"pomobar/internal/core/stats"
	"pomobar/internal/platform"
	"pomobar/internal/storage"
	uiconfig "pomobar/internal/ui/config"
	"pomobar/internal/ui/notify"
	"pomobar/internal/ui/tray"
)

const appName = "Pomobar"

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		logger.Error().Err(err).Msg("single instance")
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.pomobar.app")
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		logger.Error().Msg("system tray unsupported on this platform")
		return
	}

	trayWindow := fyneApp.NewWindow(appName)
	trayWindow.SetContent(widget.NewLabel("Pomobar is running in the menu bar."))
	trayWindow.SetCloseIntercept(func() {
		trayWindow.Hide()
	})
	trayWindow.Hide()
	desktopApp.SetSystemTrayWindow(trayWindow)

	dataDir, err := storage.DefaultDir(appName)
	if err != nil {
		logger.Error().Err(err).Msg("resolve data directory")
		return
	}
	settingsManager := settings.NewManager(storage.NewSettingsFile(dataDir), logger)
	recorder := stats.NewRecorder(storage.NewStatsFile(dataDir), logger)

	// The coordinator is built here and handed to everything that needs
	// it; nothing reaches for it through a global.
	pomodoro := coordinator.New(coordinator.Config{
		Settings: settingsManager,
		Stats:    recorder,
		Sound:    platform.NewPlayer(logger),
		Notifier: notify.New(fyneApp, logger),
	}, logger)

	configWindow := uiconfig.New(fyneApp, settingsManager, recorder, platform.NewService(), logger)

	trayManager := tray.New(desktopApp, tray.Callbacks{
		OnAdvance: func() {
			pomodoro.Advance()
		},
		OnConfigure: func() {
			configWindow.Show()
		},
		OnQuit: func() {
			pomodoro.Shutdown()
			fyneApp.Quit()
		},
	})

	events := pomodoro.Subscribe(8)
	go func() {
		for event := range events {
			event := event
			switch event.Type {
			case coordinator.EventStateChange:
				fyne.Do(func() {
					trayManager.SetState(event.State)
					if event.Remaining > 0 {
						trayManager.SetRemaining(event.Remaining)
					}
				})
			case coordinator.EventTick:
				fyne.Do(func() {
					trayManager.SetRemaining(event.Remaining)
				})
			}
		}
	}()

	pomodoro.Start()
	fyneApp.Run()
}
