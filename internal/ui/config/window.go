// Package config implements the configuration window: the settings form
// and the daily statistics panel.
package config

import (
	"fmt"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"pomobar/internal/core/model"
	"pomobar/internal/core/settings"
	"pomobar/internal/core/stats"
	"pomobar/internal/platform"
)

const appName = "Pomobar"

// Window handles the configuration UI.
type Window struct {
	window     fyne.Window
	manager    *settings.Manager
	recorder   *stats.Recorder
	service    platform.Service
	logger     zerolog.Logger
	workEntry  *widget.Entry
	restEntry  *widget.Entry
	startEntry *widget.Entry
	endEntry   *widget.Entry
	autostart  *widget.Check
	errorLabel *widget.Label
	statsBox   *fyne.Container
}

// New creates the configuration window.
func New(app fyne.App, manager *settings.Manager, recorder *stats.Recorder, service platform.Service, logger zerolog.Logger) *Window {
	window := app.NewWindow("Pomobar Configuration")

	configWindow := &Window{
		window:     window,
		manager:    manager,
		recorder:   recorder,
		service:    service,
		logger:     logger,
		workEntry:  widget.NewEntry(),
		restEntry:  widget.NewEntry(),
		startEntry: widget.NewEntry(),
		endEntry:   widget.NewEntry(),
		errorLabel: widget.NewLabel(""),
		statsBox:   container.NewVBox(),
	}
	configWindow.errorLabel.Importance = widget.DangerImportance

	configWindow.autostart = widget.NewCheck("Start at login", nil)
	configWindow.autostart.SetChecked(service.AutostartEnabled(appName))
	configWindow.autostart.OnChanged = configWindow.handleAutostart

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work duration"), configWindow.workEntry, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Rest duration"), configWindow.restEntry, widget.NewLabel("min")),
		widget.NewLabelWithStyle("Idle reminders", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Active from hour"), configWindow.startEntry, widget.NewLabel("until"), configWindow.endEntry),
		configWindow.autostart,
		configWindow.errorLabel,
	)

	saveButton := widget.NewButton("Save", configWindow.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	statsSection := container.NewVBox(
		widget.NewLabelWithStyle("Statistics", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		configWindow.statsBox,
	)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil,
		container.NewVBox(form, widget.NewSeparator(), statsSection)))
	window.Resize(fyne.NewSize(420, 480))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return configWindow
}

// Show refreshes the form from the live settings and statistics, then
// displays the window.
func (configWindow *Window) Show() {
	current := configWindow.manager.Current()
	configWindow.workEntry.SetText(strconv.Itoa(current.WorkMinutes))
	configWindow.restEntry.SetText(strconv.Itoa(current.RestMinutes))
	configWindow.startEntry.SetText(strconv.Itoa(current.ActiveHoursStart))
	configWindow.endEntry.SetText(strconv.Itoa(current.ActiveHoursEnd))
	configWindow.errorLabel.SetText("")
	configWindow.refreshStats()

	configWindow.window.Show()
	configWindow.window.RequestFocus()
}

// handleSave validates at the form boundary; the settings manager never
// sees an out-of-range value, and an invalid save leaves the active
// settings untouched.
func (configWindow *Window) handleSave() {
	work, err := parseIntField(configWindow.workEntry.Text, "work duration")
	if err != nil {
		configWindow.errorLabel.SetText(err.Error())
		return
	}
	rest, err := parseIntField(configWindow.restEntry.Text, "rest duration")
	if err != nil {
		configWindow.errorLabel.SetText(err.Error())
		return
	}
	start, err := parseIntField(configWindow.startEntry.Text, "active hours start")
	if err != nil {
		configWindow.errorLabel.SetText(err.Error())
		return
	}
	end, err := parseIntField(configWindow.endEntry.Text, "active hours end")
	if err != nil {
		configWindow.errorLabel.SetText(err.Error())
		return
	}

	updated := model.Settings{
		WorkMinutes:      work,
		RestMinutes:      rest,
		ActiveHoursStart: start,
		ActiveHoursEnd:   end,
	}
	if err := configWindow.manager.Update(updated); err != nil {
		configWindow.errorLabel.SetText(err.Error())
		return
	}

	configWindow.window.Hide()
}

func (configWindow *Window) handleAutostart(enabled bool) {
	var err error
	if enabled {
		execPath, pathErr := os.Executable()
		if pathErr != nil {
			err = pathErr
		} else {
			err = configWindow.service.EnableAutostart(appName, execPath)
		}
	} else {
		err = configWindow.service.DisableAutostart(appName)
	}
	if err != nil {
		configWindow.logger.Error().Err(err).Bool("enabled", enabled).Msg("autostart update failed")
		configWindow.errorLabel.SetText("could not update login item")
	}
}

func (configWindow *Window) refreshStats() {
	configWindow.statsBox.Objects = nil

	days := configWindow.recorder.Days()
	if len(days) == 0 {
		configWindow.statsBox.Add(widget.NewLabel("No sessions recorded yet."))
	}
	for _, day := range days {
		line := fmt.Sprintf("%s    %d sessions    %s",
			day.Date.Format("Mon 02 Jan 2006"), day.SessionCount(), day.FormattedTotal())
		configWindow.statsBox.Add(widget.NewLabel(line))
	}
	configWindow.statsBox.Refresh()
}

func parseIntField(value, field string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", field)
	}
	return parsed, nil
}
