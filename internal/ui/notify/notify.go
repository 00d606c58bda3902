// Package notify dispatches OS notifications for transition cues.
package notify

import (
	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"

	"pomobar/internal/core/model"
)

// Notifier sends notifications through the fyne app. Dispatch is
// fire-and-forget; delivery is never observed.
type Notifier struct {
	app    fyne.App
	logger zerolog.Logger
}

// New creates a Notifier.
func New(app fyne.App, logger zerolog.Logger) *Notifier {
	return &Notifier{app: app, logger: logger}
}

// Notify sends the notification for the given cue.
func (notifier *Notifier) Notify(kind model.CueKind) {
	title, content := messageFor(kind)
	notifier.logger.Debug().Str("cue", string(kind)).Msg("notification sent")
	notifier.app.SendNotification(fyne.NewNotification(title, content))
}

func messageFor(kind model.CueKind) (string, string) {
	switch kind {
	case model.CueWorkComplete:
		return "Work complete", "Time to take a break."
	case model.CueRestComplete:
		return "Break over", "Ready for the next work session."
	default:
		return "Still idle", "Time for a work session?"
	}
}
