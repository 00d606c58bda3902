//go:build windows

package platform

import (
	"os/exec"

	"pomobar/internal/core/model"
)

func playCue(kind model.CueKind) error {
	sound := "Exclamation"
	switch kind {
	case model.CueRestComplete:
		sound = "Asterisk"
	case model.CueIdleReminder:
		sound = "Beep"
	}
	script := "[System.Media.SystemSounds]::" + sound + ".Play()"
	return exec.Command("powershell", "-NoProfile", "-Command", script).Run()
}
