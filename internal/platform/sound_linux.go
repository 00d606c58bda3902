//go:build linux

package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"pomobar/internal/core/model"
)

const freedesktopSoundsDir = "/usr/share/sounds/freedesktop/stereo"

func playCue(kind model.CueKind) error {
	name := "complete.oga"
	switch kind {
	case model.CueRestComplete:
		name = "bell.oga"
	case model.CueIdleReminder:
		name = "message.oga"
	}
	soundPath := filepath.Join(freedesktopSoundsDir, name)

	if paplay, err := exec.LookPath("paplay"); err == nil {
		return exec.Command(paplay, soundPath).Run()
	}
	if aplay, err := exec.LookPath("aplay"); err == nil {
		return exec.Command(aplay, soundPath).Run()
	}
	return fmt.Errorf("no sound player found (tried paplay, aplay)")
}
