//go:build darwin

package platform

import (
	"os/exec"
	"path/filepath"

	"pomobar/internal/core/model"
)

const systemSoundsDir = "/System/Library/Sounds"

func playCue(kind model.CueKind) error {
	name := "Glass.aiff"
	switch kind {
	case model.CueRestComplete:
		name = "Hero.aiff"
	case model.CueIdleReminder:
		name = "Tink.aiff"
	}
	return exec.Command("afplay", filepath.Join(systemSoundsDir, name)).Run()
}
