package platform

import (
	"github.com/rs/zerolog"

	"pomobar/internal/core/model"
)

// Player plays a system sound per transition cue. Playback is
// fire-and-forget: it runs off the caller's goroutine and failures are
// logged, never returned.
type Player struct {
	logger zerolog.Logger
}

// NewPlayer creates a sound player.
func NewPlayer(logger zerolog.Logger) *Player {
	return &Player{logger: logger}
}

// Play dispatches the sound for the given cue without waiting for it.
func (player *Player) Play(kind model.CueKind) {
	go func() {
		if err := playCue(kind); err != nil {
			player.logger.Warn().
				Err(err).
				Str("cue", string(kind)).
				Msg("sound playback failed")
		}
	}()
}
