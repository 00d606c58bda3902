package model

import (
	"fmt"
	"time"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkMinutes      int
	RestMinutes      int
	ActiveHoursStart int
	ActiveHoursEnd   int
}

// DefaultSettings returns the settings applied on first launch.
func DefaultSettings() Settings {
	return Settings{
		WorkMinutes:      25,
		RestMinutes:      5,
		ActiveHoursStart: 9,
		ActiveHoursEnd:   17,
	}
}

// Validate rejects out-of-range values. Nothing is auto-corrected; callers
// keep their previous settings until a valid save succeeds.
func (settings Settings) Validate() error {
	if settings.WorkMinutes < 1 || settings.WorkMinutes > 60 {
		return fmt.Errorf("work duration must be between 1 and 60 minutes")
	}
	if settings.RestMinutes < 1 || settings.RestMinutes > 30 {
		return fmt.Errorf("rest duration must be between 1 and 30 minutes")
	}
	if settings.ActiveHoursStart < 0 || settings.ActiveHoursStart > 23 {
		return fmt.Errorf("active hours start must be between 0 and 23")
	}
	if settings.ActiveHoursEnd < 0 || settings.ActiveHoursEnd > 23 {
		return fmt.Errorf("active hours end must be between 0 and 23")
	}
	if settings.ActiveHoursStart >= settings.ActiveHoursEnd {
		return fmt.Errorf("active hours start must be before active hours end")
	}
	return nil
}

// WorkDuration returns the work period length.
func (settings Settings) WorkDuration() time.Duration {
	return time.Duration(settings.WorkMinutes) * time.Minute
}

// RestDuration returns the rest period length.
func (settings Settings) RestDuration() time.Duration {
	return time.Duration(settings.RestMinutes) * time.Minute
}
