// Package storage persists settings and statistics under the per-user
// config directory.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pomobar/internal/core/model"
)

const settingsFileName = "settings.yaml"

// DefaultDir returns the per-user directory holding the application's files.
func DefaultDir(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName), nil
}

type yamlSettings struct {
	WorkMinutes      int `yaml:"work_minutes"`
	RestMinutes      int `yaml:"rest_minutes"`
	ActiveHoursStart int `yaml:"active_hours_start"`
	ActiveHoursEnd   int `yaml:"active_hours_end"`
}

// SettingsFile persists settings as a flat YAML key-value file.
type SettingsFile struct {
	dir string
}

// NewSettingsFile creates a settings store rooted at dir.
func NewSettingsFile(dir string) *SettingsFile {
	return &SettingsFile{dir: dir}
}

// Load reads persisted settings. A missing file returns the defaults
// without error; read and parse failures return the defaults alongside the
// error so callers can degrade.
func (file *SettingsFile) Load() (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(filepath.Join(file.dir, settingsFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	return model.Settings{
		WorkMinutes:      fileData.WorkMinutes,
		RestMinutes:      fileData.RestMinutes,
		ActiveHoursStart: fileData.ActiveHoursStart,
		ActiveHoursEnd:   fileData.ActiveHoursEnd,
	}, nil
}

// Save writes the settings wholesale.
func (file *SettingsFile) Save(settings model.Settings) error {
	if err := os.MkdirAll(file.dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := yaml.Marshal(yamlSettings{
		WorkMinutes:      settings.WorkMinutes,
		RestMinutes:      settings.RestMinutes,
		ActiveHoursStart: settings.ActiveHoursStart,
		ActiveHoursEnd:   settings.ActiveHoursEnd,
	})
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(filepath.Join(file.dir, settingsFileName), serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}
