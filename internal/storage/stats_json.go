package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pomobar/internal/core/model"
)

const statsFileName = "statistics.json"

// StatsFile persists the daily statistics collection as a JSON array of
// day records with RFC 3339 timestamps.
type StatsFile struct {
	dir string
}

// NewStatsFile creates a statistics store rooted at dir.
func NewStatsFile(dir string) *StatsFile {
	return &StatsFile{dir: dir}
}

// Load reads the persisted collection. A missing file is an empty history;
// decode errors are returned so the recorder can degrade to empty.
func (file *StatsFile) Load() ([]model.DailyStats, error) {
	rawData, err := os.ReadFile(filepath.Join(file.dir, statsFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read statistics file: %w", err)
	}

	var days []model.DailyStats
	if err := json.Unmarshal(rawData, &days); err != nil {
		return nil, fmt.Errorf("parse statistics json: %w", err)
	}
	return days, nil
}

// Save replaces the persisted collection wholesale.
func (file *StatsFile) Save(days []model.DailyStats) error {
	if err := os.MkdirAll(file.dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if days == nil {
		days = []model.DailyStats{}
	}
	serialized, err := json.MarshalIndent(days, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal statistics json: %w", err)
	}

	if err := os.WriteFile(filepath.Join(file.dir, statsFileName), serialized, 0o644); err != nil {
		return fmt.Errorf("write statistics file: %w", err)
	}
	return nil
}
