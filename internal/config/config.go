package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds engine configuration.
type Config struct {
	// HistoryLimit bounds the undo and redo stacks. Oldest entries are
	// dropped first once the bound is reached.
	HistoryLimit int `json:"history_limit"`

	// DividerGapSeconds is the silence threshold for the SRT importer: when
	// consecutive cues are further apart than this, a divider item is
	// inserted between them.
	DividerGapSeconds float64 `json:"divider_gap_seconds"`

	// DisableSpacing turns off the CJK/Latin spacing pass applied to item
	// text during import.
	DisableSpacing bool `json:"disable_spacing,omitempty"`

	// ExportDir overrides the default export directory (<base>/exports).
	ExportDir string `json:"export_dir,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		HistoryLimit:      100,
		DividerGapSeconds: 60,
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.transpal.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs. Overlay values take precedence
// for non-zero scalars; booleans combine with OR.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.HistoryLimit = overlay.HistoryLimit
	if result.HistoryLimit == 0 {
		result.HistoryLimit = base.HistoryLimit
	}

	result.DividerGapSeconds = overlay.DividerGapSeconds
	if result.DividerGapSeconds == 0 {
		result.DividerGapSeconds = base.DividerGapSeconds
	}

	result.DisableSpacing = base.DisableSpacing || overlay.DisableSpacing

	result.ExportDir = overlay.ExportDir
	if result.ExportDir == "" {
		result.ExportDir = base.ExportDir
	}

	return result
}
