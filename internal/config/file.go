package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

// FileConfig holds the optional YAML configuration. Values left at zero
// fall back to the compiled-in defaults; stored database settings still
// take precedence over both.
type FileConfig struct {
	FocusMinutes     int    `yaml:"focus_minutes"`
	ShortMinutes     int    `yaml:"short_minutes"`
	LongMinutes      int    `yaml:"long_minutes"`
	CyclesBeforeLong int    `yaml:"cycles_before_long"`
	Theme            string `yaml:"theme"`
}

// DefaultFileConfig returns the compiled-in defaults.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		FocusMinutes:     DefaultFocusMinutes,
		ShortMinutes:     DefaultShortMinutes,
		LongMinutes:      DefaultLongMinutes,
		CyclesBeforeLong: DefaultCyclesBeforeLong,
		Theme:            "default",
	}
}

// LoadFile reads the user configuration from YAML. A missing file is not
// an error; defaults are returned.
func LoadFile(appName string) (FileConfig, error) {
	cfg := DefaultFileConfig()
	path, err := resolveFilePath(appName)
	if err != nil {
		return cfg, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	var fileData FileConfig
	if err := yaml.Unmarshal(raw, &fileData); err != nil {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}

	applyFileConfig(&cfg, fileData)
	return cfg, nil
}

func applyFileConfig(cfg *FileConfig, fileData FileConfig) {
	if fileData.FocusMinutes >= MinFocusMinutes {
		cfg.FocusMinutes = fileData.FocusMinutes
	}
	if fileData.ShortMinutes >= MinShortMinutes {
		cfg.ShortMinutes = fileData.ShortMinutes
	}
	if fileData.LongMinutes >= MinLongMinutes {
		cfg.LongMinutes = fileData.LongMinutes
	}
	if fileData.CyclesBeforeLong >= MinCycles {
		cfg.CyclesBeforeLong = fileData.CyclesBeforeLong
	}
	if fileData.Theme != "" {
		cfg.Theme = fileData.Theme
	}
}

func resolveFilePath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, fileName), nil
}
