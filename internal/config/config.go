package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const journalFileName = "wordbook-journal.db"

// Config defines wordbook configuration.
type Config struct {
	Journal JournalConfig `yaml:"journal"`
	Log     LogConfig     `yaml:"log"`
	Dates   DatesConfig   `yaml:"dates"`
}

type JournalConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// DatesConfig seeds the session's date-argument mode.
type DatesConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load builds configuration from defaults, the YAML file at path (or
// WORDBOOK_CONFIG_PATH when path is empty), then environment variables.
func Load(path string) (Config, error) {
	cfg := Config{
		Journal: JournalConfig{
			Path: defaultJournalPath(),
		},
		Log: LogConfig{
			Level: "warn",
		},
	}

	if path == "" {
		path = os.Getenv("WORDBOOK_CONFIG_PATH")
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if journalPath := os.Getenv("WORDBOOK_JOURNAL_PATH"); journalPath != "" {
		cfg.Journal.Path = journalPath
	}
	if level := os.Getenv("WORDBOOK_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("WORDBOOK_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if datesStr := os.Getenv("WORDBOOK_DATES_ENABLED"); datesStr != "" {
		enabled, err := strconv.ParseBool(datesStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid WORDBOOK_DATES_ENABLED: %w", err)
		}
		cfg.Dates.Enabled = enabled
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func defaultJournalPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return journalFileName
	}
	return filepath.Join(dir, journalFileName)
}
