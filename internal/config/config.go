package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	API           APIConfig    `toml:"api"`
	Log           LogConfig    `toml:"log"`
	Notifications NotifyConfig `toml:"notifications"`
	DBPath        string       `toml:"db_path" env:"TALLY_DB_PATH"`
}

type APIConfig struct {
	BaseURL string `toml:"base_url" env:"TALLY_API_BASE_URL"`
	Token   string `toml:"token" env:"TALLY_API_TOKEN"`
}

type LogConfig struct {
	Level  string `toml:"level" env:"TALLY_LOG_LEVEL"`
	Pretty bool   `toml:"pretty" env:"TALLY_LOG_PRETTY"`
}

type NotifyConfig struct {
	Enabled         bool `toml:"enabled" env:"TALLY_NOTIFICATIONS"`
	ReminderMinutes int  `toml:"reminder_minutes"`
}

func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
		Notifications: NotifyConfig{
			Enabled:         true,
			ReminderMinutes: 240,
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tally"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the TOML config file (a missing file is fine, defaults
// apply) and then lets environment variables override individual
// fields.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom is Load with an explicit file path, for tests.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > 0 {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	return &cfg, nil
}

func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
