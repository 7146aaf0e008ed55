package config

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	configFileName    = "config.json"
	languagesFileName = "languages.json"
	configDirName     = "cctrans"
	metricsSubDir     = "metrics"
)

// Config holds the user-facing settings. Values are resolved in order:
// defaults, then the config file, then .env, then environment variables.
// Intervals and timeouts are stored as float seconds to keep the file
// format simple for hand editing.
type Config struct {
	TargetLanguage     string  `json:"target_language" env:"CCTRANS_TARGET_LANGUAGE"`
	SourceLanguage     string  `json:"source_language" env:"CCTRANS_SOURCE_LANGUAGE"`
	DoubleCopyInterval float64 `json:"double_copy_interval" env:"CCTRANS_DOUBLE_COPY_INTERVAL"`
	TranslationTimeout float64 `json:"translation_timeout" env:"CCTRANS_TRANSLATION_TIMEOUT"`
	Notifications      bool    `json:"notifications" env:"CCTRANS_NOTIFICATIONS"`
}

// Defaults match the original tuning: 0.5s double-copy window, 3s timeout.
func Defaults() *Config {
	return &Config{
		TargetLanguage:     "ja",
		SourceLanguage:     "auto",
		DoubleCopyInterval: 0.5,
		TranslationTimeout: 3.0,
		Notifications:      true,
	}
}

// Interval returns the double-copy window as a duration.
func (c *Config) Interval() time.Duration {
	return secondsToDuration(c.DoubleCopyInterval, Defaults().DoubleCopyInterval)
}

// Timeout returns the translation timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return secondsToDuration(c.TranslationTimeout, Defaults().TranslationTimeout)
}

func secondsToDuration(seconds, fallback float64) time.Duration {
	if seconds <= 0 {
		seconds = fallback
	}
	return time.Duration(seconds * float64(time.Second))
}

// getConfigDir returns the user's config directory for cctrans
func getConfigDir() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(usr.HomeDir, ".config", configDirName), nil
}

func getConfigPath() (string, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFileName), nil
}

// GetConfigPath returns the full path to the config file (exported for CLI commands)
func GetConfigPath() (string, error) {
	return getConfigPath()
}

// GetLanguagesPath returns the path to the optional language table override.
func GetLanguagesPath() (string, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, languagesFileName), nil
}

// GetMetricsDir returns the metrics directory path
func GetMetricsDir() (string, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, metricsSubDir), nil
}

// GetLockPath returns the single-instance lock file path.
func GetLockPath() (string, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "cctrans.lock"), nil
}

// LoadConfig resolves the effective configuration. A missing config file is
// not an error; defaults are used and later overlays still apply.
func LoadConfig() (*Config, error) {
	cfg := Defaults()

	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %v", configPath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// .env is a development convenience; absence is fine.
	_ = godotenv.Load()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %v", err)
	}

	return cfg, nil
}

// SaveConfig writes the configuration to the config file.
func SaveConfig(cfg *Config) error {
	configDir, err := getConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}
