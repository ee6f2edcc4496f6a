// Package core contains the timer domain logic: the countdown engine,
// the session scheduler, and configuration loading.
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"pomo/pkg/models"
)

// homeEnvVar overrides the default pomo home directory when set.
const homeEnvVar = "POMO_HOME"

// ResolveHome returns the pomo home directory: $POMO_HOME when set,
// otherwise ~/.pomo. Everything pomo persists (config, history, assets)
// lives under this directory.
func ResolveHome() (string, error) {
	if dir := os.Getenv(homeEnvVar); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".pomo"), nil
}

// ConfigurationManager loads and validates the timer configuration from
// the pomo home directory.
type ConfigurationManager interface {
	Load() (*models.Config, error)
	Validate(cfg *models.Config) error
	Home() string
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading the YAML configuration file.
type viperConfigManager struct {
	// homeDir is the directory where config.yaml resides.
	homeDir string
}

// NewConfigurationManager creates a ConfigurationManager that reads
// config.yaml from homeDir.
func NewConfigurationManager(homeDir string) ConfigurationManager {
	return &viperConfigManager{homeDir: homeDir}
}

// DefaultConfig returns a Config populated with the classic defaults:
// 25 minute work intervals, 5 minute short breaks, 15 minute long breaks,
// 4 sessions per schedule, and all announcements on.
func DefaultConfig() *models.Config {
	return &models.Config{
		Timer: models.TimerConfig{
			WorkMinutes:       25,
			ShortBreakMinutes: 5,
			LongBreakMinutes:  15,
			Sessions:          4,
		},
		Notifications: models.NotificationConfig{
			Desktop: true,
			Sound:   true,
		},
	}
}

// Home returns the directory this manager reads configuration from.
func (cm *viperConfigManager) Home() string {
	return cm.homeDir
}

// Load reads config.yaml from the pomo home using Viper. If the file does
// not exist, the defaults are returned.
func (cm *viperConfigManager) Load() (*models.Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.homeDir)

	// Set Viper defaults so missing keys fall back gracefully.
	v.SetDefault("timer.work_minutes", cfg.Timer.WorkMinutes)
	v.SetDefault("timer.short_break_minutes", cfg.Timer.ShortBreakMinutes)
	v.SetDefault("timer.long_break_minutes", cfg.Timer.LongBreakMinutes)
	v.SetDefault("timer.sessions", cfg.Timer.Sessions)
	v.SetDefault("notifications.desktop", cfg.Notifications.Desktop)
	v.SetDefault("notifications.sound", cfg.Notifications.Sound)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file found — return defaults.
			return cfg, nil
		}
		return nil, fmt.Errorf("%w: reading config.yaml: %w", models.ErrConfig, err)
	}

	cfg.Timer.WorkMinutes = v.GetInt("timer.work_minutes")
	cfg.Timer.ShortBreakMinutes = v.GetInt("timer.short_break_minutes")
	cfg.Timer.LongBreakMinutes = v.GetInt("timer.long_break_minutes")
	cfg.Timer.Sessions = v.GetInt("timer.sessions")
	cfg.Notifications.Desktop = v.GetBool("notifications.desktop")
	cfg.Notifications.Sound = v.GetBool("notifications.sound")

	if err := cm.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values and returns a clear
// error message identifying every problem.
func (cm *viperConfigManager) Validate(cfg *models.Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: configuration is nil", models.ErrConfig)
	}

	var errs []string

	if cfg.Timer.WorkMinutes < 1 {
		errs = append(errs, fmt.Sprintf("timer.work_minutes must be positive, got %d", cfg.Timer.WorkMinutes))
	}
	if cfg.Timer.ShortBreakMinutes < 1 {
		errs = append(errs, fmt.Sprintf("timer.short_break_minutes must be positive, got %d", cfg.Timer.ShortBreakMinutes))
	}
	if cfg.Timer.LongBreakMinutes < 1 {
		errs = append(errs, fmt.Sprintf("timer.long_break_minutes must be positive, got %d", cfg.Timer.LongBreakMinutes))
	}
	if cfg.Timer.Sessions < 1 {
		errs = append(errs, fmt.Sprintf("timer.sessions must be at least 1, got %d", cfg.Timer.Sessions))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", models.ErrConfig, strings.Join(errs, "\n  - "))
	}

	return nil
}
