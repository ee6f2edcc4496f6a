package models

import "time"

// TimerConfig holds the default interval lengths and session count used when
// no flag overrides them.
type TimerConfig struct {
	WorkMinutes       int `yaml:"work_minutes" mapstructure:"work_minutes"`
	ShortBreakMinutes int `yaml:"short_break_minutes" mapstructure:"short_break_minutes"`
	LongBreakMinutes  int `yaml:"long_break_minutes" mapstructure:"long_break_minutes"`
	Sessions          int `yaml:"sessions" mapstructure:"sessions"`
}

// Work returns the configured work interval length.
func (tc TimerConfig) Work() time.Duration {
	return time.Duration(tc.WorkMinutes) * time.Minute
}

// ShortBreak returns the configured short break length.
func (tc TimerConfig) ShortBreak() time.Duration {
	return time.Duration(tc.ShortBreakMinutes) * time.Minute
}

// LongBreak returns the configured long break length.
func (tc TimerConfig) LongBreak() time.Duration {
	return time.Duration(tc.LongBreakMinutes) * time.Minute
}

// NotificationConfig selects which completion announcements are attempted.
type NotificationConfig struct {
	Desktop bool `yaml:"desktop" mapstructure:"desktop"`
	Sound   bool `yaml:"sound" mapstructure:"sound"`
}

// Config holds all user-tunable settings read from config.yaml via Viper.
type Config struct {
	Timer         TimerConfig        `yaml:"timer" mapstructure:"timer"`
	Notifications NotificationConfig `yaml:"notifications" mapstructure:"notifications"`
}
