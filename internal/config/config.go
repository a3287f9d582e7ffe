// Package config loads simmer's settings from the config file, first-run
// prompts and command-line flags
package config

import (
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Display       DisplayConfig      `mapstructure:"display"`
		List          ListConfig         `mapstructure:"list"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		prompt        *PromptOptions
		Cooking       CookingConfig `mapstructure:"cooking"`
	}

	// CookingConfig holds cooking session settings
	CookingConfig struct {
		TickInterval time.Duration `mapstructure:"tick_interval"`
		StopCooldown time.Duration `mapstructure:"stop_cooldown"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Cmd     string `mapstructure:"cmd"`
		Enabled bool   `mapstructure:"enabled"`
		Sound   bool   `mapstructure:"sound"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		AccentColor    string `mapstructure:"accent_color"`
		DarkTheme      bool   `mapstructure:"dark_theme"`
		TwentyFourHour bool   `mapstructure:"24hr_clock"`
	}

	// ListConfig holds recipe listing settings
	ListConfig struct {
		Sort string `mapstructure:"sort"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Cooking: CookingConfig{
			TickInterval: time.Second,
			StopCooldown: 500 * time.Millisecond,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Display: DisplayConfig{
			AccentColor: "#B0DB43",
			DarkTheme:   true,
		},
		List: ListConfig{
			Sort: "recent",
		},
	}
}

// TimeFormat returns the layout used to print clock times.
func (c *Config) TimeFormat() string {
	if c.Display.TwentyFourHour {
		return "15:04"
	}

	return "03:04 PM"
}
