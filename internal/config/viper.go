package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/simmer/internal/osutil"
)

const (
	keyTickInterval         = "cooking.tick_interval"
	keyStopCooldown         = "cooking.stop_cooldown"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsSound   = "notifications.sound"
	keyNotificationsCmd     = "notifications.cmd"
	keyTwentyFourHour       = "display.24hr_clock"
	keyDarkTheme            = "display.dark_theme"
	keyAccentColor          = "display.accent_color"
	keyListSort             = "list.sort"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. The file is created with default values if it does not
// exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return errReadConfig.Wrap(err)
		}

		if err := os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission); err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers defaults along with any answers from the first-run
// prompt.
func setupViper(v *viper.Viper, c *Config) {
	d := Default()

	v.SetDefault(keyTickInterval, d.Cooking.TickInterval.String())
	v.SetDefault(keyStopCooldown, d.Cooking.StopCooldown.String())
	v.SetDefault(keyNotificationsEnabled, d.Notifications.Enabled)
	v.SetDefault(keyNotificationsSound, d.Notifications.Sound)
	v.SetDefault(keyNotificationsCmd, d.Notifications.Cmd)
	v.SetDefault(keyTwentyFourHour, d.Display.TwentyFourHour)
	v.SetDefault(keyDarkTheme, d.Display.DarkTheme)
	v.SetDefault(keyAccentColor, d.Display.AccentColor)
	v.SetDefault(keyListSort, d.List.Sort)

	if c.prompt != nil {
		v.Set(keyNotificationsEnabled, c.prompt.Notifications)
		v.Set(keyNotificationsSound, c.prompt.Sound)
		v.Set(keyTwentyFourHour, c.prompt.TwentyFourHour)
	}
}

// loadViperConfig decodes the merged settings into c.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
