package config

import (
	"regexp"
	"time"

	"github.com/ayoisaiah/simmer/internal/recipe"
)

var (
	minTickInterval = 100 * time.Millisecond
	maxTickInterval = 5 * time.Second

	maxStopCooldown = 5 * time.Second

	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if c.Cooking.TickInterval < minTickInterval ||
		c.Cooking.TickInterval > maxTickInterval {
		return errInvalidTickInterval.Fmt(
			c.Cooking.TickInterval,
			minTickInterval,
			maxTickInterval,
		)
	}

	if c.Cooking.StopCooldown < 0 || c.Cooking.StopCooldown > maxStopCooldown {
		return errInvalidStopCooldown.Fmt(c.Cooking.StopCooldown, maxStopCooldown)
	}

	if !hexColorRegex.MatchString(c.Display.AccentColor) {
		return errInvalidColor.Fmt(c.Display.AccentColor)
	}

	if _, err := recipe.ParseSort(c.List.Sort); err != nil {
		return err
	}

	return nil
}
