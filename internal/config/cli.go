package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Cmd           string
	Sort          string
	DisableNotify bool
	Mute          bool
}

// WithCLIConfig returns an Option that applies command-line overrides. Only
// flags that were set explicitly take effect.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Cmd:           ctx.String("cmd"),
			Sort:          ctx.String("sort"),
			DisableNotify: ctx.Bool("disable-notification"),
			Mute:          ctx.Bool("mute"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.Mute {
		c.Notifications.Sound = false
	}

	if opts.Cmd != "" {
		c.Notifications.Cmd = opts.Cmd
	}

	if opts.Sort != "" {
		c.List.Sort = opts.Sort
	}
}
