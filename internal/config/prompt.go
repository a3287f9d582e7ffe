package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
███████╗██╗███╗   ███╗███╗   ███╗███████╗██████╗
██╔════╝██║████╗ ████║████╗ ████║██╔════╝██╔══██╗
███████╗██║██╔████╔██║██╔████╔██║█████╗  ██████╔╝
╚════██║██║██║╚██╔╝██║██║╚██╔╝██║██╔══╝  ██╔══██╗
███████║██║██║ ╚═╝ ██║██║ ╚═╝ ██║███████╗██║  ██║
╚══════╝╚═╝╚═╝     ╚═╝╚═╝     ╚═╝╚══════╝╚═╝  ╚═╝`

// PromptOptions holds the user's responses to the first-run prompts.
type PromptOptions struct {
	Notifications  bool
	Sound          bool
	TwentyFourHour bool
}

// WithPromptConfig returns an Option that asks for the main preferences when
// no config file exists yet. The answers are written to the new config file
// by WithViperConfig, so it must come first.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		c.prompt = &opts

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Notifications: true,
		Sound:         true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Answer the prompts below to configure Simmer for the first time.
Press ENTER to accept the defaults.
Edit the config file with 'simmer edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show a desktop notification when a step is done?").
				Value(&opts.Notifications),
			huh.NewConfirm().
				Title("Ring a bell when a step is done?").
				Value(&opts.Sound),
			huh.NewSelect[bool]().
				Title("Clock format").
				Options(
					huh.NewOption("12 hour", false).Selected(true),
					huh.NewOption("24 hour", true),
				).
				Value(&opts.TwentyFourHour),
		),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	return opts, nil
}
