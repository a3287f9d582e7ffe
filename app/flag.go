package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write verbose logs to the log file",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when a step or recipe is done",
	}

	muteFlag = &cli.BoolFlag{
		Name:    "mute",
		Aliases: []string{"m"},
		Usage:   "Do not ring the bell when a step or recipe is done",
	}

	cmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command when a recipe is ready to serve",
	}

	sortFlag = &cli.StringFlag{
		Name:    "sort",
		Aliases: []string{"o"},
		Usage:   "Order recipes by recent, oldest, title, or duration",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include recipes added after this date (e.g. '2 weeks ago')",
	}

	favoritesFlag = &cli.BoolFlag{
		Name:    "favorites",
		Aliases: []string{"f"},
		Usage:   "Only include favourite recipes",
	}

	difficultyFlag = &cli.StringFlag{
		Name:  "difficulty",
		Usage: "Only include recipes of this difficulty (Easy, Medium, or Hard)",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print output as JSON",
	}

	fileFlag = &cli.StringFlag{
		Name:     "file",
		Usage:    "Path to a YAML or JSON recipe file",
		Required: true,
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}
)
