package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/simmer/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the simmer app instance.
func Get() *cli.App {
	simmerApp := &cli.App{
		Name: "simmer",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Simmer is a recipe manager and guided cooking timer for the command-line.
		Pick a recipe and it walks you through each step, counting down timed
		steps and moving on by itself when one is done.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "cook",
				Usage:     "Start cooking a recipe or resume the one in progress",
				ArgsUsage: "<recipe>",
				Action:    cookAction,
			},
			{
				Name:  "list",
				Usage: "List saved recipes",
				Flags: []cli.Flag{
					sinceFlag,
					favoritesFlag,
					difficultyFlag,
					jsonFlag,
				},
				Action: listAction,
			},
			{
				Name:      "show",
				Usage:     "Print the ingredients and steps of a recipe",
				ArgsUsage: "<recipe>",
				Flags:     []cli.Flag{jsonFlag},
				Action:    showAction,
			},
			{
				Name:   "add",
				Usage:  "Add one or more recipes from a YAML or JSON file",
				Flags:  []cli.Flag{fileFlag},
				Action: addAction,
			},
			{
				Name:   "new",
				Usage:  "Write a new recipe interactively",
				Action: newAction,
			},
			{
				Name:      "edit",
				Usage:     "Replace a recipe with the contents of a YAML or JSON file",
				ArgsUsage: "<recipe>",
				Flags:     []cli.Flag{fileFlag},
				Action:    editAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete a recipe",
				ArgsUsage: "<recipe>",
				Flags:     []cli.Flag{yesFlag},
				Action:    deleteAction,
			},
			{
				Name:      "favorite",
				Aliases:   []string{"fav"},
				Usage:     "Add a recipe to or remove it from your favourites",
				ArgsUsage: "<recipe>",
				Action:    favoriteAction,
			},
			{
				Name:   "export",
				Usage:  "Print every recipe as JSON, ready for 'simmer add --file'",
				Action: exportAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the recipe being cooked",
				Action: statusAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			sortFlag,
			disableNotificationFlag,
			muteFlag,
			cmdFlag,
			noColorFlag,
			debugFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return simmerApp
}
