package main

import (
	urfavecli "github.com/urfave/cli/v3"
)

// globalFlags returns all flags of the diff-folders command.
// Note: --version is provided automatically by urfave/cli via Command.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Override the UI theme",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringSliceFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   "Override config values (repeatable): --config=df.key=value",
		},
		&urfavecli.StringSliceFlag{
			Name:    "ignore",
			Aliases: []string{"i"},
			Usage:   "Skip entries matching a gitignore-like pattern (repeatable)",
		},
		&urfavecli.BoolFlag{
			Name:  "no-icons",
			Usage: "Use d/f markers instead of Nerd Font icons",
		},
		&urfavecli.BoolFlag{
			Name:  "icons",
			Usage: "Show Nerd Font icons in the list",
		},
	}
}
