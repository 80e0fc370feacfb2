package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only show sessions started after this date (e.g. '3 days ago')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output in JSON format",
	}

	summaryFlag = &cli.BoolFlag{
		Name:  "summary",
		Usage: "Aggregate the log per game instead of listing sessions",
	}

	deleteFlag = &cli.IntFlag{
		Name:  "delete",
		Usage: "Delete the session at this position in the log",
		Value: -1,
	}

	clearFlag = &cli.BoolFlag{
		Name:  "clear",
		Usage: "Delete the entire game history",
	}

	editFlag = &cli.BoolFlag{
		Name:    "edit",
		Aliases: []string{"e"},
		Usage:   "Edit the profile interactively",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each game session",
	}
)
