// Package app defines the calmind command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"calmind/internal/config"
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

// Get retrieves the calmind app instance.
func Get() *cli.App {
	calmindApp := &cli.App{
		Name: "calmind",
		Usage: `
		Calmind is a cognitive training companion for the command-line. Play
		brain-training mini-games, meditate, listen to relaxation audio, and
		track your progress as you level up.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "play",
				Usage:     "Play a timed brain-training mini-game",
				UsageText: "calmind play [GAME]",
				Action:    playAction,
				Flags: []cli.Flag{
					sessionCmdFlag,
					disableNotificationFlag,
				},
			},
			{
				Name:      "meditate",
				Usage:     "Run a guided meditation exercise",
				UsageText: "calmind meditate [EXERCISE]",
				Action:    meditateAction,
				Flags: []cli.Flag{
					disableNotificationFlag,
				},
			},
			{
				Name:      "relax",
				Usage:     "Play relaxation sounds and guided audio",
				UsageText: "calmind relax [TRACK]",
				Action:    relaxAction,
				Flags: []cli.Flag{
					disableNotificationFlag,
				},
			},
			{
				Name:   "chat",
				Usage:  "Talk to the cognitive companion",
				Action: chatAction,
			},
			{
				Name:   "history",
				Usage:  "Review your past game sessions",
				Action: historyAction,
				Flags: []cli.Flag{
					sinceFlag,
					jsonFlag,
					summaryFlag,
					deleteFlag,
					clearFlag,
				},
			},
			{
				Name:   "profile",
				Usage:  "View or edit your cognitive profile",
				Action: profileAction,
				Flags: []cli.Flag{
					editFlag,
				},
			},
			{
				Name:   "remind",
				Usage:  "Deliver a daily training reminder",
				Action: remindAction,
			},
			{
				Name:   "status",
				Usage:  "Print your level, XP, and streak",
				Action: statusAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return calmindApp
}
