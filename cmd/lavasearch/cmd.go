package main

import "github.com/urfave/cli/v3"

// commonFlags are shared by every subcommand.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file (defaults to ~/.config/lavasearch/config.toml and ./lavasearch.toml)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level (debug, info, warn, error)",
		},
		&cli.StringFlag{
			Name:  "driver",
			Usage: "JSON token reader (go-json, encoding/json)",
		},
		&cli.StringFlag{
			Name:  "match",
			Usage: "Field matching (full, discriminator)",
		},
		&cli.BoolFlag{
			Name:  "strict-load-type",
			Usage: "Reject unknown loadType codes",
		},
		&cli.StringFlag{
			Name:  "duplicate-keys",
			Usage: "Duplicate key policy (ignore, warn, error)",
		},
	}
}

func decodeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "Decode a response and print it",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "path",
			},
		},
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (yaml, json)",
			},
		),
		Action: r.Decode,
	}
}

func checkCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Decode a response and print a one-line summary",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "path",
			},
		},
		Flags:  commonFlags(),
		Action: r.Check,
	}
}

func (r *Runner) register() []*cli.Command {
	return []*cli.Command{decodeCommand(r), checkCommand(r)}
}
