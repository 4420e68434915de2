package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	if os.Getenv("NMEATRACK_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("NMEATRACK_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "nmeatrack",
		Usage: "Build a corrected track from two NMEA receiver logs",

		Flags:  []cli.Flag{configFlag()},
		Action: runAction,

		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "correct the configured inputs and write the track (default)",
				Flags:  []cli.Flag{configFlag()},
				Action: runAction,
			},
			{
				Name:      "summary",
				Usage:     "print a sentence inventory for NMEA log files",
				ArgsUsage: "FILE...",
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return fmt.Errorf("summary: at least one file is required")
					}
					for _, path := range c.Args().Slice() {
						if err := printSummary(c.App.Writer, path); err != nil {
							return err
						}
					}
					return nil
				},
			},
		},
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "config",
		Usage: "path to a YAML config; compiled-in file names are used when omitted",
	}
}
