package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"nmeatrack/internal/config"
	"nmeatrack/internal/correct"
	"nmeatrack/internal/track"
)

func runAction(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}

	log.Info().
		Str("primary", cfg.Input.Primary).
		Str("secondary", cfg.Input.Secondary).
		Str("output", cfg.Output.Path).
		Str("format", cfg.Output.Format).
		Msg("nmeatrack starting")

	stats, n, err := runCorrection(cfg, log.Logger)
	if err != nil {
		return err
	}

	log.Info().
		Int("points", n).
		Int("sync_points", stats.SyncPoints).
		Int("raw", stats.Raw).
		Int("offsets_learned", stats.OffsetsLearned).
		Int("corrected", stats.Corrected).
		Int("filled", stats.Filled).
		Int("skipped", stats.Skipped).
		Int("primary_lines", stats.PrimaryLines).
		Int("secondary_lines", stats.SecondaryLines).
		Msg("track written")
	return nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// runCorrection reads both inputs to completion before the output is created,
// so a failed run leaves no output file behind.
func runCorrection(cfg config.Config, logger zerolog.Logger) (correct.Stats, int, error) {
	format, err := cfg.TrackFormat()
	if err != nil {
		return correct.Stats{}, 0, err
	}

	f1, err := os.Open(cfg.Input.Primary)
	if err != nil {
		return correct.Stats{}, 0, &correct.StreamError{Stream: cfg.Input.Primary, Err: err}
	}
	defer f1.Close()

	f2, err := os.Open(cfg.Input.Secondary)
	if err != nil {
		return correct.Stats{}, 0, &correct.StreamError{Stream: cfg.Input.Secondary, Err: err}
	}
	defer f2.Close()

	c := correct.New(
		correct.NewStream(cfg.Input.Primary, f1),
		correct.NewStream(cfg.Input.Secondary, f2),
		correct.Options{
			Talker:     cfg.Input.Talker,
			FillGap:    cfg.Correction.FillGap,
			Hemisphere: cfg.Correction.HemisphereFromFields,
			Logger:     &logger,
		},
	)
	points, err := c.Run()
	if err != nil {
		return c.Stats(), 0, err
	}

	meta := track.Meta{Name: cfg.Output.TrackName}
	if err := track.WriteFile(cfg.Output.Path, format, meta, points); err != nil {
		return c.Stats(), 0, err
	}
	return c.Stats(), len(points), nil
}
