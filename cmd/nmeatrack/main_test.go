package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"nmeatrack/internal/config"
	"nmeatrack/internal/correct"
	"nmeatrack/internal/gps"
	"nmeatrack/internal/track"
)

func writeLines(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

func testConfig(dir string) config.Config {
	cfg := config.Default()
	cfg.Input.Primary = filepath.Join(dir, config.DefaultPrimary)
	cfg.Input.Secondary = filepath.Join(dir, config.DefaultSecondary)
	cfg.Output.Path = filepath.Join(dir, config.DefaultOutput)
	return cfg
}

func TestRunCorrection_WritesGPX(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	writeLines(t, dir, config.DefaultPrimary,
		"$GPGSV,1,1,03,01,50,100,40,02,50,100,40,03,50,100,40*7B",
		"$GPRMC,000000,A,1000.0000,N,00000.0000,W,0.0,0.0,010100,,*00",
		"$GPGSV,1,1,02,01,50,100,10,02,50,100,10*7B",
		"$GPRMC,000001,A,5000.0000,N,00000.0000,W,0.0,0.0,010100,,*00",
	)
	writeLines(t, dir, config.DefaultSecondary,
		"$GPRMC,000000,A,0900.0000,N,00000.0000,W,0.0,0.0,010100,,*00",
		"$GPRMC,000001,A,2000.0000,N,00130.0000,W,0.0,0.0,010100,,*00",
	)

	stats, n, err := runCorrection(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("runCorrection() error: %v", err)
	}
	if n != 2 {
		t.Fatalf("points=%d want 2", n)
	}
	if stats.Raw != 1 || stats.Corrected != 1 {
		t.Fatalf("stats=%+v", stats)
	}

	b, err := os.ReadFile(cfg.Output.Path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, `<trkpt lat="21" lon="-1.5">`) {
		t.Fatalf("missing corrected point:\n%s", out)
	}
	if strings.Count(out, "<trkpt ") != 2 {
		t.Fatalf("expected 2 trkpt:\n%s", out)
	}
}

func TestRunCorrection_CSVOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.Output.Format = string(track.FormatCSV)
	cfg.Output.Path = filepath.Join(dir, "out.csv")
	writeLines(t, dir, config.DefaultPrimary, "$GPRMC,0,A,1000.0000,N,00130.0000,W")
	writeLines(t, dir, config.DefaultSecondary, "$GPRMC,0,A,0900.0000,N,00130.0000,W")

	if _, _, err := runCorrection(cfg, zerolog.Nop()); err != nil {
		t.Fatalf("runCorrection() error: %v", err)
	}
	b, err := os.ReadFile(cfg.Output.Path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("seq,lat,lon\n1,10,-1.5")) {
		t.Fatalf("unexpected csv:\n%s", b)
	}
}

func TestRunCorrection_ParseErrorLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	writeLines(t, dir, config.DefaultPrimary, "$GPRMC,0,A,10xx.0000,N,00000.0000,W")
	writeLines(t, dir, config.DefaultSecondary, "$GPRMC,0,A,0900.0000,N,00000.0000,W")

	_, _, err := runCorrection(cfg, zerolog.Nop())
	var pe *gps.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err=%v want *gps.ParseError", err)
	}
	if _, statErr := os.Stat(cfg.Output.Path); !os.IsNotExist(statErr) {
		t.Fatalf("expected no output file, stat err=%v", statErr)
	}
}

func TestRunCorrection_MissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	writeLines(t, dir, config.DefaultPrimary, "$GPRMC,0,A,1000.0000,N,00000.0000,W")

	_, _, err := runCorrection(cfg, zerolog.Nop())
	var se *correct.StreamError
	if !errors.As(err, &se) {
		t.Fatalf("err=%v want *correct.StreamError", err)
	}
	if se.Stream != cfg.Input.Secondary {
		t.Fatalf("stream=%q want %q", se.Stream, cfg.Input.Secondary)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped ErrNotExist: %v", err)
	}
}

func TestRunCorrection_OutputWriteError(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.Output.Path = filepath.Join(dir, "no-such-dir", "out.gpx")
	writeLines(t, dir, config.DefaultPrimary, "$GPRMC,0,A,1000.0000,N,00000.0000,W")
	writeLines(t, dir, config.DefaultSecondary, "$GPRMC,0,A,0900.0000,N,00000.0000,W")

	_, _, err := runCorrection(cfg, zerolog.Nop())
	var we *track.WriteError
	if !errors.As(err, &we) {
		t.Fatalf("err=%v want *track.WriteError", err)
	}
}

func TestApp_RunWithConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	writeLines(t, dir, config.DefaultPrimary, "$GPRMC,0,A,1000.0000,N,00000.0000,W")
	writeLines(t, dir, config.DefaultSecondary, "$GPRMC,0,A,0900.0000,N,00000.0000,W")
	cfgPath := writeLines(t, dir, "cfg.yaml",
		"input:",
		"  primary: "+cfg.Input.Primary,
		"  secondary: "+cfg.Input.Secondary,
		"output:",
		"  path: "+cfg.Output.Path,
	)

	if err := newApp().Run([]string{"nmeatrack", "run", "--config", cfgPath}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if _, err := os.Stat(cfg.Output.Path); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
}

func TestApp_BadConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeLines(t, dir, "cfg.yaml", "output:", "  format: kml")
	err := newApp().Run([]string{"nmeatrack", "--config", cfgPath})
	if err == nil || err.Error() != "output.format must be one of gpx, csv, geojson" {
		t.Fatalf("err=%v", err)
	}
}

func TestRunCorrection_UnknownFormatFailsBeforeReading(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.Output.Format = "kml"

	_, _, err := runCorrection(cfg, zerolog.Nop())
	if err == nil {
		t.Fatalf("expected format error")
	}
	var se *correct.StreamError
	if errors.As(err, &se) {
		t.Fatalf("format must be checked before inputs are opened: %v", err)
	}
}
