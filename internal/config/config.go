package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"nmeatrack/internal/gps"
	"nmeatrack/internal/track"
)

// Compiled-in names used when no config file is given.
const (
	DefaultPrimary   = "gps_1.dat"
	DefaultSecondary = "gps_2.dat"
	DefaultOutput    = "output.gpx"
	DefaultTrackName = "NMEA Differential Track"
)

type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Correction CorrectionConfig `yaml:"correction"`
}

type InputConfig struct {
	// Primary is the reference receiver's log.
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Talker    string `yaml:"talker"`
}

type OutputConfig struct {
	Path      string `yaml:"path"`
	Format    string `yaml:"format"`
	TrackName string `yaml:"track_name"`
}

type CorrectionConfig struct {
	FillGap              bool `yaml:"fill_gap"`
	HemisphereFromFields bool `yaml:"hemisphere_from_fields"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	cfg := Config{}
	applyDefaults(&cfg)
	return cfg
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	cfg.Input.Primary = strings.TrimSpace(cfg.Input.Primary)
	cfg.Input.Secondary = strings.TrimSpace(cfg.Input.Secondary)
	cfg.Output.Path = strings.TrimSpace(cfg.Output.Path)

	if cfg.Input.Primary == "" {
		cfg.Input.Primary = DefaultPrimary
	}
	if cfg.Input.Secondary == "" {
		cfg.Input.Secondary = DefaultSecondary
	}
	if cfg.Input.Talker == "" {
		cfg.Input.Talker = gps.DefaultTalker
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = DefaultOutput
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = string(track.FormatGPX)
	}
	if cfg.Output.TrackName == "" {
		cfg.Output.TrackName = DefaultTrackName
	}
}

// Validate checks a config after defaults have been applied.
func (c Config) Validate() error {
	primary := filepath.Clean(c.Input.Primary)
	secondary := filepath.Clean(c.Input.Secondary)
	if primary == secondary {
		return fmt.Errorf("input.primary and input.secondary must be different files")
	}
	if len(c.Input.Talker) != 2 || strings.ToUpper(c.Input.Talker) != c.Input.Talker {
		return fmt.Errorf("input.talker must be two upper-case letters")
	}
	for _, r := range c.Input.Talker {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("input.talker must be two upper-case letters")
		}
	}
	if _, err := track.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format must be one of gpx, csv, geojson")
	}
	if out := filepath.Clean(c.Output.Path); out == primary || out == secondary {
		return fmt.Errorf("output.path must not overwrite an input file")
	}
	return nil
}

// TrackFormat returns the parsed output format.
func (c Config) TrackFormat() (track.Format, error) {
	f, err := track.ParseFormat(c.Output.Format)
	if err != nil {
		return "", fmt.Errorf("output.format: %w", err)
	}
	return f, nil
}
