package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"aprsdecode/locator"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
)

// DefaultPath is used when no --config flag is given.
const DefaultPath = "config.toml"

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTUI  = "tui"
)

// Config holds all application configuration
type Config struct {
	Station StationConfig `toml:"station"`
	Map     MapConfig     `toml:"map"`
	Input   InputConfig   `toml:"input"`
	Output  OutputConfig  `toml:"output"`
	Log     LogConfig     `toml:"log"`
}

// StationConfig holds settings specific to the user's station
type StationConfig struct {
	Callsign   string `toml:"callsign"`
	GridSquare string `toml:"gridsquare"`
}

// MapConfig holds map-specific settings
type MapConfig struct {
	DefaultZoom float64 `toml:"defaultzoom"`
	Shapefile   string  `toml:"shapefile"`
}

// InputConfig says where packet text is read from. "-" is stdin.
type InputConfig struct {
	Path string `toml:"path"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Format          string `toml:"format"`
	TimestampFormat string `toml:"timestamp_format"` // strftime pattern
	All             bool   `toml:"all"`              // also render packets with bad headers
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the configuration used for anything the file leaves out.
func Default() Config {
	return Config{
		Map: MapConfig{
			DefaultZoom: 1.0,
		},
		Input: InputConfig{
			Path: "-",
		},
		Output: OutputConfig{
			Format:          FormatText,
			TimestampFormat: "%H:%M:%S",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration from path on top of Default. A missing file at
// DefaultPath is not an error; a missing file anywhere else is.
func Load(path string) (Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
			return conf, nil
		}
		return conf, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("parse config %s: %w", path, err)
	}

	return conf, nil
}

// Validate checks values that would otherwise fail later, far from the file.
func (c Config) Validate() error {
	switch strings.ToLower(c.Output.Format) {
	case FormatText, FormatJSON, FormatTUI:
	default:
		return fmt.Errorf("unknown output format: %q", c.Output.Format)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}

	if _, err := strftime.New(c.Output.TimestampFormat); err != nil {
		return fmt.Errorf("invalid timestamp format %q: %w", c.Output.TimestampFormat, err)
	}

	if c.Station.GridSquare != "" {
		if _, _, err := locator.GridSquareToLatLon(c.Station.GridSquare); err != nil {
			return fmt.Errorf("station gridsquare: %w", err)
		}
	}

	if c.Map.DefaultZoom < 1.0 {
		return fmt.Errorf("map defaultzoom must be >= 1, got %g", c.Map.DefaultZoom)
	}

	return nil
}

// Home returns the station position from the gridsquare, if configured.
func (c Config) Home() (lat, lon float64, ok bool) {
	if c.Station.GridSquare == "" {
		return 0, 0, false
	}
	lon, lat, err := locator.GridSquareToLatLon(c.Station.GridSquare)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}
