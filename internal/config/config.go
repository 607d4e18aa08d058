// Package config loads pixelgrid settings from a YAML file, a .env file and
// PIXELGRID_* environment variables, in that order of precedence (last wins).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/example/pixelgrid/internal/grid"
	"github.com/example/pixelgrid/internal/palette"
)

// DefaultPath is the settings file looked up in the working directory.
const DefaultPath = "pixelgrid.yml"

type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

// Settings are startup options. Drawings themselves are never stored.
type Settings struct {
	// Dimension and CellSize are kept as text so they follow the same
	// fallback rules as typed input.
	Dimension string `yaml:"dimension"`
	CellSize  string `yaml:"cell_size"`
	GridLines *bool  `yaml:"grid_lines,omitempty"`
	Color     string `yaml:"color"`

	Window    Window `yaml:"window"`
	Server    Server `yaml:"server"`
	ExportDir string `yaml:"export_dir"`

	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Dimension: strconv.Itoa(grid.DefaultDimension),
		CellSize:  strconv.Itoa(grid.DefaultCellSize),
		Color:     palette.DefaultName,
		Window:    Window{Width: 1280, Height: 720},
		Server:    Server{Addr: ":8080"},
		ExportDir: ".",
		LogLevel:  "info",
	}
}

// Grid returns the startup grid configuration with input fallbacks applied.
func (s Settings) Grid() grid.Config {
	return grid.ConfigFromInputs(s.Dimension, s.CellSize)
}

// ShowGridLines reports the startup grid-line visibility; unset means shown.
func (s Settings) ShowGridLines() bool {
	return s.GridLines == nil || *s.GridLines
}

// Load reads settings from path on top of Default. A missing file is not an
// error. Environment overrides are applied afterwards.
func Load(path string) (Settings, error) {
	s := Default()
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return s, fmt.Errorf("read settings: %w", err)
	default:
		if err := yaml.Unmarshal(b, &s); err != nil {
			return s, fmt.Errorf("parse settings %s: %w", path, err)
		}
	}
	s.applyEnv(os.Getenv)
	return s, nil
}

// LoadEnvFile loads a .env file into the process environment if present.
// Variables already set are not overridden.
func LoadEnvFile(paths ...string) error {
	var existing []string
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

func (s *Settings) applyEnv(getenv func(string) string) {
	set := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	set("PIXELGRID_DIMENSION", &s.Dimension)
	set("PIXELGRID_CELL_SIZE", &s.CellSize)
	set("PIXELGRID_COLOR", &s.Color)
	set("PIXELGRID_ADDR", &s.Server.Addr)
	set("PIXELGRID_EXPORT_DIR", &s.ExportDir)
	set("PIXELGRID_LOG_LEVEL", &s.LogLevel)
	if v, err := strconv.ParseBool(getenv("PIXELGRID_GRID_LINES")); err == nil {
		s.GridLines = &v
	}
	if v, err := strconv.ParseBool(getenv("PIXELGRID_LOG_JSON")); err == nil {
		s.LogJSON = v
	}
}

// Save writes settings as YAML with two-space indentation.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&s); err != nil {
		return err
	}
	return enc.Close()
}
