// Package config loads optional presentation defaults from sheet.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/nextcore/sheetkit/pkg/sheet"
)

// ErrUnknownColor is returned when barrier_color names no known color.
var ErrUnknownColor = errors.New("unknown barrier color")

// File represents the optional sheet.yaml configuration.
type File struct {
	Sheet Section `yaml:"sheet"`
}

// Section contains the sheet presentation settings. Every field is
// optional; absent fields keep the built-in defaults.
type Section struct {
	DisableClose    *bool  `yaml:"disable_close,omitempty"`
	BackdropDismiss *bool  `yaml:"backdrop_dismiss,omitempty"`
	EnterDuration   string `yaml:"enter_duration,omitempty"`
	ExitDuration    string `yaml:"exit_duration,omitempty"`
	BarrierColor    string `yaml:"barrier_color,omitempty"`
}

// LoadOptional reads sheet.yaml from dir if present and resolves it over
// the built-in defaults. A missing file is not an error.
func LoadOptional(dir string) (sheet.Config, error) {
	cfg := sheet.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, "sheet.yaml"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read sheet.yaml: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return cfg, fmt.Errorf("failed to parse sheet.yaml: %w", err)
	}

	return resolve(cfg, f.Sheet)
}

// resolve applies a parsed section over cfg.
func resolve(cfg sheet.Config, s Section) (sheet.Config, error) {
	if s.DisableClose != nil {
		cfg.DisableClose = *s.DisableClose
	}
	if s.BackdropDismiss != nil {
		cfg.BackdropDismiss = *s.BackdropDismiss
	}

	var err error
	if cfg.EnterDuration, err = parseDuration(s.EnterDuration, "enter_duration", cfg.EnterDuration); err != nil {
		return cfg, err
	}
	if cfg.ExitDuration, err = parseDuration(s.ExitDuration, "exit_duration", cfg.ExitDuration); err != nil {
		return cfg, err
	}

	if name := strings.TrimSpace(s.BarrierColor); name != "" {
		named, ok := colornames.Map[strings.ToLower(name)]
		if !ok {
			return cfg, fmt.Errorf("%w: %q", ErrUnknownColor, name)
		}
		// Named colors are fully opaque; the barrier keeps its default
		// translucency and takes only the RGB channels.
		named.A = cfg.BarrierColor.A
		cfg.BarrierColor = named
	}

	return cfg, nil
}

func parseDuration(raw, field string, fallback time.Duration) (time.Duration, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s %q: %w", field, raw, err)
	}
	if d < 0 {
		return fallback, fmt.Errorf("invalid %s %q: must not be negative", field, raw)
	}
	return d, nil
}
