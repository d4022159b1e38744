package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nextcore/sheetkit/pkg/sheet"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sheet.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write sheet.yaml: %v", err)
	}
	return dir
}

func TestLoadOptional_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("Missing sheet.yaml should not error: %v", err)
	}
	if cfg != sheet.DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadOptional_FullFile(t *testing.T) {
	dir := writeConfig(t, `
sheet:
  disable_close: true
  backdrop_dismiss: false
  enter_duration: 300ms
  exit_duration: 150ms
  barrier_color: navy
`)

	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional failed: %v", err)
	}

	if !cfg.DisableClose {
		t.Error("Expected disable_close true")
	}
	if cfg.BackdropDismiss {
		t.Error("Expected backdrop_dismiss false")
	}
	if cfg.EnterDuration != 300*time.Millisecond {
		t.Errorf("Expected enter 300ms, got %v", cfg.EnterDuration)
	}
	if cfg.ExitDuration != 150*time.Millisecond {
		t.Errorf("Expected exit 150ms, got %v", cfg.ExitDuration)
	}
	// navy is (0, 0, 128); the default barrier alpha is preserved.
	if cfg.BarrierColor.R != 0 || cfg.BarrierColor.G != 0 || cfg.BarrierColor.B != 128 {
		t.Errorf("Expected navy RGB, got %+v", cfg.BarrierColor)
	}
	if cfg.BarrierColor.A != sheet.DefaultConfig().BarrierColor.A {
		t.Errorf("Named colors should keep the default barrier alpha, got %d", cfg.BarrierColor.A)
	}
}

func TestLoadOptional_PartialFileKeepsOtherDefaults(t *testing.T) {
	dir := writeConfig(t, `
sheet:
  exit_duration: 1s
`)

	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional failed: %v", err)
	}

	if cfg.ExitDuration != time.Second {
		t.Errorf("Expected exit 1s, got %v", cfg.ExitDuration)
	}
	if cfg.EnterDuration != sheet.DefaultEnterDuration {
		t.Errorf("Unset enter_duration should keep the default, got %v", cfg.EnterDuration)
	}
	if !cfg.BackdropDismiss {
		t.Error("Unset backdrop_dismiss should keep the default (true)")
	}
}

func TestLoadOptional_UnknownColor(t *testing.T) {
	dir := writeConfig(t, `
sheet:
  barrier_color: notacolor
`)

	_, err := LoadOptional(dir)
	if !errors.Is(err, ErrUnknownColor) {
		t.Errorf("Expected ErrUnknownColor, got %v", err)
	}
}

func TestLoadOptional_InvalidDuration(t *testing.T) {
	dir := writeConfig(t, `
sheet:
  enter_duration: fast
`)

	if _, err := LoadOptional(dir); err == nil {
		t.Error("Expected an error for an unparseable duration")
	}

	dir = writeConfig(t, `
sheet:
  exit_duration: -200ms
`)

	if _, err := LoadOptional(dir); err == nil {
		t.Error("Expected an error for a negative duration")
	}
}

func TestLoadOptional_MalformedYAML(t *testing.T) {
	dir := writeConfig(t, "sheet: [not: a: mapping")

	if _, err := LoadOptional(dir); err == nil {
		t.Error("Expected a parse error for malformed yaml")
	}
}
