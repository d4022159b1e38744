package sheet

import (
	"image/color"
	"time"
)

// DisposeGracePeriod is added to the exit animation's duration when
// arming the fallback disposal timer. If the animation-completion signal
// never arrives, the surface is disposed once this much extra time has
// passed.
const DisposeGracePeriod = 100 * time.Millisecond

// Default transition durations, used when a Config leaves them zero.
const (
	DefaultEnterDuration = 250 * time.Millisecond
	DefaultExitDuration  = 200 * time.Millisecond
)

// Config carries the presentation settings for one sheet.
type Config struct {
	// DisableClose suppresses user-initiated dismissal (backdrop tap,
	// Escape). Programmatic Dismiss is unaffected. The controller copies
	// this value at construction; flip it later via SetDisableClose.
	DisableClose bool

	// BackdropDismiss controls whether backdrop taps are delivered at
	// all. When false the backdrop absorbs taps silently.
	BackdropDismiss bool

	// EnterDuration and ExitDuration are the transition run times.
	EnterDuration time.Duration
	ExitDuration  time.Duration

	// BarrierColor is the backdrop color.
	BarrierColor color.RGBA
}

// DefaultConfig returns the built-in presentation defaults.
func DefaultConfig() Config {
	return Config{
		BackdropDismiss: true,
		EnterDuration:   DefaultEnterDuration,
		ExitDuration:    DefaultExitDuration,
		BarrierColor:    color.RGBA{A: 0x8a},
	}
}

// normalize fills zero durations with defaults.
func normalize(cfg Config) Config {
	if cfg.EnterDuration <= 0 {
		cfg.EnterDuration = DefaultEnterDuration
	}
	if cfg.ExitDuration <= 0 {
		cfg.ExitDuration = DefaultExitDuration
	}
	return cfg
}
