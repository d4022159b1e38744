package sheet

import (
	"image/color"
	"sync"
	"time"

	"github.com/nextcore/sheetkit/pkg/overlay"
)

// Option configures a sheet shown via Show.
type Option func(*Config)

// WithDisableClose suppresses user-initiated dismissal.
func WithDisableClose(disable bool) Option {
	return func(cfg *Config) {
		cfg.DisableClose = disable
	}
}

// WithBackdropDismiss sets whether backdrop taps can dismiss the sheet.
func WithBackdropDismiss(enabled bool) Option {
	return func(cfg *Config) {
		cfg.BackdropDismiss = enabled
	}
}

// WithEnterDuration sets the enter transition duration.
func WithEnterDuration(d time.Duration) Option {
	return func(cfg *Config) {
		cfg.EnterDuration = d
	}
}

// WithExitDuration sets the exit transition duration.
func WithExitDuration(d time.Duration) Option {
	return func(cfg *Config) {
		cfg.ExitDuration = d
	}
}

// WithBarrierColor sets the backdrop color.
func WithBarrierColor(c color.RGBA) Option {
	return func(cfg *Config) {
		cfg.BarrierColor = c
	}
}

// WithConfig replaces the whole configuration, e.g. with one loaded from
// sheet.yaml. Later options still apply on top.
func WithConfig(cfg Config) Option {
	return func(dst *Config) {
		*dst = cfg
	}
}

// Show presents a sheet on the host: it attaches an overlay surface,
// builds the container, wires a DismissController, and starts the enter
// transition.
func Show(host *overlay.Host, opts ...Option) *DismissController {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg = normalize(cfg)

	surface := host.Attach(overlay.SurfaceOptions{
		BarrierColor:       cfg.BarrierColor,
		BarrierDismissible: cfg.BackdropDismiss,
	})
	container := NewContainer(cfg)
	ctrl := NewDismissController(container, surface)
	container.Enter()
	return ctrl
}

// ShowAndWait is Show plus a buffered result channel (size 1) that
// receives the dismissal result and is then closed. Callers can safely
// read once:
//
//	ctrl, done := sheet.ShowAndWait(host)
//	...
//	result := <-done
func ShowAndWait(host *overlay.Host, opts ...Option) (*DismissController, <-chan any) {
	ctrl := Show(host, opts...)

	done := make(chan any, 1)
	var once sync.Once
	ctrl.AfterDismissed().Subscribe(func(result any) {
		// AfterDismissed emits at most once; the once is belt and braces
		// against a surface that misbehaves.
		once.Do(func() {
			done <- result
			close(done)
		})
	})
	return ctrl, done
}
