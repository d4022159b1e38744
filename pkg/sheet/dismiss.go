package sheet

import (
	"fmt"
	"sync"
	"time"

	"github.com/nextcore/sheetkit/pkg/animation"
	"github.com/nextcore/sheetkit/pkg/errors"
	"github.com/nextcore/sheetkit/pkg/events"
	"github.com/nextcore/sheetkit/pkg/overlay"
)

// OverlaySurface is the slice of the overlay surface the controller
// consumes. *overlay.Surface satisfies it.
type OverlaySurface interface {
	// Dispose removes the surface from its host. Expected idempotent.
	Dispose()

	// DetachBackdrop removes only the backdrop; the sheet surface keeps
	// animating while the backdrop goes away independently.
	DetachBackdrop()

	// Detachments fires once when the surface leaves the host.
	Detachments() *events.Stream[struct{}]

	// BackdropClick emits pointer events on the backdrop.
	BackdropClick() *events.Stream[*overlay.PointerEvent]

	// KeydownEvents emits key presses delivered to the surface.
	KeydownEvents() *events.Stream[*overlay.KeyEvent]
}

// handleable lets backdrop clicks and key presses share one dismiss
// handler while each keeps its own registration.
type handleable interface {
	MarkHandled()
}

// DismissController coordinates the dismissal and disposal of one
// presented sheet.
//
// Disposal happens exactly once, via whichever comes first of the exit
// animation's done event or a fallback timer armed at exit-start for the
// animation duration plus DisposeGracePeriod. The animation path cancels
// the timer; a disposed flag guards the timer path in case the race goes
// the other way.
type DismissController struct {
	container Container
	surface   OverlaySurface

	mu             sync.Mutex
	disableClose   bool
	result         any
	dismissCalled  bool
	disposed       bool
	cancelFallback func()
	cancelBackdrop func()
	cancelKeys     func()

	afterOpened    *events.Stream[struct{}]
	afterDismissed *events.Stream[any]
}

// NewDismissController wires a controller to its container and surface.
// All registrations happen here; nothing runs until the collaborators
// start emitting.
func NewDismissController(container Container, surface OverlaySurface) *DismissController {
	c := &DismissController{
		container:      container,
		surface:        surface,
		disableClose:   container.Config().DisableClose,
		afterOpened:    events.NewStream[struct{}](),
		afterDismissed: events.NewStream[any](),
	}

	anim := container.AnimationEvents()

	anim.SubscribeFirst(func(e animation.PhaseEvent) bool {
		return e.Phase == animation.PhaseDone && e.To == animation.StateVisible
	}, func(animation.PhaseEvent) {
		c.afterOpened.EmitComplete(struct{}{})
	})

	anim.SubscribeFirst(func(e animation.PhaseEvent) bool {
		return e.Phase == animation.PhaseDone && e.To == animation.StateHidden
	}, func(animation.PhaseEvent) {
		c.disposeSurface()
	})

	// Dismissal is reported only once the surface has actually left the
	// host, never directly off the close animation.
	surface.Detachments().SubscribeFirst(nil, func(struct{}) {
		c.mu.Lock()
		result := c.result
		c.mu.Unlock()
		c.afterDismissed.EmitComplete(result)
	})

	// Backdrop taps and Escape feed one shared handler through two
	// independent registrations, each with its own cancel.
	c.cancelBackdrop = surface.BackdropClick().Subscribe(func(ev *overlay.PointerEvent) {
		c.userDismiss(ev)
	})
	c.cancelKeys = surface.KeydownEvents().Subscribe(func(ev *overlay.KeyEvent) {
		if ev.Key != overlay.KeyEscape || ev.HasModifier() {
			return
		}
		c.userDismiss(ev)
	})

	return c
}

// Dismiss begins the exit transition, recording result for delivery on
// AfterDismissed. Only the first call has effect; later calls (a second
// programmatic dismiss, a backdrop tap racing it) are no-ops.
func (c *DismissController) Dismiss(result any) {
	c.mu.Lock()
	if c.dismissCalled || c.afterDismissed.Done() {
		c.mu.Unlock()
		return
	}
	c.dismissCalled = true
	c.result = result
	c.mu.Unlock()

	// When the exit run starts, arm the fallback disposal for its
	// duration plus the grace period, and detach the backdrop right away.
	c.container.AnimationEvents().SubscribeFirst(func(e animation.PhaseEvent) bool {
		return e.Phase == animation.PhaseStart
	}, func(e animation.PhaseEvent) {
		c.armFallback(e.Duration + DisposeGracePeriod)
		c.surface.DetachBackdrop()
	})

	c.container.Exit()
}

func (c *DismissController) userDismiss(ev handleable) {
	if c.DisableClose() {
		return
	}
	ev.MarkHandled()
	c.Dismiss(nil)
}

func (c *DismissController) armFallback(d time.Duration) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.cancelFallback = animation.After(d, func() {
		errors.Report(&errors.Error{
			Op:   "sheet.DismissController.fallback",
			Kind: errors.KindTimeout,
			Err:  fmt.Errorf("exit animation completion never arrived, disposing surface after %v", d),
		})
		c.disposeSurface()
	})
	c.mu.Unlock()
}

// disposeSurface is the single funnel for both disposal paths. The first
// caller wins; it cancels the competing fallback timer and detaches the
// input registrations before disposing.
func (c *DismissController) disposeSurface() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	cancelFallback := c.cancelFallback
	cancelBackdrop := c.cancelBackdrop
	cancelKeys := c.cancelKeys
	c.cancelFallback = nil
	c.cancelBackdrop = nil
	c.cancelKeys = nil
	c.mu.Unlock()

	if cancelFallback != nil {
		cancelFallback()
	}
	if cancelBackdrop != nil {
		cancelBackdrop()
	}
	if cancelKeys != nil {
		cancelKeys()
	}
	c.surface.Dispose()
}

// AfterOpened fires once, when the enter animation completes.
// It never fires if the sheet is torn down before opening finishes.
func (c *DismissController) AfterOpened() *events.Stream[struct{}] {
	return c.afterOpened
}

// AfterDismissed fires once, after the surface has detached, carrying
// the result passed to Dismiss (nil when none was given).
func (c *DismissController) AfterDismissed() *events.Stream[any] {
	return c.afterDismissed
}

// BackdropClick exposes the surface's backdrop click stream.
func (c *DismissController) BackdropClick() *events.Stream[*overlay.PointerEvent] {
	return c.surface.BackdropClick()
}

// KeydownEvents exposes the surface's key press stream.
func (c *DismissController) KeydownEvents() *events.Stream[*overlay.KeyEvent] {
	return c.surface.KeydownEvents()
}

// DisableClose reports whether user-initiated dismissal is suppressed.
func (c *DismissController) DisableClose() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disableClose
}

// SetDisableClose overrides the user-dismiss filter at any time.
// It has no effect on programmatic Dismiss.
func (c *DismissController) SetDisableClose(disable bool) {
	c.mu.Lock()
	c.disableClose = disable
	c.mu.Unlock()
}
