package overlay

import (
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/nextcore/sheetkit/pkg/events"
)

// nextSurfaceID is an atomic counter for unique surface IDs.
var nextSurfaceID uint64

// SurfaceOptions configures a surface at attach time.
type SurfaceOptions struct {
	// BarrierColor is the backdrop color (typically semi-transparent black).
	BarrierColor color.RGBA

	// BarrierDismissible controls whether backdrop taps are delivered on
	// the BackdropClick stream. When false the backdrop still absorbs
	// taps but emits nothing, so nothing downstream can dismiss on them.
	BarrierDismissible bool
}

// Host owns the stack of attached overlay surfaces.
// The zero value is not usable; create hosts with NewHost.
type Host struct {
	mu       sync.Mutex
	surfaces []*Surface
}

// NewHost creates an empty overlay host.
func NewHost() *Host {
	return &Host{}
}

// Attach creates a surface, places it on top of the stack, and returns it.
func (h *Host) Attach(opts SurfaceOptions) *Surface {
	s := &Surface{
		id:          atomic.AddUint64(&nextSurfaceID, 1),
		host:        h,
		opts:        opts,
		backdrop:    true,
		detachments: events.NewStream[struct{}](),
		clicks:      events.NewStream[*PointerEvent](),
		keydowns:    events.NewStream[*KeyEvent](),
	}
	h.mu.Lock()
	h.surfaces = append(h.surfaces, s)
	h.mu.Unlock()
	return s
}

// Active returns the number of attached surfaces.
func (h *Host) Active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.surfaces)
}

// Top returns the topmost attached surface, or nil when none is attached.
func (h *Host) Top() *Surface {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.surfaces) == 0 {
		return nil
	}
	return h.surfaces[len(h.surfaces)-1]
}

// DispatchKey routes a key press to the topmost surface.
// No-op when no surface is attached.
func (h *Host) DispatchKey(ev *KeyEvent) {
	if top := h.Top(); top != nil {
		top.DispatchKey(ev)
	}
}

func (h *Host) detach(s *Surface) {
	h.mu.Lock()
	for i, candidate := range h.surfaces {
		if candidate == s {
			h.surfaces = append(h.surfaces[:i], h.surfaces[i+1:]...)
			break
		}
	}
	h.mu.Unlock()
}

// Surface is one attached overlay: a content area plus a backdrop.
// It reports its removal on the Detachments stream and exposes backdrop
// clicks and key presses as streams for lifecycle code to consume.
type Surface struct {
	id   uint64
	host *Host
	opts SurfaceOptions

	mu       sync.Mutex
	disposed bool
	backdrop bool

	detachments *events.Stream[struct{}]
	clicks      *events.Stream[*PointerEvent]
	keydowns    *events.Stream[*KeyEvent]
}

// ID returns the surface's unique id within the process.
func (s *Surface) ID() uint64 { return s.id }

// Dispose removes the surface (and its backdrop) from the host and fires
// the detachment notification. Safe to call more than once; only the
// first call has effect.
func (s *Surface) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	s.backdrop = false
	s.mu.Unlock()

	s.host.detach(s)
	s.detachments.EmitComplete(struct{}{})
	s.clicks.Complete()
	s.keydowns.Complete()
}

// DetachBackdrop removes only the backdrop, leaving the surface attached.
// The sheet itself keeps animating while the backdrop fades independently.
// Safe to call more than once.
func (s *Surface) DetachBackdrop() {
	s.mu.Lock()
	s.backdrop = false
	s.mu.Unlock()
}

// Detached reports whether the surface has been disposed.
func (s *Surface) Detached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// HasBackdrop reports whether the backdrop is still attached.
func (s *Surface) HasBackdrop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backdrop
}

// BarrierColor returns the backdrop color the surface was attached with.
func (s *Surface) BarrierColor() color.RGBA {
	return s.opts.BarrierColor
}

// Detachments fires once when the surface is removed from the host.
func (s *Surface) Detachments() *events.Stream[struct{}] {
	return s.detachments
}

// BackdropClick emits pointer events that landed on the backdrop.
func (s *Surface) BackdropClick() *events.Stream[*PointerEvent] {
	return s.clicks
}

// KeydownEvents emits key presses delivered while the surface is attached.
func (s *Surface) KeydownEvents() *events.Stream[*KeyEvent] {
	return s.keydowns
}

// DispatchBackdropClick is called by the embedder when a pointer event
// lands on the backdrop. Dropped once the backdrop is detached or the
// surface disposed. A non-dismissible barrier absorbs the tap without
// emitting.
func (s *Surface) DispatchBackdropClick(ev *PointerEvent) {
	s.mu.Lock()
	deliver := !s.disposed && s.backdrop && s.opts.BarrierDismissible
	s.mu.Unlock()
	if !deliver {
		return
	}
	s.clicks.Emit(ev)
}

// DispatchKey is called by the embedder for key presses while this
// surface is topmost. Dropped once the surface is disposed.
func (s *Surface) DispatchKey(ev *KeyEvent) {
	s.mu.Lock()
	deliver := !s.disposed
	s.mu.Unlock()
	if !deliver {
		return
	}
	s.keydowns.Emit(ev)
}
