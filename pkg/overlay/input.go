// Package overlay provides the overlay surface infrastructure bottom
// sheets are presented on: a host-managed surface with a backdrop, input
// event streams, and a detachment notification fired exactly once when
// the surface leaves the host.
package overlay

// Key identifies a keyboard key by its logical name.
type Key string

const (
	KeyEscape Key = "Escape"
	KeyEnter  Key = "Enter"
	KeyTab    Key = "Tab"
)

// PointerEvent describes a pointer interaction on a surface's backdrop.
type PointerEvent struct {
	// X and Y are the pointer position in surface coordinates.
	X, Y float64

	handled bool
}

// MarkHandled marks the event as consumed so the embedder does not apply
// its default behavior.
func (e *PointerEvent) MarkHandled() { e.handled = true }

// Handled reports whether the event was consumed.
func (e *PointerEvent) Handled() bool { return e.handled }

// KeyEvent describes a key press delivered to a surface.
type KeyEvent struct {
	// Key is the logical key name.
	Key Key

	// Modifier keys held during the press.
	Shift   bool
	Control bool
	Alt     bool
	Meta    bool

	handled bool
}

// MarkHandled marks the event as consumed so the embedder does not apply
// its default behavior.
func (e *KeyEvent) MarkHandled() { e.handled = true }

// Handled reports whether the event was consumed.
func (e *KeyEvent) Handled() bool { return e.handled }

// HasModifier reports whether any modifier key was held.
func (e *KeyEvent) HasModifier() bool {
	return e.Shift || e.Control || e.Alt || e.Meta
}
