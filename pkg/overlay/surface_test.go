package overlay

import (
	"image/color"
	"testing"
)

func dismissibleOpts() SurfaceOptions {
	return SurfaceOptions{
		BarrierColor:       color.RGBA{A: 128},
		BarrierDismissible: true,
	}
}

func TestHost_AttachAndDispose(t *testing.T) {
	h := NewHost()

	s := h.Attach(dismissibleOpts())
	if h.Active() != 1 {
		t.Fatalf("Expected 1 active surface, got %d", h.Active())
	}
	if h.Top() != s {
		t.Error("Attached surface should be topmost")
	}
	if !s.HasBackdrop() {
		t.Error("Surface should attach with its backdrop")
	}

	s.Dispose()

	if h.Active() != 0 {
		t.Errorf("Expected 0 active surfaces after dispose, got %d", h.Active())
	}
	if !s.Detached() {
		t.Error("Surface should report detached after dispose")
	}
}

func TestSurface_DisposeFiresDetachmentOnce(t *testing.T) {
	h := NewHost()
	s := h.Attach(dismissibleOpts())

	detachments := 0
	s.Detachments().Subscribe(func(struct{}) { detachments++ })

	s.Dispose()
	s.Dispose()

	if detachments != 1 {
		t.Errorf("Expected exactly one detachment notification, got %d", detachments)
	}
	if !s.Detachments().Done() {
		t.Error("Detachments stream should complete after firing")
	}
}

func TestSurface_BackdropClickDelivery(t *testing.T) {
	h := NewHost()
	s := h.Attach(dismissibleOpts())

	clicks := 0
	s.BackdropClick().Subscribe(func(*PointerEvent) { clicks++ })

	s.DispatchBackdropClick(&PointerEvent{X: 10, Y: 20})
	if clicks != 1 {
		t.Fatalf("Expected click delivery, got %d", clicks)
	}

	// After the backdrop detaches, clicks are dropped.
	s.DetachBackdrop()
	s.DispatchBackdropClick(&PointerEvent{})
	if clicks != 1 {
		t.Errorf("Expected no delivery after DetachBackdrop, got %d", clicks)
	}
}

func TestSurface_NonDismissibleBarrierAbsorbsClicks(t *testing.T) {
	h := NewHost()
	s := h.Attach(SurfaceOptions{BarrierDismissible: false})

	clicks := 0
	s.BackdropClick().Subscribe(func(*PointerEvent) { clicks++ })

	s.DispatchBackdropClick(&PointerEvent{})

	if clicks != 0 {
		t.Errorf("Non-dismissible barrier must absorb taps, got %d deliveries", clicks)
	}
}

func TestSurface_KeyDeliveryStopsAfterDispose(t *testing.T) {
	h := NewHost()
	s := h.Attach(dismissibleOpts())

	keys := 0
	s.KeydownEvents().Subscribe(func(*KeyEvent) { keys++ })

	s.DispatchKey(&KeyEvent{Key: KeyEscape})
	s.Dispose()
	s.DispatchKey(&KeyEvent{Key: KeyEscape})

	if keys != 1 {
		t.Errorf("Expected 1 key delivery, got %d", keys)
	}
}

func TestHost_DispatchKeyRoutesToTop(t *testing.T) {
	h := NewHost()
	bottom := h.Attach(dismissibleOpts())
	top := h.Attach(dismissibleOpts())

	var bottomKeys, topKeys int
	bottom.KeydownEvents().Subscribe(func(*KeyEvent) { bottomKeys++ })
	top.KeydownEvents().Subscribe(func(*KeyEvent) { topKeys++ })

	h.DispatchKey(&KeyEvent{Key: KeyEnter})
	if topKeys != 1 || bottomKeys != 0 {
		t.Errorf("Key should reach only the top surface, got top=%d bottom=%d", topKeys, bottomKeys)
	}

	top.Dispose()
	h.DispatchKey(&KeyEvent{Key: KeyEnter})
	if bottomKeys != 1 {
		t.Errorf("After top disposes, keys should reach the next surface, got %d", bottomKeys)
	}

	bottom.Dispose()
	h.DispatchKey(&KeyEvent{Key: KeyEnter}) // no surface - must not panic
}

func TestKeyEvent_Modifiers(t *testing.T) {
	plain := &KeyEvent{Key: KeyEscape}
	if plain.HasModifier() {
		t.Error("Unmodified key should report no modifier")
	}

	shifted := &KeyEvent{Key: KeyEscape, Shift: true}
	if !shifted.HasModifier() {
		t.Error("Shift+Escape should report a modifier")
	}

	if plain.Handled() {
		t.Error("Fresh event should not be handled")
	}
	plain.MarkHandled()
	if !plain.Handled() {
		t.Error("MarkHandled should set handled")
	}
}
