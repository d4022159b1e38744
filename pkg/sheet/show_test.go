package sheet

import (
	"testing"
	"time"

	"github.com/nextcore/sheetkit/pkg/overlay"
)

func TestShow_OpenThenBackdropDismiss(t *testing.T) {
	fs := withFakeScheduler(t)
	host := overlay.NewHost()

	ctrl := Show(host,
		WithEnterDuration(100*time.Millisecond),
		WithExitDuration(80*time.Millisecond),
	)

	opened := 0
	ctrl.AfterOpened().Subscribe(func(struct{}) { opened++ })

	var result any = "sentinel"
	dismissed := 0
	ctrl.AfterDismissed().Subscribe(func(v any) { result = v; dismissed++ })

	if host.Active() != 1 {
		t.Fatalf("Show should attach one surface, got %d", host.Active())
	}

	fs.Advance(100 * time.Millisecond)
	if opened != 1 {
		t.Fatalf("Expected AfterOpened after the enter run, got %d", opened)
	}

	surface := host.Top()
	surface.DispatchBackdropClick(&overlay.PointerEvent{})

	if surface.HasBackdrop() {
		t.Error("Backdrop should detach when the exit run starts")
	}

	fs.Advance(80 * time.Millisecond)

	if dismissed != 1 || result != nil {
		t.Errorf("Expected one dismissal with nil result, got %d with %v", dismissed, result)
	}
	if host.Active() != 0 {
		t.Errorf("Surface should be gone after dismissal, got %d active", host.Active())
	}
}

func TestShow_EscapeThroughHost(t *testing.T) {
	fs := withFakeScheduler(t)
	host := overlay.NewHost()

	ctrl := Show(host)

	dismissed := 0
	ctrl.AfterDismissed().Subscribe(func(any) { dismissed++ })

	fs.Advance(DefaultEnterDuration)
	host.DispatchKey(&overlay.KeyEvent{Key: overlay.KeyEscape})
	fs.Advance(DefaultExitDuration)

	if dismissed != 1 {
		t.Errorf("Expected Escape to dismiss, got %d", dismissed)
	}
}

func TestShow_DisableCloseOption(t *testing.T) {
	fs := withFakeScheduler(t)
	host := overlay.NewHost()

	Show(host, WithDisableClose(true))

	fs.Advance(DefaultEnterDuration)
	host.DispatchKey(&overlay.KeyEvent{Key: overlay.KeyEscape})
	host.Top().DispatchBackdropClick(&overlay.PointerEvent{})
	fs.Advance(time.Hour)

	if host.Active() != 1 {
		t.Errorf("Sheet with DisableClose must survive user input, got %d active", host.Active())
	}
}

func TestShow_BackdropDismissDisabled(t *testing.T) {
	fs := withFakeScheduler(t)
	host := overlay.NewHost()

	Show(host, WithBackdropDismiss(false))

	fs.Advance(DefaultEnterDuration)
	host.Top().DispatchBackdropClick(&overlay.PointerEvent{})
	fs.Advance(time.Hour)

	if host.Active() != 1 {
		t.Errorf("Non-dismissible backdrop must absorb taps, got %d active", host.Active())
	}
}

func TestShowAndWait_DeliversResult(t *testing.T) {
	fs := withFakeScheduler(t)
	host := overlay.NewHost()

	ctrl, done := ShowAndWait(host)

	fs.Advance(DefaultEnterDuration)
	ctrl.Dismiss("picked")
	fs.Advance(DefaultExitDuration)

	select {
	case result := <-done:
		if result != "picked" {
			t.Errorf("Expected %q, got %v", "picked", result)
		}
	default:
		t.Fatal("Result channel should hold the dismissal result")
	}

	// Channel closes after the single send.
	if _, ok := <-done; ok {
		t.Error("Result channel should be closed after delivering")
	}
}
