package animation

import "time"

// Scheduler runs a function after a delay. The default implementation
// uses time.AfterFunc. Tests can inject a fake scheduler via SetScheduler
// to control delayed work deterministically.
type Scheduler interface {
	// AfterFunc schedules fn to run once after d. The returned cancel
	// function stops the pending run; canceling is a best-effort race
	// against firing, and canceling after the fact is a no-op.
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

// realScheduler uses the runtime timer.
type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, fn func()) func() {
	timer := time.AfterFunc(d, fn)
	return func() { timer.Stop() }
}

// scheduler is the package-level delayed-work source, replaceable for
// testing.
var scheduler Scheduler = realScheduler{}

// SetScheduler replaces the scheduler. Returns the previous scheduler so
// callers can restore it during cleanup. Pass nil to restore the default.
func SetScheduler(s Scheduler) Scheduler {
	prev := scheduler
	if s == nil {
		s = realScheduler{}
	}
	scheduler = s
	return prev
}

// After schedules fn on the active scheduler.
func After(d time.Duration, fn func()) (cancel func()) {
	return scheduler.AfterFunc(d, fn)
}
