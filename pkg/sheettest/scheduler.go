// Package sheettest provides deterministic test doubles for sheetkit's
// timing seams.
package sheettest

import (
	"sync"
	"time"
)

// FakeScheduler implements animation.Scheduler with virtual time.
// Scheduled functions fire only when Advance moves the virtual clock past
// their deadline, in deadline order. All methods are safe for concurrent
// use, though tests normally drive it from a single goroutine.
type FakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
	seq    int
}

type fakeTimer struct {
	due time.Duration
	seq int
	fn  func()
}

// NewFakeScheduler returns a scheduler with virtual time at zero.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

// AfterFunc schedules fn at now+d in virtual time.
func (s *FakeScheduler) AfterFunc(d time.Duration, fn func()) (cancel func()) {
	s.mu.Lock()
	t := &fakeTimer{due: s.now + d, seq: s.seq, fn: fn}
	s.seq++
	s.timers = append(s.timers, t)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		s.removeLocked(t)
		s.mu.Unlock()
	}
}

// Advance moves virtual time forward by d, firing every timer whose
// deadline falls within the window, in deadline order. Timers scheduled
// by a firing callback are themselves fired if they come due within the
// same window.
func (s *FakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	for {
		t := s.nextDueLocked(target)
		if t == nil {
			break
		}
		s.removeLocked(t)
		s.now = t.due
		fn := t.fn
		s.mu.Unlock()
		fn()
		s.mu.Lock()
	}
	s.now = target
	s.mu.Unlock()
}

// Pending returns the number of scheduled, unfired timers.
func (s *FakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Elapsed returns the current virtual time.
func (s *FakeScheduler) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *FakeScheduler) nextDueLocked(target time.Duration) *fakeTimer {
	var next *fakeTimer
	for _, t := range s.timers {
		if t.due > target {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (s *FakeScheduler) removeLocked(t *fakeTimer) {
	for i, candidate := range s.timers {
		if candidate == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}
