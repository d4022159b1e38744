// Package events provides small notification streams used to wire sheet
// lifecycle signals between collaborators.
//
// A Stream is a multi-subscriber broadcast channel with explicit
// registration: Subscribe returns a cancel function, SubscribeFirst
// detaches itself after the first matching event. Streams that represent
// one-shot lifecycle notifications (opened, dismissed, detached) emit a
// single value and then complete; subscribing after completion yields no
// further notifications.
package events

import (
	"sync"
	"sync/atomic"

	"github.com/nextcore/sheetkit/pkg/errors"
)

// Stream broadcasts values of type T to its subscribers.
// The zero value is not usable; create streams with NewStream.
// All methods are safe for concurrent use.
type Stream[T any] struct {
	mu   sync.Mutex
	subs []*subscription[T]
	done bool
}

// NewStream creates an empty, open stream.
func NewStream[T any]() *Stream[T] {
	return &Stream[T]{}
}

// subscription is a single registered handler.
type subscription[T any] struct {
	fn       func(T)
	pred     func(T) bool
	first    bool
	canceled atomic.Bool
	stream   *Stream[T]
}

func (s *subscription[T]) cancel() {
	if s.canceled.CompareAndSwap(false, true) {
		s.stream.remove(s)
	}
}

// Subscribe registers fn for every subsequent event.
// The returned cancel function detaches the subscription; it is safe to
// call more than once and after the stream has completed.
// Subscribing to a completed stream is a no-op.
func (s *Stream[T]) Subscribe(fn func(T)) (cancel func()) {
	return s.add(fn, nil, false)
}

// SubscribeFirst registers fn for the first event matching pred, then
// detaches itself before running fn. A nil pred matches every event.
// The handler runs at most once even if the stream emits re-entrantly
// from inside the handler.
func (s *Stream[T]) SubscribeFirst(pred func(T) bool, fn func(T)) (cancel func()) {
	return s.add(fn, pred, true)
}

func (s *Stream[T]) add(fn func(T), pred func(T) bool, first bool) func() {
	if fn == nil {
		return func() {}
	}
	sub := &subscription[T]{fn: fn, pred: pred, first: first, stream: s}
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		sub.canceled.Store(true)
		return func() {}
	}
	s.subs = append(s.subs, sub)
	s.mu.Unlock()
	return sub.cancel
}

func (s *Stream[T]) remove(sub *subscription[T]) {
	s.mu.Lock()
	for i, candidate := range s.subs {
		if candidate == sub {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
}

// Emit delivers value to all current subscribers.
// Emitting on a completed stream is a no-op. Panics inside subscriber
// callbacks are recovered and reported; they never propagate to the
// emitter or prevent delivery to remaining subscribers.
func (s *Stream[T]) Emit(value T) {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	// Snapshot so handlers can subscribe/cancel re-entrantly.
	subs := make([]*subscription[T], len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		s.deliver(sub, value)
	}
}

func (s *Stream[T]) deliver(sub *subscription[T], value T) {
	if sub.canceled.Load() {
		return
	}
	if sub.first {
		if sub.pred != nil && !sub.pred(value) {
			return
		}
		// Detach before running so a re-entrant Emit cannot fire the
		// handler a second time.
		if !sub.canceled.CompareAndSwap(false, true) {
			return
		}
		s.remove(sub)
	}
	defer errors.Recover("events.Stream.Emit")
	sub.fn(value)
}

// Complete marks the stream done and detaches all subscribers.
// Further Emit and Subscribe calls are no-ops.
func (s *Stream[T]) Complete() {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	s.done = true
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	for _, sub := range subs {
		sub.canceled.Store(true)
	}
}

// EmitComplete emits a final value and then completes the stream.
// This is the delivery shape of single-value-then-complete channels.
func (s *Stream[T]) EmitComplete(value T) {
	s.Emit(value)
	s.Complete()
}

// Done reports whether the stream has completed.
func (s *Stream[T]) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}
