package animation

import (
	"sync"
	"time"

	"github.com/nextcore/sheetkit/pkg/events"
)

// Transition drives a sheet's enter/exit runs and publishes PhaseEvents.
//
// Forward begins an enter run (toward StateVisible), Reverse an exit run
// (toward StateHidden). Each run emits start immediately and done after
// the run's duration, via the active [Scheduler]. Starting a new run
// cancels the pending done event of the previous one.
type Transition struct {
	mu      sync.Mutex
	enter   time.Duration
	exit    time.Duration
	stream  *events.Stream[PhaseEvent]
	cancel  func()
	target  SheetState
	running bool
}

// NewTransition creates a transition with the given run durations.
func NewTransition(enter, exit time.Duration) *Transition {
	return &Transition{
		enter:  enter,
		exit:   exit,
		target: StateHidden,
		stream: events.NewStream[PhaseEvent](),
	}
}

// Events returns the phase event stream.
func (t *Transition) Events() *events.Stream[PhaseEvent] {
	return t.stream
}

// Forward runs the enter transition toward StateVisible.
func (t *Transition) Forward() {
	t.run(StateVisible, t.enter)
}

// Reverse runs the exit transition toward StateHidden.
func (t *Transition) Reverse() {
	t.run(StateHidden, t.exit)
}

func (t *Transition) run(to SheetState, d time.Duration) {
	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.target = to
	t.running = true
	t.mu.Unlock()

	t.stream.Emit(PhaseEvent{Phase: PhaseStart, To: to, Duration: d})

	cancel := After(d, func() {
		t.mu.Lock()
		t.running = false
		t.cancel = nil
		t.mu.Unlock()
		t.stream.Emit(PhaseEvent{Phase: PhaseDone, To: to, Duration: d})
	})

	t.mu.Lock()
	if t.running && t.target == to {
		t.cancel = cancel
	}
	t.mu.Unlock()
}

// Stop cancels the pending done event of the current run, if any.
// The done event for that run will never fire. This is what a container
// torn down mid-animation looks like to listeners.
func (t *Transition) Stop() {
	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.running = false
	t.mu.Unlock()
}

// IsAnimating reports whether a run is in progress.
func (t *Transition) IsAnimating() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Target returns the state the most recent run moved toward.
func (t *Transition) Target() SheetState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.target
}
