package sheet

import (
	"sync"

	"github.com/nextcore/sheetkit/pkg/animation"
	"github.com/nextcore/sheetkit/pkg/events"
)

// Container renders the sheet and runs its enter/exit transitions.
// The DismissController consumes it through this interface; tests
// substitute hand-written fakes.
type Container interface {
	// AnimationEvents is the stream of transition phase changes.
	AnimationEvents() *events.Stream[animation.PhaseEvent]

	// Exit begins the exit transition. Idempotent.
	Exit()

	// Config returns the presentation settings the sheet was created with.
	Config() Config
}

// SheetContainer is the built-in Container backed by an
// animation.Transition.
type SheetContainer struct {
	cfg        Config
	transition *animation.Transition

	mu     sync.Mutex
	exited bool
}

// NewContainer creates a container with the given settings.
// Zero durations fall back to the package defaults.
func NewContainer(cfg Config) *SheetContainer {
	cfg = normalize(cfg)
	return &SheetContainer{
		cfg:        cfg,
		transition: animation.NewTransition(cfg.EnterDuration, cfg.ExitDuration),
	}
}

// AnimationEvents returns the transition's phase event stream.
func (c *SheetContainer) AnimationEvents() *events.Stream[animation.PhaseEvent] {
	return c.transition.Events()
}

// Enter begins the enter transition.
func (c *SheetContainer) Enter() {
	c.transition.Forward()
}

// Exit begins the exit transition. Only the first call has effect.
func (c *SheetContainer) Exit() {
	c.mu.Lock()
	if c.exited {
		c.mu.Unlock()
		return
	}
	c.exited = true
	c.mu.Unlock()

	c.transition.Reverse()
}

// Config returns the container's presentation settings.
func (c *SheetContainer) Config() Config {
	return c.cfg
}

// Halt cancels the pending completion of the current transition run.
// The run's done event never fires, which is what the hosting view being
// torn down mid-animation looks like to listeners. The fallback timer in
// DismissController exists for exactly this case.
func (c *SheetContainer) Halt() {
	c.transition.Stop()
}
