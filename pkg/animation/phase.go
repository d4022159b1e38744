// Package animation provides the transition primitives behind sheet
// presentation: phase events describing enter/exit progress and a
// scheduler seam for all delayed work.
//
// A sheet transition moves between two resting states:
//
//	          Forward()
//	Hidden ──────────────► Visible
//	   ▲                      │
//	   │      Reverse()       │
//	   └──────────────────────┘
//
// Each run publishes a start event immediately and a done event once the
// transition's duration has elapsed. The done event is what lifecycle
// code keys teardown on; Stop cancels a pending done event, which models
// a container destroyed mid-animation.
package animation

import (
	"fmt"
	"time"
)

// Phase identifies where in a transition run an event was emitted.
type Phase int

const (
	// PhaseStart fires when a transition run begins.
	PhaseStart Phase = iota
	// PhaseDone fires when a transition run completes.
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// SheetState is the resting state a transition run moves toward.
type SheetState int

const (
	// StateVisible means the sheet is (or is becoming) fully presented.
	StateVisible SheetState = iota
	// StateHidden means the sheet is (or is becoming) fully dismissed.
	StateHidden
)

func (s SheetState) String() string {
	switch s {
	case StateVisible:
		return "visible"
	case StateHidden:
		return "hidden"
	default:
		return fmt.Sprintf("SheetState(%d)", int(s))
	}
}

// PhaseEvent describes one phase change of a transition run.
type PhaseEvent struct {
	// Phase is start or done.
	Phase Phase

	// To is the state this run is moving toward.
	To SheetState

	// Duration is the total run time of the transition, so listeners to
	// the start event know how long the run is expected to take.
	Duration time.Duration
}
