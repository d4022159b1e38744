// Package sheet presents a modal bottom sheet above application content
// and coordinates its lifecycle: enter/exit animation phases,
// exactly-once disposal of the overlay surface, user-dismiss triggers
// (backdrop tap, Escape), and the afterOpened / afterDismissed
// notification streams.
//
// # Core Components
//
//   - [DismissController]: owns the dismissal and disposal state machine
//     for one presented sheet. Disposal is guaranteed exactly once even
//     when the exit animation's completion signal never arrives: a
//     fallback timer bounds the teardown at the animation duration plus
//     [DisposeGracePeriod].
//
//   - [Container]: the collaborator that renders the sheet and runs its
//     transitions. [SheetContainer] is the built-in implementation backed
//     by [animation.Transition].
//
//   - [Show] / [ShowAndWait]: build the surface and container, wire a
//     controller, and start the enter transition.
//
// # Basic Usage
//
//	host := overlay.NewHost()
//	ctrl := sheet.Show(host, sheet.WithExitDuration(200*time.Millisecond))
//
//	ctrl.AfterDismissed().Subscribe(func(result any) {
//	    // sheet is gone; result is whatever Dismiss was given
//	})
//
//	// Later, from application code or a user gesture:
//	ctrl.Dismiss("saved")
//
// The lifecycle runs CREATED, OPENING, OPEN, DISMISSING, DISPOSED.
// AfterOpened fires on the first done/visible animation event.
// AfterDismissed fires only once the surface has actually detached, not
// when the close animation ends, so observers never see a dismissal
// reported while the overlay is still on screen.
package sheet
