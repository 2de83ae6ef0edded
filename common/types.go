package common

import "errors"

// ErrShutdown is returned from Device.Tick to stop the frame loop without
// reporting a failure, e.g. when the window is closed.
var ErrShutdown = errors.New("shutdown requested")

// Machine is the generic interface to an interpreter core, used by the
// front-end hardware to abstract over it. It exposes exactly the two
// channels the core allows the host: input in, framebuffer out, plus the
// per-frame pacing calls.
type Machine interface {
	// Run executes n instruction steps, stopping at the first fault.
	Run(n int) error
	// TickTimers advances the 60Hz countdown timers by one tick.
	TickTimers()
	// UpdateInput delivers the current 16-key pressed-state bitmap.
	UpdateInput(bitmap uint16)
	// Pixels returns the framebuffer as a flat row-major slice, one byte
	// per pixel, 0 off and 1 on.
	Pixels() []uint8
	// Size returns the fixed framebuffer dimensions.
	Size() (width, height int)
	// Sound reports whether the sound timer is running.
	Sound() bool
}

// Device is the interface to all front-end hardware. Tick is called once
// per frame, after the machine has run its instruction batch and ticked
// its timers.
type Device interface {
	Tick(Machine) error
	Cleanup()
}
