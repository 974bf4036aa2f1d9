package tracy

import "github.com/tracygo/tracy/internal/binding"

// FiberEnter tells the profiler that the calling thread is now executing
// the named fiber: a cooperatively scheduled unit of work that may migrate
// between threads, such as a goroutine parked and resumed elsewhere, or a
// task on an application-level scheduler. Zones opened between FiberEnter
// and FiberLeave are attributed to the fiber, which keeps per-thread LIFO
// ordering intact when the unit of work suspends with zones still open.
//
// The name identifies the fiber: use the same string on whichever thread
// resumes it. Requires the tracy_fibers build tag; otherwise a no-op.
func (c *Client) FiberEnter(name string) {
	if !c.active() {
		return
	}
	verifyFiberEnter(name)
	binding.FiberEnter(name)
}

// FiberLeave ends the calling thread's association with the fiber it most
// recently entered.
func (c *Client) FiberLeave() {
	if !c.active() {
		return
	}
	verifyFiberLeave()
	binding.FiberLeave()
}

// FibersEnabled reports whether fiber-aware attribution is compiled in.
func FibersEnabled() bool {
	return binding.Fibers
}
