//go:build tracy && cgo && tracy_fibers

package binding

/*
#cgo CPPFLAGS: -DTRACY_FIBERS

extern void ___tracy_fiber_enter( const char* fiber );
extern void ___tracy_fiber_leave( void );
*/
import "C"

// Fibers reports whether fiber-aware context attribution is compiled in.
const Fibers = true

// FiberEnter attributes subsequent events on the calling thread to the named
// fiber, until FiberLeave. The name is interned: it must identify the same
// logical fiber across threads.
func FiberEnter(name string) {
	C.___tracy_fiber_enter(intern(name))
}

// FiberLeave restores plain thread attribution on the calling thread.
func FiberLeave() {
	C.___tracy_fiber_leave()
}
