//go:build tracy && cgo && tracy_manual_lifetime

package binding

/*
#cgo CPPFLAGS: -DTRACY_MANUAL_LIFETIME -DTRACY_DELAYED_INIT

extern void ___tracy_startup_profiler( void );
extern void ___tracy_shutdown_profiler( void );
*/
import "C"

// ManualLifetime reports whether the native client requires explicit
// startup and shutdown.
const ManualLifetime = true

// StartupProfiler starts the native client. It must be called exactly once,
// before any other binding call, and from a quiescent process: the native
// library crashes on concurrent startup.
func StartupProfiler() {
	C.___tracy_startup_profiler()
}

// ShutdownProfiler flushes buffered events and stops the native client. It
// blocks until the flush completes, and no binding call may follow it.
func ShutdownProfiler() {
	C.___tracy_shutdown_profiler()
}
