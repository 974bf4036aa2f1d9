//go:build !tracy || !cgo || !tracy_manual_lifetime

package binding

// ManualLifetime reports whether the native client requires explicit
// startup and shutdown.
const ManualLifetime = false

func StartupProfiler()  {}
func ShutdownProfiler() {}
