//go:build !tracy || !cgo || !tracy_fibers

package binding

// Fibers reports whether fiber-aware context attribution is compiled in.
const Fibers = false

func FiberEnter(name string) {}
func FiberLeave()            {}
