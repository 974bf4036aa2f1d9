//go:build tracy && cgo && tracy_no_system_tracing

package binding

// #cgo CPPFLAGS: -DTRACY_NO_SYSTEM_TRACING
import "C"
