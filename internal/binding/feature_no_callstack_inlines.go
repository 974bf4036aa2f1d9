//go:build tracy && cgo && tracy_no_callstack_inlines

package binding

// #cgo CPPFLAGS: -DTRACY_NO_CALLSTACK_INLINES
import "C"
