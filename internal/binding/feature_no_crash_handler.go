//go:build tracy && cgo && tracy_no_crash_handler

package binding

// #cgo CPPFLAGS: -DTRACY_NO_CRASH_HANDLER
import "C"
