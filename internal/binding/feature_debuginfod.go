//go:build tracy && cgo && tracy_debuginfod

package binding

// #cgo CPPFLAGS: -DTRACY_DEBUGINFOD
// #cgo LDFLAGS: -ldebuginfod
import "C"
