//go:build tracy && cgo && tracy_no_broadcast

package binding

// #cgo CPPFLAGS: -DTRACY_NO_BROADCAST
import "C"
