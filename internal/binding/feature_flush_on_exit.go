//go:build tracy && cgo && tracy_flush_on_exit

package binding

// #cgo CPPFLAGS: -DTRACY_NO_EXIT
import "C"
