//go:build tracy && cgo && tracy_delayed_init

package binding

// #cgo CPPFLAGS: -DTRACY_DELAYED_INIT
import "C"
