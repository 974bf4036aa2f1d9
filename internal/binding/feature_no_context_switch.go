//go:build tracy && cgo && tracy_no_context_switch

package binding

// #cgo CPPFLAGS: -DTRACY_NO_CONTEXT_SWITCH
import "C"
