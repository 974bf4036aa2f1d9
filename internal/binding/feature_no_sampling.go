//go:build tracy && cgo && tracy_no_sampling

package binding

// #cgo CPPFLAGS: -DTRACY_NO_SAMPLING
import "C"
