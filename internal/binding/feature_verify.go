//go:build tracy && cgo && tracy_verify

package binding

// #cgo CPPFLAGS: -DTRACY_VERIFY
import "C"
