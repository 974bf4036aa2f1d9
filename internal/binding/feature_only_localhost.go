//go:build tracy && cgo && tracy_only_localhost

package binding

// #cgo CPPFLAGS: -DTRACY_ONLY_LOCALHOST
import "C"
