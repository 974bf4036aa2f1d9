//go:build tracy && cgo && tracy_only_ipv4

package binding

// #cgo CPPFLAGS: -DTRACY_ONLY_IPV4
import "C"
