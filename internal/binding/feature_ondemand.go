//go:build tracy && cgo && tracy_ondemand

package binding

// #cgo CPPFLAGS: -DTRACY_ON_DEMAND
import "C"
