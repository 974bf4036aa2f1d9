//go:build tracy && cgo && tracy_timer_fallback

package binding

// #cgo CPPFLAGS: -DTRACY_TIMER_FALLBACK
import "C"
