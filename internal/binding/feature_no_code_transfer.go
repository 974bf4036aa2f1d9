//go:build tracy && cgo && tracy_no_code_transfer

package binding

// #cgo CPPFLAGS: -DTRACY_NO_CODE_TRANSFER
import "C"
