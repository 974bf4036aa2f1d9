//go:build tracy && cgo

package binding

// #include <stdlib.h>
import "C"

import "sync"

// Plot, frame, fiber, and pool names must be handed to the native library as
// null-terminated pointers that stay valid for the process lifetime. The
// intern table copies each distinct name into C memory once and never frees
// it, so callers may pass ordinary Go strings. Unbounded distinct names
// therefore leak by design; that is the caller contract for named series.
var internTable = struct {
	mtx sync.Mutex
	m   map[string]*C.char
}{m: map[string]*C.char{}}

func intern(s string) *C.char {
	internTable.mtx.Lock()
	defer internTable.mtx.Unlock()

	if p, ok := internTable.m[s]; ok {
		return p
	}
	p := C.CString(s)
	internTable.m[s] = p
	return p
}
