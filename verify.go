package tracy

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
)

// MisorderPolicy decides what happens when a zone is closed out of LIFO
// order relative to its siblings on the same execution context, or on a
// different execution context than it was opened on. Such a close is a
// caller bug: the native library cannot detect it and renders a corrupted
// call tree.
type MisorderPolicy int32

const (
	// MisorderIgnore performs no checking. Zone open and close stay a
	// single native call each; the corrupted view is the caller's problem.
	MisorderIgnore MisorderPolicy = iota
	// MisorderLog tracks open zones per execution context and logs a
	// diagnostic on violation.
	MisorderLog
	// MisorderPanic tracks open zones per execution context and panics on
	// violation.
	MisorderPanic
)

// SetMisorderPolicy sets the process-wide misorder policy. The default is
// MisorderIgnore, or MisorderPanic when built with the tracy_verify tag.
// Tracking costs a mutex acquisition and a map lookup per zone open and
// close; leave checking for debug builds.
func SetMisorderPolicy(p MisorderPolicy) {
	atomic.StoreInt32((*int32)(&misorderPolicy), int32(p))
}

// SetLogger sets the logger used by the MisorderLog policy. The default is
// hclog.Default().
func SetLogger(logger hclog.Logger) {
	if logger == nil {
		return
	}
	misorderLogger.Store(&logger)
}

var (
	misorderPolicy = defaultMisorderPolicy
	misorderLogger atomic.Pointer[hclog.Logger]
	zoneSeq        uint64
)

func getMisorderPolicy() MisorderPolicy {
	return MisorderPolicy(atomic.LoadInt32((*int32)(&misorderPolicy)))
}

// verifyState tracks, per execution context, the stack of zones opened and
// not yet closed. An execution context is a goroutine, or the fiber the
// goroutine's thread has most recently entered. Only consulted when the
// policy is not MisorderIgnore.
var verifyState = struct {
	mtx    sync.Mutex
	stacks map[string][]*Zone
	fibers map[uint64]string
}{
	stacks: map[string][]*Zone{},
	fibers: map[uint64]string{},
}

func verifyOpen(z *Zone) {
	if getMisorderPolicy() == MisorderIgnore {
		return
	}
	z.vseq = atomic.AddUint64(&zoneSeq, 1)

	verifyState.mtx.Lock()
	defer verifyState.mtx.Unlock()

	key := contextKeyLocked()
	z.vkey = key
	verifyState.stacks[key] = append(verifyState.stacks[key], z)
}

func verifyClose(z *Zone) {
	if z.vkey == "" {
		return
	}

	verifyState.mtx.Lock()
	defer verifyState.mtx.Unlock()

	key := contextKeyLocked()
	if key != z.vkey {
		misordered(fmt.Sprintf("zone %q (#%d) closed on %s, opened on %s", z.name, z.vseq, key, z.vkey))
	}

	stack := verifyState.stacks[z.vkey]
	if n := len(stack); n > 0 && stack[n-1] == z {
		stack = stack[:n-1]
	} else {
		var expected string
		if n > 0 {
			expected = fmt.Sprintf("%q (#%d)", stack[n-1].name, stack[n-1].vseq)
		} else {
			expected = "none"
		}
		misordered(fmt.Sprintf("zone %q (#%d) closed out of LIFO order on %s, expected %s", z.name, z.vseq, z.vkey, expected))
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i] == z {
				stack = append(stack[:i], stack[i+1:]...)
				break
			}
		}
	}

	if len(stack) == 0 {
		delete(verifyState.stacks, z.vkey)
	} else {
		verifyState.stacks[z.vkey] = stack
	}
}

func verifyFiberEnter(name string) {
	if getMisorderPolicy() == MisorderIgnore {
		return
	}
	verifyState.mtx.Lock()
	defer verifyState.mtx.Unlock()
	verifyState.fibers[goid()] = name
}

func verifyFiberLeave() {
	if getMisorderPolicy() == MisorderIgnore {
		return
	}
	verifyState.mtx.Lock()
	defer verifyState.mtx.Unlock()
	delete(verifyState.fibers, goid())
}

func contextKeyLocked() string {
	id := goid()
	if fiber, ok := verifyState.fibers[id]; ok {
		return "fiber " + fiber
	}
	return fmt.Sprintf("goroutine %d", id)
}

func misordered(detail string) {
	switch getMisorderPolicy() {
	case MisorderPanic:
		panic("tracy: " + detail)
	case MisorderLog:
		logger := hclog.Default()
		if p := misorderLogger.Load(); p != nil {
			logger = *p
		}
		logger.Error("misordered zone close", "detail", detail)
	}
}

// goid extracts the current goroutine's ID from the stack header. That
// header is the only portable way to identify the goroutine, and the parse
// runs only under an active misorder policy.
func goid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	const prefix = len("goroutine ")
	var id uint64
	for _, c := range buf[prefix:n] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
