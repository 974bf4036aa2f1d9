package tracy

import (
	"sync"

	"github.com/tracygo/tracy/internal/binding"
)

// Lockable is a mutex whose contention is visible in the profiler: the wait
// before each acquisition and the span of each hold are reported to the
// native library. It satisfies sync.Locker and can stand in for a
// sync.Mutex wherever lock contention is worth seeing on the timeline.
//
// A Lockable announced while the session was inactive, or the zero value,
// behaves as a plain mutex.
type Lockable struct {
	mu  sync.Mutex
	ctx binding.LockCtx
}

// NewLockable announces a named lockable context to the profiler, located
// at the caller, and returns the mutex bound to it. Lockable contexts are
// process-lifetime resources, like plot series: create them once and keep
// them.
func (c *Client) NewLockable(name string) *Lockable {
	if !c.active() {
		return &Lockable{}
	}
	function, file, line := caller(2)
	ctx := binding.LockAnnounce(binding.NewSrcLoc(name, function, file, line, 0))
	binding.LockCustomName(ctx, name)
	return &Lockable{ctx: ctx}
}

// Lock acquires the mutex, reporting the wait to the profiler.
func (l *Lockable) Lock() {
	if l.ctx == nil {
		l.mu.Lock()
		return
	}
	emitAfter := binding.LockBeforeLock(l.ctx)
	l.mu.Lock()
	if emitAfter {
		binding.LockAfterLock(l.ctx)
	}
}

// TryLock attempts to acquire the mutex without blocking, reporting the
// outcome to the profiler.
func (l *Lockable) TryLock() bool {
	acquired := l.mu.TryLock()
	if l.ctx != nil {
		binding.LockAfterTryLock(l.ctx, acquired)
	}
	return acquired
}

// Unlock releases the mutex.
func (l *Lockable) Unlock() {
	l.mu.Unlock()
	if l.ctx != nil {
		binding.LockAfterUnlock(l.ctx)
	}
}
