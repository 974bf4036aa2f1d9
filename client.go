package tracy

import (
	"runtime"
	"sync/atomic"

	"github.com/tracygo/tracy/internal/binding"
)

// Client is a handle on the active profiling session. The zero-size handle
// carries no state of its own: it witnesses that the session was started,
// mirroring the singleton session inside the native library. All methods are
// safe on a nil *Client and degrade to no-ops, so instrumentation never has
// to branch on whether profiling is live.
type Client struct{}

var theClient Client

// The session lifecycle is a small finite state machine around a single
// atomic word. In automatic-lifetime builds the native client starts itself
// before main and the state is pinned to started; in manual-lifetime builds
// Start and Stop drive the transitions below.
//
//	stopped -> starting -> started -> draining -> stopped
const (
	stateStopped uint32 = iota
	stateStarting
	stateStarted
	stateDraining
)

var lifecycle atomic.Uint32

func init() {
	if !binding.ManualLifetime {
		lifecycle.Store(stateStarted)
	}
}

// Start activates the profiling session and returns a handle on it.
//
// In automatic-lifetime builds the native client is already running and
// Start merely hands out the handle; calling it any number of times, from
// any goroutine, is fine. In manual-lifetime builds (build tag
// tracy_manual_lifetime) the first call starts the native client, and
// concurrent callers spin until that startup completes. No profiling
// operation may precede the first Start in those builds: operations invoked
// earlier observe an inactive session and no-op.
//
// If the native client cannot bind its broadcast port the session still
// activates, in a local-only mode. That condition is deliberately not
// surfaced: profiling must never abort or degrade the host application.
func Start() *Client {
	if !binding.ManualLifetime {
		return &theClient
	}
	for {
		switch state := lifecycle.Load(); state {
		case stateStarted:
			return &theClient
		case stateStarting:
			runtime.Gosched()
		case stateStopped:
			if lifecycle.CompareAndSwap(stateStopped, stateStarting) {
				binding.StartupProfiler()
				lifecycle.Store(stateStarted)
				return &theClient
			}
		default:
			// Draining or already stopped for good: a restart is not
			// supported by the native library.
			return nil
		}
	}
}

// Running returns a handle on the session if it is active, and reports
// whether it was. The returned handle is nil, and inert, when the session
// is not active.
func Running() (*Client, bool) {
	if !IsRunning() {
		return nil, false
	}
	return &theClient, true
}

// IsRunning reports whether the profiling session is active. When the
// binding is compiled out entirely it reports true, so that callers never
// need to special-case uninstrumented builds.
func IsRunning() bool {
	if !binding.Enabled {
		return true
	}
	return lifecycle.Load() == stateStarted
}

// Stop deactivates the session. In manual-lifetime builds it flushes events
// still buffered in the native client and shuts it down; this is the only
// call in the package that may block. Once stopped, the session cannot be
// restarted, and every subsequent operation is a no-op.
//
// In automatic-lifetime builds Stop does nothing: the native client runs
// until process exit.
func Stop() {
	if !binding.ManualLifetime {
		return
	}
	if !lifecycle.CompareAndSwap(stateStarted, stateDraining) {
		return
	}
	binding.ShutdownProfiler()
	lifecycle.Store(stateStopped)
}

// active is the gate every operation passes through: one atomic load in
// steady state.
func (c *Client) active() bool {
	return c != nil && lifecycle.Load() == stateStarted
}

// Connected reports whether a profiler application is currently attached.
// Useful with on-demand builds to skip expensive annotation work while
// nobody is looking.
func (c *Client) Connected() bool {
	return c.active() && binding.Connected()
}

// SetThreadName names the calling thread in the profiler timeline. Call it
// from a goroutine pinned with runtime.LockOSThread; naming an unpinned
// goroutine's current thread is allowed but the association is transient.
func (c *Client) SetThreadName(name string) {
	if !c.active() {
		return
	}
	binding.SetThreadName(name)
}

// AppInfo attaches free-form application metadata, such as a version
// string, to the trace.
func (c *Client) AppInfo(text string) {
	if !c.active() {
		return
	}
	binding.AppInfo(text)
}

//
//
//

// SetCallstackDepth sets the number of call stack frames captured with
// zones and messages that use the default depth. Zero, the default,
// disables call stack collection. Values are clamped to the 1...62 range
// the native library supports. Collection is comparatively expensive;
// leave it off unless the timeline alone is not enough.
func SetCallstackDepth(depth int) {
	atomic.StoreInt32(&callstackDepth, clampDepth(depth))
}

const callstackDepthMax = 62

var callstackDepth int32

func getCallstackDepth() int32 {
	return atomic.LoadInt32(&callstackDepth)
}

func clampDepth(depth int) int32 {
	switch {
	case depth < 0:
		return 0
	case depth > callstackDepthMax:
		return callstackDepthMax
	}
	return int32(depth)
}
