package tracy

import (
	"runtime"
	"sync/atomic"

	"github.com/tracygo/tracy/internal/binding"
)

// Zone represents one open, named region of execution on the profiler
// timeline. A zone is owned by the scope that opened it and must be closed
// exactly once, normally with a deferred End. Zones are not values to share:
// open on one goroutine, annotate and close on the same goroutine, with
// sibling zones closed in reverse order of opening.
//
// A nil *Zone is the inert zone: every method on it is a no-op. Opening a
// zone while the session is inactive yields the inert zone, so callers never
// observe an error from instrumentation.
type Zone struct {
	ctx   binding.ZoneCtx
	name  string
	ended atomic.Bool

	// Set only while a misorder policy is active.
	vkey string
	vseq uint64
}

// Zone opens a zone with the given name, recording the caller's file, line,
// and function as its source location. The call stack depth is the package
// default; see SetCallstackDepth.
func (c *Client) Zone(name string) *Zone {
	return c.open(name, 0, getCallstackDepth(), 3)
}

// ZoneDepth is Zone with an explicit call stack collection depth for this
// zone only.
func (c *Client) ZoneDepth(name string, depth int) *Zone {
	return c.open(name, 0, clampDepth(depth), 3)
}

// ZoneColor is Zone with a color, specified as 0xRRGGBB.
func (c *Client) ZoneColor(name string, rgb uint32) *Zone {
	return c.open(name, rgb, getCallstackDepth(), 3)
}

func (c *Client) open(name string, color uint32, depth int32, skip int) *Zone {
	if !c.active() {
		return nil
	}
	function, file, line := caller(skip)
	z := &Zone{ctx: binding.ZoneBeginAlloc(name, function, file, line, color, depth), name: name}
	verifyOpen(z)
	return z
}

// ZoneAt opens a zone with an explicitly provided source location, for
// callers that relay instrumentation recorded elsewhere and whose own
// location would be noise. Empty function and file are allowed.
func (c *Client) ZoneAt(name, function, file string, line uint32, depth int) *Zone {
	if !c.active() {
		return nil
	}
	z := &Zone{ctx: binding.ZoneBeginAlloc(name, function, file, line, 0, clampDepth(depth)), name: name}
	verifyOpen(z)
	return z
}

// ZoneLoc opens a zone against a pre-allocated Location, skipping the
// per-call source location lookup. Prefer it on hot paths.
func (c *Client) ZoneLoc(loc *Location) *Zone {
	if !c.active() || loc == nil {
		return nil
	}
	z := &Zone{ctx: binding.ZoneBegin(loc.loc, getCallstackDepth()), name: loc.name}
	verifyOpen(z)
	return z
}

// End closes the zone. The first call records the end timestamp; any later
// call is a no-op, which keeps a double defer or an explicit-close-then-
// defer pattern harmless.
func (z *Zone) End() {
	if z == nil || !z.ended.CompareAndSwap(false, true) {
		return
	}
	verifyClose(z)
	binding.ZoneEnd(z.ctx)
}

// Text attaches a text annotation to the open zone.
func (z *Zone) Text(s string) {
	if z == nil || z.ended.Load() {
		return
	}
	binding.ZoneText(z.ctx, s)
}

// Name replaces the zone's displayed name.
func (z *Zone) Name(s string) {
	if z == nil || z.ended.Load() {
		return
	}
	binding.ZoneName(z.ctx, s)
}

// Value attaches a numeric annotation to the open zone.
func (z *Zone) Value(v uint64) {
	if z == nil || z.ended.Load() {
		return
	}
	binding.ZoneValue(z.ctx, v)
}

// Color sets the zone's color, specified as 0xRRGGBB.
func (z *Zone) Color(rgb uint32) {
	if z == nil || z.ended.Load() {
		return
	}
	binding.ZoneColor(z.ctx, rgb)
}

//
//
//

// Location is a statically allocated source location for zones opened on
// hot paths. Construct one per call site, typically in a package-level var,
// and open zones against it with Client.ZoneLoc.
type Location struct {
	loc  binding.SrcLoc
	name string
}

// NewLocation builds a Location named name, at the file, line, and function
// of the caller. The location, and the strings it captures, live for the
// remainder of the process.
func NewLocation(name string) *Location {
	function, file, line := caller(2)
	return &Location{loc: binding.NewSrcLoc(name, function, file, line, 0), name: name}
}

// NewLocationColor is NewLocation with a zone color, specified as 0xRRGGBB.
func NewLocationColor(name string, rgb uint32) *Location {
	function, file, line := caller(2)
	return &Location{loc: binding.NewSrcLoc(name, function, file, line, rgb), name: name}
}

func caller(skip int) (function, file string, line uint32) {
	pc, file, ln, ok := runtime.Caller(skip)
	if !ok {
		return "???", "???", 0
	}
	function = "???"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
	}
	return function, file, uint32(ln)
}
