package tracy_test

import (
	"testing"

	"github.com/tracygo/tracy"
)

func TestLifecycle(t *testing.T) {
	t.Run("Start returns a handle", func(t *testing.T) {
		if c := tracy.Start(); c == nil {
			t.Fatal("Start returned nil")
		}
	})

	t.Run("Start is idempotent", func(t *testing.T) {
		c1 := tracy.Start()
		c2 := tracy.Start()
		if c1 == nil || c2 == nil {
			t.Fatal("repeated Start returned nil")
		}
	})

	t.Run("Running agrees with IsRunning", func(t *testing.T) {
		tracy.Start()
		c, ok := tracy.Running()
		if want, have := tracy.IsRunning(), ok; want != have {
			t.Errorf("Running: want %v, have %v", want, have)
		}
		if ok && c == nil {
			t.Error("Running reported active but returned nil handle")
		}
	})

	t.Run("Stop never blocks automatic builds", func(t *testing.T) {
		tracy.Start()
		tracy.Stop() // no-op without tracy_manual_lifetime
		if want, have := true, tracy.IsRunning(); want != have {
			t.Errorf("IsRunning after Stop: want %v, have %v", want, have)
		}
	})
}

func TestNilClientIsInert(t *testing.T) {
	t.Parallel()

	var c *tracy.Client

	// None of these may panic, allocate native resources, or error.
	z := c.Zone("inert")
	z.Text("text")
	z.Value(42)
	z.Color(0xFF0000)
	z.End()
	z.End()

	c.Message("message")
	c.MessageColor("message", 0x00FF00)
	c.Plot("series", 1.0)
	c.PlotInt("series", 1)
	c.FrameMark()
	c.FrameMarkNamed("secondary")
	f := c.FrameScope("burst")
	f.End()
	c.FiberEnter("fiber")
	c.FiberLeave()
	c.MemAlloc(0x1000, 64)
	c.MemFree(0x1000)
	c.SetThreadName("worker")
	c.AppInfo("info")

	if c.Connected() {
		t.Error("nil client reported Connected")
	}
}

func TestPackageFuncsWithoutSession(t *testing.T) {
	t.Parallel()

	// The package-level shorthands resolve the running client themselves
	// and must be safe whether or not anything was started.
	z := tracy.Zone("shorthand")
	z.Text("x")
	z.End()
	tracy.Message("hello")
	tracy.Plot("p", 3.14)
	tracy.FrameMark()
	tracy.FrameMarkNamed("aux")
}
