package tracy_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/tracygo/tracy"
)

func TestZoneBasics(t *testing.T) {
	c := tracy.Start()

	t.Run("annotations after End are dropped", func(t *testing.T) {
		z := c.Zone("done")
		z.End()
		z.Text("late")
		z.Name("late")
		z.Value(1)
		z.Color(0x123456)
	})

	t.Run("End is idempotent", func(t *testing.T) {
		z := c.Zone("once")
		z.End()
		z.End()
		z.End()
	})

	t.Run("custom locations", func(t *testing.T) {
		loc := tracy.NewLocation("hot loop")
		locc := tracy.NewLocationColor("hot loop 2", 0xAA3366)
		for i := 0; i < 3; i++ {
			z := c.ZoneLoc(loc)
			z.End()
			z = c.ZoneLoc(locc)
			z.End()
		}
	})

	t.Run("explicit source info", func(t *testing.T) {
		z := c.ZoneAt("query", "db.Select", "db/select.go", 42, 0)
		z.Value(7)
		z.End()
	})
}

func TestMisorderVerification(t *testing.T) {
	tracy.Start()
	defer tracy.SetMisorderPolicy(tracy.MisorderIgnore)

	t.Run("balanced nesting passes", func(t *testing.T) {
		tracy.SetMisorderPolicy(tracy.MisorderPanic)

		c, _ := tracy.Running()
		a := c.Zone("a")
		b := c.Zone("b")
		inner := c.Zone("c")
		inner.End()
		b.End()
		a.End()
	})

	t.Run("out-of-order close panics", func(t *testing.T) {
		tracy.SetMisorderPolicy(tracy.MisorderPanic)

		var recovered any
		done := make(chan struct{})
		go func() {
			defer close(done)
			defer func() { recovered = recover() }()

			c, _ := tracy.Running()
			outer := c.Zone("outer")
			inner := c.Zone("inner")
			outer.End() // wrong: inner is still open
			inner.End()
		}()
		<-done

		if recovered == nil {
			t.Fatal("expected panic for out-of-order close")
		}
		if want, have := "out of LIFO order", recovered.(string); !strings.Contains(have, want) {
			t.Errorf("panic message: want substring %q, have %q", want, have)
		}
	})

	t.Run("out-of-order close logs", func(t *testing.T) {
		var buf bytes.Buffer
		tracy.SetLogger(hclog.New(&hclog.LoggerOptions{Output: &buf}))
		tracy.SetMisorderPolicy(tracy.MisorderLog)
		defer tracy.SetLogger(hclog.Default())

		c, _ := tracy.Running()
		outer := c.Zone("first")
		inner := c.Zone("second")
		outer.End()
		inner.End()

		if want, have := "misordered zone close", buf.String(); !strings.Contains(have, want) {
			t.Errorf("log output: want substring %q, have:\n%s", want, have)
		}
	})

	t.Run("cross-goroutine close logs", func(t *testing.T) {
		var buf bytes.Buffer
		tracy.SetLogger(hclog.New(&hclog.LoggerOptions{Output: &buf}))
		tracy.SetMisorderPolicy(tracy.MisorderLog)
		defer tracy.SetLogger(hclog.Default())

		c, _ := tracy.Running()
		zones := make(chan *tracy.Zone, 1)
		go func() { zones <- c.Zone("elsewhere") }()
		z := <-zones
		z.End()

		if want, have := "opened on", buf.String(); !strings.Contains(have, want) {
			t.Errorf("log output: want substring %q, have:\n%s", want, have)
		}
	})

	t.Run("fiber carries open zones across goroutines", func(t *testing.T) {
		tracy.SetMisorderPolicy(tracy.MisorderPanic)

		c, _ := tracy.Running()
		zones := make(chan *tracy.Zone, 1)
		go func() {
			c.FiberEnter("worker")
			zones <- c.Zone("task")
			c.FiberLeave()
		}()
		z := <-zones

		done := make(chan struct{})
		go func() {
			defer close(done)
			c.FiberEnter("worker")
			z.End() // same fiber, so same execution context: no panic
			c.FiberLeave()
		}()
		<-done
	})

	t.Run("goroutines have independent stacks", func(t *testing.T) {
		tracy.SetMisorderPolicy(tracy.MisorderPanic)

		c, _ := tracy.Running()
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					outer := c.Zone("outer")
					inner := c.Zone("inner")
					inner.End()
					outer.End()
				}
			}()
		}
		wg.Wait() // a panic here would fail the test
	})
}
