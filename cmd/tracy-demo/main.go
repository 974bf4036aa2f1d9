// tracy-demo is an instrumented toy workload for exercising the profiler
// bindings end to end: run it with the tracy build tag, attach the Tracy
// viewer, and watch its frames, zones, plots, and messages arrive.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/oklog/run"
	"github.com/oklog/ulid/v2"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffval"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/tracygo/tracy"
	"github.com/tracygo/tracy/tracyhclog"
	"github.com/tracygo/tracy/tracyotel"
)

func main() {
	err := exec(context.Background(), os.Stdout, os.Stderr, os.Args[1:])
	switch {
	case err == nil, errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		os.Exit(0)
	case errors.As(err, &(run.SignalError{})):
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func exec(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	var flags struct {
		duration time.Duration
		fps      int
		workers  int
		depth    int
		checked  bool
		loglevel string
	}

	fs := ff.NewFlags("tracy-demo")
	{
		fs.AddFlag(ff.CoreFlagConfig{ShortName: 'd', LongName: "duration", Value: ffval.NewValueDefault(&flags.duration, 30*time.Second), Usage: "how long to run the workload"})
		fs.AddFlag(ff.CoreFlagConfig{ShortName: 'f', LongName: "fps", Value: ffval.NewValueDefault(&flags.fps, 60), Usage: "frame loop frequency"})
		fs.AddFlag(ff.CoreFlagConfig{ShortName: 'w', LongName: "workers", Value: ffval.NewValueDefault(&flags.workers, 4), Usage: "background worker count"})
		fs.AddFlag(ff.CoreFlagConfig{ShortName: 'c', LongName: "callstack-depth", Value: ffval.NewValue(&flags.depth), Usage: "call stack frames captured per zone and message"})
		fs.AddFlag(ff.CoreFlagConfig{ShortName: 'v', LongName: "check-order", Value: ffval.NewValue(&flags.checked), Usage: "log misordered zone closes", NoDefault: true})
		fs.AddFlag(ff.CoreFlagConfig{ShortName: 'l', LongName: "log-level", Value: ffval.NewValueDefault(&flags.loglevel, "info"), Usage: "log level: trace, debug, info, warn, error"})
	}

	if err := ff.Parse(fs, args); err != nil {
		fmt.Fprintf(stderr, "%s\n", ffhelp.Flags(fs))
		if errors.Is(err, ff.ErrHelp) {
			err = nil
		}
		return err
	}

	logger := hclog.NewInterceptLogger(&hclog.LoggerOptions{
		Name:   "tracy-demo",
		Level:  hclog.LevelFromString(flags.loglevel),
		Output: stderr,
	})
	logger.RegisterSink(tracyhclog.NewSink())

	tracy.SetCallstackDepth(flags.depth)
	if flags.checked {
		tracy.SetLogger(logger)
		tracy.SetMisorderPolicy(tracy.MisorderLog)
	}

	client := tracy.Start()
	defer tracy.Stop()
	client.AppInfo("tracy-demo")

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(tracyotel.NewSpanProcessor()),
	)
	defer tp.Shutdown(context.Background())

	ctx, cancel := context.WithTimeout(ctx, flags.duration)
	defer cancel()

	client.ConfigurePlot("heap", tracy.PlotConfig{Format: tracy.PlotMemory, Fill: true})
	client.ConfigurePlot("goroutines", tracy.PlotConfig{Step: true})

	var g run.Group
	g.Add(run.SignalHandler(ctx, os.Interrupt))
	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(func() error {
			return frameLoop(ctx, client, flags.fps)
		}, func(error) {
			cancel()
		})
	}
	{
		ctx, cancel := context.WithCancel(ctx)
		jobs := make(chan string)
		g.Add(func() error {
			return produce(ctx, jobs)
		}, func(error) {
			cancel()
		})
		counter := newCounter(client)
		for i := 0; i < flags.workers; i++ {
			i := i
			g.Add(func() error {
				return work(ctx, client, logger.Named(fmt.Sprintf("worker-%d", i)), counter, jobs)
			}, func(error) {
				cancel()
			})
		}
	}
	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(func() error {
			return requests(ctx, tp)
		}, func(error) {
			cancel()
		})
	}

	logger.Info("starting", "duration", flags.duration, "fps", flags.fps, "workers", flags.workers)
	err := g.Run()
	logger.Info("stopping", "err", err)
	fmt.Fprintln(stdout, "done")
	return err
}

var (
	locSimulate = tracy.NewLocation("simulate")
	locRender   = tracy.NewLocation("render")
)

// frameLoop fakes a render loop: two zones per frame, a frame mark, and
// runtime stats plotted alongside.
func frameLoop(ctx context.Context, client *tracy.Client, fps int) error {
	tick := time.NewTicker(time.Second / time.Duration(fps))
	defer tick.Stop()

	var ms runtime.MemStats
	for frame := 0; ; frame++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
		}

		func() {
			z := client.ZoneLoc(locSimulate)
			defer z.End()
			spin(200 * time.Microsecond)
		}()

		func() {
			z := client.ZoneLoc(locRender)
			defer z.End()
			z.Value(uint64(frame))
			spin(500 * time.Microsecond)
		}()

		client.FrameMark()

		if frame%30 == 0 {
			runtime.ReadMemStats(&ms)
			client.Plot("heap", float64(ms.HeapAlloc))
			client.PlotInt("goroutines", int64(runtime.NumGoroutine()))
		}
	}
}

func produce(ctx context.Context, jobs chan<- string) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case jobs <- ulid.Make().String():
			time.Sleep(time.Duration(rand.Intn(20)) * time.Millisecond)
		}
	}
}

// counter is shared worker state behind an instrumented lock, so the demo
// shows some (mild) contention in the viewer.
type counter struct {
	lock *tracy.Lockable
	n    int
}

func newCounter(client *tracy.Client) *counter {
	return &counter{lock: client.NewLockable("work counter")}
}

func (c *counter) incr() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.n++
	return c.n
}

func work(ctx context.Context, client *tracy.Client, logger hclog.Logger, counter *counter, jobs <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case id := <-jobs:
			z := client.ZoneColor("job", 0x4444DD)
			z.Text(id)
			spin(time.Duration(rand.Intn(2000)) * time.Microsecond)
			n := counter.incr()
			z.Value(uint64(n))
			z.End()
			logger.Debug("job done", "id", id, "total", n)
		}
	}
}

// requests fakes a traced request path through the OpenTelemetry bridge.
func requests(ctx context.Context, tp *sdktrace.TracerProvider) error {
	tracer := tp.Tracer("tracy-demo")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		reqCtx, span := tracer.Start(ctx, "handle request",
			trace.WithAttributes(attribute.String("method", "GET")),
		)
		span.AddEvent("validated")
		func() {
			_, child := tracer.Start(reqCtx, "query store")
			defer child.End()
			spin(time.Duration(rand.Intn(3000)) * time.Microsecond)
		}()
		span.End()

		time.Sleep(time.Duration(rand.Intn(50)) * time.Millisecond)
	}
}

// spin burns CPU for roughly d, so zones have visible width without the
// scheduler noise that sleeping introduces.
func spin(d time.Duration) {
	for begin := time.Now(); time.Since(begin) < d; {
	}
}
