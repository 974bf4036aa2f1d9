// Package tracyotel bridges OpenTelemetry spans onto Tracy profiler zones.
//
// Register the [SpanProcessor] on an SDK tracer provider and every sampled
// span becomes a zone in the profiler timeline, with span events emitted as
// profiler messages:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithSpanProcessor(tracyotel.NewSpanProcessor()),
//	)
//
// The bridge is best-effort by construction, like everything else in the
// profiler surface: callbacks for spans it has no record of are ignored,
// and nothing it does can surface an error into the host application.
package tracyotel

import (
	"context"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/tracygo/tracy"
)

const (
	// FrameMarkAttr set to true on a span event turns that event into a
	// primary frame mark instead of a message.
	FrameMarkAttr = "tracy.frame_mark"

	errorColor = 0xDD4444
)

// A span is a state machine. The zone opens on the first transition to
// entered and closes only on the transition to closed, because a span may
// be exited and re-entered any number of times while its logical unit of
// work suspends and resumes.
//
//	created -> entered <-> exited -> closed
type spanState int

const (
	stateCreated spanState = iota
	stateEntered
	stateExited
	stateClosed
)

type spanRecord struct {
	mtx   sync.Mutex
	state spanState
	zone  *tracy.Zone
	name  string
	scope string
	fiber string
}

// SpanProcessor translates the OpenTelemetry span lifecycle into zone
// operations. It implements [sdktrace.SpanProcessor].
type SpanProcessor struct {
	client           *tracy.Client
	stackDepth       int
	fieldsInZoneName bool
	fibers           bool
	autoEnter        bool

	spans sync.Map // trace.SpanID -> *spanRecord
}

var _ sdktrace.SpanProcessor = (*SpanProcessor)(nil)

// Option configures a SpanProcessor.
type Option func(*SpanProcessor)

// WithClient pins the processor to a specific client handle. By default the
// processor resolves the running session on every callback.
func WithClient(c *tracy.Client) Option {
	return func(p *SpanProcessor) { p.client = c }
}

// WithStackDepth enables call stack collection for the zones the processor
// opens, up to depth frames. Zero, the default, disables collection.
func WithStackDepth(depth int) Option {
	return func(p *SpanProcessor) { p.stackDepth = depth }
}

// WithFieldsInZoneName includes span attributes in the zone name rather
// than emitting them as zone text. Named-in means each distinct attribute
// combination is analyzed as its own zone; named-out aggregates all
// invocations of a span under one zone. Defaults to true.
func WithFieldsInZoneName(v bool) Option {
	return func(p *SpanProcessor) { p.fieldsInZoneName = v }
}

// WithFibers routes zone attribution through the profiler's fiber
// primitives, one fiber per span. Required for spans that end, or are
// re-entered, on a different goroutine than they started on; without it
// such spans corrupt per-thread zone ordering. Defaults to whether fiber
// support is compiled in.
func WithFibers(v bool) Option {
	return func(p *SpanProcessor) { p.fibers = v }
}

// WithManualEnter disables the implicit enter on span start. The caller is
// then expected to drive [SpanProcessor.Enter] and [SpanProcessor.Exit]
// around the span's actual occupancy of an execution context.
func WithManualEnter() Option {
	return func(p *SpanProcessor) { p.autoEnter = false }
}

// NewSpanProcessor returns a SpanProcessor with the given options applied.
func NewSpanProcessor(opts ...Option) *SpanProcessor {
	p := &SpanProcessor{
		fieldsInZoneName: true,
		fibers:           tracy.FibersEnabled(),
		autoEnter:        true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *SpanProcessor) tracyClient() *tracy.Client {
	if p.client != nil {
		return p.client
	}
	c, _ := tracy.Running()
	return c
}

// OnStart implements sdktrace.SpanProcessor. It records the span and, by
// default, performs the first enter, opening the zone.
func (p *SpanProcessor) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	sc := s.SpanContext()
	if !sc.HasSpanID() {
		return
	}

	name := s.Name()
	if attrs := s.Attributes(); len(attrs) > 0 && p.fieldsInZoneName {
		name = name + " {" + formatAttrs(attrs) + "}"
	}

	rec := &spanRecord{
		state: stateCreated,
		name:  name,
		scope: s.InstrumentationScope().Name,
		fiber: "span " + sc.SpanID().String(),
	}
	p.spans.Store(sc.SpanID(), rec)

	if p.autoEnter {
		p.enter(rec)
		if !p.fieldsInZoneName {
			if attrs := s.Attributes(); len(attrs) > 0 {
				rec.zone.Text(formatAttrs(attrs))
			}
		}
	}
}

// OnEnd implements sdktrace.SpanProcessor. It replays the span's recorded
// events as messages and closes the zone, re-attaching to the span's fiber
// first if the span was exited. Spans the processor has no record of, for
// example because the session was inactive at start, are ignored.
func (p *SpanProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	sc := s.SpanContext()
	v, ok := p.spans.LoadAndDelete(sc.SpanID())
	if !ok {
		return
	}
	rec := v.(*spanRecord)
	c := p.tracyClient()

	rec.mtx.Lock()
	defer rec.mtx.Unlock()

	// Re-attach to the span's fiber so the close is attributed to the same
	// execution context as the open, wherever OnEnd happens to run.
	inFiber := p.fibers && rec.state != stateCreated
	if inFiber {
		c.FiberEnter(rec.fiber)
	}

	for _, ev := range s.Events() {
		p.emitEvent(c, ev)
	}
	if st := s.Status(); st.Code == codes.Error {
		text := "span error"
		if st.Description != "" {
			text = "span error: " + st.Description
		}
		c.MessageColor(text, errorColor)
	}

	rec.zone.End()
	rec.state = stateClosed

	if inFiber {
		c.FiberLeave()
	}
}

// Enter marks the span as occupying the calling execution context, opening
// its zone on the first call. Safe to call for spans the processor does not
// know, which no-ops.
func (p *SpanProcessor) Enter(sc trace.SpanContext) {
	if v, ok := p.spans.Load(sc.SpanID()); ok {
		p.enter(v.(*spanRecord))
	}
}

// Exit marks the span as having released its execution context, as at an
// await point. The zone stays open; a later Enter resumes it, possibly on a
// different goroutine when fibers are in use.
func (p *SpanProcessor) Exit(sc trace.SpanContext) {
	v, ok := p.spans.Load(sc.SpanID())
	if !ok {
		return
	}
	rec := v.(*spanRecord)

	rec.mtx.Lock()
	defer rec.mtx.Unlock()

	if rec.state != stateEntered {
		return
	}
	rec.state = stateExited
	if p.fibers {
		p.tracyClient().FiberLeave()
	}
}

func (p *SpanProcessor) enter(rec *spanRecord) {
	rec.mtx.Lock()
	defer rec.mtx.Unlock()

	switch rec.state {
	case stateCreated:
		c := p.tracyClient()
		if p.fibers {
			c.FiberEnter(rec.fiber)
		}
		rec.zone = c.ZoneAt(rec.name, rec.scope, "", 0, p.stackDepth)
		rec.state = stateEntered
	case stateExited:
		if p.fibers {
			p.tracyClient().FiberEnter(rec.fiber)
		}
		rec.state = stateEntered
	}
}

func (p *SpanProcessor) emitEvent(c *tracy.Client, ev sdktrace.Event) {
	for _, kv := range ev.Attributes {
		if string(kv.Key) == FrameMarkAttr && kv.Value.AsBool() {
			c.FrameMark()
			return
		}
	}
	text := ev.Name
	if len(ev.Attributes) > 0 {
		text = text + " {" + formatAttrs(ev.Attributes) + "}"
	}
	c.Message(text)
}

// Shutdown implements sdktrace.SpanProcessor. It closes any zones still
// open and drops all span records. It never fails.
func (p *SpanProcessor) Shutdown(ctx context.Context) error {
	c := p.tracyClient()
	p.spans.Range(func(key, v any) bool {
		rec := v.(*spanRecord)
		p.spans.Delete(key)

		rec.mtx.Lock()
		defer rec.mtx.Unlock()

		inFiber := p.fibers && rec.state != stateCreated
		if inFiber {
			c.FiberEnter(rec.fiber)
		}
		rec.zone.End()
		if inFiber {
			c.FiberLeave()
		}
		rec.state = stateClosed
		return true
	})
	return ctx.Err()
}

// ForceFlush implements sdktrace.SpanProcessor. Transport to the viewer is
// owned by the native library, so there is nothing to flush here.
func (p *SpanProcessor) ForceFlush(context.Context) error {
	return nil
}

func formatAttrs(attrs []attribute.KeyValue) string {
	var sb strings.Builder
	for i, kv := range attrs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(kv.Key))
		sb.WriteString("=")
		sb.WriteString(kv.Value.Emit())
	}
	return sb.String()
}
