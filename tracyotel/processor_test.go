package tracyotel

import (
	"context"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/tracygo/tracy"
)

func testProvider(t *testing.T, p *SpanProcessor) trace.Tracer {
	t.Helper()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(p))
	t.Cleanup(func() { tp.Shutdown(context.Background()) })
	return tp.Tracer(t.Name())
}

func (p *SpanProcessor) record(sc trace.SpanContext) *spanRecord {
	v, ok := p.spans.Load(sc.SpanID())
	if !ok {
		return nil
	}
	return v.(*spanRecord)
}

func (p *SpanProcessor) recordCount() int {
	n := 0
	p.spans.Range(func(any, any) bool { n++; return true })
	return n
}

func TestSpanLifecycle(t *testing.T) {
	tracy.Start()

	p := NewSpanProcessor()
	tracer := testProvider(t, p)

	_, span := tracer.Start(context.Background(), "handle request",
		trace.WithAttributes(attribute.String("method", "GET")),
	)

	rec := p.record(span.SpanContext())
	if rec == nil {
		t.Fatal("no record after span start")
	}
	if want, have := stateEntered, rec.state; want != have {
		t.Errorf("state after start: want %v, have %v", want, have)
	}
	if rec.zone == nil {
		t.Error("no zone opened on auto-enter")
	}
	if want, have := "handle request {method=GET}", rec.name; want != have {
		t.Errorf("zone name: want %q, have %q", want, have)
	}

	span.AddEvent("cache miss", trace.WithAttributes(attribute.String("key", "user:42")))
	span.AddEvent("frame", trace.WithAttributes(attribute.Bool(FrameMarkAttr, true)))
	span.End()

	if rec := p.record(span.SpanContext()); rec != nil {
		t.Error("record survived span end")
	}
}

func TestFieldsOutOfZoneName(t *testing.T) {
	tracy.Start()

	p := NewSpanProcessor(WithFieldsInZoneName(false))
	tracer := testProvider(t, p)

	_, span := tracer.Start(context.Background(), "handle request",
		trace.WithAttributes(attribute.String("method", "GET")),
	)
	defer span.End()

	rec := p.record(span.SpanContext())
	if rec == nil {
		t.Fatal("no record after span start")
	}
	if want, have := "handle request", rec.name; want != have {
		t.Errorf("zone name: want %q, have %q", want, have)
	}
}

func TestManualEnterExit(t *testing.T) {
	tracy.Start()

	p := NewSpanProcessor(WithManualEnter())
	tracer := testProvider(t, p)

	_, span := tracer.Start(context.Background(), "pipeline stage")
	sc := span.SpanContext()

	rec := p.record(sc)
	if rec == nil {
		t.Fatal("no record after span start")
	}
	if want, have := stateCreated, rec.state; want != have {
		t.Fatalf("state before enter: want %v, have %v", want, have)
	}
	if rec.zone != nil {
		t.Fatal("zone opened before first enter")
	}

	// Exit before the first enter must not move the state machine.
	p.Exit(sc)
	if want, have := stateCreated, rec.state; want != have {
		t.Errorf("state after premature exit: want %v, have %v", want, have)
	}

	p.Enter(sc)
	if want, have := stateEntered, rec.state; want != have {
		t.Fatalf("state after enter: want %v, have %v", want, have)
	}
	zone := rec.zone
	if zone == nil {
		t.Fatal("no zone opened on first enter")
	}

	// Suspend and resume. The zone must stay the same: one open, and
	// eventually one close, regardless of how many enter/exit cycles the
	// span goes through.
	p.Exit(sc)
	if want, have := stateExited, rec.state; want != have {
		t.Errorf("state after exit: want %v, have %v", want, have)
	}
	p.Enter(sc)
	if want, have := stateEntered, rec.state; want != have {
		t.Errorf("state after re-enter: want %v, have %v", want, have)
	}
	if rec.zone != zone {
		t.Error("re-enter opened a second zone")
	}

	span.End()
	if want, have := stateClosed, rec.state; want != have {
		t.Errorf("state after end: want %v, have %v", want, have)
	}
	if p.record(sc) != nil {
		t.Error("record survived span end")
	}
}

func TestUnknownSpanIgnored(t *testing.T) {
	tracy.Start()

	p := NewSpanProcessor()

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x01},
		SpanID:  trace.SpanID{0x02},
	})

	// Callbacks for spans the processor never saw start: all no-ops.
	p.Enter(sc)
	p.Exit(sc)
	p.OnEnd(tracetest.SpanStub{SpanContext: sc}.Snapshot())

	if want, have := 0, p.recordCount(); want != have {
		t.Errorf("records: want %d, have %d", want, have)
	}
}

func TestShutdown(t *testing.T) {
	tracy.Start()

	p := NewSpanProcessor()
	tracer := testProvider(t, p)

	_, a := tracer.Start(context.Background(), "a")
	_, b := tracer.Start(context.Background(), "b")

	var names []string
	p.spans.Range(func(_, v any) bool {
		names = append(names, v.(*spanRecord).name)
		return true
	})
	sort.Strings(names)
	if want, have := []string{"a", "b"}, names; !cmp.Equal(want, have) {
		t.Fatalf("open records before shutdown: %s", cmp.Diff(want, have))
	}

	if err := p.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if want, have := 0, p.recordCount(); want != have {
		t.Errorf("records after shutdown: want %d, have %d", want, have)
	}

	// Ending the spans afterwards finds no record and is ignored.
	a.End()
	b.End()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if want, have := context.Canceled, p.Shutdown(ctx); want != have {
		t.Errorf("Shutdown with canceled context: want %v, have %v", want, have)
	}
}

func TestForceFlush(t *testing.T) {
	p := NewSpanProcessor()
	if err := p.ForceFlush(context.Background()); err != nil {
		t.Errorf("ForceFlush: %v", err)
	}
}
