// Package tracyhclog mirrors go-hclog log records onto the Tracy profiler
// timeline as colored messages.
//
// Register the [Sink] on an intercepting logger:
//
//	logger := hclog.NewInterceptLogger(&hclog.LoggerOptions{Name: "app"})
//	logger.RegisterSink(tracyhclog.NewSink())
//
// Every record the logger accepts then also appears in the profiler,
// time-correlated with the surrounding zones. Like all instrumentation in
// this module the sink is fire-and-forget: with no active session it does
// nothing.
package tracyhclog

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/tracygo/tracy"
)

// Level colors, 0xRRGGBB, chosen to match hclog's terminal palette.
var levelColors = map[hclog.Level]uint32{
	hclog.Trace: 0x7F7F7F,
	hclog.Debug: 0x3FBFBF,
	hclog.Info:  0x3FBF3F,
	hclog.Warn:  0xBFBF3F,
	hclog.Error: 0xDD4444,
}

// Sink forwards accepted log records to the profiler. It implements
// [hclog.SinkAdapter].
type Sink struct {
	client *tracy.Client
	min    hclog.Level
}

var _ hclog.SinkAdapter = (*Sink)(nil)

// Option configures a Sink.
type Option func(*Sink)

// WithClient pins the sink to a specific client handle. By default the sink
// resolves the running session on every record.
func WithClient(c *tracy.Client) Option {
	return func(s *Sink) { s.client = c }
}

// WithMinimumLevel drops records below the given level. The default is
// hclog.Trace: everything the logger accepts is forwarded.
func WithMinimumLevel(level hclog.Level) Option {
	return func(s *Sink) { s.min = level }
}

// NewSink returns a Sink with the given options applied.
func NewSink(opts ...Option) *Sink {
	s := &Sink{min: hclog.Trace}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Accept implements hclog.SinkAdapter.
func (s *Sink) Accept(name string, level hclog.Level, msg string, args ...interface{}) {
	if level < s.min || level == hclog.Off {
		return
	}

	c := s.client
	if c == nil {
		c, _ = tracy.Running()
	}

	text := formatRecord(name, msg, args)
	if color, ok := levelColors[level]; ok {
		c.MessageColor(text, color)
	} else {
		c.Message(text)
	}
}

func formatRecord(name, msg string, args []interface{}) string {
	var sb strings.Builder
	if name != "" {
		sb.WriteString(name)
		sb.WriteString(": ")
	}
	sb.WriteString(msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", args[i], args[i+1])
	}
	if len(args)%2 == 1 {
		fmt.Fprintf(&sb, " %v=", args[len(args)-1])
	}
	return sb.String()
}
