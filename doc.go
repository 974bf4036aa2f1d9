// Package tracy provides safe Go bindings to the client library of the
// Tracy real-time profiler.
//
// The package is a thin shim: all of the heavy lifting — sampling, call
// stack capture, timestamp synchronization, and the wire protocol to the
// Tracy viewer — happens inside the native client, which is compiled in via
// [github.com/tracygo/tracy/internal/binding]. This package owns the
// process-wide activation state, and exposes zones, frame marks, plots, and
// messages as plain Go values and functions.
//
// Instrumentation is strictly best-effort and side-channel: no operation in
// this package returns an error, blocks (outside of an explicit [Stop]), or
// otherwise alters the behavior of the host application. Operations invoked
// while the profiler is not active degrade to no-ops. Building without the
// "tracy" build tag compiles the entire surface down to nothing.
//
// The basic unit of instrumentation is the zone, a named, timed region of
// execution, opened with [Client.Zone] and closed exactly once:
//
//	func handle(ctx context.Context, req *Request) {
//	    z := tracy.Zone("handle")
//	    defer z.End()
//	    ...
//	}
//
// Zones opened on the same goroutine must be closed in reverse order of
// opening. The profiler cannot detect a violation cheaply, so by default a
// misordered close silently corrupts the rendered call tree; see
// [SetMisorderPolicy] for a checked mode.
//
// Applications already instrumented with OpenTelemetry can bridge their
// spans with [github.com/tracygo/tracy/tracyotel], and applications logging
// through go-hclog can mirror their logs onto the profiler timeline with
// [github.com/tracygo/tracy/tracyhclog].
//
// Note that, depending on build configuration, the native client broadcasts
// discovery packets to the local network and serves the collected data,
// which may include source code, to that network. Gate the "tracy" build
// tag accordingly.
package tracy
