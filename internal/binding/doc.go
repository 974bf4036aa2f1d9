// Package binding declares the C entry points of the Tracy client library
// and exposes them as plain Go functions. It contains no logic beyond
// argument marshalling: every function is a mechanical mirror of the
// corresponding ___tracy_* symbol.
//
// The package compiles in one of two modes. With the "tracy" build tag and a
// working cgo toolchain, calls are forwarded to the native client, which is
// built from the vendored upstream sources (see the tracy/ submodule) with
// TRACY_ENABLE defined, or linked as a prebuilt libTracyClient. Without the
// tag, every function body is empty and Enabled is false, so callers compile
// down to nothing.
//
// Further build tags map one-to-one to native compile-time defines:
//
//	tracy_no_system_tracing   TRACY_NO_SYSTEM_TRACING
//	tracy_no_context_switch   TRACY_NO_CONTEXT_SWITCH
//	tracy_no_sampling         TRACY_NO_SAMPLING
//	tracy_no_code_transfer    TRACY_NO_CODE_TRANSFER
//	tracy_no_broadcast        TRACY_NO_BROADCAST
//	tracy_only_localhost      TRACY_ONLY_LOCALHOST
//	tracy_only_ipv4           TRACY_ONLY_IPV4
//	tracy_timer_fallback      TRACY_TIMER_FALLBACK
//	tracy_ondemand            TRACY_ON_DEMAND
//	tracy_manual_lifetime     TRACY_MANUAL_LIFETIME, TRACY_DELAYED_INIT
//	tracy_delayed_init        TRACY_DELAYED_INIT
//	tracy_no_callstack_inlines TRACY_NO_CALLSTACK_INLINES
//	tracy_flush_on_exit       TRACY_NO_EXIT
//	tracy_verify              TRACY_VERIFY
//	tracy_debuginfod          TRACY_DEBUGINFOD
//	tracy_no_crash_handler    TRACY_NO_CRASH_HANDLER
//	tracy_fibers              TRACY_FIBERS
package binding
