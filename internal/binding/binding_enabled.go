//go:build tracy && cgo

package binding

/*
#cgo CPPFLAGS: -DTRACY_ENABLE
#cgo LDFLAGS: -lTracyClient -lstdc++ -lm -lpthread
#cgo linux LDFLAGS: -ldl
#cgo windows LDFLAGS: -luser32 -lws2_32 -ldbghelp

#include <stdint.h>
#include <stddef.h>
#include <stdlib.h>

struct ___tracy_source_location_data
{
	const char* name;
	const char* function;
	const char* file;
	uint32_t line;
	uint32_t color;
};

typedef struct ___tracy_c_zone_context
{
	uint32_t id;
	int active;
} TracyCZoneCtx;

struct __tracy_lockable_context_data;

extern uint64_t ___tracy_alloc_srcloc_name( uint32_t line, const char* source, size_t sourceSz, const char* function, size_t functionSz, const char* name, size_t nameSz, uint32_t color );

extern TracyCZoneCtx ___tracy_emit_zone_begin( const struct ___tracy_source_location_data* srcloc, int active );
extern TracyCZoneCtx ___tracy_emit_zone_begin_callstack( const struct ___tracy_source_location_data* srcloc, int depth, int active );
extern TracyCZoneCtx ___tracy_emit_zone_begin_alloc( uint64_t srcloc, int active );
extern TracyCZoneCtx ___tracy_emit_zone_begin_alloc_callstack( uint64_t srcloc, int depth, int active );
extern void ___tracy_emit_zone_end( TracyCZoneCtx ctx );
extern void ___tracy_emit_zone_text( TracyCZoneCtx ctx, const char* txt, size_t size );
extern void ___tracy_emit_zone_name( TracyCZoneCtx ctx, const char* txt, size_t size );
extern void ___tracy_emit_zone_color( TracyCZoneCtx ctx, uint32_t color );
extern void ___tracy_emit_zone_value( TracyCZoneCtx ctx, uint64_t value );

extern void ___tracy_emit_message( const char* txt, size_t size, int callstack );
extern void ___tracy_emit_messageC( const char* txt, size_t size, uint32_t color, int callstack );
extern void ___tracy_emit_message_appinfo( const char* txt, size_t size );

extern void ___tracy_emit_frame_mark( const char* name );
extern void ___tracy_emit_frame_mark_start( const char* name );
extern void ___tracy_emit_frame_mark_end( const char* name );
extern void ___tracy_emit_frame_image( const void* image, uint16_t w, uint16_t h, uint8_t offset, int flip );

extern void ___tracy_emit_plot( const char* name, double val );
extern void ___tracy_emit_plot_float( const char* name, float val );
extern void ___tracy_emit_plot_int( const char* name, int64_t val );
extern void ___tracy_emit_plot_config( const char* name, int type, int step, int fill, uint32_t color );

extern void ___tracy_emit_memory_alloc( const void* ptr, size_t size, int secure );
extern void ___tracy_emit_memory_free( const void* ptr, int secure );
extern void ___tracy_emit_memory_alloc_named( const void* ptr, size_t size, int secure, const char* name );
extern void ___tracy_emit_memory_free_named( const void* ptr, int secure, const char* name );

extern struct __tracy_lockable_context_data* ___tracy_announce_lockable_ctx( const struct ___tracy_source_location_data* srcloc );
extern void ___tracy_terminate_lockable_ctx( struct __tracy_lockable_context_data* lockdata );
extern int ___tracy_before_lock_lockable_ctx( struct __tracy_lockable_context_data* lockdata );
extern void ___tracy_after_lock_lockable_ctx( struct __tracy_lockable_context_data* lockdata );
extern void ___tracy_after_unlock_lockable_ctx( struct __tracy_lockable_context_data* lockdata );
extern void ___tracy_after_try_lock_lockable_ctx( struct __tracy_lockable_context_data* lockdata, int acquired );
extern void ___tracy_custom_name_lockable_ctx( struct __tracy_lockable_context_data* lockdata, const char* name, size_t nameSz );

extern void ___tracy_set_thread_name( const char* name );
extern int ___tracy_connected( void );
*/
import "C"

import (
	"unsafe"
)

// Enabled reports whether the native client is compiled in.
const Enabled = true

// ZoneCtx is the token returned by the native library for an open zone. It
// must be passed back, by value, to every zone operation.
type ZoneCtx struct {
	ID     uint32
	Active int32
}

// SrcLoc is a pointer to a statically allocated native source location
// record. The native library requires it to remain valid forever.
type SrcLoc unsafe.Pointer

// LockCtx is an opaque handle to a native lockable context.
type LockCtx unsafe.Pointer

func fromC(ctx C.TracyCZoneCtx) ZoneCtx {
	return ZoneCtx{ID: uint32(ctx.id), Active: int32(ctx.active)}
}

func toC(ctx ZoneCtx) C.TracyCZoneCtx {
	return C.TracyCZoneCtx{id: C.uint32_t(ctx.ID), active: C.int(ctx.Active)}
}

// strData returns a pointer to the string's bytes without copying. The native
// library copies length-prefixed arguments before returning, so passing Go
// memory for the duration of the call is sound.
func strData(s string) *C.char {
	if len(s) == 0 {
		return nil
	}
	return (*C.char)(unsafe.Pointer(unsafe.StringData(s)))
}

// NewSrcLoc allocates a source location record, with its strings, in C
// memory. Records are never freed: they correspond to static locations in
// the instrumented program.
func NewSrcLoc(name, function, file string, line uint32, color uint32) SrcLoc {
	loc := (*C.struct____tracy_source_location_data)(C.malloc(C.sizeof_struct____tracy_source_location_data))
	loc.name = C.CString(name)
	loc.function = C.CString(function)
	loc.file = C.CString(file)
	loc.line = C.uint32_t(line)
	loc.color = C.uint32_t(color)
	return SrcLoc(loc)
}

// ZoneBegin opens a zone against a static source location.
func ZoneBegin(loc SrcLoc, depth int32) ZoneCtx {
	if depth > 0 {
		return fromC(C.___tracy_emit_zone_begin_callstack((*C.struct____tracy_source_location_data)(loc), C.int(depth), 1))
	}
	return fromC(C.___tracy_emit_zone_begin((*C.struct____tracy_source_location_data)(loc), 1))
}

// ZoneBeginAlloc opens a zone with a heap-allocated source location, for
// call sites whose location is only known at run time. The native library
// takes ownership of the srcloc token.
func ZoneBeginAlloc(name, function, file string, line uint32, color uint32, depth int32) ZoneCtx {
	id := C.___tracy_alloc_srcloc_name(
		C.uint32_t(line),
		strData(file), C.size_t(len(file)),
		strData(function), C.size_t(len(function)),
		strData(name), C.size_t(len(name)),
		C.uint32_t(color),
	)
	if depth > 0 {
		return fromC(C.___tracy_emit_zone_begin_alloc_callstack(id, C.int(depth), 1))
	}
	return fromC(C.___tracy_emit_zone_begin_alloc(id, 1))
}

func ZoneEnd(ctx ZoneCtx) {
	C.___tracy_emit_zone_end(toC(ctx))
}

func ZoneText(ctx ZoneCtx, s string) {
	C.___tracy_emit_zone_text(toC(ctx), strData(s), C.size_t(len(s)))
}

func ZoneName(ctx ZoneCtx, s string) {
	C.___tracy_emit_zone_name(toC(ctx), strData(s), C.size_t(len(s)))
}

func ZoneValue(ctx ZoneCtx, v uint64) {
	C.___tracy_emit_zone_value(toC(ctx), C.uint64_t(v))
}

func ZoneColor(ctx ZoneCtx, color uint32) {
	C.___tracy_emit_zone_color(toC(ctx), C.uint32_t(color))
}

func Message(s string, depth int32) {
	C.___tracy_emit_message(strData(s), C.size_t(len(s)), C.int(depth))
}

func MessageColor(s string, color uint32, depth int32) {
	C.___tracy_emit_messageC(strData(s), C.size_t(len(s)), C.uint32_t(color), C.int(depth))
}

func AppInfo(s string) {
	C.___tracy_emit_message_appinfo(strData(s), C.size_t(len(s)))
}

func SetThreadName(name string) {
	C.___tracy_set_thread_name(intern(name))
}

func FrameMark() {
	C.___tracy_emit_frame_mark(nil)
}

func FrameMarkNamed(name string) {
	C.___tracy_emit_frame_mark(intern(name))
}

func FrameMarkStart(name string) {
	C.___tracy_emit_frame_mark_start(intern(name))
}

func FrameMarkEnd(name string) {
	C.___tracy_emit_frame_mark_end(intern(name))
}

func FrameImage(image []byte, w, h uint16, offset uint8, flip bool) {
	if len(image) == 0 {
		return
	}
	var cflip C.int
	if flip {
		cflip = 1
	}
	C.___tracy_emit_frame_image(unsafe.Pointer(&image[0]), C.uint16_t(w), C.uint16_t(h), C.uint8_t(offset), cflip)
}

func Plot(name string, v float64) {
	C.___tracy_emit_plot(intern(name), C.double(v))
}

func PlotFloat(name string, v float32) {
	C.___tracy_emit_plot_float(intern(name), C.float(v))
}

func PlotInt(name string, v int64) {
	C.___tracy_emit_plot_int(intern(name), C.int64_t(v))
}

func PlotConfig(name string, typ, step, fill int32, color uint32) {
	C.___tracy_emit_plot_config(intern(name), C.int(typ), C.int(step), C.int(fill), C.uint32_t(color))
}

func MemAlloc(ptr uintptr, size uint64, secure bool) {
	C.___tracy_emit_memory_alloc(unsafe.Pointer(ptr), C.size_t(size), cbool(secure)) //nolint:govet // identity, not dereferenced
}

func MemFree(ptr uintptr, secure bool) {
	C.___tracy_emit_memory_free(unsafe.Pointer(ptr), cbool(secure)) //nolint:govet // identity, not dereferenced
}

func MemAllocNamed(ptr uintptr, size uint64, secure bool, pool string) {
	C.___tracy_emit_memory_alloc_named(unsafe.Pointer(ptr), C.size_t(size), cbool(secure), intern(pool)) //nolint:govet // identity, not dereferenced
}

func MemFreeNamed(ptr uintptr, secure bool, pool string) {
	C.___tracy_emit_memory_free_named(unsafe.Pointer(ptr), cbool(secure), intern(pool)) //nolint:govet // identity, not dereferenced
}

func LockAnnounce(loc SrcLoc) LockCtx {
	return LockCtx(C.___tracy_announce_lockable_ctx((*C.struct____tracy_source_location_data)(loc)))
}

func LockTerminate(ctx LockCtx) {
	C.___tracy_terminate_lockable_ctx((*C.struct___tracy_lockable_context_data)(ctx))
}

func LockBeforeLock(ctx LockCtx) bool {
	return C.___tracy_before_lock_lockable_ctx((*C.struct___tracy_lockable_context_data)(ctx)) != 0
}

func LockAfterLock(ctx LockCtx) {
	C.___tracy_after_lock_lockable_ctx((*C.struct___tracy_lockable_context_data)(ctx))
}

func LockAfterUnlock(ctx LockCtx) {
	C.___tracy_after_unlock_lockable_ctx((*C.struct___tracy_lockable_context_data)(ctx))
}

func LockAfterTryLock(ctx LockCtx, acquired bool) {
	C.___tracy_after_try_lock_lockable_ctx((*C.struct___tracy_lockable_context_data)(ctx), cbool(acquired))
}

func LockCustomName(ctx LockCtx, name string) {
	C.___tracy_custom_name_lockable_ctx((*C.struct___tracy_lockable_context_data)(ctx), strData(name), C.size_t(len(name)))
}

// Connected reports whether a profiler application is attached. Only
// meaningful in on-demand builds; otherwise it reports readiness of the
// native worker.
func Connected() bool {
	return C.___tracy_connected() != 0
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}
