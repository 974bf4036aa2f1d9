//go:build !tracy || !cgo

package binding

import "unsafe"

// Enabled reports whether the native client is compiled in.
const Enabled = false

// ZoneCtx is the token returned by the native library for an open zone. In
// disabled builds the zero value stands in for every zone.
type ZoneCtx struct {
	ID     uint32
	Active int32
}

// SrcLoc is a pointer to a statically allocated native source location
// record. Always nil in disabled builds.
type SrcLoc unsafe.Pointer

// LockCtx is an opaque handle to a native lockable context.
type LockCtx unsafe.Pointer

func NewSrcLoc(name, function, file string, line uint32, color uint32) SrcLoc { return nil }

func ZoneBegin(loc SrcLoc, depth int32) ZoneCtx { return ZoneCtx{} }
func ZoneBeginAlloc(name, function, file string, line uint32, color uint32, depth int32) ZoneCtx {
	return ZoneCtx{}
}
func ZoneEnd(ctx ZoneCtx)                {}
func ZoneText(ctx ZoneCtx, s string)     {}
func ZoneName(ctx ZoneCtx, s string)     {}
func ZoneValue(ctx ZoneCtx, v uint64)    {}
func ZoneColor(ctx ZoneCtx, color uint32) {}

func Message(s string, depth int32)                   {}
func MessageColor(s string, color uint32, depth int32) {}
func AppInfo(s string)                                {}
func SetThreadName(name string)                       {}

func FrameMark()                                                  {}
func FrameMarkNamed(name string)                                  {}
func FrameMarkStart(name string)                                  {}
func FrameMarkEnd(name string)                                    {}
func FrameImage(image []byte, w, h uint16, offset uint8, flip bool) {}

func Plot(name string, v float64)                              {}
func PlotFloat(name string, v float32)                         {}
func PlotInt(name string, v int64)                             {}
func PlotConfig(name string, typ, step, fill int32, color uint32) {}

func MemAlloc(ptr uintptr, size uint64, secure bool)                 {}
func MemFree(ptr uintptr, secure bool)                               {}
func MemAllocNamed(ptr uintptr, size uint64, secure bool, pool string) {}
func MemFreeNamed(ptr uintptr, secure bool, pool string)             {}

func LockAnnounce(loc SrcLoc) LockCtx             { return nil }
func LockTerminate(ctx LockCtx)                   {}
func LockBeforeLock(ctx LockCtx) bool             { return false }
func LockAfterLock(ctx LockCtx)                   {}
func LockAfterUnlock(ctx LockCtx)                 {}
func LockAfterTryLock(ctx LockCtx, acquired bool) {}
func LockCustomName(ctx LockCtx, name string)     {}

func Connected() bool { return false }
