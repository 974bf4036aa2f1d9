package tracy

import (
	"sync/atomic"

	"github.com/tracygo/tracy/internal/binding"
)

// FrameMark delimits the end of the primary frame, for applications with a
// rendering or simulation loop. Insert it once per iteration, typically
// right after the buffer swap or tick.
func (c *Client) FrameMark() {
	if !c.active() {
		return
	}
	binding.FrameMark()
}

// FrameMarkNamed delimits the end of a secondary, named frame stream.
func (c *Client) FrameMarkNamed(name string) {
	if !c.active() {
		return
	}
	binding.FrameMarkNamed(name)
}

// Frame represents one open non-continuous frame: a frame stream whose
// iterations do not cover the whole timeline. Close it exactly once with
// End. A nil *Frame is inert.
type Frame struct {
	name  string
	ended atomic.Bool
}

// FrameScope begins a non-continuous frame on the named stream and returns
// the guard that ends it.
func (c *Client) FrameScope(name string) *Frame {
	if !c.active() {
		return nil
	}
	binding.FrameMarkStart(name)
	return &Frame{name: name}
}

// End closes the non-continuous frame. Later calls are no-ops.
func (f *Frame) End() {
	if f == nil || !f.ended.CompareAndSwap(false, true) {
		return
	}
	binding.FrameMarkEnd(f.name)
}

// FrameImage associates a thumbnail with a recent frame. The image must be
// RGBA, its width and height divisible by four, and the whole payload under
// 256 KiB. offset says how many frame marks ago the image was captured;
// flip requests a vertical flip at display time, for origin-at-bottom
// sources such as OpenGL textures.
func (c *Client) FrameImage(rgba []byte, width, height uint16, offset uint8, flip bool) {
	if !c.active() {
		return
	}
	if int(width)%4 != 0 || int(height)%4 != 0 {
		return
	}
	if len(rgba) != int(width)*int(height)*4 {
		return
	}
	binding.FrameImage(rgba, width, height, offset, flip)
}
