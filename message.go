package tracy

import "github.com/tracygo/tracy/internal/binding"

// Message emits a timestamped text message on the profiler timeline.
// Messages are fire-and-forget: they have no identity beyond their
// timestamp, and no ordering guarantee across threads beyond what the
// native timestamp source provides.
func (c *Client) Message(text string) {
	if !c.active() {
		return
	}
	binding.Message(text, getCallstackDepth())
}

// MessageColor is Message with a color, specified as 0xRRGGBB.
func (c *Client) MessageColor(text string, rgb uint32) {
	if !c.active() {
		return
	}
	binding.MessageColor(text, rgb, getCallstackDepth())
}
