package tracy

// Package-level shorthands for the common case of a single, running
// session. Each resolves the running client on every call and no-ops when
// there is none, so files can be instrumented without threading a *Client
// through.

// Zone opens a zone on the running session; see Client.Zone.
func Zone(name string) *Zone {
	c, _ := Running()
	return c.open(name, 0, getCallstackDepth(), 3)
}

// ZoneLoc opens a zone against a pre-allocated Location on the running
// session; see Client.ZoneLoc.
func ZoneLoc(loc *Location) *Zone {
	c, _ := Running()
	return c.ZoneLoc(loc)
}

// Message emits a message on the running session; see Client.Message.
func Message(text string) {
	c, _ := Running()
	c.Message(text)
}

// Plot emits a sample on the running session; see Client.Plot.
func Plot(name string, value float64) {
	c, _ := Running()
	c.Plot(name, value)
}

// FrameMark marks the primary frame on the running session; see
// Client.FrameMark.
func FrameMark() {
	c, _ := Running()
	c.FrameMark()
}

// FrameMarkNamed marks a secondary frame on the running session; see
// Client.FrameMarkNamed.
func FrameMarkNamed(name string) {
	c, _ := Running()
	c.FrameMarkNamed(name)
}
