package tracy

import "github.com/tracygo/tracy/internal/binding"

// PlotFormat selects how the viewer renders the values of a plot series.
type PlotFormat int32

const (
	// PlotNumber renders values as plain numbers.
	PlotNumber PlotFormat = iota
	// PlotMemory renders values as byte sizes.
	PlotMemory
	// PlotPercentage renders values as percentages.
	PlotPercentage
	// PlotWatt renders values as power draw.
	PlotWatt
)

// PlotConfig describes the presentation of a plot series. Zero value:
// numeric, continuous line, no fill, default color.
type PlotConfig struct {
	Format PlotFormat
	// Step draws the series as a staircase rather than a continuous line.
	Step bool
	// Fill shades the area under the line.
	Fill bool
	// Color is 0xRRGGBB; zero picks the viewer default.
	Color uint32
}

// ConfigurePlot sets the presentation of the named plot series. Series
// exist implicitly from their first sample; configuration is optional and
// may happen before or after that.
func (c *Client) ConfigurePlot(name string, cfg PlotConfig) {
	if !c.active() {
		return
	}
	binding.PlotConfig(name, int32(cfg.Format), b2i(cfg.Step), b2i(cfg.Fill), cfg.Color)
}

// Plot emits a sample on the named series, timestamped now. Series are
// created implicitly on first use and live for the process lifetime, so the
// set of distinct names must be bounded by the caller.
func (c *Client) Plot(name string, value float64) {
	if !c.active() {
		return
	}
	binding.Plot(name, value)
}

// PlotFloat32 is Plot for float32 samples, saving the wire width.
func (c *Client) PlotFloat32(name string, value float32) {
	if !c.active() {
		return
	}
	binding.PlotFloat(name, value)
}

// PlotInt is Plot for integer samples.
func (c *Client) PlotInt(name string, value int64) {
	if !c.active() {
		return
	}
	binding.PlotInt(name, value)
}

func b2i(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
