package tracy_test

import (
	"testing"

	"github.com/tracygo/tracy"
)

func TestFrames(t *testing.T) {
	c := tracy.Start()

	t.Run("marks", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			c.FrameMark()
			c.FrameMarkNamed("physics")
		}
	})

	t.Run("scoped frame ends once", func(t *testing.T) {
		f := c.FrameScope("load")
		f.End()
		f.End()

		var nilFrame *tracy.Frame
		nilFrame.End()
	})

	t.Run("frame images", func(t *testing.T) {
		// 16x12 RGBA thumbnail, both dimensions multiples of 4.
		c.FrameImage(make([]byte, 16*12*4), 16, 12, 0, false)

		// Rejected without panicking: dimension not a multiple of 4,
		// then a buffer of the wrong length.
		c.FrameImage(make([]byte, 10*12*4), 10, 12, 0, false)
		c.FrameImage(make([]byte, 8), 16, 12, 0, true)
	})
}

func TestPlots(t *testing.T) {
	c := tracy.Start()

	c.ConfigurePlot("heap", tracy.PlotConfig{Format: tracy.PlotMemory, Fill: true, Color: 0x2266AA})
	c.ConfigurePlot("load", tracy.PlotConfig{Format: tracy.PlotPercentage, Step: true})

	for i := 0; i < 10; i++ {
		c.Plot("heap", float64(i)*1024)
		c.PlotFloat32("load", float32(i)/10)
		c.PlotInt("goroutines", int64(i))
	}
}

func TestMessagesAndMemory(t *testing.T) {
	c := tracy.Start()

	c.Message("plain")
	c.MessageColor("colored", 0xDD4444)
	c.AppInfo("tracy-go test run")
	c.SetThreadName("tester")

	c.MemAlloc(0xDEAD0000, 128)
	c.MemFree(0xDEAD0000)
	c.MemAllocNamed(0xBEEF0000, 256, "arena")
	c.MemFreeNamed(0xBEEF0000, "arena")
}
