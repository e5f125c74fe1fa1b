package flush

import (
	"log/slog"
	"time"

	"github.com/NeowayLabs/fb"
)

// DefaultRefresh is the renderer tick period, about 24Hz.
const DefaultRefresh = 41 * time.Millisecond

type (
	// Display is what a renderer exposes to its flush callback.
	Display interface {
		// FlushReady tells the renderer the draw buffer may be reused.
		FlushReady()
		UserData() any
	}

	// Callback receives a dirty area and its pixels, row-major.
	Callback func(disp Display, area Area, px []uint16)

	// Adapter writes flushed areas to the *fb.Display stored as the
	// renderer's user data.
	Adapter struct {
		// Latency is slept after each area to pace the output like a slow
		// panel. Zero disables it.
		Latency time.Duration
		// VSync waits for the vertical retrace before signalling ready.
		VSync   bool

		logger    *slog.Logger
		vsyncFail bool
	}
)

// NewAdapter returns an adapter pacing flushes by half a refresh period.
func NewAdapter(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		Latency: DefaultRefresh / 2,
		logger:  logger,
	}
}

// Callback returns a.Flush as a Callback value.
func (a *Adapter) Callback() Callback { return a.Flush }

// Flush copies px into the area pixel by pixel and signals completion.
func (a *Adapter) Flush(disp Display, area Area, px []uint16) {
	defer disp.FlushReady()

	logger := a.logger
	if logger == nil {
		logger = slog.Default()
	}
	screen, ok := disp.UserData().(*fb.Display)
	if !ok || screen == nil {
		logger.Error("flush without framebuffer user data", "area", area.Rect())
		return
	}
	if n := area.Size(); len(px) < n {
		logger.Warn("short pixel buffer", "area", area.Rect(), "want", n, "got", len(px))
	}

	i := 0
	for y := area.Y1; y <= area.Y2; y++ {
		for x := area.X1; x <= area.X2; x++ {
			if i >= len(px) {
				break
			}
			screen.SetPixel(int(x), int(y), fb.RGB565(px[i]))
			i++
		}
	}

	if a.Latency > 0 {
		time.Sleep(a.Latency)
	}
	if a.VSync && !a.vsyncFail {
		if err := screen.WaitForVSync(); err != nil {
			// most fbdev drivers lack FBIO_WAITFORVSYNC, stop asking
			a.vsyncFail = true
			logger.Debug("vsync unavailable", "err", err)
		}
	}
}
