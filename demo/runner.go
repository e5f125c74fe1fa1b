package demo

import (
	"context"
	"image"
	"log/slog"
	"time"

	"github.com/go-errors/errors"
)

// Flusher receives rendered regions, see flush.Panel.
type Flusher interface {
	Flush(img image.Image, r image.Rectangle) error
}

// Runner ticks a scene and flushes what changed, like a GUI timer handler.
type Runner struct {
	Scene   *Stress
	Out     Flusher
	Refresh time.Duration
	// Frames stops the loop after that many frames when > 0.
	Frames  int
	Logger  *slog.Logger
}

// Run blocks until ctx is done, Frames are rendered or a flush fails.
func (r *Runner) Run(ctx context.Context) error {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if r.Refresh <= 0 {
		return errors.Errorf("refresh period must be positive, got %s", r.Refresh)
	}
	ticker := time.NewTicker(r.Refresh)
	defer ticker.Stop()

	start := time.Now()
	for n := 0; r.Frames <= 0 || n < r.Frames; n++ {
		dirty := r.Scene.Step(r.Refresh)
		if err := r.Out.Flush(r.Scene.Image(), dirty); err != nil {
			return err
		}
		logger.Debug("frame", "n", r.Scene.Frame(), "dirty", dirty)

		if r.Frames > 0 && n+1 == r.Frames {
			break
		}
		select {
		case <-ctx.Done():
			logger.Info("demo stopped", "frames", r.Scene.Frame(), "elapsed", time.Since(start))
			return nil
		case <-ticker.C:
		}
	}
	logger.Info("demo finished", "frames", r.Scene.Frame(), "elapsed", time.Since(start))
	return nil
}
