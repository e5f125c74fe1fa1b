// Package demo renders an animated test scene for exercising the flush path.
package demo

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/fogleman/gg"
)

var palette = []color.Color{
	color.RGBA{0xf4, 0x43, 0x36, 0xff},
	color.RGBA{0x4c, 0xaf, 0x50, 0xff},
	color.RGBA{0x21, 0x96, 0xf3, 0xff},
	color.RGBA{0xff, 0xeb, 0x3b, 0xff},
	color.RGBA{0x9c, 0x27, 0xb0, 0xff},
	color.RGBA{0xff, 0xff, 0xff, 0xff},
}

var background = color.RGBA{0x10, 0x10, 0x18, 0xff}

type shape struct {
	x, y   float64 // top left
	vx, vy float64 // pixels per second
	size   float64
	circle bool
	col    color.Color
}

func (s *shape) bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(s.x))-1, int(math.Floor(s.y))-1,
		int(math.Ceil(s.x+s.size))+1, int(math.Ceil(s.y+s.size))+1,
	)
}

// Stress is a field of bouncing rectangles and circles with a frame counter.
type Stress struct {
	width, height int
	dc            *gg.Context
	shapes        []shape
	frame         int
}

func NewStress(width, height, count int, seed int64) *Stress {
	rnd := rand.New(rand.NewSource(seed))
	s := &Stress{
		width:  width,
		height: height,
		dc:     gg.NewContext(width, height),
	}
	maxSize := max(float64(min(width, height))/6, 4)
	for i := 0; i < count; i++ {
		size := 4 + rnd.Float64()*(maxSize-4)
		s.shapes = append(s.shapes, shape{
			x:      rnd.Float64() * math.Max(float64(width)-size, 0),
			y:      rnd.Float64() * math.Max(float64(height)-size, 0),
			vx:     (rnd.Float64()*2 - 1) * float64(width) / 2,
			vy:     (rnd.Float64()*2 - 1) * float64(height) / 2,
			size:   size,
			circle: i%2 == 1,
			col:    palette[i%len(palette)],
		})
	}
	return s
}

func (s *Stress) Image() image.Image { return s.dc.Image() }

func (s *Stress) Frame() int { return s.frame }

// Step advances the scene by dt, redraws it and returns the region that
// changed. The first frame is always the whole screen.
func (s *Stress) Step(dt time.Duration) image.Rectangle {
	full := image.Rect(0, 0, s.width, s.height)
	var dirty image.Rectangle
	if s.frame == 0 {
		dirty = full
	}

	secs := dt.Seconds()
	for i := range s.shapes {
		sh := &s.shapes[i]
		dirty = dirty.Union(sh.bounds())
		sh.x, sh.vx = bounce(sh.x+sh.vx*secs, sh.vx, float64(s.width)-sh.size)
		sh.y, sh.vy = bounce(sh.y+sh.vy*secs, sh.vy, float64(s.height)-sh.size)
		dirty = dirty.Union(sh.bounds())
	}
	dirty = dirty.Union(s.label())

	s.draw()
	s.frame++
	return dirty.Intersect(full)
}

func bounce(pos, v, limit float64) (float64, float64) {
	switch {
	case pos < 0:
		return -pos, -v
	case pos > limit:
		return math.Max(2*limit-pos, 0), -v
	}
	return pos, v
}

// label is the area of the frame counter.
func (s *Stress) label() image.Rectangle {
	return image.Rect(0, 0, min(s.width, 120), min(s.height, 18))
}

func (s *Stress) draw() {
	dc := s.dc
	dc.SetColor(background)
	dc.Clear()
	for _, sh := range s.shapes {
		dc.SetColor(sh.col)
		if sh.circle {
			r := sh.size / 2
			dc.DrawCircle(sh.x+r, sh.y+r, r)
		} else {
			dc.DrawRectangle(sh.x, sh.y, sh.size, sh.size)
		}
		dc.Fill()
	}
	dc.SetColor(color.White)
	dc.DrawString(fmt.Sprintf("frame %d", s.frame), 4, 13)
}
