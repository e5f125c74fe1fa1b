package fb

import (
	"image"
	"image/color"
	"image/draw"
	"unsafe"
)

var _ draw.Image = (*Display)(nil)

// Clear fills the whole screen with c.
func (d *Display) Clear(c RGB565) {
	fillPixels(d.pix, c)
}

// Fill paints the rectangle spanned by (x1, y1) and (x2, y2), max corner
// exclusive. Corners may come in any order and are clamped to the screen.
func (d *Display) Fill(c RGB565, x1, y1, x2, y2 int) {
	if d.pix == nil {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}

	xres, yres := d.Width(), d.Height()
	x1 = max(x1, 0)
	x2 = min(x2, xres)
	y1 = max(y1, 0)
	y2 = min(y2, yres)

	width := x2 - x1
	if width <= 0 {
		return
	}
	for y := y1; y < y2; y++ {
		start := y*xres + x1
		fillPixels(d.pix[start:start+width], c)
	}
}

// FillRect is Fill for an image.Rectangle.
func (d *Display) FillRect(c RGB565, r image.Rectangle) {
	d.Fill(c, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// SetPixel writes one pixel. Coordinates outside the screen are ignored.
func (d *Display) SetPixel(x, y int, c RGB565) {
	if x < 0 || x >= d.Width() || y < 0 || y >= d.Height() || d.pix == nil {
		return
	}
	d.pix[y*d.Width()+x] = uint16(c)
}

// Pixel reads one pixel, Black when out of bounds.
func (d *Display) Pixel(x, y int) RGB565 {
	if x < 0 || x >= d.Width() || y < 0 || y >= d.Height() || d.pix == nil {
		return Black
	}
	return RGB565(d.pix[y*d.Width()+x])
}

func (d *Display) ColorModel() color.Model { return RGB565Model }

func (d *Display) At(x, y int) color.Color { return d.Pixel(x, y) }

func (d *Display) Set(x, y int, c color.Color) {
	if c == nil {
		return
	}
	d.SetPixel(x, y, ToRGB565(c))
}

// fillPixels sets every element of dst to c. Black and white are plain byte
// fills; other colors are stored two pixels per 32 bit word.
func fillPixels(dst []uint16, c RGB565) {
	if len(dst) == 0 {
		return
	}
	switch c {
	case Black:
		clear(dst)
		return
	case White:
		b := unsafe.Slice((*byte)(unsafe.Pointer(&dst[0])), len(dst)*2)
		for i := range b {
			b[i] = 0xFF
		}
		return
	}

	v := uint16(c)
	// word stores need 4 byte alignment on some targets
	if uintptr(unsafe.Pointer(&dst[0]))&3 != 0 {
		dst[0] = v
		dst = dst[1:]
		if len(dst) == 0 {
			return
		}
	}

	n32 := len(dst) / 2
	if n32 > 0 {
		vv := uint32(v)<<16 | uint32(v)
		words := unsafe.Slice((*uint32)(unsafe.Pointer(&dst[0])), n32)
		for i := range words {
			words[i] = vv
		}
	}
	if len(dst)&1 == 1 {
		dst[len(dst)-1] = v
	}
}
