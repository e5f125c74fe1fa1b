package fb

import (
	"image/color"
)

// RGB565 is a 16 bit pixel: red in the 5 most significant bits, then 6 bits
// of green and 5 bits of blue.
type RGB565 uint16

const (
	Black  RGB565 = 0x0000
	White  RGB565 = 0xFFFF
	Red    RGB565 = 0x1F << 11
	Green  RGB565 = 0x3F << 5
	Blue   RGB565 = 0x1F
	Yellow        = Red | Green
)

// NewRGB565 packs raw components. r and b are masked to 5 bits, g to 6.
func NewRGB565(r, g, b uint8) RGB565 {
	return RGB565(uint16(r&0x1F)<<11 | uint16(g&0x3F)<<5 | uint16(b&0x1F))
}

func (c RGB565) R() uint8 { return uint8(c>>11) & 0x1F }
func (c RGB565) G() uint8 { return uint8(c>>5) & 0x3F }
func (c RGB565) B() uint8 { return uint8(c) & 0x1F }

// RGBA implements color.Color. Components are scaled so that the maximum
// 5 or 6 bit value maps to 0xffff.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r8 := uint32(c.R())<<3 | uint32(c.R())>>2
	g8 := uint32(c.G())<<2 | uint32(c.G())>>4
	b8 := uint32(c.B())<<3 | uint32(c.B())>>2
	return r8<<8 | r8, g8<<8 | g8, b8<<8 | b8, 0xffff
}

var RGB565Model = color.ModelFunc(rgb565Model)

func rgb565Model(c color.Color) color.Color {
	if v, ok := c.(RGB565); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return RGB565(uint16(r>>11)<<11 | uint16(g>>10)<<5 | uint16(b>>11))
}

// ToRGB565 converts any color, dropping alpha.
func ToRGB565(c color.Color) RGB565 {
	return RGB565Model.Convert(c).(RGB565)
}
