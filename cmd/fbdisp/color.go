package main

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/go-errors/errors"

	"github.com/NeowayLabs/fb"
)

var namedColors = map[string]fb.RGB565{
	`black`:  fb.Black,
	`white`:  fb.White,
	`red`:    fb.Red,
	`green`:  fb.Green,
	`blue`:   fb.Blue,
	`yellow`: fb.Yellow,
}

// parseColor accepts a color name, a 4 digit RGB565 value (0xf800, f800) or
// a 6 digit RGB888 value (#rrggbb, rrggbb). A # prefix always means RGB888.
func parseColor(s string) (fb.RGB565, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	lower := strings.ToLower(s)
	rgb888 := strings.HasPrefix(lower, `#`)
	hex := strings.TrimPrefix(strings.TrimPrefix(lower, `0x`), `#`)
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, errors.Errorf("invalid color %q", s)
	}
	switch len(hex) {
	case 4:
		if rgb888 {
			return 0, errors.Errorf("invalid color %q: # wants 6 hex digits (#rrggbb)", s)
		}
		return fb.RGB565(v), nil
	case 6:
		return fb.ToRGB565(color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}), nil
	}
	return 0, errors.Errorf("invalid color %q: want 4 (RGB565) or 6 (RGB888) hex digits", s)
}
