package fb_test

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeowayLabs/fb"
	"github.com/NeowayLabs/fb/screen"
)

func rgb565Info(w, h int) (screen.FixScreenInfo, screen.VarScreenInfo) {
	fix := screen.FixScreenInfo{
		SmemLen:    uint32(w * h * 2),
		LineLength: uint32(w * 2),
		Visual:     screen.VisualTrueColor,
	}
	vinfo := screen.VarScreenInfo{
		XRes:         uint32(w),
		YRes:         uint32(h),
		XResVirtual:  uint32(w),
		YResVirtual:  uint32(h),
		BitsPerPixel: 16,
		Red:          screen.BitField{Offset: 11, Length: 5},
		Green:        screen.BitField{Offset: 5, Length: 6},
		Blue:         screen.BitField{Offset: 0, Length: 5},
	}
	return fix, vinfo
}

func newMemoryDisplay(t *testing.T, w, h int) *fb.Display {
	t.Helper()
	fix, vinfo := rgb565Info(w, h)
	d, err := fb.FromMemory(fix, vinfo, make([]byte, w*h*2))
	require.NoError(t, err)
	return d
}

// pixels decodes the raw mapping the way the device sees it.
func pixels(d *fb.Display) []uint16 {
	b := d.Bytes()
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = binary.NativeEndian.Uint16(b[i*2:])
	}
	return out
}

func TestClearPattern(t *testing.T) {
	colors := []fb.RGB565{fb.Black, fb.White, fb.Red, fb.Green, fb.Blue, fb.Yellow, 0x1234, 0x0001}
	sizes := []image.Point{{4, 2}, {3, 3}, {1, 1}, {320, 240}, {7, 5}}

	for _, sz := range sizes {
		d := newMemoryDisplay(t, sz.X, sz.Y)
		for _, c := range colors {
			d.Clear(c)
			want := make([]uint16, sz.X*sz.Y)
			for i := range want {
				want[i] = uint16(c)
			}
			assert.Equal(t, want, pixels(d), "%dx%d color %#04x", sz.X, sz.Y, uint16(c))
		}
	}
}

func TestClearByteFastPath(t *testing.T) {
	d := newMemoryDisplay(t, 5, 3)
	d.Clear(fb.White)
	for _, b := range d.Bytes() {
		require.Equal(t, byte(0xFF), b)
	}
	d.Clear(fb.Black)
	for _, b := range d.Bytes() {
		require.Equal(t, byte(0), b)
	}
}

// expectRect checks that exactly the pixels inside r hold c and the rest
// still hold bg.
func expectRect(t *testing.T, d *fb.Display, r image.Rectangle, c, bg fb.RGB565) {
	t.Helper()
	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			want := bg
			if (image.Point{x, y}).In(r) {
				want = c
			}
			if got := d.Pixel(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#04x, want %#04x", x, y, uint16(got), uint16(want))
			}
		}
	}
}

func TestFillCornerOrderings(t *testing.T) {
	want := image.Rect(2, 1, 7, 4)
	corners := [][4]int{
		{2, 1, 7, 4},
		{7, 1, 2, 4},
		{2, 4, 7, 1},
		{7, 4, 2, 1},
	}
	for _, c := range corners {
		d := newMemoryDisplay(t, 10, 6)
		d.Clear(fb.Blue)
		d.Fill(fb.Yellow, c[0], c[1], c[2], c[3])
		expectRect(t, d, want, fb.Yellow, fb.Blue)
	}
}

func TestFillClamp(t *testing.T) {
	for _, tc := range []struct {
		name           string
		x1, y1, x2, y2 int
		want           image.Rectangle
	}{
		{"covers screen", -5, -5, 100, 100, image.Rect(0, 0, 10, 6)},
		{"reversed and oversized", 100, 100, -5, -5, image.Rect(0, 0, 10, 6)},
		{"left overhang", -3, 2, 2, 3, image.Rect(0, 2, 2, 3)},
		{"bottom right overhang", 8, 4, 15, 9, image.Rect(8, 4, 10, 6)},
		{"fully right", 12, 0, 20, 6, image.Rectangle{}},
		{"fully below", 0, 7, 10, 9, image.Rectangle{}},
		{"fully left", -9, 0, -1, 6, image.Rectangle{}},
		{"zero width", 3, 0, 3, 6, image.Rectangle{}},
		{"zero height", 0, 2, 10, 2, image.Rectangle{}},
		{"odd start odd width", 1, 1, 4, 2, image.Rect(1, 1, 4, 2)},
		{"single pixel", 9, 5, 10, 6, image.Rect(9, 5, 10, 6)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d := newMemoryDisplay(t, 10, 6)
			d.Clear(fb.Blue)
			d.Fill(0x1234, tc.x1, tc.y1, tc.x2, tc.y2)
			expectRect(t, d, tc.want, 0x1234, fb.Blue)
		})
	}
}

func TestFillFastPaths(t *testing.T) {
	d := newMemoryDisplay(t, 9, 4)
	d.Clear(0x0841)
	d.Fill(fb.White, 1, 1, 8, 3)
	expectRect(t, d, image.Rect(1, 1, 8, 3), fb.White, 0x0841)
	d.Fill(fb.Black, 1, 1, 8, 3)
	expectRect(t, d, image.Rect(1, 1, 8, 3), fb.Black, 0x0841)
}

func TestSetPixel(t *testing.T) {
	d := newMemoryDisplay(t, 4, 3)
	d.SetPixel(3, 2, fb.Red)
	assert.Equal(t, fb.Red, d.Pixel(3, 2))

	before := pixels(d)
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}} {
		d.SetPixel(p.X, p.Y, fb.Green)
	}
	assert.Equal(t, before, pixels(d))
	assert.Equal(t, fb.Black, d.Pixel(-1, 0))
}

func TestDrawImage(t *testing.T) {
	d := newMemoryDisplay(t, 6, 4)
	assert.Equal(t, image.Rect(0, 0, 6, 4), d.Bounds())

	draw.Draw(d, image.Rect(1, 1, 3, 3), image.NewUniform(color.RGBA{R: 0xff, A: 0xff}), image.Point{}, draw.Src)
	expectRect(t, d, image.Rect(1, 1, 3, 3), fb.Red, fb.Black)

	r, g, b, a := d.At(1, 1).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0, 0, 0xffff}, [4]uint32{r, g, b, a})
}

func TestClose(t *testing.T) {
	d := newMemoryDisplay(t, 4, 4)
	assert.ErrorIs(t, d.Blank(screen.BlankNormal), fb.ErrNoDevice)
	assert.ErrorIs(t, d.WaitForVSync(), fb.ErrNoDevice)

	require.NoError(t, d.Close())
	require.NoError(t, d.Close())

	// drawing after close is dropped
	d.Clear(fb.White)
	d.Fill(fb.White, 0, 0, 4, 4)
	d.SetPixel(1, 1, fb.White)
	assert.Equal(t, fb.Black, d.Pixel(1, 1))
	assert.ErrorIs(t, d.Blank(screen.BlankNormal), fb.ErrClosed)
}

func TestFromMemoryRejects(t *testing.T) {
	fix, vinfo := rgb565Info(8, 8)

	_, err := fb.FromMemory(fix, vinfo, make([]byte, 10))
	assert.Error(t, err)

	rgb32 := vinfo
	rgb32.BitsPerPixel = 32
	fix32 := fix
	fix32.SmemLen *= 2
	_, err = fb.FromMemory(fix32, rgb32, make([]byte, 8*8*4))
	assert.ErrorIs(t, err, fb.ErrUnsupportedFormat)

	small := fix
	small.SmemLen = 8*8*2 - 1
	_, err = fb.FromMemory(small, vinfo, make([]byte, 8*8*2))
	assert.ErrorIs(t, err, fb.ErrSizeMismatch)
}

func TestOpenErrors(t *testing.T) {
	_, err := fb.Open("/nonexistent/fb0")
	var initErr *fb.InitError
	require.True(t, errors.As(err, &initErr))
	assert.Equal(t, fb.StageOpen, initErr.Stage)
	assert.Equal(t, 1, initErr.ExitCode())

	_, err = fb.Open(os.DevNull)
	require.True(t, errors.As(err, &initErr))
	assert.Equal(t, fb.StageFixInfo, initErr.Stage)
	assert.Equal(t, 2, initErr.ExitCode())
	assert.Contains(t, err.Error(), "reading fixed info")
}

func TestOpenMissingDoesNotCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fb0")
	_, err := fb.Open(path)
	var initErr *fb.InitError
	require.True(t, errors.As(err, &initErr))
	assert.Equal(t, fb.StageOpen, initErr.Stage)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestOpenDevice(t *testing.T) {
	if _, err := os.Stat(fb.DefaultPath); err != nil {
		t.Skipf("no framebuffer device: %s", err)
	}
	d, err := fb.OpenDefault()
	if err != nil {
		t.Skipf("cannot open %s: %s", fb.DefaultPath, err)
	}
	defer d.Close()

	assert.LessOrEqual(t, d.BufferSize, int(d.Fix.SmemLen))
	assert.Equal(t, d.Width()*d.Height(), d.Pixels)
	t.Logf("Driver: %s %dx%d", d.Fix.Name(), d.Width(), d.Height())
}
