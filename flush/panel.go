package flush

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/go-errors/errors"
	xdraw "golang.org/x/image/draw"

	"github.com/NeowayLabs/fb"
)

// BufferFraction sizes the default draw buffers to 1/BufferFraction of the
// screen.
const BufferFraction = 10

var (
	ErrNoCallback     = errors.New("flush callback not set")
	ErrFlushNotReady  = errors.New("flush callback returned without FlushReady")
	ErrBufferTooSmall = errors.New("draw buffer smaller than one row")
)

// Panel is the renderer side of the flush contract: it converts regions of a
// rendered image into a draw buffer and hands them to the callback, one band
// of rows at a time, alternating between two buffers.
type Panel struct {
	width, height int

	bufs     [2][]uint16
	active   int
	callback Callback
	userData any
	ready    bool
	logger   *slog.Logger
}

var _ Display = (*Panel)(nil)

func NewPanel(width, height int, logger *slog.Logger) *Panel {
	if logger == nil {
		logger = slog.Default()
	}
	n := max(width*height/BufferFraction, width)
	return &Panel{
		width:  width,
		height: height,
		bufs:   [2][]uint16{make([]uint16, n), make([]uint16, n)},
		ready:  true,
		logger: logger,
	}
}

// SetBuffers replaces the draw buffers. second may be nil to render into a
// single buffer.
func (p *Panel) SetBuffers(first, second []uint16) {
	p.bufs = [2][]uint16{first, second}
	p.active = 0
}

func (p *Panel) SetFlushCallback(cb Callback) { p.callback = cb }
func (p *Panel) SetUserData(v any)            { p.userData = v }
func (p *Panel) UserData() any                { return p.userData }
func (p *Panel) FlushReady()                  { p.ready = true }

func (p *Panel) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// Flush sends the part of img inside r to the callback.
func (p *Panel) Flush(img image.Image, r image.Rectangle) error {
	r = r.Intersect(p.Bounds()).Intersect(img.Bounds())
	if r.Empty() {
		return nil
	}
	if p.callback == nil {
		return ErrNoCallback
	}

	rows := len(p.bufs[0]) / r.Dx()
	double := p.bufs[1] != nil
	if double {
		rows = min(rows, len(p.bufs[1])/r.Dx())
	}
	if rows == 0 {
		return errors.Wrap(ErrBufferTooSmall, 0)
	}

	for y := r.Min.Y; y < r.Max.Y; y += rows {
		band := image.Rect(r.Min.X, y, r.Max.X, min(y+rows, r.Max.Y))
		buf := p.bufs[p.active][:band.Dx()*band.Dy()]
		dst := &bandImage{pix: buf, rect: band}
		xdraw.Copy(dst, band.Min, img, band, xdraw.Src, nil)

		p.ready = false
		p.callback(p, AreaFromRect(band), buf)
		if !p.ready {
			return errors.Wrap(ErrFlushNotReady, 0)
		}
		if double {
			p.active ^= 1
		}
	}
	p.logger.Debug("flushed", "rect", r, "rows_per_band", rows)
	return nil
}

// bandImage is an RGB565 draw target over one draw buffer.
type bandImage struct {
	pix  []uint16
	rect image.Rectangle
}

func (b *bandImage) ColorModel() color.Model { return fb.RGB565Model }
func (b *bandImage) Bounds() image.Rectangle { return b.rect }

func (b *bandImage) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(b.rect)) {
		return fb.Black
	}
	return fb.RGB565(b.pix[b.offset(x, y)])
}

func (b *bandImage) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(b.rect)) {
		return
	}
	b.pix[b.offset(x, y)] = uint16(fb.ToRGB565(c))
}

func (b *bandImage) offset(x, y int) int {
	return (y-b.rect.Min.Y)*b.rect.Dx() + (x - b.rect.Min.X)
}
