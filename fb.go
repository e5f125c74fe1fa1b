package fb

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"unsafe"

	"github.com/go-errors/errors"
	"launchpad.net/gommap"

	"github.com/NeowayLabs/fb/screen"
)

// DefaultPath is the device opened by OpenDefault.
const DefaultPath = "/dev/fb0"

type (
	// Display is a framebuffer device mapped into memory. All fields are set
	// once by Open and stay fixed until Close.
	Display struct {
		file *os.File
		Fix  screen.FixScreenInfo
		Var  screen.VarScreenInfo

		Pixels     int // xres * yres
		BufferSize int // Pixels * bytes per pixel

		mem    []byte
		pix    []uint16
		unmap  func() error
		logger *slog.Logger
		closed bool
	}

	Option func(*Display)
)

// WithLogger sets the logger used to report the device geometry.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Display) {
		if logger != nil {
			d.logger = logger
		}
	}
}

func OpenDefault(opts ...Option) (*Display, error) {
	return Open(DefaultPath, opts...)
}

// Open maps the framebuffer at path. Errors are *InitError values wrapped
// with a stack trace; the file is closed on every failure path.
func Open(path string, opts ...Option) (*Display, error) {
	d := newDisplay(opts)

	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, initError(StageOpen, path, err)
	}

	finfo, err := screen.GetFixScreenInfo(file)
	if err != nil {
		file.Close()
		return nil, initError(StageFixInfo, path, err)
	}

	vinfo, err := screen.GetVarScreenInfo(file)
	if err != nil {
		file.Close()
		return nil, initError(StageVarInfo, path, err)
	}

	d.file = file
	d.Fix = *finfo
	d.Var = *vinfo
	d.logGeometry(path)

	if stage, err := d.setGeometry(); err != nil {
		file.Close()
		return nil, initError(stage, path, err)
	}

	mmap, err := gommap.MapAt(0, uintptr(file.Fd()), 0, int64(d.BufferSize),
		gommap.PROT_READ|gommap.PROT_WRITE, gommap.MAP_SHARED)
	if err != nil {
		file.Close()
		return nil, initError(StageMap, path, err)
	}
	d.setMemory(mmap)
	d.unmap = mmap.UnsafeUnmap

	d.logger.Info("mapped framebuffer", "pixels", d.Pixels, "bytes", d.BufferSize)
	return d, nil
}

// FromMemory builds a Display over caller owned memory instead of a device,
// applying the same geometry checks as Open. Close releases nothing.
func FromMemory(fix screen.FixScreenInfo, vinfo screen.VarScreenInfo, mem []byte, opts ...Option) (*Display, error) {
	d := newDisplay(opts)
	d.Fix = fix
	d.Var = vinfo
	if _, err := d.setGeometry(); err != nil {
		return nil, err
	}
	if len(mem) < d.BufferSize {
		return nil, errors.Errorf("memory too small: %d < %d", len(mem), d.BufferSize)
	}
	d.setMemory(mem[:d.BufferSize])
	return d, nil
}

func newDisplay(opts []Option) *Display {
	d := &Display{logger: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Display) setGeometry() (Stage, error) {
	size, err := checkSize(&d.Fix, &d.Var)
	if err != nil {
		return StageSize, err
	}
	if d.Var.BitsPerPixel != 16 {
		return StageFormat, errors.Wrap(fmt.Errorf("%d bits per pixel: %w",
			d.Var.BitsPerPixel, ErrUnsupportedFormat), 0)
	}
	d.Pixels = int(d.Var.XRes) * int(d.Var.YRes)
	d.BufferSize = size
	return 0, nil
}

func (d *Display) setMemory(mem []byte) {
	d.mem = mem
	if d.Pixels > 0 {
		d.pix = unsafe.Slice((*uint16)(unsafe.Pointer(&mem[0])), d.Pixels)
	}
}

// checkSize returns xres * yres * bits_per_pixel/8 and fails when that
// exceeds the memory the driver reports.
func checkSize(fix *screen.FixScreenInfo, vinfo *screen.VarScreenInfo) (int, error) {
	size := int(vinfo.XRes) * int(vinfo.YRes) * int(vinfo.BitsPerPixel/8)
	if size > int(fix.SmemLen) {
		return 0, errors.Wrap(fmt.Errorf("calculated size %d > framebuffer size %d: %w",
			size, fix.SmemLen, ErrSizeMismatch), 0)
	}
	if size == 0 {
		return 0, errors.Errorf("empty framebuffer geometry %dx%d", vinfo.XRes, vinfo.YRes)
	}
	return size, nil
}

func (d *Display) logGeometry(path string) {
	d.logger.Info("framebuffer geometry",
		"device", path,
		"id", d.Fix.Name(),
		"mem", d.Fix.SmemLen,
		"line_length", d.Fix.LineLength,
		"xres", d.Var.XRes,
		"yres", d.Var.YRes,
		"bits_per_pixel", d.Var.BitsPerPixel,
		"rgb565", d.Var.IsRGB565(),
	)
}

// Close unmaps the framebuffer and closes the device. Calling it again is a
// no-op.
func (d *Display) Close() error {
	if d == nil || d.closed {
		return nil
	}
	d.closed = true
	d.pix = nil
	d.mem = nil

	var errs []error
	if d.unmap != nil {
		errs = append(errs, d.unmap())
	}
	if d.file != nil {
		errs = append(errs, d.file.Close())
	}
	if err := errors.Join(errs...); err != nil {
		return errors.Wrap(err, 0)
	}
	return nil
}

func (d *Display) Width() int  { return int(d.Var.XRes) }
func (d *Display) Height() int { return int(d.Var.YRes) }

func (d *Display) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.Width(), d.Height())
}

// File returns the underlying device, nil for memory backed displays.
func (d *Display) File() *os.File { return d.file }

// Bytes exposes the mapped memory.
func (d *Display) Bytes() []byte { return d.mem }

// Blank sets the device blanking level (screen.Blank* constants).
func (d *Display) Blank(level int) error {
	if err := d.deviceErr(); err != nil {
		return err
	}
	if err := screen.Blank(d.file, level); err != nil {
		return errors.Wrap(err, 0)
	}
	return nil
}

// WaitForVSync blocks until the next vertical retrace.
func (d *Display) WaitForVSync() error {
	if err := d.deviceErr(); err != nil {
		return err
	}
	if err := screen.WaitForVSync(d.file); err != nil {
		return errors.Wrap(err, 0)
	}
	return nil
}

func (d *Display) deviceErr() error {
	if d.closed {
		return ErrClosed
	}
	if d.file == nil {
		return ErrNoDevice
	}
	return nil
}
