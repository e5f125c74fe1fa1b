// Package screen wraps the fbdev screen information ioctls from <linux/fb.h>.
package screen

import (
	"bytes"
	"os"
	"unsafe"

	"github.com/NeowayLabs/fb/ioctl"
)

const (
	IDLen = 16

	// Visual types (FB_VISUAL_*)
	VisualMono01            = 0
	VisualMono10            = 1
	VisualTrueColor         = 2
	VisualPseudoColor       = 3
	VisualDirectColor       = 4
	VisualStaticPseudoColor = 5
	VisualFourCC            = 6

	// Blanking levels (FB_BLANK_*)
	BlankUnblank   = 0
	BlankNormal    = 1
	BlankVSync     = 2
	BlankHSync     = 3
	BlankPowerdown = 4
)

type (
	// BitField describes where one color component lives inside a pixel.
	BitField struct {
		Offset   uint32 // beginning of bitfield
		Length   uint32 // length of bitfield
		MsbRight uint32 // != 0 : Most significant bit is right
	}

	// FixScreenInfo is struct fb_fix_screeninfo.
	FixScreenInfo struct {
		ID         [IDLen]byte
		SmemStart  uintptr // Start of frame buffer mem (physical address)
		SmemLen    uint32  // Length of frame buffer mem
		Type       uint32
		TypeAux    uint32
		Visual     uint32
		XPanStep   uint16
		YPanStep   uint16
		YWrapStep  uint16
		LineLength uint32 // length of a line in bytes
		MmioStart  uintptr
		MmioLen    uint32
		Accel      uint32

		Capabilities uint16
		reserved     [2]uint16
	}

	// VarScreenInfo is struct fb_var_screeninfo.
	VarScreenInfo struct {
		XRes, YRes               uint32 // visible resolution
		XResVirtual, YResVirtual uint32
		XOffset, YOffset         uint32 // offset from virtual to visible

		BitsPerPixel uint32
		Grayscale    uint32 // 0 = color, 1 = grayscale, >1 = FOURCC

		Red, Green, Blue, Transp BitField

		NonStd   uint32
		Activate uint32

		Height, Width uint32 // in mm

		accelFlags uint32

		// Timing: All values in pixclocks, except pixclock (of course)
		PixClock    uint32
		LeftMargin  uint32
		RightMargin uint32
		UpperMargin uint32
		LowerMargin uint32
		HSyncLen    uint32
		VSyncLen    uint32
		Sync        uint32
		VMode       uint32
		Rotate      uint32
		ColorSpace  uint32

		reserved [4]uint32
	}
)

var (
	IOCTLGetVScreenInfo = uint32(0x4600)
	IOCTLPutVScreenInfo = uint32(0x4601)
	IOCTLGetFScreenInfo = uint32(0x4602)
	IOCTLBlank          = uint32(0x4611)

	// _IOW('F', 0x20, __u32)
	IOCTLWaitForVSync = ioctl.NewCode(ioctl.Write,
		uint16(unsafe.Sizeof(uint32(0))), 'F', 0x20)
)

// Name returns the driver identification string without the C padding.
func (f *FixScreenInfo) Name() string {
	return string(bytes.TrimRight(f.ID[:], "\x00"))
}

// IsRGB565 reports whether the visible mode uses the 16 bit 5-6-5 layout.
func (v *VarScreenInfo) IsRGB565() bool {
	return v.BitsPerPixel == 16 &&
		v.Red == BitField{Offset: 11, Length: 5} &&
		v.Green == BitField{Offset: 5, Length: 6} &&
		v.Blue == BitField{Offset: 0, Length: 5}
}

func GetFixScreenInfo(file *os.File) (*FixScreenInfo, error) {
	finfo := &FixScreenInfo{}
	err := ioctl.Do(uintptr(file.Fd()), uintptr(IOCTLGetFScreenInfo),
		uintptr(unsafe.Pointer(finfo)))
	if err != nil {
		return nil, err
	}
	return finfo, nil
}

func GetVarScreenInfo(file *os.File) (*VarScreenInfo, error) {
	vinfo := &VarScreenInfo{}
	err := ioctl.Do(uintptr(file.Fd()), uintptr(IOCTLGetVScreenInfo),
		uintptr(unsafe.Pointer(vinfo)))
	if err != nil {
		return nil, err
	}
	return vinfo, nil
}

// Blank sets the blanking level, one of the Blank* constants.
func Blank(file *os.File, level int) error {
	return ioctl.Do(uintptr(file.Fd()), uintptr(IOCTLBlank), uintptr(level))
}

// WaitForVSync blocks until the next vertical retrace of the first CRTC.
// Many fbdev drivers do not implement it and fail with ENOTTY.
func WaitForVSync(file *os.File) error {
	var crtc uint32
	return ioctl.Do(uintptr(file.Fd()), uintptr(IOCTLWaitForVSync),
		uintptr(unsafe.Pointer(&crtc)))
}
