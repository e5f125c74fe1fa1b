package ioctl

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// To decode a hex IOCTL code:
//
// Most architectures use this generic format, but check
// include/ARCH/ioctl.h for specifics, e.g. powerpc
// uses 3 bits to encode read/write and 13 bits for size.
//
//  bits    meaning
//  31-30	00 - no parameters: uses _IO macro
// 	10 - read: _IOR
// 	01 - write: _IOW
// 	11 - read/write: _IOWR
//
//  29-16	size of arguments
//
//  15-8	ascii character supposedly
// 	unique to each driver
//
//  7-0	function #
//
// The classic fbdev requests (FBIOGET_VSCREENINFO and friends) predate this
// scheme and are plain 0x46xx numbers; only the newer ones such as
// FBIO_WAITFORVSYNC carry direction and size.
// source: https://www.kernel.org/doc/Documentation/ioctl/ioctl-decoding.txt

const (
	None  = uint8(0x0)
	Write = uint8(0x1)
	Read  = uint8(0x2)
)

func NewCode(typ uint8, sz uint16, uniq, fn uint8) uint32 {
	var code uint32
	if typ > Write|Read {
		panic(fmt.Errorf("invalid ioctl code value: %d\n", typ))
	}

	if sz > 1<<14-1 {
		panic(fmt.Errorf("invalid ioctl size value: %d\n", sz))
	}

	code = code | (uint32(typ) << 30)
	code = code | (uint32(sz) << 16) // sz has 14bits
	code = code | (uint32(uniq) << 8)
	code = code | uint32(fn)
	return code
}

// Dir, Size, Type and Nr split a code built by NewCode back into its fields.
func Dir(code uint32) uint8   { return uint8(code >> 30) }
func Size(code uint32) uint16 { return uint16((code >> 16) & 0x3fff) }
func Type(code uint32) uint8  { return uint8(code >> 8) }
func Nr(code uint32) uint8    { return uint8(code) }

func Do(fd, cmd, ptr uintptr) error {
	_, _, errcode := unix.Syscall(unix.SYS_IOCTL, fd, cmd, ptr)
	if errcode != 0 {
		return errcode
	}
	return nil
}
