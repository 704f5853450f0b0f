// This file is part of gslib.
//
// gslib is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gslib is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gslib.  If not, see <https://www.gnu.org/licenses/>.

// Package modes contains the table of display modes supported by the GS and
// the display position, magnification and display area required by each of
// them.
//
// The values in the table are the values written to the DISPLAY1 register
// after the CRTC has been initialised for the mode.
package modes

import (
	"fmt"
	"strings"

	"github.com/ps2homebrew/gslib/curated"
)

// Curated error patterns.
const (
	UnknownMode      = "modes: unknown display mode (%v)"
	UnsupportedWidth = "modes: width of %d is not supported by %v"
	UnknownInterlace = "modes: unknown interlace mode (%s)"
)

// Mode is a display mode. The value is the one passed to the CRTC
// initialisation syscall.
type Mode int

// List of valid Mode values.
const (
	NTSC       Mode = 0x02
	PAL        Mode = 0x03
	VGA640_60  Mode = 0x1a
	VGA640_72  Mode = 0x1b
	VGA640_75  Mode = 0x1c
	VGA640_85  Mode = 0x1d
	VGA800_56  Mode = 0x2a
	VGA800_60  Mode = 0x2b
	VGA800_72  Mode = 0x2c
	VGA800_75  Mode = 0x2d
	VGA800_85  Mode = 0x2e
	VGA1024_60 Mode = 0x3b
	VGA1024_70 Mode = 0x3c
	VGA1024_75 Mode = 0x3d
	VGA1024_85 Mode = 0x3e
	VGA1280_60 Mode = 0x4a
	VGA1280_75 Mode = 0x4b
	DTV480P    Mode = 0x50
	DTV1080I   Mode = 0x51
	DTV720P    Mode = 0x52
)

// Interlace selects how the CRTC reads the frame buffer.
type Interlace int

// List of valid Interlace values.
const (
	NonInterlace Interlace = iota

	// interlaced, reading every line in each field
	Frame

	// interlaced, reading every other line in each field
	Field
)

// InterlaceList is the list of interlace names.
var InterlaceList = []string{"NONINTERLACE", "FRAME", "FIELD"}

func (i Interlace) String() string {
	if i >= 0 && int(i) < len(InterlaceList) {
		return InterlaceList[i]
	}
	return fmt.Sprintf("INTERLACE(%d)", int(i))
}

// ParseInterlace converts an interlace name to the Interlace type.
func ParseInterlace(s string) (Interlace, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, n := range InterlaceList {
		if n == s {
			return Interlace(i), nil
		}
	}
	return NonInterlace, curated.Errorf(UnknownInterlace, s)
}

// entry in the mode table.
type entry struct {
	id string
	dx int
	dy int

	// modes with a horizontal magnification of zero and a display width of
	// width-1. these are the high resolution VGA and DTV modes
	highRes bool

	// refresh rate in Hz
	rate float32
}

var table = map[Mode]entry{
	NTSC:       {id: "NTSC", dx: 652, dy: 26, rate: 59.94},
	PAL:        {id: "PAL", dx: 680, dy: 37, rate: 50.0},
	VGA640_60:  {id: "VGA640_60", dx: 280, dy: 18, rate: 60.0},
	VGA640_72:  {id: "VGA640_72", dx: 330, dy: 18, rate: 72.0},
	VGA640_75:  {id: "VGA640_75", dx: 360, dy: 18, rate: 75.0},
	VGA640_85:  {id: "VGA640_85", dx: 260, dy: 18, rate: 85.0},
	VGA800_56:  {id: "VGA800_56", dx: 450, dy: 25, rate: 56.0},
	VGA800_60:  {id: "VGA800_60", dx: 465, dy: 25, rate: 60.0},
	VGA800_72:  {id: "VGA800_72", dx: 465, dy: 25, rate: 72.0},
	VGA800_75:  {id: "VGA800_75", dx: 510, dy: 25, rate: 75.0},
	VGA800_85:  {id: "VGA800_85", dx: 500, dy: 25, rate: 85.0},
	VGA1024_60: {id: "VGA1024_60", dx: 580, dy: 30, rate: 60.0},
	VGA1024_70: {id: "VGA1024_70", dx: 266, dy: 30, rate: 70.0, highRes: true},
	VGA1024_75: {id: "VGA1024_75", dx: 260, dy: 30, rate: 75.0, highRes: true},
	VGA1024_85: {id: "VGA1024_85", dx: 290, dy: 30, rate: 85.0, highRes: true},
	VGA1280_60: {id: "VGA1280_60", dx: 350, dy: 40, rate: 60.0, highRes: true},
	VGA1280_75: {id: "VGA1280_75", dx: 350, dy: 40, rate: 75.0, highRes: true},
	DTV480P:    {id: "DTV480P", dx: 232, dy: 35, rate: 59.94},
	DTV720P:    {id: "DTV720P", dx: 420, dy: 40, rate: 59.94, highRes: true},
	DTV1080I:   {id: "DTV1080I", dx: 300, dy: 120, rate: 59.94, highRes: true},
}

// ModeList is the list of mode names in the order they are usually presented.
var ModeList = []string{
	"NTSC", "PAL",
	"VGA640_60", "VGA640_72", "VGA640_75", "VGA640_85",
	"VGA800_56", "VGA800_60", "VGA800_72", "VGA800_75", "VGA800_85",
	"VGA1024_60", "VGA1024_70", "VGA1024_75", "VGA1024_85",
	"VGA1280_60", "VGA1280_75",
	"DTV480P", "DTV720P", "DTV1080I",
}

// television modes magnify horizontally according to the width of the frame
var televisionMAGH = map[int]int{
	256: 9,
	320: 7,
	384: 6,
	512: 4,
	640: 3,
}

func (m Mode) String() string {
	if e, ok := table[m]; ok {
		return e.id
	}
	return fmt.Sprintf("MODE(%#02x)", int(m))
}

// ParseMode converts a mode name to the Mode type. The comparison is case
// insensitive.
func ParseMode(s string) (Mode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for m, e := range table {
		if e.id == s {
			return m, nil
		}
	}
	return 0, curated.Errorf(UnknownMode, s)
}

// RefreshRate returns the number of refreshes per second for the mode.
// Returns zero for an unknown mode.
func (m Mode) RefreshRate() float32 {
	return table[m].rate
}

// Television returns true for the NTSC and PAL modes.
func (m Mode) Television() bool {
	return m == NTSC || m == PAL
}

// Timing is the display position, magnification and display area for a mode
// and frame size.
type Timing struct {
	Mode      Mode
	Interlace Interlace

	// position of the display area in VCK units (DX) and raster units (DY)
	DX int
	DY int

	// magnification. the actual magnification is the value plus one
	MAGH int
	MAGV int

	// width and height of the display area minus one
	DW int
	DH int

	// refreshes per second
	RefreshRate float32
}

// Lookup returns the Timing for a mode and frame size.
func Lookup(mode Mode, interlace Interlace, width int, height int) (Timing, error) {
	e, ok := table[mode]
	if !ok {
		return Timing{}, curated.Errorf(UnknownMode, mode)
	}

	tm := Timing{
		Mode:        mode,
		Interlace:   interlace,
		DX:          e.dx,
		DY:          e.dy,
		DH:          height - 1,
		RefreshRate: e.rate,
	}

	if interlace == Field {
		tm.DY = (tm.DY - 1) * 2
	}

	switch {
	case mode.Television():
		magh, ok := televisionMAGH[width]
		if !ok {
			return Timing{}, curated.Errorf(UnsupportedWidth, width, mode)
		}
		tm.MAGH = magh
		tm.DW = 2559
	case e.highRes:
		tm.MAGH = 0
		tm.DW = width - 1
	default:
		tm.MAGH = 1
		tm.DW = width*2 - 1
	}

	if mode == DTV1080I && interlace == Field {
		tm.MAGV = 1
	}

	return tm, nil
}

// WithPosition returns a copy of the Timing with a new display position.
func (tm Timing) WithPosition(dx int, dy int) Timing {
	tm.DX = dx
	tm.DY = dy
	return tm
}

// Display1 returns the value of the DISPLAY1 register for the Timing.
func (tm Timing) Display1() uint64 {
	return uint64(tm.DX&0xfff) |
		uint64(tm.DY&0x7ff)<<12 |
		uint64(tm.MAGH&0xf)<<23 |
		uint64(tm.MAGV&0x3)<<27 |
		uint64(tm.DW&0xfff)<<32 |
		uint64(tm.DH&0x7ff)<<44
}

func (tm Timing) String() string {
	return fmt.Sprintf("%v %v: DX=%d DY=%d MAGH=%d MAGV=%d DW=%d DH=%d (%.2fHz)",
		tm.Mode, tm.Interlace, tm.DX, tm.DY, tm.MAGH, tm.MAGV, tm.DW, tm.DH, tm.RefreshRate)
}
