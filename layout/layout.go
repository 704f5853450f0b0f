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

package layout

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/ps2homebrew/gslib/curated"
	"github.com/ps2homebrew/gslib/psm"
)

// Granularity is the size to which frame and depth regions are rounded.
//
// The GS page is 8KB but frame buffers are placed on 32KB boundaries. This is
// the boundary that the FBP field of the FRAME register is measured in (the
// base address is stored divided by 2048 but must be a multiple of 32 pages).
const Granularity = 0x8000

// the largest number of pixels that can fit in a 32 bit address space. this
// is for the smallest (4 bit) pixel storage modes
const maxPixels = 1 << 33

// Curated error patterns returned by Configure().
const (
	InvalidDimensions = "layout: invalid dimensions (%dx%d)"
	UnsupportedFormat = "layout: unsupported pixel storage mode for %s buffer (%v)"
	RegionTooLarge    = "layout: frame and depth buffers do not fit in a 32 bit address space (%dx%d %v x%d)"
)

// Config is the input to Configure().
type Config struct {
	Width    int
	Height   int
	FramePSM psm.Format

	// number of frame buffers. values less than one are treated as one
	Buffers int

	ZBuffer bool
	ZPSM    psm.Format
}

// Layout describes how local memory is used by frame buffers and the depth
// buffer. It should be treated as an immutable value.
type Layout struct {
	Width    int
	Height   int
	FramePSM psm.Format
	Buffers  int

	// size of each frame buffer, rounded to Granularity
	FrameSlotSize uint32

	DepthEnabled bool
	DepthPSM     psm.Format

	// base and size of the depth buffer. if DepthEnabled is false then
	// DepthSize is zero and DepthBase is equal to FreeRegionBase
	DepthBase uint32
	DepthSize uint32

	// start of memory not used by either the frame buffers or the depth
	// buffer. texture allocation starts here
	FreeRegionBase uint32
}

// RoundUp rounds size up to the next multiple of Granularity. The size is a
// uint64 so that rounding a size near the top of the 32 bit range does not
// wrap to zero.
func RoundUp(size uint64) uint64 {
	return (size + Granularity - 1) &^ (Granularity - 1)
}

// regionSize is the rounded size of a region of pixels in the format. pixels
// is no more than maxPixels so the multiplication can not overflow
func regionSize(f psm.Format, pixels uint64) uint64 {
	return RoundUp(pixels * uint64(f.Bits()) / 8)
}

// Configure computes a new Layout. It has no side effects.
//
// No upper limit is placed on the number of buffers. Callers should use
// Fits() to check whether the layout fits in local memory.
func Configure(cfg Config) (Layout, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Layout{}, curated.Errorf(InvalidDimensions, cfg.Width, cfg.Height)
	}

	if cfg.Buffers < 1 {
		cfg.Buffers = 1
	}

	lay := Layout{
		Width:        cfg.Width,
		Height:       cfg.Height,
		FramePSM:     cfg.FramePSM,
		Buffers:      cfg.Buffers,
		DepthEnabled: cfg.ZBuffer,
		DepthPSM:     cfg.ZPSM,
	}

	if cfg.FramePSM.Bits() == 0 {
		return Layout{}, curated.Errorf(UnsupportedFormat, "frame", cfg.FramePSM)
	}
	if lay.DepthEnabled && cfg.ZPSM.Bits() == 0 {
		return Layout{}, curated.Errorf(UnsupportedFormat, "depth", cfg.ZPSM)
	}

	// region arithmetic is done with 64 bit values. every base and size must
	// fit in 32 bits for the bases to be distinct and increasing
	tooLarge := func() error {
		return curated.Errorf(RegionTooLarge, cfg.Width, cfg.Height, cfg.FramePSM, cfg.Buffers)
	}

	hi, pixels := bits.Mul64(uint64(cfg.Width), uint64(cfg.Height))
	if hi != 0 || pixels > maxPixels {
		return Layout{}, tooLarge()
	}

	slot := regionSize(cfg.FramePSM, pixels)
	if slot > math.MaxUint32 || uint64(cfg.Buffers) > math.MaxUint32/slot {
		return Layout{}, tooLarge()
	}
	depthBase := slot * uint64(cfg.Buffers)

	var depth uint64
	if lay.DepthEnabled {
		depth = regionSize(cfg.ZPSM, pixels)
	}

	free := depthBase + depth
	if free > math.MaxUint32 {
		return Layout{}, tooLarge()
	}

	lay.FrameSlotSize = uint32(slot)
	lay.DepthBase = uint32(depthBase)
	lay.DepthSize = uint32(depth)
	lay.FreeRegionBase = uint32(free)

	return lay, nil
}

// FrameSlotBase returns the base address of the numbered frame buffer.
// Numbers beyond the last frame buffer are treated as the last frame buffer.
func (lay Layout) FrameSlotBase(i int) uint32 {
	if i >= lay.Buffers {
		i = lay.Buffers - 1
	}
	if i < 0 {
		i = 0
	}
	return lay.FrameSlotSize * uint32(i)
}

// Fits returns true if the frame and depth regions fit in the amount of
// memory specified by capacity.
func (lay Layout) Fits(capacity uint32) bool {
	return lay.FreeRegionBase <= capacity
}

func (lay Layout) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%dx%d %v, %d buffer(s) of %#x bytes\n", lay.Width, lay.Height, lay.FramePSM, lay.Buffers, lay.FrameSlotSize))
	for i := 0; i < lay.Buffers; i++ {
		s.WriteString(fmt.Sprintf("  frame %d: %#08x\n", i, lay.FrameSlotBase(i)))
	}
	if lay.DepthEnabled {
		s.WriteString(fmt.Sprintf("  depth:   %#08x (%v, %#x bytes)\n", lay.DepthBase, lay.DepthPSM, lay.DepthSize))
	} else {
		s.WriteString("  depth:   disabled\n")
	}
	s.WriteString(fmt.Sprintf("  free:    %#08x", lay.FreeRegionBase))
	return s.String()
}
