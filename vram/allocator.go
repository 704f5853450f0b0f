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

package vram

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/ps2homebrew/gslib/curated"
	"github.com/ps2homebrew/gslib/logger"
	"github.com/ps2homebrew/gslib/psm"
)

// Capacity is the size of GS local memory.
const Capacity = 4 * 1024 * 1024

// Curated error patterns returned by Allocate().
const (
	OutOfMemory       = "vram: out of memory (%d bytes requested, %d bytes available)"
	UnsupportedFormat = "vram: unsupported pixel storage mode for texture (%v)"
	InvalidDimensions = "vram: invalid texture dimensions (%dx%d)"
)

// alignment of texture buffers.
const (
	indexedWidthAlign = 128
	directWidthAlign  = 64
	heightAlign       = 64
	sizeAlign         = 256
)

// Allocation describes a single region of memory returned by Allocate().
type Allocation struct {
	Offset uint32
	Size   uint32

	// requested dimensions. the size of the allocation is calculated from the
	// aligned dimensions
	Width  int
	Height int
	Format psm.Format
}

func (a Allocation) String() string {
	return fmt.Sprintf("%#08x-%#08x %dx%d %v", a.Offset, a.Offset+a.Size, a.Width, a.Height, a.Format)
}

// Allocator is a bump allocator for texture buffers. It is not safe for
// concurrent use.
type Allocator struct {
	base     uint32
	cursor   uint32
	capacity uint32

	allocations []Allocation
}

// NewAllocator is the preferred method of initialisation for the Allocator
// type. The base is usually the FreeRegionBase field of a layout.Layout and
// the capacity is usually vram.Capacity.
func NewAllocator(base uint32, capacity uint32) *Allocator {
	if base > capacity {
		base = capacity
	}
	return &Allocator{
		base:     base,
		cursor:   base,
		capacity: capacity,
	}
}

// align rounds v up to the next multiple of a. a must be a power of two.
func align(v uint64, a uint64) uint64 {
	return (v + a - 1) &^ (a - 1)
}

// Size returns the number of bytes a texture buffer of the specified
// dimensions and format occupies. Returns false if the format can not be
// used for texture buffers.
//
// The size is a uint64 so that it can be compared with the available memory
// without wrapping. Sizes too large to calculate are reported as
// math.MaxUint64. Dimensions less than one are treated as zero.
func Size(width int, height int, format psm.Format) (uint64, bool) {
	var w, h uint64
	if width > 0 {
		w = uint64(width)
	}
	if height > 0 {
		h = uint64(height)
	}

	switch format.Class() {
	case psm.Indexed:
		w = align(w, indexedWidthAlign)
	case psm.Direct:
		w = align(w, directWidthAlign)
	default:
		return 0, false
	}
	h = align(h, heightAlign)

	hi, pixels := bits.Mul64(w, h)
	if hi != 0 {
		return math.MaxUint64, true
	}
	hi, b := bits.Mul64(pixels, uint64(format.Bits()))
	if hi != 0 {
		return math.MaxUint64, true
	}

	return align(b/8, sizeAlign), true
}

// Allocate a texture buffer. Returns the offset of the new buffer in local
// memory.
//
// An allocation that exactly fills the remaining memory succeeds. If the
// allocation fails the cursor is unchanged.
func (alc *Allocator) Allocate(width int, height int, format psm.Format) (uint32, error) {
	if width <= 0 || height <= 0 {
		return 0, curated.Errorf(InvalidDimensions, width, height)
	}

	size, ok := Size(width, height, format)
	if !ok {
		return 0, curated.Errorf(UnsupportedFormat, format)
	}

	// compare against the available space rather than summing the cursor
	// and size. the cursor is never larger than the capacity
	if size > uint64(alc.capacity-alc.cursor) {
		logger.Logf(logger.Allow, "vram", "allocation of %dx%d %v failed", width, height, format)
		return 0, curated.Errorf(OutOfMemory, size, alc.capacity-alc.cursor)
	}

	offset := alc.cursor
	alc.cursor += uint32(size)

	alc.allocations = append(alc.allocations, Allocation{
		Offset: offset,
		Size:   uint32(size),
		Width:  width,
		Height: height,
		Format: format,
	})

	return offset, nil
}

// Reset the cursor to the base. All previous allocations are forgotten.
func (alc *Allocator) Reset() {
	alc.cursor = alc.base
	alc.allocations = alc.allocations[:0]
}

// Rebase changes the base of the allocator and resets the cursor. Used when
// the display mode changes.
func (alc *Allocator) Rebase(base uint32) {
	if base > alc.capacity {
		base = alc.capacity
	}
	alc.base = base
	alc.Reset()
}

// SetCursor moves the cursor to an arbitrary position. The position is bound
// to the range between the base and the capacity.
//
// Allocations at or beyond the new cursor are forgotten.
func (alc *Allocator) SetCursor(p uint32) {
	if p < alc.base {
		p = alc.base
	} else if p > alc.capacity {
		p = alc.capacity
	}
	alc.cursor = p

	i := 0
	for _, a := range alc.allocations {
		if a.Offset+a.Size <= p {
			alc.allocations[i] = a
			i++
		}
	}
	alc.allocations = alc.allocations[:i]
}

// Cursor returns the offset at which the next allocation will be made.
func (alc *Allocator) Cursor() uint32 {
	return alc.cursor
}

// Base returns the offset of the first allocation after a reset.
func (alc *Allocator) Base() uint32 {
	return alc.base
}

// Available returns the number of bytes that can still be allocated.
func (alc *Allocator) Available() uint32 {
	return alc.capacity - alc.cursor
}

// Total returns the capacity of memory.
func (alc *Allocator) Total() uint32 {
	return alc.capacity
}

// Allocations returns a copy of the allocations made since the last reset.
func (alc *Allocator) Allocations() []Allocation {
	c := make([]Allocation, len(alc.allocations))
	copy(c, alc.allocations)
	return c
}

func (alc *Allocator) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("base: %#08x cursor: %#08x available: %d", alc.base, alc.cursor, alc.Available()))
	for _, a := range alc.allocations {
		s.WriteString("\n  ")
		s.WriteString(a.String())
	}
	return s.String()
}
