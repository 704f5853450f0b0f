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
	"image"
	"image/color"

	"github.com/ps2homebrew/gslib/curated"
	"github.com/ps2homebrew/gslib/psm"
)

// UnsupportedImage is the curated error pattern returned by Image() when the
// format can not be decoded.
const UnsupportedImage = "vram: can not decode pixel storage mode (%v)"

// Memory is an emulation of GS local memory. Pixels are stored linearly,
// row by row, without the page and block arrangement of real hardware.
type Memory struct {
	data []byte
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		data: make([]byte, Capacity),
	}
}

// Region returns the slice of memory starting at base. The slice is
// truncated if it extends beyond the end of memory and nil if base is
// outside of memory.
func (mem *Memory) Region(base uint32, size int) []byte {
	if base >= uint32(len(mem.data)) || size <= 0 {
		return nil
	}
	end := int(base) + size
	if end > len(mem.data) {
		end = len(mem.data)
	}
	return mem.data[base:end:end]
}

// RGBA returns an image that aliases a PSMCT32 buffer in memory. Drawing to
// the image draws to memory. Returns nil if the buffer does not fit in
// memory.
func (mem *Memory) RGBA(base uint32, width int, height int) *image.RGBA {
	size := width * height * 4
	if width <= 0 || height <= 0 || int(base)+size > len(mem.data) {
		return nil
	}
	return &image.RGBA{
		Pix:    mem.data[base : int(base)+size : int(base)+size],
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// Image decodes a frame buffer into a new RGBA image. The alpha channel of the
// buffer is ignored because it is not used when the buffer is displayed.
func (mem *Memory) Image(base uint32, width int, height int, format psm.Format) (*image.RGBA, error) {
	if format.Class() != psm.Direct {
		return nil, curated.Errorf(UnsupportedImage, format)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	src := mem.Region(base, format.Bytes(width*height))

	switch format.Bits() {
	case 32:
		for i := 0; i+3 < len(src); i += 4 {
			img.Pix[i] = src[i]
			img.Pix[i+1] = src[i+1]
			img.Pix[i+2] = src[i+2]
			img.Pix[i+3] = 0xff
		}
	case 16:
		for i := 0; i+1 < len(src); i += 2 {
			r, g, b := unpack16(uint16(src[i]) | uint16(src[i+1])<<8)
			p := i * 2
			img.Pix[p] = r
			img.Pix[p+1] = g
			img.Pix[p+2] = b
			img.Pix[p+3] = 0xff
		}
	}

	return img, nil
}

// Fill a buffer with a single colour. Formats that are not direct colour
// formats are ignored.
func (mem *Memory) Fill(base uint32, width int, height int, format psm.Format, col color.Color) {
	if format.Class() != psm.Direct {
		return
	}

	c := color.RGBAModel.Convert(col).(color.RGBA)
	dst := mem.Region(base, format.Bytes(width*height))

	switch format.Bits() {
	case 32:
		for i := 0; i+3 < len(dst); i += 4 {
			dst[i] = c.R
			dst[i+1] = c.G
			dst[i+2] = c.B
			dst[i+3] = c.A
		}
	case 16:
		v := pack16(c)
		for i := 0; i+1 < len(dst); i += 2 {
			dst[i] = uint8(v)
			dst[i+1] = uint8(v >> 8)
		}
	}
}

// 16 bit pixels are stored as ABGR1555.
func pack16(c color.RGBA) uint16 {
	v := uint16(c.R>>3) | uint16(c.G>>3)<<5 | uint16(c.B>>3)<<10
	if c.A >= 0x80 {
		v |= 0x8000
	}
	return v
}

func unpack16(v uint16) (uint8, uint8, uint8) {
	expand := func(c uint16) uint8 {
		c &= 0x1f
		return uint8(c<<3 | c>>2)
	}
	return expand(v), expand(v >> 5), expand(v >> 10)
}
