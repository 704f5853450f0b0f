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

package display

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/ps2homebrew/gslib/curated"
	"github.com/ps2homebrew/gslib/vram"
)

// NoTiming is the curated error pattern returned when the height of the
// frame is not yet known.
const NoTiming = "display: frame size is not known until timing has been set"

// Memory is a display device backed by emulated local memory.
type Memory struct {
	*Shadow
	mem *vram.Memory
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		Shadow: NewShadow(),
		mem:    vram.NewMemory(),
	}
}

// VRAM returns the emulated local memory.
func (m *Memory) VRAM() *vram.Memory {
	return m.mem
}

// the height of the frame is not part of the binding. it is taken from the
// display area height. returns false if the timing has not been set
func (m *Memory) height() (int, bool) {
	tm, ok := m.timingIfSet()
	return tm.DH + 1, ok
}

// Displayed returns a copy of the frame buffer currently bound as the
// display source.
func (m *Memory) Displayed() (*image.RGBA, error) {
	h, ok := m.height()
	if !ok {
		return nil, curated.Errorf(NoTiming)
	}
	b := m.DisplaySource()
	return m.mem.Image(b.Base, b.Width, h, b.Format)
}

// DrawImage returns an image that aliases the frame buffer currently bound as
// the draw target. Returns nil if the draw target is not a 32 bit format.
func (m *Memory) DrawImage() *image.RGBA {
	h, ok := m.height()
	b := m.DrawTarget()
	if !ok || b.Format.Bits() != 32 {
		return nil
	}
	return m.mem.RGBA(b.Base, b.Width, h)
}

// Fill implements the driver.Filler interface. The draw target is filled
// with a single colour. Nothing is filled if the timing has not been set.
func (m *Memory) Fill(col color.Color) {
	h, ok := m.height()
	if !ok {
		return
	}
	b := m.DrawTarget()
	m.mem.Fill(b.Base, b.Width, h, b.Format, col)
}

// Thumbnail returns a scaled copy of the displayed frame. Scale values of zero
// or less are treated as 1.
func (m *Memory) Thumbnail(scale float64) (*image.RGBA, error) {
	src, err := m.Displayed()
	if err != nil {
		return nil, err
	}

	if scale <= 0 {
		scale = 1
	}

	r := image.Rect(0, 0, int(float64(src.Bounds().Dx())*scale), int(float64(src.Bounds().Dy())*scale))
	if r.Empty() {
		r = image.Rect(0, 0, 1, 1)
	}
	dst := image.NewRGBA(r)
	draw.ApproxBiLinear.Scale(dst, r, src, src.Bounds(), draw.Src, nil)
	return dst, nil
}
