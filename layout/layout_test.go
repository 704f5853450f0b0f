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

package layout_test

import (
	"math"
	"testing"

	"github.com/ps2homebrew/gslib/curated"
	"github.com/ps2homebrew/gslib/layout"
	"github.com/ps2homebrew/gslib/psm"
	"github.com/ps2homebrew/gslib/test"
)

func TestDoubleBufferNoDepth(t *testing.T) {
	lay, err := layout.Configure(layout.Config{
		Width:    320,
		Height:   240,
		FramePSM: psm.PSMCT32,
		Buffers:  2,
	})
	test.DemandSuccess(t, err)

	// 320*240*4 = 307200, rounded to the next 32KB boundary
	test.ExpectEquality(t, lay.FrameSlotSize, uint32(327680))
	test.ExpectEquality(t, lay.FrameSlotBase(0), uint32(0))
	test.ExpectEquality(t, lay.FrameSlotBase(1), uint32(327680))
	test.ExpectEquality(t, lay.DepthSize, uint32(0))
	test.ExpectEquality(t, lay.DepthBase, uint32(655360))
	test.ExpectEquality(t, lay.FreeRegionBase, uint32(655360))
}

func TestDepth(t *testing.T) {
	lay, err := layout.Configure(layout.Config{
		Width:    640,
		Height:   448,
		FramePSM: psm.PSMCT16,
		Buffers:  2,
		ZBuffer:  true,
		ZPSM:     psm.PSMZ32,
	})
	test.DemandSuccess(t, err)

	// 640*448*2 = 573440 which is already a multiple of 32KB
	test.ExpectEquality(t, lay.FrameSlotSize, uint32(573440))
	test.ExpectEquality(t, lay.DepthBase, uint32(1146880))
	test.ExpectEquality(t, lay.DepthSize, uint32(1146880))
	test.ExpectEquality(t, lay.FreeRegionBase, uint32(2293760))
	test.ExpectSuccess(t, lay.Fits(4*1024*1024))
}

func TestBufferClamp(t *testing.T) {
	lay, err := layout.Configure(layout.Config{
		Width:    256,
		Height:   224,
		FramePSM: psm.PSMCT32,
		Buffers:  0,
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, lay.Buffers, 1)

	// frame slot numbers beyond the last slot clamp to the last slot
	test.ExpectEquality(t, lay.FrameSlotBase(5), uint32(0))
	test.ExpectEquality(t, lay.FreeRegionBase, lay.FrameSlotSize)
}

func TestAlignment(t *testing.T) {
	formats := []psm.Format{psm.PSMCT32, psm.PSMCT24, psm.PSMCT16, psm.PSMCT16S}
	for _, f := range formats {
		for buffers := 1; buffers <= 4; buffers++ {
			for _, dim := range [][2]int{{1, 1}, {320, 240}, {512, 448}, {640, 480}, {333, 77}} {
				lay, err := layout.Configure(layout.Config{
					Width:    dim[0],
					Height:   dim[1],
					FramePSM: f,
					Buffers:  buffers,
					ZBuffer:  true,
					ZPSM:     psm.PSMZ24,
				})
				test.DemandSuccess(t, err)

				test.ExpectEquality(t, lay.FrameSlotSize%layout.Granularity, uint32(0), f, dim)
				test.ExpectEquality(t, lay.DepthSize%layout.Granularity, uint32(0), f, dim)
				test.ExpectEquality(t, lay.FreeRegionBase, uint32(buffers)*lay.FrameSlotSize+lay.DepthSize, f, dim)
				test.ExpectSuccess(t, lay.FrameSlotSize >= uint32(f.Bytes(dim[0]*dim[1])))

				for i := 1; i < buffers; i++ {
					test.ExpectSuccess(t, lay.FrameSlotBase(i) > lay.FrameSlotBase(i-1))
				}
			}
		}
	}
}

func TestRoundUp(t *testing.T) {
	for _, c := range []struct {
		size     uint64
		expected uint64
	}{
		{0, 0},
		{1, 0x8000},
		{0x8000, 0x8000},
		{0x8001, 0x10000},

		// sizes near the top of the 32 bit range do not wrap
		{0xffff8000, 0xffff8000},
		{0xffff8001, 0x100000000},
		{0xffffffff, 0x100000000},
	} {
		test.ExpectEquality(t, layout.RoundUp(c.size), c.expected, c.size)
	}
}

func TestTooLarge(t *testing.T) {
	for _, cfg := range []layout.Config{
		// slot size is exactly 4GB which would wrap to zero
		{Width: 65536, Height: 16384, FramePSM: psm.PSMCT32, Buffers: 2},

		// slot size just over the 32 bit range
		{Width: 65536, Height: 16385, FramePSM: psm.PSMCT32, Buffers: 1},

		// slot fits but the buffers do not
		{Width: 32768, Height: 16384, FramePSM: psm.PSMCT32, Buffers: 3},

		// frame buffers fit but the depth buffer pushes the free region out
		{Width: 32768, Height: 16384, FramePSM: psm.PSMCT32, Buffers: 1, ZBuffer: true, ZPSM: psm.PSMZ32},

		// pixel count overflows 64 bits
		{Width: math.MaxInt, Height: math.MaxInt, FramePSM: psm.PSMT4, Buffers: 1},

		// huge number of buffers
		{Width: 640, Height: 480, FramePSM: psm.PSMCT32, Buffers: math.MaxInt},
	} {
		lay, err := layout.Configure(cfg)
		test.ExpectSuccess(t, curated.Is(err, layout.RegionTooLarge), cfg)
		test.ExpectEquality(t, lay, layout.Layout{}, cfg)
	}

	// the largest layout that fits in 32 bits is accepted and the bases are
	// still increasing
	lay, err := layout.Configure(layout.Config{Width: 32768, Height: 16384, FramePSM: psm.PSMCT32, Buffers: 1, ZBuffer: true, ZPSM: psm.PSMZ16})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, lay.FrameSlotSize, uint32(0x80000000))
	test.ExpectEquality(t, lay.DepthBase, uint32(0x80000000))
	test.ExpectEquality(t, lay.DepthSize, uint32(0x40000000))
	test.ExpectEquality(t, lay.FreeRegionBase, uint32(0xc0000000))
	test.ExpectFailure(t, lay.Fits(1<<22))
}

func TestInvalid(t *testing.T) {
	_, err := layout.Configure(layout.Config{Width: 0, Height: 240, FramePSM: psm.PSMCT32})
	test.ExpectSuccess(t, curated.Is(err, layout.InvalidDimensions))

	_, err = layout.Configure(layout.Config{Width: 320, Height: -1, FramePSM: psm.PSMCT32})
	test.ExpectSuccess(t, curated.Is(err, layout.InvalidDimensions))

	_, err = layout.Configure(layout.Config{Width: 320, Height: 240, FramePSM: psm.Format(0x7f)})
	test.ExpectSuccess(t, curated.Is(err, layout.UnsupportedFormat))

	_, err = layout.Configure(layout.Config{Width: 320, Height: 240, FramePSM: psm.PSMCT32, ZBuffer: true, ZPSM: psm.Format(0x7f)})
	test.ExpectSuccess(t, curated.Is(err, layout.UnsupportedFormat))

	// an unknown depth format is not an error if the depth buffer is disabled
	_, err = layout.Configure(layout.Config{Width: 320, Height: 240, FramePSM: psm.PSMCT32, ZPSM: psm.Format(0x7f)})
	test.ExpectSuccess(t, err)
}

func TestFits(t *testing.T) {
	lay, err := layout.Configure(layout.Config{
		Width:    640,
		Height:   480,
		FramePSM: psm.PSMCT32,
		Buffers:  4,
		ZBuffer:  true,
		ZPSM:     psm.PSMZ32,
	})
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, lay.Fits(4*1024*1024))
}
