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

package driver_test

import (
	"image/color"
	"testing"

	"github.com/ps2homebrew/gslib/curated"
	"github.com/ps2homebrew/gslib/display"
	"github.com/ps2homebrew/gslib/driver"
	"github.com/ps2homebrew/gslib/layout"
	"github.com/ps2homebrew/gslib/modes"
	"github.com/ps2homebrew/gslib/psm"
	"github.com/ps2homebrew/gslib/test"
	"github.com/ps2homebrew/gslib/vram"
	"github.com/ps2homebrew/gslib/vsync"
)

func TestDefault(t *testing.T) {
	sh := display.NewShadow()
	drv, err := driver.NewDriver(sh)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, drv.Config(), driver.DefaultConfig())

	// 320*240*4 rounds up to 327680. two frame buffers followed by a 32 bit
	// depth buffer of the same size
	test.ExpectEquality(t, drv.FrameBufferBase(0), uint32(0))
	test.ExpectEquality(t, drv.FrameBufferBase(1), uint32(327680))
	test.ExpectEquality(t, drv.ZBufferBase(), uint32(655360))
	test.ExpectEquality(t, drv.TextureBufferBase(), uint32(983040))
	test.ExpectEquality(t, drv.VRAMAvailable(), uint32(vram.Capacity-983040))

	test.ExpectEquality(t, drv.CurrentDisplayBuffer(), 0)
	test.ExpectEquality(t, drv.CurrentDrawBuffer(), 1)

	x, y := drv.DisplayPosition()
	test.ExpectEquality(t, x, 652)
	test.ExpectEquality(t, y, 26)
	test.ExpectEquality(t, sh.Timing().MAGH, 7)

	test.ExpectEquality(t, sh.DisplaySource().Base, uint32(0))
	test.ExpectEquality(t, sh.DrawTarget().Base, uint32(327680))
}

func TestNilDisplay(t *testing.T) {
	drv, err := driver.NewDriver(nil)
	test.DemandSuccess(t, err)
	drv.Swap()
	test.ExpectEquality(t, drv.CurrentDisplayBuffer(), 1)
}

func TestSwapProtocol(t *testing.T) {
	drv, err := driver.NewDriver(nil)
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, drv.IsDisplayBufferAvailable())
	test.ExpectFailure(t, drv.IsDrawBufferAvailable())

	drv.DrawBufferComplete()
	test.ExpectSuccess(t, drv.IsDisplayBufferAvailable())

	drv.DisplayNextFrame()
	test.ExpectSuccess(t, drv.IsDrawBufferAvailable())
	test.ExpectEquality(t, drv.CurrentDisplayBuffer(), 1)

	drv.SetNextDrawBuffer()
	test.ExpectEquality(t, drv.CurrentDrawBuffer(), 0)

	test.ExpectEquality(t, drv.State(), driver.State{DrawIndex: 0, DisplayIndex: 1})
}

func TestSetDisplayMode(t *testing.T) {
	sh := display.NewShadow()
	drv, err := driver.NewDriver(sh)
	test.DemandSuccess(t, err)

	_, err = drv.Allocate(64, 64, psm.PSMCT32)
	test.DemandSuccess(t, err)
	drv.Swap()

	cfg := driver.Config{
		Width:     640,
		Height:    448,
		PSM:       psm.PSMCT16,
		Buffers:   3,
		Mode:      modes.NTSC,
		Interlace: modes.Field,
	}
	test.DemandSuccess(t, drv.SetDisplayMode(cfg))

	// ring has been restarted
	test.ExpectEquality(t, drv.State(), driver.State{DrawIndex: 1, DisplayIndex: 0, FreeCount: 1})

	// allocator has been reset to the new free region
	test.ExpectEquality(t, len(drv.Allocations()), 0)
	test.ExpectEquality(t, drv.TextureBufferBase(), uint32(3*589824))

	offset, err := drv.Allocate(64, 64, psm.PSMCT32)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, offset, drv.TextureBufferBase())

	test.ExpectEquality(t, sh.Timing().DY, 50)
	test.ExpectEquality(t, sh.Timing().MAGH, 3)
	test.ExpectEquality(t, sh.DisplaySource().Format, psm.PSMCT16)
}

func TestSetDisplayModeErrors(t *testing.T) {
	drv, err := driver.NewDriver(nil)
	test.DemandSuccess(t, err)
	before := drv.Config()

	cfg := driver.DefaultConfig()
	cfg.Width = 0
	err = drv.SetDisplayMode(cfg)
	test.ExpectSuccess(t, curated.Has(err, layout.InvalidDimensions))

	cfg = driver.DefaultConfig()
	cfg.Width = 640
	cfg.Height = 480
	cfg.Buffers = 4
	err = drv.SetDisplayMode(cfg)
	test.ExpectSuccess(t, curated.Is(err, driver.ModeTooLarge))

	cfg = driver.DefaultConfig()
	cfg.Width = 300
	err = drv.SetDisplayMode(cfg)
	test.ExpectSuccess(t, curated.Has(err, modes.UnsupportedWidth))

	// a frame buffer that wraps the 32 bit address space is not mistaken for
	// one that fits
	cfg = driver.DefaultConfig()
	cfg.Width = 65536
	cfg.Height = 16384
	cfg.PSM = psm.PSMCT32
	cfg.Buffers = 2
	cfg.Mode = modes.VGA640_60
	err = drv.SetDisplayMode(cfg)
	test.ExpectSuccess(t, curated.Has(err, layout.RegionTooLarge))

	// previous mode is still in place
	test.ExpectEquality(t, drv.Config(), before)
}

func TestDisplayPosition(t *testing.T) {
	sh := display.NewShadow()
	drv, err := driver.NewDriver(sh)
	test.DemandSuccess(t, err)

	drv.SetDisplayPosition(600, 30)
	x, y := drv.DisplayPosition()
	test.ExpectEquality(t, x, 600)
	test.ExpectEquality(t, y, 30)
	test.ExpectEquality(t, sh.Timing().DX, 600)

	// magnification is unchanged
	test.ExpectEquality(t, sh.Timing().MAGH, 7)
}

func TestClearScreen(t *testing.T) {
	m := display.NewMemory()
	drv, err := driver.NewDriver(m)
	test.DemandSuccess(t, err)

	img := m.DrawImage()
	test.DemandSuccess(t, img != nil)
	img.Set(0, 0, color.RGBA{R: 0xff, A: 0xff})

	drv.ClearScreen()

	// the cleared buffer is now displayed
	test.ExpectEquality(t, drv.CurrentDisplayBuffer(), 1)
	shown, err := m.Displayed()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, shown.RGBAAt(0, 0), color.RGBA{A: 0xff})
}

func TestSwapOnVSync(t *testing.T) {
	drv, err := driver.NewDriver(nil)
	test.DemandSuccess(t, err)

	var vs vsync.Manual
	id := drv.SwapOnVSync(&vs)

	vs.Pulse()
	test.ExpectEquality(t, drv.CurrentDisplayBuffer(), 1)
	vs.Pulse()
	test.ExpectEquality(t, drv.CurrentDisplayBuffer(), 0)

	drv.DetachVSync(&vs, id)
	vs.Pulse()
	test.ExpectEquality(t, drv.CurrentDisplayBuffer(), 0)
}
