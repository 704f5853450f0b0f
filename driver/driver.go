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

package driver

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/ps2homebrew/gslib/curated"
	"github.com/ps2homebrew/gslib/display"
	"github.com/ps2homebrew/gslib/layout"
	"github.com/ps2homebrew/gslib/logger"
	"github.com/ps2homebrew/gslib/modes"
	"github.com/ps2homebrew/gslib/psm"
	"github.com/ps2homebrew/gslib/ring"
	"github.com/ps2homebrew/gslib/vram"
	"github.com/ps2homebrew/gslib/vsync"
)

// Curated error patterns.
const (
	Error        = "driver: %v"
	ModeTooLarge = "driver: display mode needs %d bytes of local memory (%d available)"
)

// Positioner is implemented by display devices that want to know the display
// position, magnification and display area.
type Positioner interface {
	SetTiming(modes.Timing)
}

// Filler is implemented by display devices that can fill the draw target
// with a single colour.
type Filler interface {
	Fill(color.Color)
}

// State is a snapshot of the frame buffer rotation.
type State struct {
	DrawIndex     int
	DisplayIndex  int
	FreeCount     int
	CompleteCount int
	Stalls        ring.Stalls
}

func (s State) String() string {
	return fmt.Sprintf("draw: %d display: %d free: %d complete: %d (stalls: display %d draw %d)",
		s.DrawIndex, s.DisplayIndex, s.FreeCount, s.CompleteCount, s.Stalls.Display, s.Stalls.Draw)
}

// Driver manages the display, frame buffers and texture memory.
type Driver struct {
	crit sync.Mutex

	disp ring.Display

	cfg    Config
	lay    layout.Layout
	timing modes.Timing

	ring  *ring.Ring
	alloc *vram.Allocator
}

// NewDriver is the preferred method of initialisation for the Driver type.
// If disp is nil then a display.Shadow is used.
func NewDriver(disp ring.Display) (*Driver, error) {
	if disp == nil {
		disp = display.NewShadow()
	}

	drv := &Driver{
		disp:  disp,
		alloc: vram.NewAllocator(0, vram.Capacity),
	}

	err := drv.SetDisplayMode(DefaultConfig())
	if err != nil {
		return nil, err
	}

	return drv, nil
}

// SetDisplayMode changes the display mode. If the new mode can not be set
// then the previous mode remains in place.
//
// All previous texture allocations are forgotten.
func (drv *Driver) SetDisplayMode(cfg Config) error {
	if cfg.Buffers < 1 {
		cfg.Buffers = 1
	}

	lay, err := layout.Configure(cfg.layout())
	if err != nil {
		return curated.Errorf(Error, err)
	}

	if !lay.Fits(vram.Capacity) {
		return curated.Errorf(ModeTooLarge, lay.FreeRegionBase, vram.Capacity)
	}

	tm, err := modes.Lookup(cfg.Mode, cfg.Interlace, cfg.Width, cfg.Height)
	if err != nil {
		return curated.Errorf(Error, err)
	}

	drv.crit.Lock()
	defer drv.crit.Unlock()

	drv.cfg = cfg
	drv.lay = lay
	drv.timing = tm

	// the display device is told about the timing before the buffers are
	// bound
	if p, ok := drv.disp.(Positioner); ok {
		p.SetTiming(tm)
	}

	drv.ring = ring.NewRing(lay, drv.disp)
	drv.alloc.Rebase(lay.FreeRegionBase)

	logger.Logf(logger.Allow, "driver", "display mode: %v", cfg)
	logger.Logf(logger.Allow, "driver", "texture memory: %#x bytes from %#x", drv.alloc.Available(), lay.FreeRegionBase)

	return nil
}

// Config returns the current display mode.
func (drv *Driver) Config() Config {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.cfg
}

// Layout returns the layout of local memory for the current display mode.
func (drv *Driver) Layout() layout.Layout {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.lay
}

// Timing returns the timing for the current display mode.
func (drv *Driver) Timing() modes.Timing {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.timing
}

// Swap marks the current draw buffer as complete, displays the next complete
// buffer and moves drawing onto the next free buffer.
func (drv *Driver) Swap() {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	drv.ring.Swap()
}

// DrawBufferComplete marks the current draw buffer as complete.
func (drv *Driver) DrawBufferComplete() {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	drv.ring.MarkDrawComplete()
}

// DisplayNextFrame displays the next complete buffer, if there is one.
func (drv *Driver) DisplayNextFrame() {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	drv.ring.AdvanceDisplay()
}

// SetNextDrawBuffer moves drawing onto the next free buffer, if there is
// one.
func (drv *Driver) SetNextDrawBuffer() {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	drv.ring.AdvanceDraw()
}

// IsDrawBufferAvailable returns true if SetNextDrawBuffer() would move
// drawing onto a new buffer.
func (drv *Driver) IsDrawBufferAvailable() bool {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.ring.IsDrawSlotAvailable()
}

// IsDisplayBufferAvailable returns true if DisplayNextFrame() would display a
// new buffer.
func (drv *Driver) IsDisplayBufferAvailable() bool {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.ring.IsDisplaySlotAvailable()
}

// CurrentDisplayBuffer returns the index of the buffer being displayed.
func (drv *Driver) CurrentDisplayBuffer() int {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.ring.DisplayIndex()
}

// CurrentDrawBuffer returns the index of the buffer being drawn into.
func (drv *Driver) CurrentDrawBuffer() int {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.ring.DrawIndex()
}

// State returns a snapshot of the frame buffer rotation.
func (drv *Driver) State() State {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return State{
		DrawIndex:     drv.ring.DrawIndex(),
		DisplayIndex:  drv.ring.DisplayIndex(),
		FreeCount:     drv.ring.FreeCount(),
		CompleteCount: drv.ring.CompleteCount(),
		Stalls:        drv.ring.Stalls(),
	}
}

// FrameBufferBase returns the address of the numbered frame buffer.
func (drv *Driver) FrameBufferBase(n int) uint32 {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.lay.FrameSlotBase(n)
}

// ZBufferBase returns the address of the depth buffer. If the depth buffer
// is disabled this is the same as TextureBufferBase().
func (drv *Driver) ZBufferBase() uint32 {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.lay.DepthBase
}

// TextureBufferBase returns the address of the first byte of local memory
// not used by the frame buffers or the depth buffer.
func (drv *Driver) TextureBufferBase() uint32 {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.lay.FreeRegionBase
}

// SetDisplayPosition moves the display area.
func (drv *Driver) SetDisplayPosition(x int, y int) {
	drv.crit.Lock()
	defer drv.crit.Unlock()

	drv.timing = drv.timing.WithPosition(x, y)
	if p, ok := drv.disp.(Positioner); ok {
		p.SetTiming(drv.timing)
	}
}

// DisplayPosition returns the position of the display area.
func (drv *Driver) DisplayPosition() (int, int) {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.timing.DX, drv.timing.DY
}

// ClearScreen fills the draw buffer with black and then swaps buffers.
// Display devices that do not implement Filler are swapped without being
// filled.
func (drv *Driver) ClearScreen() {
	drv.crit.Lock()
	defer drv.crit.Unlock()

	if f, ok := drv.disp.(Filler); ok {
		f.Fill(color.RGBA{A: 0x80})
	}
	drv.ring.Swap()
}

// Allocate texture memory. See vram.Allocator for details.
func (drv *Driver) Allocate(width int, height int, format psm.Format) (uint32, error) {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.alloc.Allocate(width, height, format)
}

// ResetTextures forgets all texture allocations.
func (drv *Driver) ResetTextures() {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	drv.alloc.Reset()
}

// VRAMAvailable returns the number of bytes of texture memory that can still
// be allocated.
func (drv *Driver) VRAMAvailable() uint32 {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.alloc.Available()
}

// Allocations returns the texture allocations made since the last reset.
func (drv *Driver) Allocations() []vram.Allocation {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.alloc.Allocations()
}

// SwapOnVSync subscribes Swap() to the notifier. The returned ID is used with
// DetachVSync().
func (drv *Driver) SwapOnVSync(n vsync.Notifier) vsync.ID {
	return n.Subscribe(drv.Swap)
}

// DetachVSync removes a subscription created by SwapOnVSync().
func (drv *Driver) DetachVSync(n vsync.Notifier, id vsync.ID) {
	n.Unsubscribe(id)
}
