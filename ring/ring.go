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

package ring

import (
	"fmt"

	"github.com/ps2homebrew/gslib/assert"
	"github.com/ps2homebrew/gslib/layout"
	"github.com/ps2homebrew/gslib/logger"
	"github.com/ps2homebrew/gslib/psm"
)

// Display is the device that frame buffers are drawn into and displayed from.
type Display interface {
	// the buffer at base is the one to be shown on the next refresh
	BindDisplaySource(base uint32, width int, format psm.Format)

	// the buffer at base is the target of subsequent drawing
	BindDrawTarget(base uint32, width int, format psm.Format)
}

// Stalls counts the number of times an advance was held because there was
// nothing to advance to.
type Stalls struct {
	Display int
	Draw    int
}

// Ring is the frame buffer rotation state machine. It is not safe for
// concurrent use.
type Ring struct {
	lay  layout.Layout
	disp Display

	drawIndex    int
	displayIndex int

	// number of buffers waiting to be displayed and number of buffers
	// waiting to be drawn into.
	//
	// after every Swap() freeCount + completeCount + 2 == buffers, when there
	// are at least two buffers. during a swap the total is temporarily one
	// higher after MarkDrawComplete()
	freeCount     int
	completeCount int

	stalls Stalls
}

// NewRing is the preferred method of initialisation for the Ring type. The
// display source and draw target are bound on the display device before
// returning. The display device can be nil.
func NewRing(lay layout.Layout, disp Display) *Ring {
	if lay.Buffers < 1 {
		lay.Buffers = 1
	}

	r := &Ring{
		lay:  lay,
		disp: disp,
	}

	if lay.Buffers > 1 {
		r.drawIndex = 1
		r.freeCount = lay.Buffers - 2
	}

	r.bindDisplay()
	r.bindDraw()

	return r
}

func (r *Ring) bindDisplay() {
	if r.disp != nil {
		r.disp.BindDisplaySource(r.DisplayBase(), r.lay.Width, r.lay.FramePSM)
	}
}

func (r *Ring) bindDraw() {
	if r.disp != nil {
		r.disp.BindDrawTarget(r.DrawBase(), r.lay.Width, r.lay.FramePSM)
	}
}

// IsDrawSlotAvailable returns true if AdvanceDraw() would move to a new
// buffer. The current draw buffer can always be drawn into.
func (r *Ring) IsDrawSlotAvailable() bool {
	return r.freeCount > 0
}

// IsDisplaySlotAvailable returns true if AdvanceDisplay() would move to a new
// buffer.
func (r *Ring) IsDisplaySlotAvailable() bool {
	return r.completeCount > 0
}

// MarkDrawComplete should be called once per frame after the drawing of the
// frame has been issued.
func (r *Ring) MarkDrawComplete() {
	if r.completeCount < r.lay.Buffers-1 {
		r.completeCount++
	}
}

// AdvanceDisplay moves the display index onto the next complete buffer. The
// buffer that was being displayed becomes free.
//
// If there is no complete buffer the advance is held. The indexes, the counts
// and the display bindings are unchanged and only the display stall counter
// is incremented. A single buffer ring does not count stalls.
func (r *Ring) AdvanceDisplay() {
	if r.completeCount == 0 {
		r.stall(&r.stalls.Display, "display")
		return
	}

	r.displayIndex = (r.displayIndex + 1) % r.lay.Buffers
	r.completeCount--
	r.freeCount++
	r.bindDisplay()
}

// AdvanceDraw moves the draw index onto the next free buffer.
//
// If there is no free buffer the advance is held. The indexes, the counts and
// the draw binding are unchanged and only the draw stall counter is
// incremented. A single buffer ring does not count stalls.
func (r *Ring) AdvanceDraw() {
	if r.freeCount == 0 {
		r.stall(&r.stalls.Draw, "draw")
		return
	}

	r.drawIndex = (r.drawIndex + 1) % r.lay.Buffers
	r.freeCount--
	r.bindDraw()
}

// a single buffer never advances so there is no point in recording anything
func (r *Ring) stall(count *int, role string) {
	if r.lay.Buffers < 2 {
		return
	}
	*count++
	logger.Logf(logger.Allow, "ring", "%s held at buffer %d", role, r.index(role))
}

func (r *Ring) index(role string) int {
	if role == "draw" {
		return r.drawIndex
	}
	return r.displayIndex
}

// Swap marks the current frame as complete, displays the next complete frame
// and starts drawing into the next free buffer.
func (r *Ring) Swap() {
	r.MarkDrawComplete()
	r.AdvanceDisplay()
	r.AdvanceDraw()

	if r.lay.Buffers > 1 {
		assert.Invariant(r.freeCount+r.completeCount+2 == r.lay.Buffers,
			"ring: free (%d) + complete (%d) + 2 != buffers (%d)", r.freeCount, r.completeCount, r.lay.Buffers)
		assert.Invariant(r.drawIndex != r.displayIndex,
			"ring: draw and display index are both %d", r.drawIndex)
	} else {
		assert.Invariant(r.freeCount == 0 && r.completeCount == 0,
			"ring: single buffer with free (%d) and complete (%d)", r.freeCount, r.completeCount)
	}
}

// Buffers returns the number of buffers in the ring.
func (r *Ring) Buffers() int {
	return r.lay.Buffers
}

// DrawIndex returns the index of the buffer being drawn into.
func (r *Ring) DrawIndex() int {
	return r.drawIndex
}

// DisplayIndex returns the index of the buffer being displayed.
func (r *Ring) DisplayIndex() int {
	return r.displayIndex
}

// FreeCount returns the number of buffers waiting to be drawn into.
func (r *Ring) FreeCount() int {
	return r.freeCount
}

// CompleteCount returns the number of buffers waiting to be displayed.
func (r *Ring) CompleteCount() int {
	return r.completeCount
}

// DrawBase returns the memory address of the buffer being drawn into.
func (r *Ring) DrawBase() uint32 {
	return r.lay.FrameSlotBase(r.drawIndex)
}

// DisplayBase returns the memory address of the buffer being displayed.
func (r *Ring) DisplayBase() uint32 {
	return r.lay.FrameSlotBase(r.displayIndex)
}

// Layout returns the layout the ring was created with.
func (r *Ring) Layout() layout.Layout {
	return r.lay
}

// Stalls returns the number of times an advance was held.
func (r *Ring) Stalls() Stalls {
	return r.stalls
}

func (r *Ring) String() string {
	return fmt.Sprintf("draw: %d display: %d free: %d complete: %d", r.drawIndex, r.displayIndex, r.freeCount, r.completeCount)
}
