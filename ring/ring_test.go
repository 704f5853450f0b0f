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

package ring_test

import (
	"fmt"
	"testing"

	"github.com/ps2homebrew/gslib/layout"
	"github.com/ps2homebrew/gslib/psm"
	"github.com/ps2homebrew/gslib/ring"
	"github.com/ps2homebrew/gslib/test"
)

// recorder implements the ring.Display interface and records every call
type recorder struct {
	calls []string
}

func (rec *recorder) BindDisplaySource(base uint32, width int, format psm.Format) {
	rec.calls = append(rec.calls, fmt.Sprintf("display %#x %d %v", base, width, format))
}

func (rec *recorder) BindDrawTarget(base uint32, width int, format psm.Format) {
	rec.calls = append(rec.calls, fmt.Sprintf("draw %#x %d %v", base, width, format))
}

func newLayout(t *testing.T, buffers int) layout.Layout {
	t.Helper()
	lay, err := layout.Configure(layout.Config{
		Width:    320,
		Height:   240,
		FramePSM: psm.PSMCT32,
		Buffers:  buffers,
	})
	test.DemandSuccess(t, err)
	return lay
}

type state struct {
	draw, display, free, complete int
}

func stateOf(r *ring.Ring) state {
	return state{
		draw:     r.DrawIndex(),
		display:  r.DisplayIndex(),
		free:     r.FreeCount(),
		complete: r.CompleteCount(),
	}
}

func TestDoubleBuffer(t *testing.T) {
	rec := &recorder{}
	r := ring.NewRing(newLayout(t, 2), rec)

	test.ExpectEquality(t, stateOf(r), state{draw: 1, display: 0, free: 0, complete: 0})
	test.DemandEquality(t, len(rec.calls), 2)
	test.ExpectEquality(t, rec.calls[0], "display 0x0 320 PSMCT32")
	test.ExpectEquality(t, rec.calls[1], "draw 0x50000 320 PSMCT32")

	rec.calls = rec.calls[:0]

	r.MarkDrawComplete()
	test.ExpectEquality(t, r.CompleteCount(), 1)

	r.AdvanceDisplay()
	test.ExpectEquality(t, stateOf(r), state{draw: 1, display: 1, free: 1, complete: 0})

	r.AdvanceDraw()
	test.ExpectEquality(t, stateOf(r), state{draw: 0, display: 1, free: 0, complete: 0})

	test.DemandEquality(t, len(rec.calls), 2)
	test.ExpectEquality(t, rec.calls[0], "display 0x50000 320 PSMCT32")
	test.ExpectEquality(t, rec.calls[1], "draw 0x0 320 PSMCT32")

	test.ExpectEquality(t, r.DrawBase(), uint32(0))
	test.ExpectEquality(t, r.DisplayBase(), uint32(327680))
}

func TestSwapSequence(t *testing.T) {
	rec := &recorder{}
	r := ring.NewRing(newLayout(t, 2), rec)
	rec.calls = rec.calls[:0]

	r.Swap()
	test.ExpectEquality(t, stateOf(r), state{draw: 0, display: 1, free: 0, complete: 0})

	// a swap binds the display source before the draw target
	test.DemandEquality(t, len(rec.calls), 2)
	test.ExpectEquality(t, rec.calls[0], "display 0x50000 320 PSMCT32")
	test.ExpectEquality(t, rec.calls[1], "draw 0x0 320 PSMCT32")

	r.Swap()
	test.ExpectEquality(t, stateOf(r), state{draw: 1, display: 0, free: 0, complete: 0})
}

func TestInvariant(t *testing.T) {
	for buffers := 2; buffers <= 8; buffers++ {
		r := ring.NewRing(newLayout(t, buffers), nil)
		test.ExpectEquality(t, r.Buffers(), buffers)
		test.ExpectEquality(t, r.FreeCount()+r.CompleteCount()+2, buffers, buffers)

		for i := 0; i < buffers*5; i++ {
			r.Swap()
			test.ExpectEquality(t, r.FreeCount()+r.CompleteCount()+2, buffers, buffers, i)
			test.ExpectInequality(t, r.DrawIndex(), r.DisplayIndex(), buffers, i)
			test.ExpectSuccess(t, r.DrawIndex() >= 0 && r.DrawIndex() < buffers)
			test.ExpectSuccess(t, r.DisplayIndex() >= 0 && r.DisplayIndex() < buffers)
		}

		// swaps never stall when the ring is used correctly
		test.ExpectEquality(t, r.Stalls(), ring.Stalls{})
	}
}

func TestSingleBuffer(t *testing.T) {
	rec := &recorder{}
	r := ring.NewRing(newLayout(t, 1), rec)

	test.ExpectEquality(t, stateOf(r), state{})
	test.ExpectEquality(t, r.DrawBase(), r.DisplayBase())

	for i := 0; i < 5; i++ {
		r.Swap()
		test.ExpectEquality(t, stateOf(r), state{})
	}

	// only the binds made by NewRing()
	test.ExpectEquality(t, len(rec.calls), 2)

	// a single buffer does not record stalls
	test.ExpectEquality(t, r.Stalls(), ring.Stalls{})
}

func TestStarvation(t *testing.T) {
	rec := &recorder{}
	r := ring.NewRing(newLayout(t, 2), rec)
	rec.calls = rec.calls[:0]

	before := stateOf(r)
	test.ExpectFailure(t, r.IsDisplaySlotAvailable())
	test.ExpectFailure(t, r.IsDrawSlotAvailable())

	r.AdvanceDisplay()
	r.AdvanceDisplay()
	test.ExpectEquality(t, stateOf(r), before)

	r.AdvanceDraw()
	test.ExpectEquality(t, stateOf(r), before)

	test.ExpectEquality(t, len(rec.calls), 0)
	test.ExpectEquality(t, r.Stalls(), ring.Stalls{Display: 2, Draw: 1})
}

func TestHeldAdvance(t *testing.T) {
	rec := &recorder{}
	r := ring.NewRing(newLayout(t, 3), rec)

	r.MarkDrawComplete()
	r.AdvanceDraw()
	test.ExpectFailure(t, r.IsDrawSlotAvailable())

	// a held draw advance changes nothing but the draw stall count
	before := stateOf(r)
	drawBase := r.DrawBase()
	displayBase := r.DisplayBase()
	calls := len(rec.calls)
	r.AdvanceDraw()
	test.ExpectEquality(t, stateOf(r), before)
	test.ExpectEquality(t, r.DrawBase(), drawBase)
	test.ExpectEquality(t, r.DisplayBase(), displayBase)
	test.ExpectEquality(t, len(rec.calls), calls)
	test.ExpectEquality(t, r.Stalls(), ring.Stalls{Draw: 1})

	r.AdvanceDisplay()
	test.ExpectFailure(t, r.IsDisplaySlotAvailable())

	// likewise for a held display advance
	before = stateOf(r)
	drawBase = r.DrawBase()
	displayBase = r.DisplayBase()
	calls = len(rec.calls)
	r.AdvanceDisplay()
	test.ExpectEquality(t, stateOf(r), before)
	test.ExpectEquality(t, r.DrawBase(), drawBase)
	test.ExpectEquality(t, r.DisplayBase(), displayBase)
	test.ExpectEquality(t, len(rec.calls), calls)
	test.ExpectEquality(t, r.Stalls(), ring.Stalls{Draw: 1, Display: 1})
}

func TestCompleteCap(t *testing.T) {
	r := ring.NewRing(newLayout(t, 3), nil)

	// the number of complete buffers can not exceed buffers-1
	for i := 0; i < 5; i++ {
		r.MarkDrawComplete()
	}
	test.ExpectEquality(t, r.CompleteCount(), 2)
	test.ExpectSuccess(t, r.IsDisplaySlotAvailable())
}

func TestWrapAround(t *testing.T) {
	r := ring.NewRing(newLayout(t, 3), nil)

	// a free buffer is needed for every advance of the draw index. free
	// buffers are made by marking complete and advancing the display
	start := r.DrawIndex()
	advances := 0
	for advances < 3 {
		if !r.IsDrawSlotAvailable() {
			r.MarkDrawComplete()
			r.AdvanceDisplay()
			continue
		}
		r.AdvanceDraw()
		advances++
	}
	test.ExpectEquality(t, r.DrawIndex(), start)
}

func TestTripleBuffer(t *testing.T) {
	r := ring.NewRing(newLayout(t, 3), nil)
	test.ExpectEquality(t, stateOf(r), state{draw: 1, display: 0, free: 1, complete: 0})

	r.Swap()
	test.ExpectEquality(t, stateOf(r), state{draw: 2, display: 1, free: 1, complete: 0})

	r.Swap()
	test.ExpectEquality(t, stateOf(r), state{draw: 0, display: 2, free: 1, complete: 0})

	// drawing ahead of the display
	r.MarkDrawComplete()
	r.AdvanceDraw()
	test.ExpectEquality(t, stateOf(r), state{draw: 1, display: 2, free: 0, complete: 1})
	test.ExpectFailure(t, r.IsDrawSlotAvailable())
	test.ExpectSuccess(t, r.IsDisplaySlotAvailable())

	r.AdvanceDisplay()
	test.ExpectEquality(t, stateOf(r), state{draw: 1, display: 0, free: 1, complete: 0})
}
