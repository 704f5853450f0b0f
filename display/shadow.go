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
	"fmt"
	"sync"

	"github.com/ps2homebrew/gslib/modes"
	"github.com/ps2homebrew/gslib/psm"
)

// Binding is a frame buffer bound to either the display or the drawing
// circuit.
type Binding struct {
	Base   uint32
	Width  int
	Format psm.Format
}

func (b Binding) String() string {
	return fmt.Sprintf("%#x %d %v", b.Base, b.Width, b.Format)
}

// DispFB returns the value of the DISPFB register for the binding. The base
// is stored in units of 2048 bytes and the width in units of 64 pixels.
func (b Binding) DispFB() uint64 {
	return uint64(b.Base/2048)&0x1ff |
		uint64(b.Width/64)&0x3f<<9 |
		uint64(b.Format)&0x1f<<15
}

// CallKind identifies the bind function in a Call.
type CallKind int

// List of valid CallKind values.
const (
	BindDisplay CallKind = iota
	BindDraw
)

func (k CallKind) String() string {
	switch k {
	case BindDisplay:
		return "display"
	case BindDraw:
		return "draw"
	}
	return "unknown"
}

// Call is a single bind call.
type Call struct {
	Kind CallKind
	Binding
}

func (c Call) String() string {
	return fmt.Sprintf("%v %v", c.Kind, c.Binding)
}

// maximum number of calls recorded by a Shadow. the oldest calls are
// discarded
const maxCalls = 1024

// Shadow is a display device that records the state of the device. It is safe
// to use from more than one goroutine.
type Shadow struct {
	crit sync.Mutex

	display Binding
	draw    Binding
	timing  modes.Timing

	// whether SetTiming() has been called. the zero timing is not
	// distinguishable from a one line display area
	timed bool

	calls []Call
}

// NewShadow is the preferred method of initialisation for the Shadow type.
func NewShadow() *Shadow {
	return &Shadow{}
}

func (sh *Shadow) record(c Call) {
	if len(sh.calls) >= maxCalls {
		sh.calls = sh.calls[1:]
	}
	sh.calls = append(sh.calls, c)
}

// BindDisplaySource implements the ring.Display interface.
func (sh *Shadow) BindDisplaySource(base uint32, width int, format psm.Format) {
	sh.crit.Lock()
	defer sh.crit.Unlock()
	sh.display = Binding{Base: base, Width: width, Format: format}
	sh.record(Call{Kind: BindDisplay, Binding: sh.display})
}

// BindDrawTarget implements the ring.Display interface.
func (sh *Shadow) BindDrawTarget(base uint32, width int, format psm.Format) {
	sh.crit.Lock()
	defer sh.crit.Unlock()
	sh.draw = Binding{Base: base, Width: width, Format: format}
	sh.record(Call{Kind: BindDraw, Binding: sh.draw})
}

// SetTiming implements the driver.Positioner interface.
func (sh *Shadow) SetTiming(tm modes.Timing) {
	sh.crit.Lock()
	defer sh.crit.Unlock()
	sh.timing = tm
	sh.timed = true
}

// DisplaySource returns the current display binding.
func (sh *Shadow) DisplaySource() Binding {
	sh.crit.Lock()
	defer sh.crit.Unlock()
	return sh.display
}

// DrawTarget returns the current draw binding.
func (sh *Shadow) DrawTarget() Binding {
	sh.crit.Lock()
	defer sh.crit.Unlock()
	return sh.draw
}

// Timing returns the most recent timing set with SetTiming().
func (sh *Shadow) Timing() modes.Timing {
	sh.crit.Lock()
	defer sh.crit.Unlock()
	return sh.timing
}

func (sh *Shadow) timingIfSet() (modes.Timing, bool) {
	sh.crit.Lock()
	defer sh.crit.Unlock()
	return sh.timing, sh.timed
}

// Calls returns a copy of the recorded calls, oldest first.
func (sh *Shadow) Calls() []Call {
	sh.crit.Lock()
	defer sh.crit.Unlock()
	c := make([]Call, len(sh.calls))
	copy(c, sh.calls)
	return c
}

// ClearCalls forgets all recorded calls. The current bindings are unchanged.
func (sh *Shadow) ClearCalls() {
	sh.crit.Lock()
	defer sh.crit.Unlock()
	sh.calls = sh.calls[:0]
}
