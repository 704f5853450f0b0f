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

package script

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ps2homebrew/gslib/curated"
	"github.com/ps2homebrew/gslib/driver"
	"github.com/ps2homebrew/gslib/logger"
	"github.com/ps2homebrew/gslib/psm"
	lua "github.com/yuin/gopher-lua"
)

// Error is the pattern used for all errors returned by the package.
const Error = "script: %v"

// Script binds a Lua state to a driver.
type Script struct {
	drv    *driver.Driver
	output io.Writer
	state  *lua.LState
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the print() function is written to output. If output is nil
// then printed output is discarded.
func NewScript(drv *driver.Driver, output io.Writer) *Script {
	if output == nil {
		output = io.Discard
	}

	scr := &Script{
		drv:    drv,
		output: output,
		state:  lua.NewState(),
	}

	for name, fn := range map[string]lua.LGFunction{
		"swap":              scr.swap,
		"mark_complete":     scr.markComplete,
		"advance_display":   scr.advanceDisplay,
		"advance_draw":      scr.advanceDraw,
		"draw_index":        scr.drawIndex,
		"display_index":     scr.displayIndex,
		"free_count":        scr.freeCount,
		"complete_count":    scr.completeCount,
		"draw_available":    scr.drawAvailable,
		"display_available": scr.displayAvailable,
		"frame_base":        scr.frameBase,
		"alloc":             scr.alloc,
		"vram_reset":        scr.vramReset,
		"vram_available":    scr.vramAvailable,
		"set_mode":          scr.setMode,
		"clear":             scr.clear,
		"print":             scr.print,
	} {
		scr.state.SetGlobal(name, scr.state.NewFunction(fn))
	}

	return scr
}

// Close releases the Lua state. The Script should not be used after Close().
func (scr *Script) Close() {
	scr.state.Close()
}

// Run executes Lua source. The context can be used to stop a long running
// script.
func (scr *Script) Run(ctx context.Context, source string) error {
	scr.state.SetContext(ctx)
	err := scr.state.DoString(source)
	if err != nil {
		return curated.Errorf(Error, err)
	}
	return nil
}

// Run is a convenience function that creates a Script, runs the source and
// closes the Script.
func Run(ctx context.Context, drv *driver.Driver, source string, output io.Writer) error {
	scr := NewScript(drv, output)
	defer scr.Close()
	return scr.Run(ctx, source)
}

// RunFile is like Run() but reads the source from the named file.
func RunFile(ctx context.Context, drv *driver.Driver, filename string, output io.Writer) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf(Error, err)
	}
	logger.Logf(logger.Allow, "script", "running %s", filename)
	return Run(ctx, drv, string(b), output)
}

func (scr *Script) swap(L *lua.LState) int {
	scr.drv.Swap()
	return 0
}

func (scr *Script) markComplete(L *lua.LState) int {
	scr.drv.DrawBufferComplete()
	return 0
}

func (scr *Script) advanceDisplay(L *lua.LState) int {
	scr.drv.DisplayNextFrame()
	return 0
}

func (scr *Script) advanceDraw(L *lua.LState) int {
	scr.drv.SetNextDrawBuffer()
	return 0
}

func (scr *Script) drawIndex(L *lua.LState) int {
	L.Push(lua.LNumber(scr.drv.CurrentDrawBuffer()))
	return 1
}

func (scr *Script) displayIndex(L *lua.LState) int {
	L.Push(lua.LNumber(scr.drv.CurrentDisplayBuffer()))
	return 1
}

func (scr *Script) freeCount(L *lua.LState) int {
	L.Push(lua.LNumber(scr.drv.State().FreeCount))
	return 1
}

func (scr *Script) completeCount(L *lua.LState) int {
	L.Push(lua.LNumber(scr.drv.State().CompleteCount))
	return 1
}

func (scr *Script) drawAvailable(L *lua.LState) int {
	L.Push(lua.LBool(scr.drv.IsDrawBufferAvailable()))
	return 1
}

func (scr *Script) displayAvailable(L *lua.LState) int {
	L.Push(lua.LBool(scr.drv.IsDisplayBufferAvailable()))
	return 1
}

func (scr *Script) frameBase(L *lua.LState) int {
	L.Push(lua.LNumber(scr.drv.FrameBufferBase(L.CheckInt(1))))
	return 1
}

func checkFormat(L *lua.LState, n int) psm.Format {
	f, err := psm.Parse(L.CheckString(n))
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return f
}

// alloc follows the Lua convention of returning nil and an error message on
// failure
func (scr *Script) alloc(L *lua.LState) int {
	w := L.CheckInt(1)
	h := L.CheckInt(2)
	f := checkFormat(L, 3)

	offset, err := scr.drv.Allocate(w, h, f)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LNumber(offset))
	return 1
}

func (scr *Script) vramReset(L *lua.LState) int {
	scr.drv.ResetTextures()
	return 0
}

func (scr *Script) vramAvailable(L *lua.LState) int {
	L.Push(lua.LNumber(scr.drv.VRAMAvailable()))
	return 1
}

// set_mode keeps the current video mode, interlace and depth format. a mode
// that cannot be set raises a Lua error
func (scr *Script) setMode(L *lua.LState) int {
	cfg := scr.drv.Config()
	cfg.Width = L.CheckInt(1)
	cfg.Height = L.CheckInt(2)
	cfg.PSM = checkFormat(L, 3)
	cfg.Buffers = L.OptInt(4, cfg.Buffers)
	if L.GetTop() >= 5 {
		cfg.ZBuffer = L.ToBool(5)
	}

	err := scr.drv.SetDisplayMode(cfg)
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) clear(L *lua.LState) int {
	scr.drv.ClearScreen()
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}
