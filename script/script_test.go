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

package script_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ps2homebrew/gslib/driver"
	"github.com/ps2homebrew/gslib/script"
	"github.com/ps2homebrew/gslib/test"
)

func newDriver(t *testing.T) *driver.Driver {
	t.Helper()
	drv, err := driver.NewDriver(nil)
	test.DemandSuccess(t, err)
	return drv
}

func TestRotation(t *testing.T) {
	drv := newDriver(t)

	var out strings.Builder
	err := script.Run(context.Background(), drv, `
		print(draw_index(), display_index(), free_count(), complete_count())
		swap()
		print(draw_index(), display_index())
		mark_complete()
		print(complete_count(), display_available(), draw_available())
		advance_display()
		advance_draw()
		print(draw_index(), display_index())
	`, &out)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, out.String(), "1\t0\t0\t0\n0\t1\n1\ttrue\tfalse\n1\t0\n")
}

func TestAlloc(t *testing.T) {
	drv := newDriver(t)

	var out strings.Builder
	err := script.Run(context.Background(), drv, `
		local a = alloc(64, 64, "PSMCT32")
		local b = alloc(64, 64, "PSMCT32")
		print(a, b - a)
		local c, err = alloc(4096, 4096, "PSMCT32")
		print(c == nil, err ~= nil)
		vram_reset()
		print(alloc(64, 64, "PSMT8") == a)
	`, &out)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, out.String(), "983040\t16384\ntrue\ttrue\ntrue\n")
	test.ExpectEquality(t, len(drv.Allocations()), 1)
}

func TestBadFormat(t *testing.T) {
	drv := newDriver(t)
	err := script.Run(context.Background(), drv, `alloc(64, 64, "PSMCT99")`, nil)
	test.ExpectFailure(t, err)
}

func TestSetMode(t *testing.T) {
	drv := newDriver(t)

	var out strings.Builder
	err := script.Run(context.Background(), drv, `
		set_mode(640, 448, "PSMCT16", 3, false)
		print(draw_index(), free_count(), frame_base(1), vram_available())
	`, &out)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, out.String(), "1\t1\t589824\t2424832\n")
	test.ExpectEquality(t, drv.Config().Buffers, 3)
	test.ExpectFailure(t, drv.Config().ZBuffer)

	// a mode that is too large is a Lua error and the mode is unchanged
	err = script.Run(context.Background(), drv, `set_mode(640, 480, "PSMCT32", 4, true)`, nil)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, drv.Config().Buffers, 3)
}

func TestRunFile(t *testing.T) {
	drv := newDriver(t)

	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("for i = 1, 5 do swap() end\nprint(display_index())"), 0600))

	var out strings.Builder
	test.DemandSuccess(t, script.RunFile(context.Background(), drv, fn, &out))
	test.ExpectEquality(t, out.String(), "1\n")

	test.ExpectFailure(t, script.RunFile(context.Background(), drv, filepath.Join(t.TempDir(), "missing.lua"), nil))
}

func TestCancel(t *testing.T) {
	drv := newDriver(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := script.Run(ctx, drv, `while true do swap() end`, nil)
	test.ExpectFailure(t, err)
}
