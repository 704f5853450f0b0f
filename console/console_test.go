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

package console_test

import (
	"strings"
	"testing"

	"github.com/ps2homebrew/gslib/console"
	"github.com/ps2homebrew/gslib/driver"
	"github.com/ps2homebrew/gslib/psm"
	"github.com/ps2homebrew/gslib/test"
)

func TestStep(t *testing.T) {
	drv, err := driver.NewDriver(nil)
	test.DemandSuccess(t, err)

	_, err = drv.Allocate(64, 64, psm.PSMCT32)
	test.DemandSuccess(t, err)

	var out strings.Builder
	con := console.NewConsole(drv, &out)
	test.DemandSuccess(t, con.Step(strings.NewReader("sxcdwrq s")))

	// the swap after q is not performed
	test.ExpectEquality(t, drv.CurrentDisplayBuffer(), 0)
	test.ExpectEquality(t, drv.CurrentDrawBuffer(), 1)
	test.ExpectEquality(t, len(drv.Allocations()), 0)

	// help, initial state and one line for each recognised key
	lines := strings.Split(strings.TrimSuffix(out.String(), "\r\n"), "\r\n")
	test.ExpectEquality(t, len(lines), 7)
	test.ExpectSuccess(t, strings.HasPrefix(lines[2], "draw: 0 display: 1 free: 0 complete: 0"))
}

func TestStepEOF(t *testing.T) {
	drv, err := driver.NewDriver(nil)
	test.DemandSuccess(t, err)

	con := console.NewConsole(drv, &strings.Builder{})
	test.DemandSuccess(t, con.Step(strings.NewReader("sss")))
	test.ExpectEquality(t, drv.CurrentDisplayBuffer(), 1)
}

func TestKey(t *testing.T) {
	drv, err := driver.NewDriver(nil)
	test.DemandSuccess(t, err)

	con := console.NewConsole(drv, &strings.Builder{})
	test.ExpectSuccess(t, con.Key('z'))
	test.ExpectSuccess(t, con.Key('?'))
	test.ExpectFailure(t, con.Key('q'))
	test.ExpectFailure(t, con.Key(3))
	test.ExpectFailure(t, con.Key(27))
}
