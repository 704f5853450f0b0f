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

package prefs_test

import (
	"testing"

	"github.com/ps2homebrew/gslib/prefs"
	"github.com/ps2homebrew/gslib/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("driver.mode::PAL")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "driver.mode::PAL")

	// single value but with additional space
	prefs.PushCommandLineStack("   driver.mode:: PAL ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "driver.mode::PAL")

	// more than one key/value. the popped string is sorted by key
	prefs.PushCommandLineStack("driver.mode::PAL; driver.buffers::3")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "driver.buffers::3; driver.mode::PAL")

	// no separator
	prefs.PushCommandLineStack("driver.mode_PAL")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// partially invalid string
	prefs.PushCommandLineStack("driver.mode_PAL;driver.buffers::3")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "driver.buffers::3")

	// the malformed pair is not added to the stack
	prefs.PushCommandLineStack("driver.mode::PAL;driver.buffers_3")
	ok, _ := prefs.GetCommandLinePref("driver.buffers")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "driver.mode::PAL")
}

func TestCommandLineGet(t *testing.T) {
	prefs.PushCommandLineStack("driver.mode::PAL; driver.buffers::3")

	ok, v := prefs.GetCommandLinePref("driver.buffers")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("3"))

	// values are removed from the stack once they have been retrieved
	ok, _ = prefs.GetCommandLinePref("driver.buffers")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "driver.mode::PAL")
}

func TestCommandLineStack(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("driver.mode::PAL")

	// add another command line group
	prefs.PushCommandLineStack("driver.buffers::3")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "driver.buffers::3")

	// first group still exists
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "driver.mode::PAL")
}

func TestCommandLineStackSize(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	// nothing to get from an empty stack
	ok, v := prefs.GetCommandLinePref("driver.mode")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, v, prefs.Value(nil))

	prefs.PushCommandLineStack("driver.mode::PAL")
	prefs.PushCommandLineStack("")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the top group is consulted
	ok, _ = prefs.GetCommandLinePref("driver.mode")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	ok, _ = prefs.GetCommandLinePref("driver.mode")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
