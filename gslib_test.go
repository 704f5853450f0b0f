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

package main

import (
	"testing"

	"github.com/ps2homebrew/gslib/test"
)

func TestParseTexture(t *testing.T) {
	w, h, f, err := parseTexture("64x32:PSMCT32")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w, 64)
	test.ExpectEquality(t, h, 32)
	test.ExpectEquality(t, f, "PSMCT32")

	w, h, _, err = parseTexture("256X256:PSMT8")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w, 256)
	test.ExpectEquality(t, h, 256)

	_, _, _, err = parseTexture("64x64")
	test.ExpectFailure(t, err)
	_, _, _, err = parseTexture("64:PSMCT32")
	test.ExpectFailure(t, err)
	_, _, _, err = parseTexture("ax64:PSMCT32")
	test.ExpectFailure(t, err)
	_, _, _, err = parseTexture("64xb:PSMCT32")
	test.ExpectFailure(t, err)
}
