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

//go:build assertions

package assert

import "fmt"

// Enabled is true if the "assertions" build tag was specified.
const Enabled = true

// Invariant panics with the formatted message if cond is false.
func Invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("assertion failed: %s", fmt.Sprintf(format, args...)))
	}
}
