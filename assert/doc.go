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

// Package assert checks program invariants. The checks are only performed
// when the "assertions" build tag is specified at compile time. Otherwise the
// functions are stubs and cost nothing.
//
//	go test -tags assertions ./...
//
// A failed check panics. Invariant checks should be reserved for conditions
// that can only be false because of a programming error in this module.
package assert
