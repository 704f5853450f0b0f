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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a pattern and a list of values in the same
// way as fmt.Errorf().
//
// The pattern is kept with the error and is used to identify it. Packages
// that return curated errors export their patterns as constants so that
// callers can test for them:
//
//	const OutOfMemory = "vram: out of memory: %d bytes requested, %d available"
//
//	_, err := alloc.Allocate(256, 256, psm.PSMCT32)
//	if curated.Is(err, vram.OutOfMemory) {
//		alloc.Reset()
//	}
//
// Is() only checks the outermost error. Has() checks the outermost error and
// any curated error found among its values, recursively:
//
//	err := curated.Errorf("driver: %v", e)
//	curated.Is(err, vram.OutOfMemory)  // false
//	curated.Has(err, vram.OutOfMemory) // true
//
// The Error() function normalises the message so that a chain of errors
// wrapped by callers with the same prefix does not repeat that prefix. For
// example, an error wrapped twice with "driver: %v" is printed as
//
//	driver: vram: out of memory: 4096 bytes requested, 0 available
//
// and not
//
//	driver: driver: vram: out of memory: 4096 bytes requested, 0 available
//
// Curated errors also work with the errors package in the standard library.
// Unwrap() returns any error values used to create the curated error.
package curated
