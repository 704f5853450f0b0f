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

// Package console is an interactive stepper for the frame buffer rotation.
// Each key press performs one operation on the driver and the state of the
// rotation is printed afterwards.
//
//	s	swap
//	c	mark the draw buffer complete
//	d	advance the display
//	w	advance the draw buffer
//	r	release all textures
//	?	print help
//	q	quit
//
// When the input is a terminal it is put into raw mode so that keys do not
// need to be followed by return.
package console
