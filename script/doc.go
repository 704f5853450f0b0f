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

// Package script runs Lua programs against a driver.Driver. It is useful for
// exercising the frame buffer rotation and the texture allocator without
// writing Go.
//
// The following functions are available to the Lua program:
//
//	swap()                                  mark complete, advance display and draw
//	mark_complete()                         mark the draw buffer complete
//	advance_display()                       move display onto the next complete buffer
//	advance_draw()                          move draw onto the next free buffer
//	draw_index()                            index of the draw buffer
//	display_index()                         index of the displayed buffer
//	free_count()                            number of free buffers
//	complete_count()                        number of complete buffers
//	draw_available()                        true if advance_draw() would succeed
//	display_available()                     true if advance_display() would succeed
//	frame_base(n)                           address of frame buffer n
//	alloc(w, h, psm)                        address of new texture or nil and error
//	vram_reset()                            release all textures
//	vram_available()                        bytes of texture memory remaining
//	set_mode(w, h, psm, buffers, zbuffer)   change the display mode
//	clear()                                 clear the draw buffer and swap
//	print(...)                              write to the script output
//
// Pixel storage modes are given as strings, for example "PSMCT32" or "PSMT8".
package script
