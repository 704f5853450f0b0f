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

// Package driver configures the display and manages frame buffers and
// texture memory for the configured display mode.
//
// A Driver is created with a display device and configured with a default
// display mode of 320x240 PSMCT32, NTSC non-interlaced, with a PSMZ32 depth
// buffer and two frame buffers. SetDisplayMode() changes the display mode.
// Changing the display mode recalculates the layout of local memory,
// restarts the frame buffer rotation and resets texture allocation.
//
// The swap protocol is provided by the Swap() function or by the three
// functions it is made up of:
//
//	DrawBufferComplete()
//	DisplayNextFrame()
//	SetNextDrawBuffer()
//
// Swap() can be called automatically on every vertical blank with
// SwapOnVSync(). Because of this all Driver functions are safe to call from
// more than one goroutine.
package driver
