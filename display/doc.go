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

// Package display contains implementations of the display device that frame
// buffers are drawn into and displayed from.
//
// The Shadow type records the currently bound display source and draw target
// and every bind made. It can stand in for a real device when no output is
// required. The Memory type adds emulated local memory to the Shadow, so that
// drawing can be done and the displayed frame inspected. The sdldisplay
// package presents a Memory device in a window.
package display
