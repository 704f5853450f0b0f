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

// Package vram manages the GS local memory.
//
// The Allocator is a bump allocator for the region of local memory left over
// once the frame buffers and depth buffer have been placed. Texture buffers
// are carved out of the free region with the width and height alignment
// required by the pixel storage mode. Individual allocations can not be
// freed; the allocator can only be reset back to its base.
//
// The Memory type is an emulation of local memory, addressed in the same way
// as the Allocator and the layout package. It is used by display devices that
// are not backed by real hardware.
package vram
