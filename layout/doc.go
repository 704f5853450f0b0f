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

// Package layout computes how the fixed GS local memory is divided between
// frame buffers, an optional depth buffer and the remaining free region.
//
// The layout is a pure function of the display configuration. It is computed
// once when the display mode is set and does not change until the display
// mode is set again:
//
//	+-----------+-----------+-----+-------------+----------------------+
//	| frame 0   | frame 1   | ... | depth       | free region          |
//	+-----------+-----------+-----+-------------+----------------------+
//	0           FrameSlotSize     DepthBase     FreeRegionBase
//
// Frame slots and the depth region are rounded up to the region granularity
// of 32KB. The free region is used by the vram package to allocate textures.
package layout
