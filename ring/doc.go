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

// Package ring implements the rotation of frame buffers between the roles of
// drawing, complete, displaying and free.
//
// Exactly one buffer is being drawn into and exactly one buffer is being
// displayed. When there are two or more buffers these are different buffers.
// The remaining buffers are either complete (waiting to be displayed) or free
// (waiting to be drawn into). Rather than tagging each buffer with its role,
// the ring counts the number of complete and free buffers. The complete
// buffers always follow the display index and the free buffers always follow
// the complete buffers, so the counts are sufficient.
//
// The swap protocol is:
//
//	MarkDrawComplete()
//	AdvanceDisplay()
//	AdvanceDraw()
//
// which is what Swap() does. The order is important. Completion must be
// recorded before the display can move onto the completed buffer, and moving
// the display is what frees the buffer that the draw index moves onto.
//
// If there is nothing to advance to then the advance functions do nothing.
// This is not an error. The previous frame continues to be displayed, or the
// current draw buffer continues to be drawn into. The availability functions
// can be used to detect this and the number of times it has happened can be
// retrieved with Stalls().
package ring
