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

// Package prefs stores preference values on disk.
//
// Preference values are of the types Bool, Int or String. Values are
// associated with a key and added to a Disk instance. Values are saved with
// Disk.Save() and restored with Disk.Load():
//
//	var buffers prefs.Int
//
//	dsk, _ := prefs.NewDisk(path)
//	_ = dsk.Add("driver.buffers", &buffers)
//	_ = dsk.Load(true)
//
// Saving a Disk does not remove entries in the file that have not been added
// to it. More than one Disk instance can therefore share the same file.
//
// Values on disk can be overridden for a single session with the command line
// stack. See PushCommandLineStack().
package prefs
