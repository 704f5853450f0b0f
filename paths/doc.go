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

// Package paths contains functions to prepare paths to gslib resources.
//
// The ResourcePath() function returns the supplied resource string prepended
// with the appropriate base directory. For example, the path to the
// preferences file:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// For development builds the base directory is ".gslib" in the current
// directory. For builds with the "release" tag the base directory is "gslib"
// in the user's configuration directory, as returned by os.UserConfigDir().
//
// The directory is created if it does not exist.
package paths
