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

package paths

import (
	"os"
	"path/filepath"
)

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with OS/build specific paths. The subPth directory is
// created if necessary.
//
// Both subPth and file can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	pth, err := basePath(subPth)
	if err != nil {
		return "", err
	}
	return filepath.Join(pth, file), nil
}

func mkdir(pth string) (string, error) {
	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}
	return pth, nil
}
