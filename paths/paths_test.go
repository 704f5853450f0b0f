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

//go:build !release

package paths_test

import (
	"os"
	"regexp"
	"testing"

	"github.com/ps2homebrew/gslib/paths"
	"github.com/ps2homebrew/gslib/test"
)

func TestPaths(t *testing.T) {
	// resource paths are created relative to the current directory
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gslib/foo/bar/baz")

	// the directory has been created
	info, err := os.Stat(".gslib/foo/bar")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gslib/foo/bar")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gslib/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gslib")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("layout", "320x240", "dot")
	test.ExpectSuccess(t, regexp.MustCompile(`^layout_320x240_\d{8}_\d{6}\.dot$`).MatchString(fn))

	fn = paths.UniqueFilename("layout", " ", "")
	test.ExpectSuccess(t, regexp.MustCompile(`^layout_\d{8}_\d{6}$`).MatchString(fn))
}
