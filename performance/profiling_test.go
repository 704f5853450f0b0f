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

package performance_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ps2homebrew/gslib/performance"
	"github.com/ps2homebrew/gslib/test"
)

func TestRun(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "test")

	var called bool
	err := performance.Run(prefix, performance.ProfileCPU|performance.ProfileMem, func() error {
		called = true
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, called)

	_, err = os.Stat(prefix + "_cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(prefix + "_mem.profile")
	test.ExpectSuccess(t, err)
}

func TestRunNoProfile(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "test")

	runErr := errors.New("test error")
	err := performance.Run(prefix, performance.ProfileNone, func() error {
		return runErr
	})
	test.ExpectEquality(t, err, runErr)

	_, err = os.Stat(prefix + "_cpu.profile")
	test.ExpectFailure(t, err)
}
