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

// Package performance writes CPU and memory profiles for the runtime/pprof
// tools.
package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/ps2homebrew/gslib/curated"
	"github.com/ps2homebrew/gslib/logger"
)

// Error is the pattern used for all errors returned by the package.
const Error = "performance: %v"

// Profile selects the profiles to write.
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
)

// Run calls the run function, writing the selected profiles to files named
// with the prefix. The CPU profile covers the duration of the run function.
// The memory profile is written after the run function has returned.
func Run(prefix string, profile Profile, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		fn := prefix + "_cpu.profile"
		f, err := os.Create(fn)
		if err != nil {
			return curated.Errorf(Error, err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(Error, err)
		}
		logger.Logf(logger.Allow, "performance", "cpu profile: %s", fn)

		err = run()
		pprof.StopCPUProfile()
		if err != nil {
			return err
		}
	} else {
		err := run()
		if err != nil {
			return err
		}
	}

	if profile&ProfileMem == ProfileMem {
		fn := prefix + "_mem.profile"
		f, err := os.Create(fn)
		if err != nil {
			return curated.Errorf(Error, err)
		}
		defer f.Close()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf(Error, err)
		}
		logger.Logf(logger.Allow, "performance", "memory profile: %s", fn)
	}

	return nil
}
