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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes, each of which can have its own set of
// flags and its own sub-modes.
//
// Arguments are set with NewArgs() and then parsed one mode at a time with
// Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("LAYOUT", "ALLOC", "RUN")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After parsing, Mode() returns the selected sub-mode. The first sub-mode is
// the default and is selected if the first argument after the flags is not a
// sub-mode. Sub-mode comparisons are case insensitive.
//
// Flags and sub-modes for the selected mode are then added after a call to
// NewMode() and parsed in the same way:
//
//	md.NewMode()
//	frames := md.AddInt("frames", 0, "number of frames to run for")
//	p, err = md.Parse()
//
// Non-flag arguments that remain after parsing are returned by
// RemainingArgs() and GetArg().
//
// A help message is printed to the Output writer if the -help flag is
// present. The help message lists the flags and sub-modes of the mode being
// parsed and any text set with AdditionalHelp().
package modalflag
