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

// Package psm describes the pixel storage modes of the GS. A pixel storage
// mode decides how many bits a pixel occupies in local memory and how the
// width of a texture buffer must be aligned.
package psm

import (
	"fmt"
	"strings"

	"github.com/ps2homebrew/gslib/curated"
)

// UnknownFormat is the curated error pattern returned by Parse().
const UnknownFormat = "psm: unknown pixel storage mode (%s)"

// Format is a GS pixel storage mode. The values are the ones used by the GS
// registers.
type Format int

// List of valid Format values.
const (
	PSMCT32  Format = 0x00
	PSMCT24  Format = 0x01
	PSMCT16  Format = 0x02
	PSMCT16S Format = 0x0a
	PSMT8    Format = 0x13
	PSMT4    Format = 0x14
	PSMZ32   Format = 0x30
	PSMZ24   Format = 0x31
	PSMZ16   Format = 0x32
	PSMZ16S  Format = 0x3a
)

// Class is the alignment class of a Format.
type Class int

// List of valid Class values.
const (
	Unknown Class = iota

	// palette formats. texture buffer widths align to 128 pixels
	Indexed

	// colour formats. texture buffer widths align to 64 pixels
	Direct

	// depth formats. can not be used for textures
	Depth
)

func (c Class) String() string {
	switch c {
	case Indexed:
		return "indexed"
	case Direct:
		return "direct"
	case Depth:
		return "depth"
	}
	return "unknown"
}

type info struct {
	name  string
	bits  int
	class Class
}

// 24 bit formats occupy 32 bits in local memory
var formats = map[Format]info{
	PSMCT32:  {name: "PSMCT32", bits: 32, class: Direct},
	PSMCT24:  {name: "PSMCT24", bits: 32, class: Direct},
	PSMCT16:  {name: "PSMCT16", bits: 16, class: Direct},
	PSMCT16S: {name: "PSMCT16S", bits: 16, class: Direct},
	PSMT8:    {name: "PSMT8", bits: 8, class: Indexed},
	PSMT4:    {name: "PSMT4", bits: 4, class: Indexed},
	PSMZ32:   {name: "PSMZ32", bits: 32, class: Depth},
	PSMZ24:   {name: "PSMZ24", bits: 32, class: Depth},
	PSMZ16:   {name: "PSMZ16", bits: 16, class: Depth},
	PSMZ16S:  {name: "PSMZ16S", bits: 16, class: Depth},
}

// List is the list of all format names, in the order they are usually
// presented.
var List = []string{
	"PSMCT32", "PSMCT24", "PSMCT16", "PSMCT16S", "PSMT8", "PSMT4",
	"PSMZ32", "PSMZ24", "PSMZ16", "PSMZ16S",
}

func (f Format) String() string {
	if i, ok := formats[f]; ok {
		return i.name
	}
	return fmt.Sprintf("PSM(%#02x)", int(f))
}

// Valid returns true if the format is a known pixel storage mode.
func (f Format) Valid() bool {
	_, ok := formats[f]
	return ok
}

// Class returns the alignment class of the format.
func (f Format) Class() Class {
	return formats[f].class
}

// Bits returns the number of bits a pixel occupies in local memory. Returns
// zero for unknown formats.
func (f Format) Bits() int {
	return formats[f].bits
}

// Bytes returns the number of bytes required for the number of pixels. For
// the 4 bit format this is pixels/2.
func (f Format) Bytes(pixels int) int {
	return pixels * formats[f].bits / 8
}

// Parse a format name. The "PSM" prefix is optional and the comparison is
// case insensitive.
func Parse(s string) (Format, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "PSM") {
		s = "PSM" + s
	}
	for f, i := range formats {
		if i.name == s {
			return f, nil
		}
	}
	return 0, curated.Errorf(UnknownFormat, s)
}
