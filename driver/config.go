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

package driver

import (
	"fmt"

	"github.com/ps2homebrew/gslib/layout"
	"github.com/ps2homebrew/gslib/modes"
	"github.com/ps2homebrew/gslib/psm"
)

// Config is the display mode configuration.
type Config struct {
	Width  int
	Height int
	PSM    psm.Format

	Buffers int

	ZBuffer bool
	ZPSM    psm.Format

	Mode      modes.Mode
	Interlace modes.Interlace
}

// DefaultConfig returns the configuration used by NewDriver().
func DefaultConfig() Config {
	return Config{
		Width:     320,
		Height:    240,
		PSM:       psm.PSMCT32,
		Buffers:   2,
		ZBuffer:   true,
		ZPSM:      psm.PSMZ32,
		Mode:      modes.NTSC,
		Interlace: modes.NonInterlace,
	}
}

func (cfg Config) layout() layout.Config {
	return layout.Config{
		Width:    cfg.Width,
		Height:   cfg.Height,
		FramePSM: cfg.PSM,
		Buffers:  cfg.Buffers,
		ZBuffer:  cfg.ZBuffer,
		ZPSM:     cfg.ZPSM,
	}
}

func (cfg Config) String() string {
	z := "no zbuffer"
	if cfg.ZBuffer {
		z = cfg.ZPSM.String()
	}
	return fmt.Sprintf("%dx%d %v x%d (%s) %v %v", cfg.Width, cfg.Height, cfg.PSM, cfg.Buffers, z, cfg.Mode, cfg.Interlace)
}
