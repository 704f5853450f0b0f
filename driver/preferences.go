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
	"github.com/ps2homebrew/gslib/curated"
	"github.com/ps2homebrew/gslib/modes"
	"github.com/ps2homebrew/gslib/paths"
	"github.com/ps2homebrew/gslib/prefs"
	"github.com/ps2homebrew/gslib/psm"
)

// InvalidPreference is the curated error pattern returned when a preference
// is set to a value that can not be used.
const InvalidPreference = "driver: invalid preference: %v"

// Preferences for the default display mode.
type Preferences struct {
	dsk *prefs.Disk

	Width     prefs.Int
	Height    prefs.Int
	PSM       prefs.String
	Buffers   prefs.Int
	ZBuffer   prefs.Bool
	ZPSM      prefs.String
	Mode      prefs.String
	Interlace prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preferences are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.PSM.SetHookPre(func(v prefs.Value) error {
		_, err := psm.Parse(v.(string))
		return err
	})
	p.ZPSM.SetHookPre(func(v prefs.Value) error {
		f, err := psm.Parse(v.(string))
		if err != nil {
			return err
		}
		if f.Class() != psm.Depth {
			return curated.Errorf(InvalidPreference, "not a depth format")
		}
		return nil
	})
	p.Mode.SetHookPre(func(v prefs.Value) error {
		_, err := modes.ParseMode(v.(string))
		return err
	})
	p.Interlace.SetHookPre(func(v prefs.Value) error {
		_, err := modes.ParseInterlace(v.(string))
		return err
	})
	positive := func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf(InvalidPreference, "value must be at least one")
		}
		return nil
	}
	p.Width.SetHookPre(positive)
	p.Height.SetHookPre(positive)
	p.Buffers.SetHookPre(positive)

	err := p.SetConfig(DefaultConfig())
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("driver.width", &p.Width)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("driver.height", &p.Height)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("driver.psm", &p.PSM)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("driver.buffers", &p.Buffers)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("driver.zbuffer", &p.ZBuffer)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("driver.zpsm", &p.ZPSM)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("driver.mode", &p.Mode)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("driver.interlace", &p.Interlace)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// SetConfig sets the preferences to the values in the display mode
// configuration. The preferences are not saved.
func (p *Preferences) SetConfig(cfg Config) error {
	for _, err := range []error{
		p.Width.Set(cfg.Width),
		p.Height.Set(cfg.Height),
		p.PSM.Set(cfg.PSM.String()),
		p.Buffers.Set(cfg.Buffers),
		p.ZBuffer.Set(cfg.ZBuffer),
		p.ZPSM.Set(cfg.ZPSM.String()),
		p.Mode.Set(cfg.Mode.String()),
		p.Interlace.Set(cfg.Interlace.String()),
	} {
		if err != nil {
			return curated.Errorf(InvalidPreference, err)
		}
	}
	return nil
}

// Config returns the display mode configuration described by the
// preferences.
func (p *Preferences) Config() (Config, error) {
	var cfg Config
	var err error

	cfg.Width = p.Width.Get().(int)
	cfg.Height = p.Height.Get().(int)
	cfg.Buffers = p.Buffers.Get().(int)
	cfg.ZBuffer = p.ZBuffer.Get().(bool)

	cfg.PSM, err = psm.Parse(p.PSM.String())
	if err != nil {
		return Config{}, curated.Errorf(InvalidPreference, err)
	}
	cfg.ZPSM, err = psm.Parse(p.ZPSM.String())
	if err != nil {
		return Config{}, curated.Errorf(InvalidPreference, err)
	}
	cfg.Mode, err = modes.ParseMode(p.Mode.String())
	if err != nil {
		return Config{}, curated.Errorf(InvalidPreference, err)
	}
	cfg.Interlace, err = modes.ParseInterlace(p.Interlace.String())
	if err != nil {
		return Config{}, curated.Errorf(InvalidPreference, err)
	}

	return cfg, nil
}
