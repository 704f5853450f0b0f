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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/ps2homebrew/gslib/curated"
)

// DefaultPrefsFile is the default filename of the preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the head of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separates key and value in the preferences file.
const separator = " :: "

// Curated error patterns.
const (
	DuplicateKey = "prefs: key already added (%s)"
	DiskError    = "prefs: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref

	// preferences that have been set from the command line stack. these
	// values are never written to disk
	overrides map[string]override
}

// override records the value applied from the command line and the value
// that should be written to disk in its place.
type override struct {
	applied string
	stored  string
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file is not accessed until Load() or Save() is called.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(DiskError, "no path for preferences file")
	}
	return &Disk{
		path:      path,
		entries:   make(map[string]pref),
		overrides: make(map[string]override),
	}, nil
}

// Add a preference value to the Disk. A value of the same key in the
// command line stack is applied immediately.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		return dsk.applyOverride(key, p, v)
	}

	return nil
}

// set preference from command line value and note the value it replaced.
// the mutex must be held by the caller
func (dsk *Disk) applyOverride(key string, p pref, v Value) error {
	stored := p.String()
	if err := p.Set(v); err != nil {
		return curated.Errorf(DiskError, err)
	}
	dsk.overrides[key] = override{
		applied: p.String(),
		stored:  stored,
	}
	return nil
}

// read the preferences file into a map of key/value strings. a missing file
// is not an error
func (dsk *Disk) read() (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return nil, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line must be the boilerplate
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(DiskError, fmt.Sprintf("not a valid preferences file (%s)", dsk.path))
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if ok {
			entries[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskError, err)
	}

	return entries, nil
}

// Save current preference values to disk. Entries in the file that have not
// been added to the Disk are preserved.
//
// A preference that still has the value given to it by the command line stack
// is saved with the value it had before the command line was applied. Once
// the preference has been changed it is saved normally.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	entries, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		v := p.String()
		if o, ok := dsk.overrides[k]; ok {
			if v == o.applied {
				v = o.stored
			} else {
				delete(dsk.overrides, k)
			}
		}
		entries[k] = v
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString(separator)
		s.WriteString(entries[k])
		s.WriteString("\n")
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0o600)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. If saveOnFail is true and the file does
// not contain a value for every added preference then the file is saved
// with the current values.
//
// Values in the command line stack take precedence over values on disk. They
// are not written to disk by saveOnFail or by any later call to Save().
func (dsk *Disk) Load(saveOnFail bool) error {
	dsk.crit.Lock()

	entries, err := dsk.read()
	if err != nil {
		dsk.crit.Unlock()
		return err
	}

	missing := false
	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.applyOverride(k, p, v); err != nil {
				dsk.crit.Unlock()
				return err
			}
		}

		v, ok := entries[k]
		if !ok {
			missing = true
			continue
		}

		// the value on disk replaces the value that will be saved but not
		// the value from the command line
		if o, ok := dsk.overrides[k]; ok {
			if p.String() == o.applied {
				o.stored = v
				dsk.overrides[k] = o
				continue
			}
			delete(dsk.overrides, k)
		}

		if err := p.Set(v); err != nil {
			dsk.crit.Unlock()
			return curated.Errorf(DiskError, err)
		}
	}

	dsk.crit.Unlock()

	if missing && saveOnFail {
		return dsk.Save()
	}

	return nil
}

// String returns the current preference values in the same format as the
// preferences file.
func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}
