// This file is part of Touchstick.
//
// Touchstick is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Touchstick is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Touchstick.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/jetsetilly/touchstick/curated"
	"gopkg.in/yaml.v3"
)

// WarningBoilerPlate is written as a comment at the top of every preferences
// file.
const WarningBoilerPlate = "# *** do not edit this file by hand. it is maintained by touchstick ***"

// Sentinel errors returned by the Disk type.
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	DiskLoad     = "prefs: load: %v"
	DiskSave     = "prefs: save: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	keys := dsk.keys()

	var s bytes.Buffer
	for _, k := range keys {
		fmt.Fprintf(&s, "%s :: %s\n", k, dsk.entries[k])
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

// Path returns the path of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from disk. Keys must
// be unique for the Disk instance.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset all preference values to their zero value. Hook functions will be
// called as normal.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf("prefs: reset: %s: %v", k, err)
		}
	}
	return nil
}

// read the preferences file. a missing file is not an error and results in an
// empty map.
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	b, err := os.ReadFile(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(b, &data); err != nil {
		return nil, err
	}

	// an empty document unmarshals to a nil map
	if data == nil {
		data = make(map[string]string)
	}

	return data, nil
}

// Save current preference values to disk. Entries in the existing file that
// are not known to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil {
		return curated.Errorf(DiskSave, err)
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	b, err := yaml.Marshal(data)
	if err != nil {
		return curated.Errorf(DiskSave, err)
	}

	var out bytes.Buffer
	out.WriteString(WarningBoilerPlate)
	out.WriteString("\n")
	out.Write(b)

	if err := os.WriteFile(dsk.path, out.Bytes(), 0o600); err != nil {
		return curated.Errorf(DiskSave, err)
	}

	return nil
}

// Load preference values from disk. A missing file is not an error and leaves
// the values unchanged. Once the file has been read any preferences in the
// command line stack with a matching key are applied.
//
// The first error from a Set() call is returned but loading continues with
// the remaining keys.
func (dsk *Disk) Load() error {
	data, err := dsk.read()
	if err != nil {
		return curated.Errorf(DiskLoad, err)
	}

	var firstErr error

	for _, k := range dsk.keys() {
		p := dsk.entries[k]

		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil && firstErr == nil {
				firstErr = curated.Errorf(DiskLoad, fmt.Errorf("%s: %w", k, err))
			}
		}

		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil && firstErr == nil {
				firstErr = curated.Errorf(DiskLoad, fmt.Errorf("%s: %w", k, err))
			}
		}
	}

	return firstErr
}
