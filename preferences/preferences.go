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

// Package preferences holds the user preferences for the touchstick. The
// values are safe to read from any goroutine and can be changed while the
// joystick is in use.
//
// Values can be saved to and loaded from disk with a Preferences instance
// created by NewPreferencesOnDisk(). An instance created with NewPreferences()
// only holds the default values and cannot be saved.
package preferences

import (
	"fmt"

	"github.com/jetsetilly/touchstick/curated"
	"github.com/jetsetilly/touchstick/hardware/spectrum"
	"github.com/jetsetilly/touchstick/prefs"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory.
const DefaultPrefsFile = "preferences.yaml"

// Sentinel errors returned by the Preferences type.
const (
	NoDisk       = "preferences: not attached to disk"
	InvalidValue = "preferences: %s: %v"
)

// Preferences for the touchstick and the emulated machine.
type Preferences struct {
	dsk *prefs.Disk

	// divisor applied to the maximum thumb distance to give the radius of
	// the dead zone. must be greater than one
	DeadZone prefs.Float

	// minimum thumb movement on either axis before a redraw is requested
	Noticeable prefs.Float

	// the joystick port reported to the emulator
	Port prefs.Int

	// log every stick and button transition
	Log prefs.Bool

	// the ID of the emulated machine. see the spectrum package
	Machine prefs.String

	// whether touch input is forwarded to the joystick
	InputJoystick prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("deadzone=%s noticeable=%s port=%s log=%s machine=%s joystick=%s",
			&p.DeadZone, &p.Noticeable, &p.Port, &p.Log, &p.Machine, &p.InputJoystick)
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type when the values do not need to be stored on disk.
func NewPreferences() *Preferences {
	p := &Preferences{}
	p.setHooks()
	p.SetDefaults()
	return p
}

// NewPreferencesOnDisk creates a Preferences instance backed by the file at
// pth. Values in the file, and then any values in the prefs command line
// stack, are applied over the defaults.
func NewPreferencesOnDisk(pth string) (*Preferences, error) {
	p := NewPreferences()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, e := range p.entries() {
		if err := p.dsk.Add(e.key, e.v); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

type entry struct {
	key string
	v   interface {
		fmt.Stringer
		Set(prefs.Value) error
		Get() prefs.Value
		Reset() error
	}
}

func (p *Preferences) entries() []entry {
	return []entry{
		{"joystick.deadzone", &p.DeadZone},
		{"joystick.noticeable", &p.Noticeable},
		{"joystick.port", &p.Port},
		{"joystick.log", &p.Log},
		{"machine.selected", &p.Machine},
		{"input.joystick", &p.InputJoystick},
	}
}

func (p *Preferences) setHooks() {
	p.DeadZone.SetHookPre(func(v prefs.Value) error {
		if !(v.(float64) > 1.0) {
			return curated.Errorf(InvalidValue, "dead zone", "must be greater than one")
		}
		return nil
	})
	p.Noticeable.SetHookPre(func(v prefs.Value) error {
		if !(v.(float64) >= 0.0) {
			return curated.Errorf(InvalidValue, "noticeable change", "must not be negative")
		}
		return nil
	})
	p.Port.SetHookPre(func(v prefs.Value) error {
		if n := v.(int); n < 0 || n > 1 {
			return curated.Errorf(InvalidValue, "port", "must be 0 or 1")
		}
		return nil
	})
	p.Machine.SetHookPre(func(v prefs.Value) error {
		if _, err := spectrum.MachineByID(v.(string)); err != nil {
			return curated.Errorf(InvalidValue, "machine", err)
		}
		return nil
	})
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.DeadZone.Set(2.5)
	p.Noticeable.Set(1.0)
	p.Port.Set(0)
	p.Log.Set(false)
	p.Machine.Set(spectrum.DefaultMachine)
	p.InputJoystick.Set(true)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return curated.Errorf(NoDisk)
	}
	return p.dsk.Load()
}

// ApplyCommandLine sets the preferences named in the prefs command line stack.
// Preferences on disk do this as part of Load() so this is only needed for
// preferences created with NewPreferences(). The first error is returned but
// every value is still tried.
func (p *Preferences) ApplyCommandLine() error {
	var firstErr error
	for _, e := range p.entries() {
		if ok, v := prefs.GetCommandLinePref(e.key); ok {
			if err := e.v.Set(v); err != nil && firstErr == nil {
				firstErr = curated.Errorf(InvalidValue, e.key, err)
			}
		}
	}
	return firstErr
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return curated.Errorf(NoDisk)
	}
	return p.dsk.Save()
}

// AllowLogging implements the logger.Permission interface.
func (p *Preferences) AllowLogging() bool {
	return p.Log.Get().(bool)
}

// SelectedMachine returns the machine named by the Machine preference.
func (p *Preferences) SelectedMachine() spectrum.Machine {
	m, err := spectrum.MachineByID(p.Machine.String())
	if err != nil {
		// the pre-hook means this can't happen but return the default machine
		// rather than a zero value
		m, _ = spectrum.MachineByID(spectrum.DefaultMachine)
	}
	return m
}
