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

// Package prefs facilitates the storage of preferential values in the
// Touchstick system. It is a key/value system and the values are saved to
// disk as a YAML mapping.
//
// Values are typed and must implement the pref interface. The package
// provides the Bool, Int, Float and String types. Each type is safe to read
// from more than one goroutine, which means that a preference can be changed
// by the GUI thread while the emulation loop is reading it.
//
// A value is associated with a key by adding it to a Disk instance:
//
//	var deadZone prefs.Float
//	dsk, _ := prefs.NewDisk(paths.ResourcePath("preferences.yaml"))
//	dsk.Add("joystick.deadzone", &deadZone)
//	dsk.Load()
//
// Hook functions can be attached to a value. The pre-hook can reject a new
// value by returning an error. The post-hook is called after the value has
// been stored.
//
// Preferences can be overridden from the command line with a string of the
// form:
//
//	key::value; key::value
//
// See PushCommandLineStack(). Command line preferences are applied when Load()
// is called and are never saved to disk.
package prefs
