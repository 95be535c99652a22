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

package prefs_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/touchstick/prefs"
	"github.com/jetsetilly/touchstick/test"
)

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("joystick.port::1; joystick.log :: true; malformed; ::empty")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	ok, v := prefs.GetCommandLinePref("joystick.port")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "1")

	// consumed on retrieval
	ok, _ = prefs.GetCommandLinePref("joystick.port")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "joystick.log::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineStackNesting(t *testing.T) {
	prefs.PushCommandLineStack("a::1")
	prefs.PushCommandLineStack("b::2")

	ok, _ := prefs.GetCommandLinePref("a")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "b::2")

	ok, v := prefs.GetCommandLinePref("a")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "1")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineOverridesDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences.yaml")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var noticeable prefs.Float
	test.DemandSuccess(t, dsk.Add("joystick.noticeable", &noticeable))
	test.DemandSuccess(t, noticeable.Set(1.0))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("joystick.noticeable::4")
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, noticeable.Get().(float64), 4.0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
