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

package spectrum_test

import (
	"testing"

	"github.com/jetsetilly/touchstick/curated"
	"github.com/jetsetilly/touchstick/hardware/spectrum"
	"github.com/jetsetilly/touchstick/test"
)

func TestMachineByID(t *testing.T) {
	m, err := spectrum.MachineByID("48K")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.ID, "48k")
	test.ExpectApproximate(t, m.FrameRate(), 50.08, 0.001)

	m, err = spectrum.MachineByID("plus3")
	test.ExpectSuccess(t, err)
	test.ExpectApproximate(t, m.FrameRate(), 50.02, 0.001)

	_, err = spectrum.MachineByID("zx81")
	test.ExpectSuccess(t, curated.Is(err, spectrum.UnknownMachine))

	_, err = spectrum.MachineByID(spectrum.DefaultMachine)
	test.ExpectSuccess(t, err)
}

func TestMachines(t *testing.T) {
	m := spectrum.Machines()
	test.ExpectEquality(t, len(m), 6)

	// the returned list is a copy
	m[0].ID = "changed"
	test.ExpectEquality(t, spectrum.Machines()[0].ID, "16k")

	for _, m := range spectrum.Machines() {
		test.ExpectSuccess(t, m.FrameRate() > 49.0 && m.FrameRate() < 51.0, m.ID)
	}

	test.ExpectEquality(t, spectrum.Machine{}.FrameRate(), 0.0)
}
