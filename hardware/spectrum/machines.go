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

// Package spectrum describes the ZX Spectrum models that a touchstick can be
// attached to. The timing information is used to run the joystick poll at the
// same rate as the emulated machine's frame.
package spectrum

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/touchstick/curated"
)

// Sentinel error returned by MachineByID.
const UnknownMachine = "spectrum: unknown machine (%s)"

// Machine describes the timing of a single Spectrum model.
type Machine struct {
	ID   string
	Name string

	// number of T-states in a single video frame
	TStatesPerFrame int

	// CPU clock speed in Hz
	Clock float64
}

func (m Machine) String() string {
	return fmt.Sprintf("%s (%.2f fps)", m.Name, m.FrameRate())
}

// FrameRate returns the number of frames per second.
func (m Machine) FrameRate() float64 {
	if m.TStatesPerFrame <= 0 {
		return 0
	}
	return m.Clock / float64(m.TStatesPerFrame)
}

// the list of supported machines in the order they should be presented.
var machines = []Machine{
	{ID: "16k", Name: "ZX Spectrum 16K", TStatesPerFrame: 69888, Clock: 3500000},
	{ID: "48k", Name: "ZX Spectrum 48K", TStatesPerFrame: 69888, Clock: 3500000},
	{ID: "128k", Name: "ZX Spectrum 128K", TStatesPerFrame: 70908, Clock: 3546900},
	{ID: "plus2", Name: "ZX Spectrum +2", TStatesPerFrame: 70908, Clock: 3546900},
	{ID: "plus2a", Name: "ZX Spectrum +2A", TStatesPerFrame: 70908, Clock: 3546900},
	{ID: "plus3", Name: "ZX Spectrum +3", TStatesPerFrame: 70908, Clock: 3546900},
}

// DefaultMachine is the ID of the machine used when none has been selected.
const DefaultMachine = "48k"

// Machines returns a copy of the list of supported machines.
func Machines() []Machine {
	m := make([]Machine, len(machines))
	copy(m, machines)
	return m
}

// MachineByID returns the Machine with the matching ID. The comparison is
// case insensitive.
func MachineByID(id string) (Machine, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, m := range machines {
		if m.ID == id {
			return m, nil
		}
	}
	return Machine{}, curated.Errorf(UnknownMachine, id)
}
