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

// Package kempston emulates the Kempston joystick interface. The interface
// presents the state of the joystick as a single byte read from I/O port
// 0x1f. Bits are set while the corresponding input is held.
//
//	bit 0  right
//	bit 1  left
//	bit 2  down
//	bit 3  up
//	bit 4  fire
//
// The Interface type implements joystick.Reporter and so can be given
// directly to joystick.Poll(). The Value() function is safe to call from the
// emulated CPU's goroutine.
package kempston

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jetsetilly/touchstick/joystick"
)

// IOPort is the address that the interface responds to.
const IOPort = 0x1f

// bit masks for the port value.
const (
	maskRight = 0x01
	maskLeft  = 0x02
	maskDown  = 0x04
	maskUp    = 0x08
	maskFire  = 0x10
)

func directionMask(dir joystick.Direction) uint8 {
	switch dir {
	case joystick.Right:
		return maskRight
	case joystick.Left:
		return maskLeft
	case joystick.Down:
		return maskDown
	case joystick.Up:
		return maskUp
	}
	return 0
}

// Interface is a Kempston joystick interface attached to a single joystick
// port.
type Interface struct {
	port int

	crit  sync.Mutex
	value uint8
}

// NewInterface is the preferred method of initialisation for the Interface
// type. Reports for ports other than the one specified are ignored.
func NewInterface(port int) *Interface {
	return &Interface{port: port}
}

func (k *Interface) String() string {
	v := k.Value()

	s := strings.Builder{}
	for _, b := range []struct {
		mask  uint8
		label string
	}{
		{maskUp, "U"},
		{maskDown, "D"},
		{maskLeft, "L"},
		{maskRight, "R"},
		{maskFire, "F"},
	} {
		if v&b.mask == b.mask {
			s.WriteString(b.label)
		} else {
			s.WriteString("-")
		}
	}

	return fmt.Sprintf("kempston 0x%02x %s", v, s.String())
}

// ReportDirection implements the joystick.Reporter interface.
func (k *Interface) ReportDirection(port int, dir joystick.Direction, pressed bool) {
	if port != k.port {
		return
	}

	k.crit.Lock()
	defer k.crit.Unlock()

	if pressed {
		k.value |= directionMask(dir)
	} else {
		k.value &^= directionMask(dir)
	}
}

// ReportButton implements the joystick.Reporter interface.
func (k *Interface) ReportButton(port int, pressed bool) {
	if port != k.port {
		return
	}

	k.crit.Lock()
	defer k.crit.Unlock()

	if pressed {
		k.value |= maskFire
	} else {
		k.value &^= maskFire
	}
}

// Value returns the byte that would be read from IOPort.
func (k *Interface) Value() uint8 {
	k.crit.Lock()
	defer k.crit.Unlock()
	return k.value
}

// Held returns true if the direction is currently held. Held(joystick.None)
// returns true if no direction is held.
func (k *Interface) Held(dir joystick.Direction) bool {
	v := k.Value()
	if dir == joystick.None {
		return v&(maskRight|maskLeft|maskDown|maskUp) == 0
	}
	return v&directionMask(dir) != 0
}

// Fire returns true if the fire button is held.
func (k *Interface) Fire() bool {
	return k.Value()&maskFire == maskFire
}

// Read returns the port value if addr is the Kempston port. The address is
// decoded on the low byte only.
func (k *Interface) Read(addr uint16) (uint8, bool) {
	if addr&0xff != IOPort {
		return 0, false
	}
	return k.Value(), true
}
