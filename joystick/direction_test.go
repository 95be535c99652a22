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

package joystick_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/touchstick/joystick"
	"github.com/jetsetilly/touchstick/test"
)

func TestDirectionForAngle(t *testing.T) {
	deg := func(d float64) float64 {
		return d * math.Pi / 180.0
	}

	test.ExpectEquality(t, joystick.DirectionForAngle(deg(0)), joystick.Right)
	test.ExpectEquality(t, joystick.DirectionForAngle(deg(-90)), joystick.Up)
	test.ExpectEquality(t, joystick.DirectionForAngle(deg(90)), joystick.Down)
	test.ExpectEquality(t, joystick.DirectionForAngle(deg(180)), joystick.Left)
	test.ExpectEquality(t, joystick.DirectionForAngle(deg(-180)), joystick.Left)

	// boundaries belong to the zone that follows
	test.ExpectEquality(t, joystick.DirectionForAngle(-135.0*math.Pi/180.0), joystick.Up)
	test.ExpectEquality(t, joystick.DirectionForAngle(-45.0*math.Pi/180.0), joystick.Right)
	test.ExpectEquality(t, joystick.DirectionForAngle(45.0*math.Pi/180.0), joystick.Down)
	test.ExpectEquality(t, joystick.DirectionForAngle(135.0*math.Pi/180.0), joystick.Left)

	test.ExpectEquality(t, joystick.DirectionForAngle(deg(-136)), joystick.Left)
	test.ExpectEquality(t, joystick.DirectionForAngle(deg(-46)), joystick.Up)
	test.ExpectEquality(t, joystick.DirectionForAngle(deg(44)), joystick.Right)
	test.ExpectEquality(t, joystick.DirectionForAngle(deg(134)), joystick.Down)
}

func TestDirectionString(t *testing.T) {
	test.ExpectEquality(t, joystick.None.String(), "None")
	test.ExpectEquality(t, joystick.Up.String(), "Up")
	test.ExpectEquality(t, joystick.Left.String(), "Left")
	test.ExpectEquality(t, joystick.Direction(99).String(), "Unknown")
}
