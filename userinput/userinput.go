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

package userinput

import (
	"github.com/jetsetilly/touchstick/joystick"
	"gonum.org/v1/gonum/spatial/r2"
)

// HandleInput conceptualises the control that touches are forwarded to. It is
// implemented by joystick.Joystick.
type HandleInput interface {
	// SetBounds recalculates the layout of the control
	SetBounds(bounds joystick.Rect) joystick.Layout

	// HandleTouches forwards every active touch. pressed is false when
	// there are no active touches
	HandleTouches(points []r2.Vec, pressed bool) joystick.Reading

	// Release the control as though all touches had been lifted
	Release() joystick.Reading
}
