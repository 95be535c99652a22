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

package joystick

import "math"

// Direction is the reading of the 4-way digital stick. Only one direction can
// be active at any one time.
type Direction int

// List of valid Direction values. None is the zero value.
const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case None:
		return "None"
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	}
	return "Unknown"
}

// boundary angles in radians. angles are measured from the rest centre with
// the Y axis growing downwards, so a negative angle is above the centre.
var (
	boundaryNE = -135.0 * math.Pi / 180.0
	boundaryNW = -45.0 * math.Pi / 180.0
	boundarySW = 45.0 * math.Pi / 180.0
	boundarySE = 135.0 * math.Pi / 180.0
)

// DirectionForAngle maps an angle, as returned by math.Atan2(dy, dx), to a
// Direction. The four zones are each 90° wide and are centred on the axes.
// Angles on a boundary belong to the zone that follows it when moving
// clockwise on screen.
func DirectionForAngle(angle float64) Direction {
	switch {
	case angle >= boundaryNE && angle < boundaryNW:
		return Up
	case angle >= boundaryNW && angle < boundarySW:
		return Right
	case angle >= boundarySW && angle < boundarySE:
		return Down
	}
	return Left
}
