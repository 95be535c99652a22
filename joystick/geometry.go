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

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Rect is an axis aligned rectangle in the coordinate space of the control.
// The origin is the top-left corner and the Y axis grows downwards.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect is a convenience function for creating a Rect from an origin and a
// size.
func NewRect(origin r2.Vec, w, h float64) Rect {
	return Rect{X: origin.X, Y: origin.Y, W: w, H: h}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%.1f,%.1f %.1fx%.1f)", r.X, r.Y, r.W, r.H)
}

// MinX returns the left edge of the rectangle.
func (r Rect) MinX() float64 {
	return r.X
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 {
	return r.X + r.W
}

// MidX returns the horizontal centre of the rectangle.
func (r Rect) MidX() float64 {
	return r.X + r.W/2
}

// MinY returns the top edge of the rectangle.
func (r Rect) MinY() float64 {
	return r.Y
}

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 {
	return r.Y + r.H
}

// MidY returns the vertical centre of the rectangle.
func (r Rect) MidY() float64 {
	return r.Y + r.H/2
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() r2.Vec {
	return r2.Vec{X: r.X, Y: r.Y}
}

// Centre returns the centre point of the rectangle.
func (r Rect) Centre() r2.Vec {
	return r2.Vec{X: r.MidX(), Y: r.MidY()}
}

// IsEmpty returns true if the rectangle has no area. A rectangle with NaN
// dimensions is also considered to be empty.
func (r Rect) IsEmpty() bool {
	return !(r.W > 0) || !(r.H > 0)
}

// Contains returns true if the point is inside the rectangle. The test is
// half-open: points on the left and top edges are inside, points on the right
// and bottom edges are not. This means that two rectangles that share an edge
// never both claim the same point.
func (r Rect) Contains(p r2.Vec) bool {
	if r.IsEmpty() {
		return false
	}
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// Intersects returns true if the two rectangles overlap by a non-zero area.
func (r Rect) Intersects(s Rect) bool {
	if r.IsEmpty() || s.IsEmpty() {
		return false
	}
	return r.MinX() < s.MaxX() && s.MinX() < r.MaxX() && r.MinY() < s.MaxY() && s.MinY() < r.MaxY()
}

// MoveTo returns a copy of the rectangle with the origin moved to the
// specified point. The size is unchanged.
func (r Rect) MoveTo(origin r2.Vec) Rect {
	r.X = origin.X
	r.Y = origin.Y
	return r
}

// isNoticeableChange returns true if point b differs from point a by at
// least threshold on either axis. A threshold of zero means that any change
// is noticeable.
func isNoticeableChange(a, b r2.Vec, threshold float64) bool {
	d := r2.Sub(b, a)
	if threshold <= 0 {
		return d.X != 0 || d.Y != 0
	}
	return math.Abs(d.X) >= threshold || math.Abs(d.Y) >= threshold
}
