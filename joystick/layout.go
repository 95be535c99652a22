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

// sizes of the joystick artwork. the layout preserves the ratio between the
// thumb background and the button.
const (
	thumbBackArtSize = 250.0
	thumbArtSize     = 160.0
	buttonArtSize    = thumbArtSize
)

// the horizontal offset used to balance the two widgets once the button has
// reached its natural size.
const balanceOffset = 25.0

// DefaultDeadZone is the divisor applied to the maximum thumb distance to
// give the minimum distance at which a touch is considered to be a
// directional input.
const DefaultDeadZone = 2.5

// Layout is the set of regions derived from the bounds of the control. The
// zero value is an empty layout in which nothing can be touched.
type Layout struct {
	// the bounds the layout was computed from
	Bounds Rect

	// square area in which touches are treated as stick input. larger than
	// the thumb itself
	DetectionArea Rect

	// the circular background of the stick
	ThumbBack Rect

	// the thumb at its rest position
	Thumb Rect

	// fire button
	Button Rect

	// the point the thumb is centred on when at rest. angles and distances
	// are measured from here
	RestCentre r2.Vec

	// half the width of the thumb
	ThumbRadius float64

	// how far the centre of the thumb can travel from the rest centre
	MaxThumbDistance float64

	// the dead zone radius. distances less than or equal to this do not
	// produce a direction
	MinThumbDetectionDistance float64
}

func (l Layout) String() string {
	return fmt.Sprintf("detect=%s back=%s thumb=%s button=%s travel=%.1f deadzone=%.1f",
		l.DetectionArea, l.ThumbBack, l.Thumb, l.Button,
		l.MaxThumbDistance, l.MinThumbDetectionDistance)
}

// IsEmpty returns true if the layout was computed from degenerate bounds.
func (l Layout) IsEmpty() bool {
	return l.DetectionArea.IsEmpty() && l.Button.IsEmpty()
}

// ComputeLayout derives the regions of the control from its bounds. The
// deadZone argument is the divisor used to calculate the
// MinThumbDetectionDistance from the MaxThumbDistance. Values less than or
// equal to one are replaced with DefaultDeadZone.
//
// Bounds with a non-positive width or height result in an empty Layout.
func ComputeLayout(bounds Rect, deadZone float64) Layout {
	if bounds.IsEmpty() || math.IsInf(bounds.W, 0) || math.IsInf(bounds.H, 0) {
		return Layout{Bounds: bounds}
	}

	if !(deadZone > 1) {
		deadZone = DefaultDeadZone
	}

	// maximum sizes. this makes the control fit on smaller screens
	ratio := buttonArtSize / thumbBackArtSize
	stickSize := math.Min(bounds.W*ratio, bounds.H)
	buttonSize := math.Max(0, math.Min(bounds.W-stickSize, buttonArtSize))

	// the two widgets are pushed towards the centre once the button is at its
	// natural size
	var offset float64
	if buttonSize == buttonArtSize {
		offset = balanceOffset
	}

	var l Layout
	l.Bounds = bounds

	// detection area is always square. it is flush to the near edge and
	// centred vertically
	midY := bounds.MidY()
	l.DetectionArea = Rect{
		X: bounds.X,
		Y: midY - stickSize/2,
		W: stickSize,
		H: stickSize,
	}

	backSize := math.Max(0, stickSize-offset*2)
	l.ThumbBack = Rect{
		X: bounds.X + offset,
		Y: midY - backSize/2,
		W: backSize,
		H: backSize,
	}

	// the thumb artwork is the same size as the button. on very wide controls
	// it is limited by the background, in the proportion of the artwork
	thumbSize := math.Min(buttonSize, backSize*thumbArtSize/thumbBackArtSize)
	l.Thumb = Rect{
		X: l.ThumbBack.X + (backSize-thumbSize)/2,
		Y: midY - thumbSize/2,
		W: thumbSize,
		H: thumbSize,
	}

	l.MaxThumbDistance = (backSize - thumbSize) / 2
	l.MinThumbDetectionDistance = l.MaxThumbDistance / deadZone
	l.ThumbRadius = thumbSize / 2
	l.RestCentre = l.ThumbBack.Centre()

	// button is on the far side. it is never pushed into the detection area
	// by the offset
	l.Button = Rect{
		X: math.Max(bounds.MaxX()-buttonSize-offset, l.DetectionArea.MaxX()),
		Y: midY - buttonSize/2,
		W: buttonSize,
		H: buttonSize,
	}

	return l
}

// thumbAt returns the thumb rectangle with its centre at point p.
func (l Layout) thumbAt(p r2.Vec) Rect {
	return l.Thumb.MoveTo(r2.Sub(p, r2.Vec{X: l.ThumbRadius, Y: l.ThumbRadius}))
}
