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

// DefaultNoticeableChange is the distance the thumb must move on either axis
// before the movement is reported as a change.
const DefaultNoticeableChange = 1.0

// Track is the feedback state carried from one classification to the next.
type Track struct {
	// the current position of the movable thumb
	Thumb Rect

	// the thumb origin and button state the last time they were surfaced as
	// a change
	prevThumb  r2.Vec
	prevButton bool
}

// NewTrack returns the Track for a control at rest.
func NewTrack(l Layout) Track {
	return Track{Thumb: l.Thumb, prevThumb: l.Thumb.Origin()}
}

// Reading is the result of classifying a set of touches.
type Reading struct {
	Direction Direction
	Button    bool

	// whether any touch fell in the thumb detection area or the button
	TouchedThumbArea  bool
	TouchedButtonArea bool

	// whether the reading is different enough from the previous one to
	// warrant a redraw
	Changed bool

	// the Track to use for the next call to Classify()
	Track Track
}

func (r Reading) String() string {
	return fmt.Sprintf("stick=%s fire=%v thumb=%s changed=%v", r.Direction, r.Button, r.Track.Thumb, r.Changed)
}

// Classify the touch points against the regions of the Layout. The pressed
// argument should be false when the last touch has been lifted, in which case
// the points are ignored and the reading is a forced release.
//
// When there is more than one point in a region the last point in the list
// wins.
//
// The noticeable argument is the threshold used to decide whether a thumb
// movement should be surfaced with Reading.Changed.
func Classify(l Layout, trk Track, points []r2.Vec, pressed bool, noticeable float64) Reading {
	var r Reading

	if !pressed {
		// snap back to rest. TouchedThumbArea is forced so that the caller
		// always redraws the thumb
		r.TouchedThumbArea = true
		r.Changed = true
		r.Track = NewTrack(l)
		return r
	}

	r.Track = trk
	thumb := l.Thumb

	for _, p := range points {
		if l.DetectionArea.Contains(p) {
			v := r2.Sub(p, l.RestCentre)
			angle := math.Atan2(v.Y, v.X)
			distance := math.Min(r2.Norm(v), l.MaxThumbDistance)

			r.Direction = None
			if math.Abs(distance) > l.MinThumbDetectionDistance {
				r.Direction = DirectionForAngle(angle)
			}

			// the thumb follows the finger even inside the dead zone
			c := r2.Add(l.RestCentre, r2.Scale(distance, r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}))
			thumb = l.thumbAt(c)

			r.TouchedThumbArea = true
		} else if l.Button.Contains(p) {
			r.Button = true
			r.TouchedButtonArea = true
		}
	}

	r.Track.Thumb = thumb

	if r.Button != r.Track.prevButton {
		r.Track.prevButton = r.Button
		r.Changed = true
	}

	if isNoticeableChange(r.Track.prevThumb, thumb.Origin(), noticeable) {
		r.Track.prevThumb = thumb.Origin()
		r.Changed = true
	}

	return r
}
