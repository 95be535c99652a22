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

package gui

import (
	"cmp"
	"slices"

	"github.com/jetsetilly/touchstick/userinput"
	"gonum.org/v1/gonum/spatial/r2"
)

// TouchDiff compares successive sets of touches and produces the touch events
// that describe the difference.
type TouchDiff struct {
	prev map[userinput.TouchID]r2.Vec
}

// NewTouchDiff is the preferred method of initialisation for the TouchDiff
// type.
func NewTouchDiff() *TouchDiff {
	return &TouchDiff{
		prev: make(map[userinput.TouchID]r2.Vec),
	}
}

// Update with the current set of touches. Ended touches are returned first,
// followed by moved touches and then new touches. Touches within each group
// are ordered by ID.
func (td *TouchDiff) Update(current map[userinput.TouchID]r2.Vec) []userinput.Event {
	var ended, moved, began []userinput.EventTouch

	for id, p := range td.prev {
		if _, ok := current[id]; !ok {
			ended = append(ended, userinput.EventTouch{ID: id, Phase: userinput.TouchEnded, X: p.X, Y: p.Y})
		}
	}

	for id, p := range current {
		if q, ok := td.prev[id]; ok {
			if p != q {
				moved = append(moved, userinput.EventTouch{ID: id, Phase: userinput.TouchMoved, X: p.X, Y: p.Y})
			}
		} else {
			began = append(began, userinput.EventTouch{ID: id, Phase: userinput.TouchBegan, X: p.X, Y: p.Y})
		}
	}

	td.prev = make(map[userinput.TouchID]r2.Vec, len(current))
	for id, p := range current {
		td.prev[id] = p
	}

	byID := func(a, b userinput.EventTouch) int {
		return cmp.Compare(a.ID, b.ID)
	}
	slices.SortFunc(ended, byID)
	slices.SortFunc(moved, byID)
	slices.SortFunc(began, byID)

	events := make([]userinput.Event, 0, len(ended)+len(moved)+len(began))
	for _, group := range [][]userinput.EventTouch{ended, moved, began} {
		for _, ev := range group {
			events = append(events, ev)
		}
	}

	return events
}

// Reset forgets all touches. The returned events end every touch that was
// previously active.
func (td *TouchDiff) Reset() []userinput.Event {
	return td.Update(nil)
}
