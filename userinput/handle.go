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
	"github.com/jetsetilly/touchstick/curated"
	"github.com/jetsetilly/touchstick/joystick"
	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel error returned when an EventTouch has an unrecognised phase.
const UnknownTouchPhase = "userinput: unknown touch phase (%d)"

// touch handles touch events sent from a GUI. A moved event for a touch that
// has not begun, which can happen when a touch is dragged into the window,
// is treated as a new touch. Ended and cancelled events for unknown touches
// are ignored.
func (c *Controllers) touch(ev EventTouch, handle HandleInput) error {
	p := r2.Vec{X: ev.X, Y: ev.Y}

	switch ev.Phase {
	case TouchBegan, TouchMoved:
		if i := c.find(ev.ID); i >= 0 {
			c.active[i].point = p
		} else {
			c.active = append(c.active, activeTouch{id: ev.ID, point: p})
		}
	case TouchEnded, TouchCancelled:
		i := c.find(ev.ID)
		if i < 0 {
			return nil
		}
		c.active = append(c.active[:i], c.active[i+1:]...)
	default:
		return curated.Errorf(UnknownTouchPhase, ev.Phase)
	}

	c.forward(handle)
	return nil
}

// mouseButton handles mouse events sent from a GUI. Only the left button is
// used.
func (c *Controllers) mouseButton(ev EventMouseButton, handle HandleInput) error {
	if ev.Button != MouseButtonLeft {
		return nil
	}

	if ev.Down {
		return c.touch(EventTouch{ID: MouseTouchID, Phase: TouchBegan, X: ev.X, Y: ev.Y}, handle)
	}
	return c.touch(EventTouch{ID: MouseTouchID, Phase: TouchEnded, X: ev.X, Y: ev.Y}, handle)
}

// mouseMotion handles mouse events sent from a GUI. Motion is ignored unless
// the left button is held.
func (c *Controllers) mouseMotion(ev EventMouseMotion, handle HandleInput) error {
	if c.find(MouseTouchID) < 0 {
		return nil
	}
	return c.touch(EventTouch{ID: MouseTouchID, Phase: TouchMoved, X: ev.X, Y: ev.Y}, handle)
}

// layout handles a change in size of the control. The active touches are
// forwarded again so that the reading reflects the new layout.
func (c *Controllers) layout(ev EventLayout, handle HandleInput) {
	handle.SetBounds(joystick.Rect{W: ev.Width, H: ev.Height})
	if len(c.active) > 0 {
		c.forward(handle)
	}
	c.Redraw = true
}

// release forgets every active touch.
func (c *Controllers) release(handle HandleInput) {
	c.active = c.active[:0]
	r := handle.Release()
	c.Redraw = r.Changed
}
