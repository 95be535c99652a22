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
	"github.com/jetsetilly/touchstick/preferences"
	"gonum.org/v1/gonum/spatial/r2"
)

type activeTouch struct {
	id    TouchID
	point r2.Vec
}

// Controllers keeps track of the active touches and forwards them to the
// control.
type Controllers struct {
	prefs *preferences.Preferences

	// active touches in the order they began
	active []activeTouch

	// is true if the last event changed the control enough to warrant a
	// redraw
	Redraw bool

	// is true if last event was a quit event
	Quit bool
}

// NewControllers is the preferred method of initialisation for the
// Controllers type. The prefs argument can be nil, in which case touch input
// is always forwarded.
func NewControllers(prefs *preferences.Preferences) *Controllers {
	return &Controllers{
		prefs:  prefs,
		active: make([]activeTouch, 0, 4),
	}
}

// ActiveTouches returns the number of touches currently in contact.
func (c *Controllers) ActiveTouches() int {
	return len(c.active)
}

func (c *Controllers) find(id TouchID) int {
	for i := range c.active {
		if c.active[i].id == id {
			return i
		}
	}
	return -1
}

// forward the full set of active touches. if joystick input has been disabled
// in the preferences the control is released instead.
func (c *Controllers) forward(handle HandleInput) {
	if c.prefs != nil && !c.prefs.InputJoystick.Get().(bool) {
		c.Redraw = handle.Release().Changed
		return
	}

	points := make([]r2.Vec, len(c.active))
	for i := range c.active {
		points[i] = c.active[i].point
	}

	r := handle.HandleTouches(points, len(points) > 0)
	c.Redraw = r.Changed
}

// HandleUserInput deciphers the Event and forwards the input to the control.
// The Redraw and Quit fields are updated to reflect the outcome of the event.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) error {
	c.Quit = false
	c.Redraw = false

	var err error
	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
	case EventTouch:
		err = c.touch(ev, handle)
	case EventMouseButton:
		err = c.mouseButton(ev, handle)
	case EventMouseMotion:
		err = c.mouseMotion(ev, handle)
	case EventLayout:
		c.layout(ev, handle)
	case EventRelease:
		c.release(handle)
	default:
	}

	return err
}
