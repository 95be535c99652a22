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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/touchstick/curated"
	"github.com/jetsetilly/touchstick/joystick"
	"github.com/jetsetilly/touchstick/preferences"
	"github.com/jetsetilly/touchstick/test"
	"github.com/jetsetilly/touchstick/userinput"
	"gonum.org/v1/gonum/spatial/r2"
)

// handler records the most recent call to HandleTouches.
type handler struct {
	bounds   joystick.Rect
	points   []r2.Vec
	pressed  bool
	calls    int
	released int
}

func (h *handler) SetBounds(bounds joystick.Rect) joystick.Layout {
	h.bounds = bounds
	return joystick.ComputeLayout(bounds, joystick.DefaultDeadZone)
}

func (h *handler) HandleTouches(points []r2.Vec, pressed bool) joystick.Reading {
	h.points = points
	h.pressed = pressed
	h.calls++
	return joystick.Reading{Changed: true}
}

func (h *handler) Release() joystick.Reading {
	h.points = nil
	h.pressed = false
	h.released++
	return joystick.Reading{Changed: true}
}

func TestTouchSet(t *testing.T) {
	c := userinput.NewControllers(nil)
	var h handler

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventTouch{ID: 1, Phase: userinput.TouchBegan, X: 10, Y: 20}, &h))
	test.ExpectEquality(t, h.pressed, true)
	test.ExpectEquality(t, len(h.points), 1)
	test.ExpectSuccess(t, c.Redraw)

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventTouch{ID: 2, Phase: userinput.TouchBegan, X: 30, Y: 40}, &h))
	test.ExpectEquality(t, len(h.points), 2)
	test.ExpectEquality(t, h.points[0], r2.Vec{X: 10, Y: 20})
	test.ExpectEquality(t, h.points[1], r2.Vec{X: 30, Y: 40})

	// moving a touch keeps its position in the order
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventTouch{ID: 1, Phase: userinput.TouchMoved, X: 11, Y: 21}, &h))
	test.ExpectEquality(t, h.points[0], r2.Vec{X: 11, Y: 21})
	test.ExpectEquality(t, c.ActiveTouches(), 2)

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventTouch{ID: 1, Phase: userinput.TouchEnded}, &h))
	test.ExpectEquality(t, len(h.points), 1)
	test.ExpectEquality(t, h.points[0], r2.Vec{X: 30, Y: 40})
	test.ExpectEquality(t, h.pressed, true)

	// cancelled is the same as ended
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventTouch{ID: 2, Phase: userinput.TouchCancelled}, &h))
	test.ExpectEquality(t, len(h.points), 0)
	test.ExpectEquality(t, h.pressed, false)
	test.ExpectEquality(t, c.ActiveTouches(), 0)
}

func TestUnknownTouches(t *testing.T) {
	c := userinput.NewControllers(nil)
	var h handler

	// ending an unknown touch does nothing
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventTouch{ID: 5, Phase: userinput.TouchEnded}, &h))
	test.ExpectEquality(t, h.calls, 0)

	// moving an unknown touch begins it
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventTouch{ID: 5, Phase: userinput.TouchMoved, X: 1, Y: 1}, &h))
	test.ExpectEquality(t, c.ActiveTouches(), 1)

	err := c.HandleUserInput(userinput.EventTouch{ID: 5, Phase: userinput.TouchPhase(99)}, &h)
	test.ExpectSuccess(t, curated.Is(err, userinput.UnknownTouchPhase))
}

func TestMouse(t *testing.T) {
	c := userinput.NewControllers(nil)
	var h handler

	// motion without a button is ignored
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventMouseMotion{X: 1, Y: 1}, &h))
	test.ExpectEquality(t, h.calls, 0)

	// right button is ignored
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventMouseButton{Button: userinput.MouseButtonRight, Down: true}, &h))
	test.ExpectEquality(t, h.calls, 0)

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: true, X: 5, Y: 6}, &h))
	test.ExpectEquality(t, h.points[0], r2.Vec{X: 5, Y: 6})

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventMouseMotion{X: 7, Y: 8}, &h))
	test.ExpectEquality(t, h.points[0], r2.Vec{X: 7, Y: 8})

	// mouse and a touch at the same time
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventTouch{ID: 0, Phase: userinput.TouchBegan, X: 9, Y: 9}, &h))
	test.ExpectEquality(t, len(h.points), 2)

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: false}, &h))
	test.ExpectEquality(t, len(h.points), 1)
	test.ExpectEquality(t, h.points[0], r2.Vec{X: 9, Y: 9})
}

func TestLayoutAndRelease(t *testing.T) {
	c := userinput.NewControllers(nil)
	var h handler

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventLayout{Width: 800, Height: 300}, &h))
	test.ExpectEquality(t, h.bounds, joystick.Rect{W: 800, H: 300})
	test.ExpectSuccess(t, c.Redraw)
	test.ExpectEquality(t, h.calls, 0)

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventTouch{ID: 1, Phase: userinput.TouchBegan}, &h))
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventLayout{Width: 400, Height: 300}, &h))
	test.ExpectEquality(t, h.calls, 2)

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventRelease{}, &h))
	test.ExpectEquality(t, h.released, 1)
	test.ExpectEquality(t, c.ActiveTouches(), 0)

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventQuit{}, &h))
	test.ExpectSuccess(t, c.Quit)
	test.ExpectFailure(t, c.Redraw)
}

func TestInputDisabled(t *testing.T) {
	p := preferences.NewPreferences()
	test.DemandSuccess(t, p.InputJoystick.Set(false))

	c := userinput.NewControllers(p)
	var h handler

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventTouch{ID: 1, Phase: userinput.TouchBegan}, &h))
	test.ExpectEquality(t, h.calls, 0)
	test.ExpectEquality(t, h.released, 1)
}

func TestWithJoystick(t *testing.T) {
	c := userinput.NewControllers(nil)
	j := joystick.NewJoystick(0, nil)

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventLayout{Width: 800, Height: 300}, j))
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventTouch{ID: 1, Phase: userinput.TouchBegan, X: 190, Y: 150}, j))
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventTouch{ID: 2, Phase: userinput.TouchBegan, X: 700, Y: 150}, j))

	d, b := j.Reading()
	test.ExpectEquality(t, d, joystick.Right)
	test.ExpectEquality(t, b, true)

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventTouch{ID: 1, Phase: userinput.TouchEnded}, j))
	d, b = j.Reading()
	test.ExpectEquality(t, d, joystick.None)
	test.ExpectEquality(t, b, true)

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventRelease{}, j))
	d, b = j.Reading()
	test.ExpectEquality(t, d, joystick.None)
	test.ExpectEquality(t, b, false)
}
