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

import "fmt"

// Event represents all the different type of events that can occur in the
// GUI.
type Event any

// TouchID uniquely identifies a touch for the duration of its contact.
type TouchID int64

// MouseTouchID is the TouchID used for the mouse when the left button is held.
const MouseTouchID TouchID = -1

// TouchPhase is the stage in the life of a touch.
type TouchPhase int

// List of valid TouchPhase values.
const (
	TouchBegan TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCancelled
)

func (p TouchPhase) String() string {
	switch p {
	case TouchBegan:
		return "began"
	case TouchMoved:
		return "moved"
	case TouchEnded:
		return "ended"
	case TouchCancelled:
		return "cancelled"
	}
	return "unknown"
}

// EventTouch data is sent by the GUI for every change of a touch. The X and Y
// values are in the coordinate space of the control.
type EventTouch struct {
	ID    TouchID
	Phase TouchPhase
	X, Y  float64
}

func (ev EventTouch) String() string {
	return fmt.Sprintf("touch %d %s (%.1f,%.1f)", ev.ID, ev.Phase, ev.X, ev.Y)
}

// MouseButton identifies the mouse button.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// EventMouseButton data is sent by the GUI when a mouse button has been
// pressed or released.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
	X, Y   float64
}

// EventMouseMotion data is sent by the GUI when the mouse has moved.
type EventMouseMotion struct {
	X, Y float64
}

// EventLayout is sent by the GUI when the size of the control changes.
type EventLayout struct {
	Width, Height float64
}

// EventQuit is sent when the application should end.
type EventQuit struct{}

// EventRelease is sent when the GUI can no longer be sure of the state of
// the touches. For example, when the window loses focus. All touches are
// forgotten.
type EventRelease struct{}
