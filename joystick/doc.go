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

// Package joystick turns touches on an on-screen control into the state of a
// digital joystick with a single fire button.
//
// The control is laid out with ComputeLayout(). The layout contains a square
// detection area on the near side, a circular background with a movable thumb
// and, on the far side, the fire button. All sizes are derived from the
// bounds of the control so that the control looks the same at any size.
//
// Touches are classified with Classify(). A touch in the detection area is
// measured from the centre of the thumb background. If the touch is further
// from the centre than the dead zone then the angle of the touch selects one
// of the four directions. The thumb follows the touch, up to the maximum
// travel, whether or not a direction is selected. Classify() is a pure
// function and can be tested without a GUI.
//
// The Joystick type holds the state for one control. The GUI thread calls
// HandleTouches() with every active touch point and the emulator thread calls
// Poll() once per frame. Poll() reports only the differences since the
// previous Poll(), so the emulator sees a press and a release for every
// movement of the stick:
//
//	joy := joystick.NewJoystick(0, prefs)
//	joy.SetBounds(joystick.Rect{W: 400, H: 300})
//
//	// GUI thread
//	joy.HandleTouches(points, len(points) > 0)
//
//	// emulator thread
//	joy.Poll(core)
//
// Lifting the last touch always releases the stick and the button so a
// direction can never be left held.
package joystick
