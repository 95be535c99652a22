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

// Package userinput handles input from the real hardware that the user is
// touching and forwards it to the on-screen joystick.
//
// It can be thought of as a translation layer between the GUI implementation
// and the joystick package. As such, this package attempts to hide details of
// the GUI implementation while protecting the joystick package from
// complication. A GUI converts its native events to the Event types in this
// package and sends them to Controllers.HandleUserInput().
//
// The joystick needs every active touch each time any one of them changes.
// Controllers keeps the set of active touches, in the order they began, and
// forwards the full set on every event. A mouse with its left button held is
// treated as a single touch with the ID MouseTouchID.
package userinput
