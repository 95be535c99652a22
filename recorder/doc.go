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

// Package recorder handles the recording and playback of touch input.
//
// A touch transcript is a text file with one event per line. Lines starting
// with # are comments and blank lines are ignored. Each event line has five
// fields:
//
//	frame, event, id, x, y
//
// The event field is one of: layout, began, moved, ended, cancelled or
// release. For a layout event the x and y fields are the width and height of
// the control. The id field is ignored for layout and release events. Frames
// must not decrease from one line to the next.
//
// A Playback is created from a transcript and run against a joystick. The
// joystick is polled once per frame and the resulting reports are sent to a
// joystick.Reporter. Wrapping the Reporter with a Recorder writes every
// report in the form:
//
//	frame, port, event, pressed
//
// Where event is a direction name or "Fire".
//
// Live touch input can be saved as a transcript with the Transcript type.
package recorder
