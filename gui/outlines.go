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
	"image/color"

	"github.com/jetsetilly/touchstick/joystick"
)

// Outline is a rectangle to be drawn by the GUI.
type Outline struct {
	Rect   joystick.Rect
	Colour color.RGBA
	Filled bool
}

// Colours used by Outlines().
var (
	BackgroundColour = color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff}
	DetectionColour  = color.RGBA{R: 0x50, G: 0x50, B: 0x60, A: 0xff}
	ThumbBackColour  = color.RGBA{R: 0x80, G: 0x80, B: 0x90, A: 0xff}
	ThumbColour      = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	ActiveColour     = color.RGBA{R: 0x40, G: 0xc0, B: 0x40, A: 0xff}
	ButtonColour     = color.RGBA{R: 0xc0, G: 0x40, B: 0x40, A: 0xff}
)

// Outlines returns the rectangles to draw for the current state of the
// joystick, in the order they should be drawn. Nothing is returned for an
// empty layout.
func Outlines(l joystick.Layout, thumb joystick.Rect, dir joystick.Direction, fire bool) []Outline {
	if l.IsEmpty() {
		return nil
	}

	thumbColour := ThumbColour
	if dir != joystick.None {
		thumbColour = ActiveColour
	}

	return []Outline{
		{Rect: l.DetectionArea, Colour: DetectionColour},
		{Rect: l.ThumbBack, Colour: ThumbBackColour},
		{Rect: thumb, Colour: thumbColour, Filled: dir != joystick.None},
		{Rect: l.Button, Colour: ButtonColour, Filled: fire},
	}
}
