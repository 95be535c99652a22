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

package sdlhost

import (
	"github.com/jetsetilly/touchstick/curated"
	"github.com/jetsetilly/touchstick/gui"
	"github.com/jetsetilly/touchstick/joystick"
	"github.com/veandco/go-sdl2/sdl"
)

func sdlRect(r joystick.Rect) *sdl.Rect {
	return &sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}
}

// draw the outlines of the control.
func (h *SdlHost) draw() error {
	bg := gui.BackgroundColour
	if err := h.renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A); err != nil {
		return curated.Errorf(SDLError, err)
	}
	if err := h.renderer.Clear(); err != nil {
		return curated.Errorf(SDLError, err)
	}

	dir, fire := h.control.Reading()
	for _, o := range gui.Outlines(h.control.Layout(), h.control.Thumb(), dir, fire) {
		if err := h.renderer.SetDrawColor(o.Colour.R, o.Colour.G, o.Colour.B, o.Colour.A); err != nil {
			return curated.Errorf(SDLError, err)
		}

		var err error
		if o.Filled {
			err = h.renderer.FillRect(sdlRect(o.Rect))
		} else {
			err = h.renderer.DrawRect(sdlRect(o.Rect))
		}
		if err != nil {
			return curated.Errorf(SDLError, err)
		}
	}

	h.renderer.Present()

	return nil
}
