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
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jetsetilly/touchstick/gui"
	"github.com/jetsetilly/touchstick/joystick"
	"github.com/jetsetilly/touchstick/userinput"
	"gonum.org/v1/gonum/spatial/r2"
)

// Update implements the ebiten.Game interface.
func (h *EbitenHost) Update() error {
	for done := false; !done; {
		select {
		case f := <-h.service:
			f()
		default:
			done = true
		}
	}

	if ebiten.IsWindowBeingClosed() {
		if err := h.handle(userinput.EventQuit{}); err != nil {
			return err
		}
	}

	if h.outsideW != h.layoutW || h.outsideH != h.layoutH {
		h.layoutW, h.layoutH = h.outsideW, h.outsideH
		if err := h.handle(userinput.EventLayout{Width: float64(h.layoutW), Height: float64(h.layoutH)}); err != nil {
			return err
		}
	}

	// losing focus releases everything. touches that are still held when focus
	// returns will begin again
	focused := ebiten.IsFocused()
	if focused != h.focused {
		h.focused = focused
		if !focused {
			h.touches.Reset()
			h.mouseDown = false
			if err := h.handle(userinput.EventRelease{}); err != nil {
				return err
			}
		}
	}

	if h.focused {
		for _, ev := range h.sample() {
			if err := h.handle(ev); err != nil {
				return err
			}
		}
	}

	if h.quit {
		return ebiten.Termination
	}

	return nil
}

// sample the touches and mouse and return the events that describe how they
// have changed since the previous call.
func (h *EbitenHost) sample() []userinput.Event {
	current := make(map[userinput.TouchID]r2.Vec)
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		current[userinput.TouchID(id)] = r2.Vec{X: float64(x), Y: float64(y)}
	}
	events := h.touches.Update(current)

	x, y := ebiten.CursorPosition()
	if x != h.mouseX || y != h.mouseY {
		h.mouseX, h.mouseY = x, y
		events = append(events, userinput.EventMouseMotion{X: float64(x), Y: float64(y)})
	}

	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if down != h.mouseDown {
		h.mouseDown = down
		events = append(events, userinput.EventMouseButton{
			Button: userinput.MouseButtonLeft,
			Down:   down,
			X:      float64(x),
			Y:      float64(y),
		})
	}

	return events
}

// Layout implements the ebiten.Game interface. The logical screen is the same
// size as the window.
func (h *EbitenHost) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.outsideW = outsideWidth
	h.outsideH = outsideHeight
	return outsideWidth, outsideHeight
}

// Draw implements the ebiten.Game interface.
func (h *EbitenHost) Draw(screen *ebiten.Image) {
	screen.Fill(gui.BackgroundColour)

	dir, fire := h.control.Reading()
	for _, o := range gui.Outlines(h.control.Layout(), h.control.Thumb(), dir, fire) {
		x, y, w, hh := rect(o.Rect)
		if o.Filled {
			vector.DrawFilledRect(screen, x, y, w, hh, o.Colour, false)
		} else {
			vector.StrokeRect(screen, x, y, w, hh, 1, o.Colour, false)
		}
	}
}

func rect(r joystick.Rect) (float32, float32, float32, float32) {
	return float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
}
