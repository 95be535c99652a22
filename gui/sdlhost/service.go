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
	"math"

	"github.com/jetsetilly/touchstick/joystick"
	"github.com/jetsetilly/touchstick/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// the mouse ID used by SDL for mouse events synthesised from touches. the
// same value as SDL_TOUCH_MOUSEID
const touchMouseID = math.MaxUint32

// convert an SDL event to a userinput event. returns nil if the event is not
// of interest.
func (h *SdlHost) convert(ev sdl.Event) userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			return userinput.EventLayout{Width: float64(ev.Data1), Height: float64(ev.Data2)}
		case sdl.WINDOWEVENT_FOCUS_LOST:
			return userinput.EventRelease{}
		}

	case *sdl.MouseButtonEvent:
		if ev.Which == touchMouseID {
			return nil
		}
		button := userinput.MouseButtonNone
		switch ev.Button {
		case sdl.BUTTON_LEFT:
			button = userinput.MouseButtonLeft
		case sdl.BUTTON_RIGHT:
			button = userinput.MouseButtonRight
		case sdl.BUTTON_MIDDLE:
			button = userinput.MouseButtonMiddle
		}
		return userinput.EventMouseButton{
			Button: button,
			Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
			X:      float64(ev.X),
			Y:      float64(ev.Y),
		}

	case *sdl.MouseMotionEvent:
		if ev.Which == touchMouseID {
			return nil
		}
		return userinput.EventMouseMotion{X: float64(ev.X), Y: float64(ev.Y)}

	case *sdl.TouchFingerEvent:
		// finger coordinates are normalised to the window size
		w, hh := h.window.GetSize()
		x := float64(ev.X) * float64(w)
		y := float64(ev.Y) * float64(hh)
		id := userinput.TouchID(ev.FingerID)

		switch ev.Type {
		case sdl.FINGERDOWN:
			return userinput.EventTouch{ID: id, Phase: userinput.TouchBegan, X: x, Y: y}
		case sdl.FINGERMOTION:
			return userinput.EventTouch{ID: id, Phase: userinput.TouchMoved, X: x, Y: y}
		case sdl.FINGERUP:
			return userinput.EventTouch{ID: id, Phase: userinput.TouchEnded, X: x, Y: y}
		}
	}

	return nil
}

// Service the SDL event queue and redraw the window if required. Returns true
// when the application should quit.
//
// MUST ONLY be called from the main thread.
func (h *SdlHost) Service() (bool, error) {
	// run any outstanding service functions
	for done := false; !done; {
		select {
		case f := <-h.service:
			f()
		default:
			done = true
		}
	}

	quit := false

	ev := sdl.WaitEventTimeout(10)
	for ; ev != nil; ev = sdl.PollEvent() {
		uev := h.convert(ev)
		if uev == nil {
			continue
		}

		if err := h.handle(uev); err != nil {
			return false, err
		}
		quit = quit || h.ctl.Quit
	}

	// always redraw while a direction is held. the thumb position is not
	// reported as a change for small movements but it should still look smooth
	if dir, _ := h.control.Reading(); dir != joystick.None {
		h.redraw = true
	}

	if h.redraw {
		if err := h.draw(); err != nil {
			return false, err
		}
		h.redraw = false
	}

	return quit, nil
}
