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

// Package sdlhost is an SDL window that hosts the touchstick. Mouse and
// finger events are converted to userinput events and forwarded to the
// joystick. The regions of the joystick are drawn with the SDL renderer.
//
// SDL requires that all calls are made from the main thread. The Service()
// function should be called from the main thread in a loop until it returns
// true. SetFeature() can be called from any goroutine.
package sdlhost

import (
	"fmt"

	"github.com/jetsetilly/touchstick/curated"
	"github.com/jetsetilly/touchstick/gui"
	"github.com/jetsetilly/touchstick/joystick"
	"github.com/jetsetilly/touchstick/logger"
	"github.com/jetsetilly/touchstick/userinput"
	"github.com/jetsetilly/touchstick/version"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinel error for SDL failures.
const SDLError = "sdl: %v"

// Control is the control being hosted. It is implemented by
// joystick.Joystick.
type Control interface {
	userinput.HandleInput
	Layout() joystick.Layout
	Thumb() joystick.Rect
	Reading() (joystick.Direction, bool)
}

// SdlHost is an SDL window hosting a single control.
type SdlHost struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	control Control
	ctl     *userinput.Controllers

	// called with every event sent to the controllers
	hook func(userinput.Event)

	// service functions sent by SetFeature()
	service chan func()

	paused  bool
	machine string
	redraw  bool
}

// NewSdlHost is the preferred method of initialisation for the SdlHost type.
// MUST be called from the main thread.
func NewSdlHost(control Control, ctl *userinput.Controllers, width, height int) (*SdlHost, error) {
	h := &SdlHost{
		control: control,
		ctl:     ctl,
		service: make(chan func(), 16),
		redraw:  true,
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	// mouse events are synthesised from touches by default. we handle touches
	// directly so the synthesised events are unwanted
	sdl.SetHint(sdl.HINT_TOUCH_MOUSE_EVENTS, "0")

	var err error
	h.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(width), int32(height),
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	h.renderer, err = sdl.CreateRenderer(h.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		_ = h.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	// the first layout. subsequent layouts are triggered by window events
	w, hh := h.window.GetSize()
	if err := h.handle(userinput.EventLayout{Width: float64(w), Height: float64(hh)}); err != nil {
		h.Destroy()
		return nil, err
	}

	logger.Logf(logger.Allow, "sdl", "window created (%dx%d)", w, hh)

	return h, nil
}

// SetEventHook sets a function that is called with every event forwarded to
// the controllers. Must be called before the first call to Service().
func (h *SdlHost) SetEventHook(f func(userinput.Event)) {
	h.hook = f
}

// Destroy the window. MUST be called from the main thread.
func (h *SdlHost) Destroy() {
	if h.renderer != nil {
		_ = h.renderer.Destroy()
	}
	if h.window != nil {
		_ = h.window.Destroy()
	}
	sdl.Quit()
}

// SetFeature implements the gui.GUI interface.
func (h *SdlHost) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	if len(args) != 1 {
		return curated.Errorf(gui.FeatureArguments, request)
	}

	switch request {
	case gui.ReqSetPaused:
		set, ok := args[0].(bool)
		if !ok {
			return curated.Errorf(gui.FeatureArguments, request)
		}
		h.service <- func() {
			h.paused = set
			h.setTitle()
		}
	case gui.ReqSetVisibility:
		set, ok := args[0].(bool)
		if !ok {
			return curated.Errorf(gui.FeatureArguments, request)
		}
		h.service <- func() {
			if set {
				h.window.Show()
			} else {
				h.window.Hide()
			}
		}
	case gui.ReqSetMachine:
		m, ok := args[0].(string)
		if !ok {
			return curated.Errorf(gui.FeatureArguments, request)
		}
		h.service <- func() {
			h.machine = m
			h.setTitle()
		}
	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

func (h *SdlHost) setTitle() {
	title := version.ApplicationName
	if h.machine != "" {
		title = fmt.Sprintf("%s [%s]", title, h.machine)
	}
	if h.paused {
		title = fmt.Sprintf("%s (paused)", title)
	}
	h.window.SetTitle(title)
}

// handle forwards a single event to the controllers.
func (h *SdlHost) handle(ev userinput.Event) error {
	if err := h.ctl.HandleUserInput(ev, h.control); err != nil {
		return err
	}
	if h.hook != nil {
		h.hook(ev)
	}
	h.redraw = h.redraw || h.ctl.Redraw
	return nil
}
