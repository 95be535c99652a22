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
// Package ebitenhost is an alternative to the sdlhost package. It hosts the
// touchstick in a window (or browser canvas) created by Ebitengine.
//
// Ebitengine does not deliver input as a stream of events. The touches and
// mouse state are sampled on every Update() and the differences are converted
// to userinput events.
package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/touchstick/curated"
	"github.com/jetsetilly/touchstick/gui"
	"github.com/jetsetilly/touchstick/joystick"
	"github.com/jetsetilly/touchstick/logger"
	"github.com/jetsetilly/touchstick/userinput"
	"github.com/jetsetilly/touchstick/version"
)

// Sentinel error for Ebitengine failures.
const EbitenError = "ebiten: %v"

// Control is the control being hosted. It is implemented by
// joystick.Joystick.
type Control interface {
	userinput.HandleInput
	Layout() joystick.Layout
	Thumb() joystick.Rect
	Reading() (joystick.Direction, bool)
}

// EbitenHost implements the ebiten.Game interface.
type EbitenHost struct {
	control Control
	ctl     *userinput.Controllers

	// called with every event sent to the controllers
	hook func(userinput.Event)

	// service functions sent by SetFeature()
	service chan func()

	// width and height requested for the window
	width  int
	height int

	// the most recent size given to Layout(). the layout event is sent
	// during Update() when this changes
	outsideW int
	outsideH int
	layoutW  int
	layoutH  int

	touches *gui.TouchDiff

	mouseDown bool
	mouseX    int
	mouseY    int

	focused bool
	paused  bool
	machine string
	quit    bool
}

// NewEbitenHost is the preferred method of initialisation for the EbitenHost
// type.
func NewEbitenHost(control Control, ctl *userinput.Controllers, width, height int) *EbitenHost {
	return &EbitenHost{
		control: control,
		ctl:     ctl,
		service: make(chan func(), 16),
		width:   width,
		height:  height,
		touches: gui.NewTouchDiff(),
		focused: true,
	}
}

// SetEventHook sets a function that is called with every event forwarded to
// the controllers. Must be called before Run().
func (h *EbitenHost) SetEventHook(f func(userinput.Event)) {
	h.hook = f
}

// Run opens the window and blocks until it is closed. MUST be called from the
// main thread.
func (h *EbitenHost) Run() error {
	ebiten.SetWindowSize(h.width, h.height)
	ebiten.SetWindowTitle(version.ApplicationName)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)

	logger.Logf(logger.Allow, "ebiten", "window created (%dx%d)", h.width, h.height)

	if err := ebiten.RunGame(h); err != nil {
		return curated.Errorf(EbitenError, err)
	}
	return nil
}

// Quit causes Run() to return at the next update. Can be called from any
// goroutine.
func (h *EbitenHost) Quit() {
	h.service <- func() {
		h.quit = true
	}
}

// SetFeature implements the gui.GUI interface.
func (h *EbitenHost) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
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
				ebiten.RestoreWindow()
			} else {
				ebiten.MinimizeWindow()
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

func (h *EbitenHost) setTitle() {
	title := version.ApplicationName
	if h.machine != "" {
		title = fmt.Sprintf("%s [%s]", title, h.machine)
	}
	if h.paused {
		title = fmt.Sprintf("%s (paused)", title)
	}
	ebiten.SetWindowTitle(title)
}

// handle forwards a single event to the controllers.
func (h *EbitenHost) handle(ev userinput.Event) error {
	if err := h.ctl.HandleUserInput(ev, h.control); err != nil {
		return err
	}
	if h.hook != nil {
		h.hook(ev)
	}
	h.quit = h.quit || h.ctl.Quit
	return nil
}
