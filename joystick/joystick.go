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

package joystick

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/touchstick/logger"
	"github.com/jetsetilly/touchstick/preferences"
	"gonum.org/v1/gonum/spatial/r2"
)

// Reporter is the emulator core as seen by the joystick. Implementations
// receive calls only when the state of the stick or the button changes.
type Reporter interface {
	ReportDirection(port int, dir Direction, pressed bool)
	ReportButton(port int, pressed bool)
}

// Joystick is an on-screen joystick. Touches are handled with
// HandleTouches(), which should be called by the GUI thread. The emulator
// samples the joystick with Poll(), which can be called from any other
// goroutine.
type Joystick struct {
	port  int
	prefs *preferences.Preferences

	// crit protects the fields written by the GUI thread and read by the
	// emulator thread
	crit     sync.Mutex
	layout   Layout
	deadZone float64
	track    Track
	stick    Direction
	button   bool

	// edge state. only ever touched by Poll()
	edge           sync.Mutex
	reportedStick  Direction
	reportedButton bool
}

// NewJoystick is the preferred method of initialisation for the Joystick
// type. The prefs argument can be nil, in which case the default preferences
// are used.
func NewJoystick(port int, prefs *preferences.Preferences) *Joystick {
	if prefs == nil {
		prefs = preferences.NewPreferences()
	}
	return &Joystick{
		port:  port,
		prefs: prefs,
	}
}

func (j *Joystick) String() string {
	j.crit.Lock()
	defer j.crit.Unlock()
	return fmt.Sprintf("joystick %d: stick=%s fire=%v", j.port, j.stick, j.button)
}

// Port returns the joystick port number used when reporting to the emulator.
func (j *Joystick) Port() int {
	return j.port
}

// SetBounds recalculates the layout of the control. It should be called on
// every layout pass. The thumb is returned to its rest position but the
// current stick and button readings are unchanged.
func (j *Joystick) SetBounds(bounds Rect) Layout {
	j.crit.Lock()
	defer j.crit.Unlock()

	j.relayout(bounds)
	logger.Logf(logger.Allow, "joystick", "layout %d: %s", j.port, j.layout)

	return j.layout
}

// relayout must be called with the crit lock held.
func (j *Joystick) relayout(bounds Rect) {
	j.deadZone = j.prefs.DeadZone.Get().(float64)
	j.layout = ComputeLayout(bounds, j.deadZone)
	j.track = NewTrack(j.layout)
}

// Layout returns the most recent layout.
func (j *Joystick) Layout() Layout {
	j.crit.Lock()
	defer j.crit.Unlock()
	return j.layout
}

// Thumb returns the current position of the movable thumb.
func (j *Joystick) Thumb() Rect {
	j.crit.Lock()
	defer j.crit.Unlock()
	return j.track.Thumb
}

// HandleTouches classifies the touch points and stores the result for the
// next call to Poll(). The points should be every touch currently active on
// the control. When pressed is false the stick and the button are released.
//
// The returned Reading indicates whether the control should be redrawn.
func (j *Joystick) HandleTouches(points []r2.Vec, pressed bool) Reading {
	j.crit.Lock()
	defer j.crit.Unlock()

	// the dead zone preference may have been changed since the last layout
	if dz := j.prefs.DeadZone.Get().(float64); dz != j.deadZone {
		j.relayout(j.layout.Bounds)
	}

	r := Classify(j.layout, j.track, points, pressed, j.prefs.Noticeable.Get().(float64))
	j.track = r.Track
	j.stick = r.Direction
	j.button = r.Button

	return r
}

// Release the stick and the button. Equivalent to all touches being lifted.
func (j *Joystick) Release() Reading {
	return j.HandleTouches(nil, false)
}

// Reading returns the current stick and button state as it will be seen by
// the next Poll().
func (j *Joystick) Reading() (Direction, bool) {
	j.crit.Lock()
	defer j.crit.Unlock()
	return j.stick, j.button
}

// Poll compares the current stick and button state with the state most
// recently reported and informs the Reporter of any differences. A direction
// is always released before a new direction is pressed.
func (j *Joystick) Poll(r Reporter) {
	stick, button := j.Reading()

	j.edge.Lock()
	defer j.edge.Unlock()

	if stick != j.reportedStick {
		if j.reportedStick != None {
			r.ReportDirection(j.port, j.reportedStick, false)
			logger.Logf(j.prefs, "joystick", "%d: %s released", j.port, j.reportedStick)
		}
		if stick != None {
			r.ReportDirection(j.port, stick, true)
			logger.Logf(j.prefs, "joystick", "%d: %s pressed", j.port, stick)
		}
		j.reportedStick = stick
	}

	if button != j.reportedButton {
		r.ReportButton(j.port, button)
		logger.Logf(j.prefs, "joystick", "%d: fire %v", j.port, button)
		j.reportedButton = button
	}
}
