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

// Package emulation runs the joystick poll at the rate of the emulated
// machine's video frame. The Loop type is the only part of the system that
// calls joystick.Poll() during normal operation.
//
// GUIs and other front-ends interact with a running Loop through the
// Emulation interface.
package emulation

// Emulation defines the public functions required for a GUI implementation
// (and possibly other things) to interface with the running loop.
type Emulation interface {
	// Send a request to set an emulation feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// Immediate request for the state of the emulation.
	State() State
}

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// Values are ordered so that order comparisons are meaningful. For example,
// Running is "greater than" Paused.
const (
	Initialising State = iota
	Paused
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case Initialising:
		return "initialising"
	case Paused:
		return "paused"
	case Running:
		return "running"
	case Ending:
		return "ending"
	}
	return "unknown"
}
