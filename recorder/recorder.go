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

package recorder

import (
	"fmt"
	"io"
	"sync"

	"github.com/jetsetilly/touchstick/curated"
	"github.com/jetsetilly/touchstick/joystick"
)

// Recorder wraps a joystick.Reporter and writes a line for every report that
// passes through it.
type Recorder struct {
	rep    joystick.Reporter
	output io.Writer

	crit  sync.Mutex
	frame int
	err   error
}

// NewRecorder is the preferred method of implementation for the Recorder type.
// The rep argument can be nil, in which case reports are written but not
// forwarded.
func NewRecorder(output io.Writer, rep joystick.Reporter) *Recorder {
	return &Recorder{
		rep:    rep,
		output: output,
	}
}

// SetFrame sets the frame number used for subsequent reports.
func (rec *Recorder) SetFrame(frame int) {
	rec.crit.Lock()
	defer rec.crit.Unlock()
	rec.frame = frame
}

// Err returns the first error encountered when writing to the output.
func (rec *Recorder) Err() error {
	rec.crit.Lock()
	defer rec.crit.Unlock()
	return rec.err
}

func (rec *Recorder) write(port int, event string, pressed bool) {
	rec.crit.Lock()
	defer rec.crit.Unlock()

	if rec.err != nil {
		return
	}

	_, err := fmt.Fprintf(rec.output, "%d, %d, %s, %v\n", rec.frame, port, event, pressed)
	if err != nil {
		rec.err = curated.Errorf("recorder: %v", err)
	}
}

// ReportDirection implements the joystick.Reporter interface.
func (rec *Recorder) ReportDirection(port int, dir joystick.Direction, pressed bool) {
	rec.write(port, dir.String(), pressed)
	if rec.rep != nil {
		rec.rep.ReportDirection(port, dir, pressed)
	}
}

// ReportButton implements the joystick.Reporter interface.
func (rec *Recorder) ReportButton(port int, pressed bool) {
	rec.write(port, "Fire", pressed)
	if rec.rep != nil {
		rec.rep.ReportButton(port, pressed)
	}
}
