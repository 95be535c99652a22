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
	"io"
	"sync"

	"github.com/jetsetilly/touchstick/curated"
	"github.com/jetsetilly/touchstick/userinput"
)

// Transcript writes touch events in the format read by NewPlayback(). Mouse
// events are written as touches with the userinput.MouseTouchID.
type Transcript struct {
	crit   sync.Mutex
	output io.Writer
	last   int

	// whether the left mouse button is down
	mouse bool
}

// NewTranscript is the preferred method of implementation for the Transcript
// type. The header is written immediately.
func NewTranscript(output io.Writer) (*Transcript, error) {
	if _, err := io.WriteString(output, transcriptHeader+"\n"); err != nil {
		return nil, curated.Errorf("transcript: %v", err)
	}
	return &Transcript{output: output}, nil
}

// Write the event for the specified frame. A frame earlier than the previous
// frame is recorded as the previous frame.
func (tr *Transcript) Write(frame int, ev userinput.Event) error {
	tr.crit.Lock()
	defer tr.crit.Unlock()

	frame = max(frame, tr.last)

	switch e := ev.(type) {
	case userinput.EventMouseButton:
		if e.Button != userinput.MouseButtonLeft {
			return nil
		}
		tr.mouse = e.Down
		phase := userinput.TouchEnded
		if e.Down {
			phase = userinput.TouchBegan
		}
		ev = userinput.EventTouch{ID: userinput.MouseTouchID, Phase: phase, X: e.X, Y: e.Y}
	case userinput.EventMouseMotion:
		if !tr.mouse {
			return nil
		}
		ev = userinput.EventTouch{ID: userinput.MouseTouchID, Phase: userinput.TouchMoved, X: e.X, Y: e.Y}
	case userinput.EventQuit:
		return nil
	}

	line, err := formatLine(frame, ev)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(tr.output, line+"\n"); err != nil {
		return curated.Errorf("transcript: %v", err)
	}
	tr.last = frame

	return nil
}
