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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/touchstick/curated"
	"github.com/jetsetilly/touchstick/joystick"
	"github.com/jetsetilly/touchstick/logger"
	"github.com/jetsetilly/touchstick/userinput"
)

type playbackEntry struct {
	frame int
	event userinput.Event

	// the line in the transcript the event appears
	line int
}

// Control is the control that a Playback is run against. It is implemented by
// joystick.Joystick.
type Control interface {
	userinput.HandleInput
	Poll(r joystick.Reporter)
}

// Playback is used to reperform the touch input in a transcript.
type Playback struct {
	sequence []playbackEntry

	// the last frame where an event occurs
	endFrame int
}

func (plb *Playback) String() string {
	return fmt.Sprintf("%d events over %d frames", len(plb.sequence), plb.endFrame+1)
}

// EndFrame returns the frame of the last event in the transcript.
func (plb *Playback) EndFrame() int {
	return plb.endFrame
}

// Len returns the number of events in the transcript.
func (plb *Playback) Len() int {
	return len(plb.sequence)
}

// NewPlayback is the preferred method of implementation for the Playback type.
// The transcript is read and parsed in full.
func NewPlayback(transcript io.Reader) (*Playback, error) {
	plb := &Playback{
		sequence: make([]playbackEntry, 0),
	}

	scanner := bufio.NewScanner(transcript)
	lineNum := 0
	for scanner.Scan() {
		lineNum++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		frame, ev, err := parseLine(line, lineNum)
		if err != nil {
			return nil, err
		}

		if frame < plb.endFrame {
			return nil, curated.Errorf(TranscriptError, lineNum, fmt.Sprintf("frame %d is before frame %d", frame, plb.endFrame))
		}
		plb.endFrame = frame

		plb.sequence = append(plb.sequence, playbackEntry{frame: frame, event: ev, line: lineNum})
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	return plb, nil
}

// frameSetter is implemented by reporters that want to know the current
// frame. The Recorder type implements this interface.
type frameSetter interface {
	SetFrame(frame int)
}

// Run the playback. Events are sent to the Controllers and the control is
// polled once every frame, from frame zero until the frame of the last event.
// Once the transcript is exhausted the control is released and polled one
// final time.
func (plb *Playback) Run(ctl *userinput.Controllers, control Control, rep joystick.Reporter) error {
	fs, hasFrame := rep.(frameSetter)

	idx := 0
	for frame := 0; frame <= plb.endFrame; frame++ {
		for idx < len(plb.sequence) && plb.sequence[idx].frame == frame {
			e := plb.sequence[idx]
			if err := ctl.HandleUserInput(e.event, control); err != nil {
				return curated.Errorf(TranscriptError, e.line, err)
			}
			idx++
		}

		if hasFrame {
			fs.SetFrame(frame)
		}
		control.Poll(rep)
	}

	if hasFrame {
		fs.SetFrame(plb.endFrame + 1)
	}
	if err := ctl.HandleUserInput(userinput.EventRelease{}, control); err != nil {
		return curated.Errorf("playback: %v", err)
	}
	control.Poll(rep)

	logger.Logf(logger.Allow, "playback", "finished after %d frames", plb.endFrame+1)

	return nil
}
