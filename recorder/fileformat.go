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
	"strconv"
	"strings"

	"github.com/jetsetilly/touchstick/curated"
	"github.com/jetsetilly/touchstick/userinput"
)

// transcript file format
// ----------------------
//
// # touchstick transcript
// <frame>, <event>, <id>, <x>, <y>

const (
	fieldFrame int = iota
	fieldEvent
	fieldID
	fieldX
	fieldY
	numFields
)

const fieldSep = ","

const transcriptHeader = "# touchstick transcript"

// event names used in the transcript.
const (
	eventLayout    = "layout"
	eventBegan     = "began"
	eventMoved     = "moved"
	eventEnded     = "ended"
	eventCancelled = "cancelled"
	eventRelease   = "release"
)

var phaseNames = map[string]userinput.TouchPhase{
	eventBegan:     userinput.TouchBegan,
	eventMoved:     userinput.TouchMoved,
	eventEnded:     userinput.TouchEnded,
	eventCancelled: userinput.TouchCancelled,
}

// Sentinel errors for transcript parsing.
const (
	TranscriptError = "transcript: line %d: %v"
	Unrecordable    = "transcript: cannot record %T"
)

// parseLine converts a single transcript line into a frame number and event.
// lineNum is used for error messages only.
func parseLine(line string, lineNum int) (int, userinput.Event, error) {
	toks := strings.Split(line, fieldSep)
	if len(toks) != numFields {
		return 0, nil, curated.Errorf(TranscriptError, lineNum, fmt.Sprintf("expected %d fields, got %d", numFields, len(toks)))
	}
	for i := range toks {
		toks[i] = strings.TrimSpace(toks[i])
	}

	frame, err := strconv.Atoi(toks[fieldFrame])
	if err != nil || frame < 0 {
		return 0, nil, curated.Errorf(TranscriptError, lineNum, fmt.Sprintf("invalid frame (%s)", toks[fieldFrame]))
	}

	x, err := strconv.ParseFloat(toks[fieldX], 64)
	if err != nil {
		return 0, nil, curated.Errorf(TranscriptError, lineNum, fmt.Sprintf("invalid x (%s)", toks[fieldX]))
	}
	y, err := strconv.ParseFloat(toks[fieldY], 64)
	if err != nil {
		return 0, nil, curated.Errorf(TranscriptError, lineNum, fmt.Sprintf("invalid y (%s)", toks[fieldY]))
	}

	event := strings.ToLower(toks[fieldEvent])
	switch event {
	case eventLayout:
		return frame, userinput.EventLayout{Width: x, Height: y}, nil
	case eventRelease:
		return frame, userinput.EventRelease{}, nil
	}

	phase, ok := phaseNames[event]
	if !ok {
		return 0, nil, curated.Errorf(TranscriptError, lineNum, fmt.Sprintf("unknown event (%s)", toks[fieldEvent]))
	}

	id, err := strconv.ParseInt(toks[fieldID], 10, 64)
	if err != nil {
		return 0, nil, curated.Errorf(TranscriptError, lineNum, fmt.Sprintf("invalid id (%s)", toks[fieldID]))
	}

	return frame, userinput.EventTouch{ID: userinput.TouchID(id), Phase: phase, X: x, Y: y}, nil
}

// formatLine is the inverse of parseLine.
func formatLine(frame int, ev userinput.Event) (string, error) {
	f := func(event string, id userinput.TouchID, x, y float64) string {
		return fmt.Sprintf("%d, %s, %d, %s, %s", frame, event, id,
			strconv.FormatFloat(x, 'f', -1, 64), strconv.FormatFloat(y, 'f', -1, 64))
	}

	switch ev := ev.(type) {
	case userinput.EventLayout:
		return f(eventLayout, 0, ev.Width, ev.Height), nil
	case userinput.EventRelease:
		return f(eventRelease, 0, 0, 0), nil
	case userinput.EventTouch:
		for name, phase := range phaseNames {
			if phase == ev.Phase {
				return f(name, ev.ID, ev.X, ev.Y), nil
			}
		}
	}

	return "", curated.Errorf(Unrecordable, ev)
}
