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

package recorder_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/touchstick/curated"
	"github.com/jetsetilly/touchstick/hardware/kempston"
	"github.com/jetsetilly/touchstick/joystick"
	"github.com/jetsetilly/touchstick/recorder"
	"github.com/jetsetilly/touchstick/test"
	"github.com/jetsetilly/touchstick/userinput"
)

const transcript = `# touchstick transcript
0, layout, 0, 800, 300
1, began, 1, 190, 150

3, began, 2, 700, 150
5, moved, 1, 150, 100
7, ended, 1, 150, 100
9, ended, 2, 700, 150
`

func TestPlayback(t *testing.T) {
	plb, err := recorder.NewPlayback(strings.NewReader(transcript))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.Len(), 6)
	test.ExpectEquality(t, plb.EndFrame(), 9)

	j := joystick.NewJoystick(0, nil)
	k := kempston.NewInterface(0)

	out := &test.CompareWriter{}
	rec := recorder.NewRecorder(out, k)

	err = plb.Run(userinput.NewControllers(nil), j, rec)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, rec.Err())

	expected := `1, 0, Right, true
3, 0, Fire, true
5, 0, Right, false
5, 0, Up, true
7, 0, Up, false
9, 0, Fire, false
`
	if !test.ExpectSuccess(t, out.Compare(expected)) {
		t.Log(out.String())
	}
	test.ExpectEquality(t, k.Value(), uint8(0))
}

func TestPlaybackReleasesAtEnd(t *testing.T) {
	plb, err := recorder.NewPlayback(strings.NewReader("0, layout, 0, 800, 300\n2, began, 1, 190, 150\n"))
	test.DemandSuccess(t, err)

	out := &test.CompareWriter{}
	rec := recorder.NewRecorder(out, nil)

	err = plb.Run(userinput.NewControllers(nil), joystick.NewJoystick(1, nil), rec)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, out.Compare("2, 1, Right, true\n3, 1, Right, false\n"), out.String())
}

func TestPlaybackErrors(t *testing.T) {
	for _, s := range []string{
		"0, layout, 0, 800",
		"x, layout, 0, 800, 300",
		"-1, layout, 0, 800, 300",
		"0, tapped, 0, 800, 300",
		"0, began, one, 800, 300",
		"0, began, 1, left, 300",
		"0, began, 1, 800, top",
		"5, began, 1, 0, 0\n4, ended, 1, 0, 0",
	} {
		_, err := recorder.NewPlayback(strings.NewReader(s))
		test.ExpectSuccess(t, curated.Is(err, recorder.TranscriptError), s)
	}

	// errors name the line
	_, err := recorder.NewPlayback(strings.NewReader("# comment\n\n0, bad, 0, 0, 0"))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "line 3"), err)
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRecorderError(t *testing.T) {
	k := kempston.NewInterface(0)
	rec := recorder.NewRecorder(failWriter{}, k)

	rec.ReportButton(0, true)
	test.ExpectFailure(t, rec.Err())

	// reports are still forwarded
	test.ExpectSuccess(t, k.Fire())
}

func TestTranscript(t *testing.T) {
	out := &test.CompareWriter{}
	tr, err := recorder.NewTranscript(out)
	test.DemandSuccess(t, err)

	events := []struct {
		frame int
		ev    userinput.Event
	}{
		{0, userinput.EventLayout{Width: 800, Height: 300}},
		{1, userinput.EventMouseMotion{X: 10, Y: 10}},
		{1, userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: true, X: 190, Y: 150}},
		{2, userinput.EventMouseMotion{X: 150.5, Y: 100}},
		{3, userinput.EventTouch{ID: 4, Phase: userinput.TouchBegan, X: 700, Y: 150}},
		{2, userinput.EventTouch{ID: 4, Phase: userinput.TouchCancelled, X: 700, Y: 150}},
		{4, userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: false, X: 150.5, Y: 100}},
		{5, userinput.EventRelease{}},
		{6, userinput.EventQuit{}},
	}
	for _, e := range events {
		test.ExpectSuccess(t, tr.Write(e.frame, e.ev))
	}

	expected := `# touchstick transcript
0, layout, 0, 800, 300
1, began, -1, 190, 150
2, moved, -1, 150.5, 100
3, began, 4, 700, 150
3, cancelled, 4, 700, 150
4, ended, -1, 150.5, 100
5, release, 0, 0, 0
`
	if !test.ExpectSuccess(t, out.Compare(expected)) {
		t.Log(out.String())
	}

	// the output can be played back
	plb, err := recorder.NewPlayback(strings.NewReader(out.String()))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.Len(), 7)

	err = tr.Write(6, "not an event")
	test.ExpectSuccess(t, curated.Is(err, recorder.Unrecordable))
}
