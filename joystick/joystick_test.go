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

package joystick_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/jetsetilly/touchstick/joystick"
	"github.com/jetsetilly/touchstick/preferences"
	"github.com/jetsetilly/touchstick/test"
	"gonum.org/v1/gonum/spatial/r2"
)

// reporter records every call as a string.
type reporter struct {
	crit  sync.Mutex
	calls []string
}

func (r *reporter) ReportDirection(port int, dir joystick.Direction, pressed bool) {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.calls = append(r.calls, fmt.Sprintf("%d %s %v", port, dir, pressed))
}

func (r *reporter) ReportButton(port int, pressed bool) {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.calls = append(r.calls, fmt.Sprintf("%d fire %v", port, pressed))
}

// take returns the calls made since the last call to take.
func (r *reporter) take() []string {
	r.crit.Lock()
	defer r.crit.Unlock()
	c := r.calls
	r.calls = nil
	return c
}

func expectCalls(t *testing.T, r *reporter, expected ...string) {
	t.Helper()
	calls := r.take()
	if !test.ExpectEquality(t, len(calls), len(expected)) {
		t.Logf("calls: %q", calls)
		return
	}
	for i := range calls {
		test.ExpectEquality(t, calls[i], expected[i], i)
	}
}

func newJoystick(t *testing.T) *joystick.Joystick {
	t.Helper()
	j := joystick.NewJoystick(1, nil)
	l := j.SetBounds(joystick.Rect{W: 800, H: 300})
	test.DemandSuccess(t, !l.IsEmpty())
	return j
}

func TestPollSequence(t *testing.T) {
	j := newJoystick(t)
	var rep reporter

	// nothing to report
	j.Poll(&rep)
	expectCalls(t, &rep)

	j.HandleTouches([]r2.Vec{{X: 150, Y: 100}}, true)
	j.Poll(&rep)
	expectCalls(t, &rep, "1 Up true")

	// no change. no calls
	j.Poll(&rep)
	expectCalls(t, &rep)

	// the old direction is released before the new one is pressed
	j.HandleTouches([]r2.Vec{{X: 190, Y: 150}}, true)
	j.Poll(&rep)
	expectCalls(t, &rep, "1 Up false", "1 Right true")

	j.HandleTouches([]r2.Vec{{X: 190, Y: 150}, {X: 700, Y: 150}}, true)
	j.Poll(&rep)
	expectCalls(t, &rep, "1 fire true")

	// into the dead zone
	j.HandleTouches([]r2.Vec{{X: 155, Y: 150}, {X: 700, Y: 150}}, true)
	j.Poll(&rep)
	expectCalls(t, &rep, "1 Right false")

	j.Release()
	j.Poll(&rep)
	expectCalls(t, &rep, "1 fire false")

	d, b := j.Reading()
	test.ExpectEquality(t, d, joystick.None)
	test.ExpectEquality(t, b, false)
}

func TestPollCoalesces(t *testing.T) {
	j := newJoystick(t)
	var rep reporter

	// intermediate readings between polls are never reported
	j.HandleTouches([]r2.Vec{{X: 150, Y: 100}}, true)
	j.HandleTouches([]r2.Vec{{X: 100, Y: 150}}, true)
	j.Poll(&rep)
	expectCalls(t, &rep, "1 Left true")

	// a tap that starts and ends between polls is lost
	j.HandleTouches([]r2.Vec{{X: 700, Y: 150}}, true)
	j.Release()
	j.Poll(&rep)
	expectCalls(t, &rep, "1 Left false")
}

func TestSetBoundsKeepsReading(t *testing.T) {
	j := newJoystick(t)
	var rep reporter

	j.HandleTouches([]r2.Vec{{X: 190, Y: 150}}, true)
	j.Poll(&rep)
	expectCalls(t, &rep, "1 Right true")

	// relayout returns the thumb to rest but the stick reading remains
	l := j.SetBounds(joystick.Rect{W: 400, H: 300})
	test.ExpectEquality(t, j.Thumb(), l.Thumb)
	test.ExpectEquality(t, j.Layout(), l)

	j.Poll(&rep)
	expectCalls(t, &rep)

	d, _ := j.Reading()
	test.ExpectEquality(t, d, joystick.Right)
}

func TestDeadZonePreference(t *testing.T) {
	p := preferences.NewPreferences()
	j := joystick.NewJoystick(0, p)
	j.SetBounds(joystick.Rect{W: 800, H: 300})

	// distance of 10 is inside the default dead zone of 18
	r := j.HandleTouches([]r2.Vec{{X: 160, Y: 150}}, true)
	test.ExpectEquality(t, r.Direction, joystick.None)

	// dead zone radius becomes 45/9 = 5
	test.DemandSuccess(t, p.DeadZone.Set(9.0))
	r = j.HandleTouches([]r2.Vec{{X: 160, Y: 150}}, true)
	test.ExpectEquality(t, r.Direction, joystick.Right)
	test.ExpectEquality(t, j.Layout().MinThumbDetectionDistance, 5.0)
}

func TestThumbFollowsTouch(t *testing.T) {
	j := newJoystick(t)

	r := j.HandleTouches([]r2.Vec{{X: 190, Y: 150}}, true)
	test.ExpectEquality(t, j.Thumb(), r.Track.Thumb)
	test.ExpectApproximate(t, j.Thumb().X, 110.0, 0.0001)

	r = j.Release()
	test.ExpectSuccess(t, r.Changed)
	test.ExpectEquality(t, j.Thumb(), j.Layout().Thumb)
}

func TestNoLayout(t *testing.T) {
	j := joystick.NewJoystick(0, nil)
	var rep reporter

	// touches before the first layout are ignored
	r := j.HandleTouches([]r2.Vec{{X: 10, Y: 10}}, true)
	test.ExpectEquality(t, r.Direction, joystick.None)
	j.Poll(&rep)
	expectCalls(t, &rep)
}

func TestConcurrentPoll(t *testing.T) {
	j := newJoystick(t)
	var rep reporter

	touches := [][]r2.Vec{
		{{X: 150, Y: 100}},
		{{X: 190, Y: 150}, {X: 700, Y: 150}},
		{{X: 150, Y: 200}},
		{{X: 100, Y: 150}, {X: 700, Y: 150}},
	}

	var wg sync.WaitGroup
	done := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				j.Poll(&rep)
			}
		}
	}()

	for i := 0; i < 1000; i++ {
		j.HandleTouches(touches[i%len(touches)], true)
	}
	j.Release()

	close(done)
	wg.Wait()
	j.Poll(&rep)

	// every press is matched by a release and presses never overlap
	var held joystick.Direction
	var fire bool
	for _, c := range rep.take() {
		var port int
		var what string
		var pressed bool
		_, err := fmt.Sscanf(c, "%d %s %v", &port, &what, &pressed)
		test.DemandSuccess(t, err)

		if what == "fire" {
			test.ExpectInequality(t, pressed, fire, c)
			fire = pressed
			continue
		}

		if pressed {
			test.ExpectEquality(t, held, joystick.None, c)
			held = directionFromString(what)
		} else {
			test.ExpectEquality(t, held.String(), what, c)
			held = joystick.None
		}
	}

	test.ExpectEquality(t, held, joystick.None)
	test.ExpectEquality(t, fire, false)
}

func directionFromString(s string) joystick.Direction {
	for _, d := range []joystick.Direction{joystick.Up, joystick.Right, joystick.Down, joystick.Left} {
		if d.String() == s {
			return d
		}
	}
	return joystick.None
}
