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

package emulation_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jetsetilly/touchstick/curated"
	"github.com/jetsetilly/touchstick/emulation"
	"github.com/jetsetilly/touchstick/hardware/kempston"
	"github.com/jetsetilly/touchstick/hardware/spectrum"
	"github.com/jetsetilly/touchstick/joystick"
	"github.com/jetsetilly/touchstick/test"
	"gonum.org/v1/gonum/spatial/r2"
)

// a machine that runs at 500 frames per second
var fast = spectrum.Machine{ID: "fast", Name: "fast", TStatesPerFrame: 1000, Clock: 500000}

// waitFor polls the condition until it is true or a second has elapsed.
func waitFor(t *testing.T, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	t.Errorf("condition not met before deadline")
	return false
}

func newJoystick() *joystick.Joystick {
	j := joystick.NewJoystick(0, nil)
	j.SetBounds(joystick.Rect{W: 800, H: 300})
	return j
}

func TestNewLoop(t *testing.T) {
	_, err := emulation.NewLoop(spectrum.Machine{}, kempston.NewInterface(0))
	test.ExpectFailure(t, err)

	l, err := emulation.NewLoop(fast, kempston.NewInterface(0))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, l.State(), emulation.Initialising)
}

func TestLoopPolls(t *testing.T) {
	j := newJoystick()
	k := kempston.NewInterface(0)

	l, err := emulation.NewLoop(fast, k, j)
	test.DemandSuccess(t, err)

	var hooked atomic.Int64
	l.SetFrameHook(func(frame int) {
		hooked.Store(int64(frame))
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- l.Run(ctx)
	}()

	j.HandleTouches([]r2.Vec{{X: 150, Y: 100}, {X: 700, Y: 150}}, true)
	waitFor(t, func() bool { return k.Held(joystick.Up) && k.Fire() })
	test.ExpectEquality(t, l.State(), emulation.Running)
	test.ExpectSuccess(t, l.Frames() > 0)
	test.ExpectSuccess(t, hooked.Load() > 0)

	// ending the loop releases the joystick
	cancel()
	test.ExpectSuccess(t, <-done)
	test.ExpectEquality(t, k.Value(), uint8(0))
	test.ExpectEquality(t, l.State(), emulation.Ending)
}

func TestLoopPause(t *testing.T) {
	j := newJoystick()
	k := kempston.NewInterface(0)

	l, err := emulation.NewLoop(fast, k, j)
	test.DemandSuccess(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Run(ctx)

	j.HandleTouches([]r2.Vec{{X: 190, Y: 150}}, true)
	waitFor(t, func() bool { return k.Held(joystick.Right) })

	test.ExpectSuccess(t, l.SetFeature(emulation.ReqSetPause, true))
	waitFor(t, func() bool { return l.State() == emulation.Paused })
	test.ExpectEquality(t, k.Value(), uint8(0))

	// touches while paused are not reported until the loop resumes
	j.HandleTouches([]r2.Vec{{X: 100, Y: 150}}, true)
	frames := l.Frames()
	time.Sleep(20 * time.Millisecond)
	test.ExpectEquality(t, l.Frames(), frames)
	test.ExpectEquality(t, k.Value(), uint8(0))

	test.ExpectSuccess(t, l.SetFeature(emulation.ReqSetPause, false))
	waitFor(t, func() bool { return k.Held(joystick.Left) })
}

func TestSetFeature(t *testing.T) {
	l, err := emulation.NewLoop(fast, kempston.NewInterface(0))
	test.DemandSuccess(t, err)

	err = l.SetFeature(emulation.ReqSetPause)
	test.ExpectSuccess(t, curated.Is(err, emulation.FeatureArguments))

	err = l.SetFeature(emulation.ReqSetPause, "yes")
	test.ExpectSuccess(t, curated.Is(err, emulation.FeatureArguments))

	err = l.SetFeature(emulation.ReqSetMachine, "zx81")
	test.ExpectSuccess(t, curated.Is(err, spectrum.UnknownMachine))

	test.ExpectSuccess(t, l.SetFeature(emulation.ReqSetMachine, "128k"))
	test.ExpectEquality(t, l.Machine().ID, "128k")

	err = l.SetFeature(emulation.FeatureReq("ReqUnknown"))
	test.ExpectSuccess(t, curated.Is(err, emulation.UnsupportedEmulationFeature))
}
