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

package performance

import (
	"context"
	"fmt"
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/touchstick/curated"
	"github.com/jetsetilly/touchstick/emulation"
	"github.com/jetsetilly/touchstick/hardware/kempston"
	"github.com/jetsetilly/touchstick/hardware/spectrum"
	"github.com/jetsetilly/touchstick/joystick"
	"github.com/jetsetilly/touchstick/preferences"
	"gonum.org/v1/gonum/spatial/r2"
)

// the time allowed for the frame rate to settle before measurement begins.
var leadTime = 2 * time.Second

// the control size used by Check().
var checkBounds = joystick.Rect{W: 800, H: 300}

// Check the performance of the poll loop for the specified machine.
//
// The loop will run for the specified duration while a synthetic touch
// circles the stick as fast as possible. A cpu, memory profile, a trace (or a
// combination of those) will be created as defined by the Profile argument.
func Check(output io.Writer, profile Profile, m spectrum.Machine, prefs *preferences.Preferences, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if prefs == nil {
		prefs = preferences.NewPreferences()
	}
	port := prefs.Port.Get().(int)

	joy := joystick.NewJoystick(port, prefs)
	layout := joy.SetBounds(checkBounds)
	k := kempston.NewInterface(port)

	loop, err := emulation.NewLoop(m, k, joy)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var startFrame int
	var touches atomic.Int64

	runner := func() error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// the synthetic finger
		go func() {
			var angle float64
			for ctx.Err() == nil {
				angle += 0.01
				p := r2.Add(layout.RestCentre, r2.Scale(layout.MaxThumbDistance, r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}))
				joy.HandleTouches([]r2.Vec{p}, true)
				touches.Add(1)
			}
		}()

		done := make(chan error, 1)
		go func() {
			done <- loop.Run(ctx)
		}()

		select {
		case <-time.After(leadTime):
			startFrame = loop.Frames()
		case err := <-done:
			return err
		}

		select {
		case <-time.After(dur):
		case err := <-done:
			return err
		}

		cancel()
		return <-done
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := loop.Frames() - startFrame
	fps, accuracy := CalcFPS(m, numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)
	fmt.Fprintf(output, "%d touch updates\n", touches.Load())

	return nil
}
