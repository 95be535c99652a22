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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(ctx, 50.08)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		pollJoystick()
//	}
//
// The limiter stops when the context is cancelled.
package limiter

import (
	"context"
	"sync"
	"time"

	"github.com/jetsetilly/touchstick/curated"
)

// Sentinel error returned by NewFPSLimiter() and SetLimit().
const InvalidRate = "limiter: invalid rate (%v)"

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	crit            sync.Mutex
	framesPerSecond float64
	secondsPerFrame time.Duration

	tick chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
// The limiter runs until the context is cancelled.
func NewFPSLimiter(ctx context.Context, framesPerSecond float64) (*FpsLimiter, error) {
	lim := &FpsLimiter{}
	if err := lim.SetLimit(framesPerSecond); err != nil {
		return nil, err
	}

	lim.tick = make(chan bool)

	go func() {
		adjustedSecondsPerFrame := lim.period()
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-ctx.Done():
				return
			}

			select {
			case <-time.After(adjustedSecondsPerFrame):
			case <-ctx.Done():
				return
			}

			// the sleep will overshoot. shorten the next sleep by the amount
			// of the overshoot
			nt := time.Now()
			period := lim.period()
			adjustedSecondsPerFrame -= nt.Sub(t) - period
			adjustedSecondsPerFrame = max(0, min(adjustedSecondsPerFrame, period))
			t = nt
		}
	}()

	return lim, nil
}

func (lim *FpsLimiter) period() time.Duration {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.secondsPerFrame
}

// SetLimit changes the limit at which the FpsLimiter waits.
func (lim *FpsLimiter) SetLimit(framesPerSecond float64) error {
	if !(framesPerSecond > 0) {
		return curated.Errorf(InvalidRate, framesPerSecond)
	}

	lim.crit.Lock()
	defer lim.crit.Unlock()
	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Duration(float64(time.Second) / framesPerSecond)

	return nil
}

// Limit returns the current rate.
func (lim *FpsLimiter) Limit() float64 {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.framesPerSecond
}

// Wait will block until trigger. Note that Wait() will block forever once
// the context has been cancelled. Use Tick() in a select statement if that is
// a concern.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// Tick returns the channel on which the trigger is sent.
func (lim *FpsLimiter) Tick() <-chan bool {
	return lim.tick
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}
