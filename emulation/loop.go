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

package emulation

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/touchstick/curated"
	"github.com/jetsetilly/touchstick/hardware/spectrum"
	"github.com/jetsetilly/touchstick/joystick"
	"github.com/jetsetilly/touchstick/logger"
	"github.com/jetsetilly/touchstick/performance/limiter"
)

// Poller is a control that is polled once per frame. It is implemented by
// joystick.Joystick.
type Poller interface {
	Poll(r joystick.Reporter)
	Release() joystick.Reading
}

var _ Emulation = (*Loop)(nil)

// Loop polls a set of controls at the frame rate of the emulated machine.
type Loop struct {
	reporter joystick.Reporter
	pollers  []Poller

	// called at the start of every frame, before polling
	frameHook func(frame int)

	crit    sync.Mutex
	machine spectrum.Machine
	lim     *limiter.FpsLimiter

	state  atomic.Int32
	pause  atomic.Bool
	frames atomic.Int64
}

// NewLoop is the preferred method of initialisation for the Loop type.
func NewLoop(machine spectrum.Machine, reporter joystick.Reporter, pollers ...Poller) (*Loop, error) {
	if !(machine.FrameRate() > 0) {
		return nil, curated.Errorf(limiter.InvalidRate, machine.FrameRate())
	}

	l := &Loop{
		reporter: reporter,
		pollers:  pollers,
		machine:  machine,
	}
	l.state.Store(int32(Initialising))

	return l, nil
}

// SetFrameHook sets the function to be called at the start of every frame.
// Must be called before Run().
func (l *Loop) SetFrameHook(f func(frame int)) {
	l.frameHook = f
}

// Machine returns the machine currently being emulated.
func (l *Loop) Machine() spectrum.Machine {
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.machine
}

// Frames returns the number of frames that have been polled.
func (l *Loop) Frames() int {
	return int(l.frames.Load())
}

// State implements the Emulation interface.
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Pause or resume polling. While paused all controls are released.
func (l *Loop) Pause(set bool) {
	l.pause.Store(set)
}

// SetFeature implements the Emulation interface.
func (l *Loop) SetFeature(request FeatureReq, args ...FeatureReqData) error {
	switch request {
	case ReqSetPause:
		if len(args) != 1 {
			return curated.Errorf(FeatureArguments, request)
		}
		set, ok := args[0].(bool)
		if !ok {
			return curated.Errorf(FeatureArguments, request)
		}
		l.Pause(set)

	case ReqSetMachine:
		if len(args) != 1 {
			return curated.Errorf(FeatureArguments, request)
		}
		id, ok := args[0].(string)
		if !ok {
			return curated.Errorf(FeatureArguments, request)
		}
		m, err := spectrum.MachineByID(id)
		if err != nil {
			return err
		}

		l.crit.Lock()
		defer l.crit.Unlock()
		l.machine = m
		if l.lim != nil {
			if err := l.lim.SetLimit(m.FrameRate()); err != nil {
				return err
			}
		}
		logger.Logf(logger.Allow, "emulation", "machine changed to %s", m)

	default:
		return curated.Errorf(UnsupportedEmulationFeature, request)
	}

	return nil
}

// releaseAll releases every control and polls it so that the reporter sees
// the release.
func (l *Loop) releaseAll() {
	for _, p := range l.pollers {
		p.Release()
		p.Poll(l.reporter)
	}
}

// Run the loop until the context is cancelled. Controls are released when
// the loop ends.
func (l *Loop) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := l.Machine()
	lim, err := limiter.NewFPSLimiter(ctx, m.FrameRate())
	if err != nil {
		return err
	}

	l.crit.Lock()
	l.lim = lim
	l.crit.Unlock()

	logger.Logf(logger.Allow, "emulation", "polling at %.2f fps for %s", m.FrameRate(), m.Name)

	defer func() {
		l.releaseAll()
		l.state.Store(int32(Ending))
	}()

	l.state.Store(int32(Running))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-lim.Tick():
		}

		if l.pause.Load() {
			if l.State() != Paused {
				l.releaseAll()
				l.state.Store(int32(Paused))
			}
			continue
		}
		l.state.Store(int32(Running))

		frame := int(l.frames.Add(1))
		if l.frameHook != nil {
			l.frameHook(frame)
		}

		for _, p := range l.pollers {
			p.Poll(l.reporter)
		}
	}
}
