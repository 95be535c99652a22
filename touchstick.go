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
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/jetsetilly/touchstick/emulation"
	"github.com/jetsetilly/touchstick/modalflag"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args any
}

// guiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
type guiCreator interface {
	// cleanup resources used by the gui
	Destroy()

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// be called as part of a larger loop from the main thread. Returns true
	// when the user has asked to quit.
	Service() (bool, error)
}

// communication between the main() function and the launch() function. this
// is required because SDL requires window event handling (including creation)
// to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (guiCreator, error)

	// the result of creator will be returned on either of these two channels
	creation      chan guiCreator
	creationError chan error

	// the gui has quit, with or without an error
	guiQuit chan error

	// cancelled on the first interrupt signal
	ctx context.Context
}

// #mainthread
func main() {
	runtime.LockOSThread()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (guiCreator, error)),
		creation:      make(chan guiCreator),
		creationError: make(chan error),
		guiQuit:       make(chan error, 1),
		ctx:           ctx,
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	exitVal := 0

	// #ctrlc the first interrupt cancels the context. a second interrupt
	// quits immediately
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	var gui guiCreator
	for !done {
		select {
		case <-intChan:
			if ctx.Err() != nil {
				done = true
				exitVal = 1
			}
			cancel()

		case creator := <-sync.creator:
			if gui != nil {
				gui.Destroy()
			}

			var err error
			gui, err = creator()
			if err != nil {
				sync.creationError <- err
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy()
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			if gui != nil {
				quit, err := gui.Service()
				if quit || err != nil {
					sync.guiQuit <- err
					gui.Destroy()
					gui = nil
				}
			} else {
				time.Sleep(10 * time.Millisecond)
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := modalflag.NewModes(os.Stdout, args)
	md.AddSubModes("SDL", "EBITEN", "REMOTE", "REPLAY", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "SDL":
		err = sdl(md, sync)

	case "EBITEN":
		err = ebiten(md, sync)

	case "REMOTE":
		err = remote(md, sync)

	case "REPLAY":
		err = replay(md, os.Stdout)

	case "PERFORMANCE":
		err = perform(md, os.Stdout)

	case "VERSION":
		err = showVersion(md, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// createGUI sends the creator function to the main thread and waits for the
// result.
func createGUI(sync *mainSync, creator func() (guiCreator, error)) (guiCreator, error) {
	sync.creator <- creator
	select {
	case g := <-sync.creation:
		return g, nil
	case err := <-sync.creationError:
		return nil, err
	}
}

// runWithGUI runs the emulation loop until the gui quits or the context is
// cancelled.
func runWithGUI(sync *mainSync, loop *emulation.Loop) error {
	ctx, cancel := context.WithCancel(sync.ctx)
	defer cancel()

	loopErr := make(chan error, 1)
	go func() {
		loopErr <- loop.Run(ctx)
	}()

	select {
	case err := <-sync.guiQuit:
		cancel()
		if lerr := <-loopErr; err == nil {
			err = lerr
		}
		return err
	case err := <-loopErr:
		return err
	}
}
