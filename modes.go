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
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/touchstick/gui"
	"github.com/jetsetilly/touchstick/gui/ebitenhost"
	"github.com/jetsetilly/touchstick/gui/sdlhost"
	"github.com/jetsetilly/touchstick/hardware/kempston"
	"github.com/jetsetilly/touchstick/joystick"
	"github.com/jetsetilly/touchstick/modalflag"
	"github.com/jetsetilly/touchstick/performance"
	"github.com/jetsetilly/touchstick/preferences"
	"github.com/jetsetilly/touchstick/recorder"
	"github.com/jetsetilly/touchstick/userinput"
	"github.com/jetsetilly/touchstick/version"
	"github.com/jetsetilly/touchstick/wsremote"
	"golang.org/x/sync/errgroup"
)

const (
	defaultWidth  = 800
	defaultHeight = 300
)

func sdl(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	common := addCommonFlags(md)
	width := md.AddInt("width", defaultWidth, "width of window")
	height := md.AddInt("height", defaultHeight, "height of window")
	record := md.AddBool("record", false, "record touches to a transcript file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	common.apply(os.Stdout)

	s, err := newSession(os.Stdout, *record)
	if err != nil {
		return err
	}

	g, err := createGUI(sync, func() (guiCreator, error) {
		h, err := sdlhost.NewSdlHost(s.joy, s.ctl, *width, *height)
		if err != nil {
			return nil, err
		}
		h.SetEventHook(s.eventHook)
		return h, nil
	})
	if err != nil {
		return err
	}

	if err := g.(gui.GUI).SetFeature(gui.ReqSetMachine, s.loop.Machine().ID); err != nil {
		return err
	}

	if err := runWithGUI(sync, s.loop); err != nil {
		return err
	}

	return s.end(os.Stdout)
}

// ebitenRunner adapts an EbitenHost to the guiCreator interface. Ebitengine
// has its own loop so the first call to Service() does not return until the
// window has closed.
type ebitenRunner struct {
	*ebitenhost.EbitenHost
}

func (r ebitenRunner) Service() (bool, error) {
	return true, r.Run()
}

func (r ebitenRunner) Destroy() {
}

func ebiten(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	common := addCommonFlags(md)
	width := md.AddInt("width", defaultWidth, "width of window")
	height := md.AddInt("height", defaultHeight, "height of window")
	record := md.AddBool("record", false, "record touches to a transcript file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	common.apply(os.Stdout)

	s, err := newSession(os.Stdout, *record)
	if err != nil {
		return err
	}

	h := ebitenhost.NewEbitenHost(s.joy, s.ctl, *width, *height)
	h.SetEventHook(s.eventHook)
	if err := h.SetFeature(gui.ReqSetMachine, s.loop.Machine().ID); err != nil {
		return err
	}

	_, err = createGUI(sync, func() (guiCreator, error) {
		return ebitenRunner{EbitenHost: h}, nil
	})
	if err != nil {
		return err
	}

	// the ebiten loop does not watch the interrupt context
	go func() {
		<-sync.ctx.Done()
		h.Quit()
	}()

	if err := runWithGUI(sync, s.loop); err != nil {
		return err
	}

	return s.end(os.Stdout)
}

func remote(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	common := addCommonFlags(md)
	addr := md.AddString("addr", ":8080", "listen address for the touch websocket")
	record := md.AddBool("record", false, "record touches to a transcript file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	common.apply(os.Stdout)

	s, err := newSession(os.Stdout, *record)
	if err != nil {
		return err
	}

	srv := wsremote.NewServer(s.ctl, s.joy)
	srv.SetEventHook(s.eventHook)

	fmt.Printf("touch websocket available at %s%s\n", *addr, wsremote.Path)

	grp, ctx := errgroup.WithContext(sync.ctx)
	grp.Go(func() error {
		return s.loop.Run(ctx)
	})
	grp.Go(func() error {
		return srv.ListenAndServe(ctx, *addr)
	})
	if err := grp.Wait(); err != nil {
		return err
	}

	return s.end(os.Stdout)
}

func replay(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	common := addCommonFlags(md)
	memvizOutput := md.AddString("memviz", "", "write a dot graph of the joystick layout and port state to file after replay")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	common.apply(output)
	defer popCommandLinePrefs()

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("touch transcript required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	plb, err := recorder.NewPlayback(f)
	if err != nil {
		return err
	}

	// replay uses the default preferences so that a transcript behaves the
	// same on every machine. command line preferences are still applied
	prf := preferences.NewPreferences()
	if err := prf.ApplyCommandLine(); err != nil {
		return err
	}
	port := prf.Port.Get().(int)

	joy := joystick.NewJoystick(port, prf)
	ctl := userinput.NewControllers(prf)
	kemp := kempston.NewInterface(port)
	rec := recorder.NewRecorder(output, kemp)

	if err := plb.Run(ctl, joy, rec); err != nil {
		return err
	}
	if err := rec.Err(); err != nil {
		return err
	}

	fmt.Fprintf(output, "%s: %s\n", plb, kemp)

	if *memvizOutput != "" {
		mf, err := os.Create(*memvizOutput)
		if err != nil {
			return err
		}
		defer mf.Close()
		l := joy.Layout()
		memviz.Map(mf, &l, kemp)
	}

	return nil
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	common := addCommonFlags(md)
	duration := md.AddString("duration", "5s", "run duration (with an additional 2s lead time)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma sep)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	common.apply(output)
	defer popCommandLinePrefs()

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	prefs := preferences.NewPreferences()
	if err := prefs.ApplyCommandLine(); err != nil {
		return err
	}

	return performance.Check(output, prf, prefs.SelectedMachine(), prefs, *duration)
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		fmt.Fprintln(output, version.String())
		return nil
	}

	v, _, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	return nil
}
