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

	"github.com/jetsetilly/touchstick/emulation"
	"github.com/jetsetilly/touchstick/hardware/kempston"
	"github.com/jetsetilly/touchstick/joystick"
	"github.com/jetsetilly/touchstick/logger"
	"github.com/jetsetilly/touchstick/modalflag"
	"github.com/jetsetilly/touchstick/paths"
	"github.com/jetsetilly/touchstick/preferences"
	"github.com/jetsetilly/touchstick/prefs"
	"github.com/jetsetilly/touchstick/recorder"
	"github.com/jetsetilly/touchstick/statsview"
	"github.com/jetsetilly/touchstick/userinput"
)

// flags shared by every mode that creates a joystick.
type commonFlags struct {
	prefs *string
	log   *bool
	stats *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	f := commonFlags{
		prefs: md.AddString("prefs", "", "preferences to apply (eg. \"joystick.deadzone::3.0; machine.selected::128k\")"),
		log:   md.AddBool("log", false, "echo debugging log to stdout"),
	}
	if statsview.Available() {
		f.stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return f
}

// apply the common flags. must be called after Parse() and before the
// preferences are loaded. popCommandLinePrefs() should be called once the
// preferences have been loaded.
func (f commonFlags) apply(output io.Writer) {
	if *f.log {
		logger.SetEcho(output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	prefs.PushCommandLineStack(*f.prefs)

	if f.stats != nil && *f.stats {
		statsview.Launch(output)
	}
}

// popCommandLinePrefs removes the preferences pushed by commonFlags.apply()
// and logs any that were not used.
func popCommandLinePrefs() {
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "touchstick", "unused preferences: %s", unused)
	}
}

// session is the set of components shared by the interactive modes.
type session struct {
	prefs *preferences.Preferences
	joy   *joystick.Joystick
	ctl   *userinput.Controllers
	kemp  *kempston.Interface
	rec   *recorder.Recorder
	loop  *emulation.Loop

	transcript     *recorder.Transcript
	transcriptFile *os.File
}

// newSession loads the preferences from disk and creates the joystick. Every
// report from the joystick is written to output before being applied to the
// kempston interface.
//
// If record is true then every input event is written to a new transcript
// file.
func newSession(output io.Writer, record bool) (*session, error) {
	defer popCommandLinePrefs()

	pth, err := paths.ResourcePath("", preferences.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	s := &session{}

	s.prefs, err = preferences.NewPreferencesOnDisk(pth)
	if err != nil {
		return nil, err
	}

	port := s.prefs.Port.Get().(int)
	machine := s.prefs.SelectedMachine()

	s.joy = joystick.NewJoystick(port, s.prefs)
	s.ctl = userinput.NewControllers(s.prefs)
	s.kemp = kempston.NewInterface(port)
	s.rec = recorder.NewRecorder(output, s.kemp)

	s.loop, err = emulation.NewLoop(machine, s.rec, s.joy)
	if err != nil {
		return nil, err
	}
	s.loop.SetFrameHook(s.rec.SetFrame)

	if record {
		fn := fmt.Sprintf("%s.txt", paths.UniqueFilename("touches", machine.ID))
		s.transcriptFile, err = os.Create(fn)
		if err != nil {
			return nil, err
		}
		s.transcript, err = recorder.NewTranscript(s.transcriptFile)
		if err != nil {
			_ = s.transcriptFile.Close()
			return nil, err
		}
		logger.Logf(logger.Allow, "touchstick", "recording touches to %s", fn)
	}

	logger.Logf(logger.Allow, "touchstick", "%s on %s", s.joy, machine)

	return s, nil
}

// eventHook is given to the hosts and is called with every input event.
func (s *session) eventHook(ev userinput.Event) {
	if s.transcript == nil {
		return
	}
	if err := s.transcript.Write(s.loop.Frames(), ev); err != nil {
		logger.Log(logger.Allow, "touchstick", err)
	}
}

// end the session and write a summary to output.
func (s *session) end(output io.Writer) error {
	if s.transcriptFile != nil {
		if err := s.transcriptFile.Close(); err != nil {
			return err
		}
	}

	fmt.Fprintf(output, "%d frames: %s\n", s.loop.Frames(), s.kemp)

	return s.rec.Err()
}
