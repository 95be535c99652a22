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

package wsremote_test

import (
	"context"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/touchstick/curated"
	"github.com/jetsetilly/touchstick/joystick"
	"github.com/jetsetilly/touchstick/test"
	"github.com/jetsetilly/touchstick/userinput"
	"github.com/jetsetilly/touchstick/wsremote"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	test.DemandSuccess(t, err)
	return conn
}

func send(t *testing.T, conn *websocket.Conn, msg wsremote.Message) wsremote.State {
	t.Helper()
	test.DemandSuccess(t, conn.WriteJSON(msg))

	var state wsremote.State
	test.DemandSuccess(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	test.DemandSuccess(t, conn.ReadJSON(&state))
	return state
}

func TestMessageEvent(t *testing.T) {
	ev, err := wsremote.Message{T: "down", ID: 3, X: 1, Y: 2}.Event()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ev.(userinput.EventTouch), userinput.EventTouch{ID: 3, Phase: userinput.TouchBegan, X: 1, Y: 2})

	ev, err = wsremote.Message{T: "layout", W: 800, H: 300}.Event()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ev.(userinput.EventLayout), userinput.EventLayout{Width: 800, Height: 300})

	_, err = wsremote.Message{T: "wiggle"}.Event()
	test.ExpectSuccess(t, curated.Is(err, wsremote.UnknownMessage))
}

func TestRemote(t *testing.T) {
	j := joystick.NewJoystick(0, nil)

	var events []userinput.Event
	s := wsremote.NewServer(userinput.NewControllers(nil), j)
	s.SetEventHook(func(ev userinput.Event) {
		events = append(events, ev)
	})

	srv := httptest.NewServer(s)
	defer srv.Close()

	conn := dial(t, srv)

	state := send(t, conn, wsremote.Message{T: "layout", W: 800, H: 300})
	test.ExpectEquality(t, state.T, "state")
	test.ExpectSuccess(t, state.Redraw)

	state = send(t, conn, wsremote.Message{T: "down", ID: 1, X: 190, Y: 150})
	test.ExpectEquality(t, state.Dir, "Right")

	state = send(t, conn, wsremote.Message{T: "down", ID: 2, X: 700, Y: 150})
	test.ExpectEquality(t, state.Fire, true)

	state = send(t, conn, wsremote.Message{T: "move", ID: 1, X: 150, Y: 100})
	test.ExpectEquality(t, state.Dir, "Up")

	state = send(t, conn, wsremote.Message{T: "up", ID: 1, X: 150, Y: 100})
	test.ExpectEquality(t, state.Dir, "None")
	test.ExpectEquality(t, state.Fire, true)
	test.ExpectSuccess(t, s.Connected())

	// a second remote is refused
	other := dial(t, srv)
	test.DemandSuccess(t, other.SetReadDeadline(time.Now().Add(time.Second)))
	_, _, err := other.ReadMessage()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, websocket.IsCloseError(err, websocket.ClosePolicyViolation), err)
	other.Close()

	// disconnecting releases the button
	conn.Close()
	deadline := time.Now().Add(time.Second)
	for s.Connected() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	test.ExpectFailure(t, s.Connected())

	_, fire := j.Reading()
	test.ExpectFailure(t, fire)

	test.ExpectEquality(t, len(events), 6)
	test.ExpectEquality(t, events[5], userinput.Event(userinput.EventRelease{}))
}

func TestShutdownClosesRemote(t *testing.T) {
	j := joystick.NewJoystick(0, nil)
	s := wsremote.NewServer(userinput.NewControllers(nil), j)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	test.DemandSuccess(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.Serve(ctx, l)
	}()

	url := "ws://" + l.Addr().String() + wsremote.Path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	test.DemandSuccess(t, err)
	defer conn.Close()

	state := send(t, conn, wsremote.Message{T: "down", ID: 2, X: 700, Y: 150})
	test.ExpectEquality(t, state.T, "state")
	test.ExpectSuccess(t, s.Connected())

	cancel()

	select {
	case err := <-done:
		test.ExpectSuccess(t, err)
	case <-time.After(2 * time.Second):
		t.Fatalf("server did not stop")
	}

	// the remote sees the connection close rather than hanging
	test.DemandSuccess(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, _, err = conn.ReadMessage()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, websocket.IsCloseError(err, websocket.CloseGoingAway), err)

	deadline := time.Now().Add(time.Second)
	for s.Connected() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	test.ExpectFailure(t, s.Connected())

	_, fire := j.Reading()
	test.ExpectFailure(t, fire)
}
