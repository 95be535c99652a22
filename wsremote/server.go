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

package wsremote

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/touchstick/curated"
	"github.com/jetsetilly/touchstick/joystick"
	"github.com/jetsetilly/touchstick/logger"
	"github.com/jetsetilly/touchstick/userinput"
)

// Control is the control that remote touches are forwarded to. It is
// implemented by joystick.Joystick.
type Control interface {
	userinput.HandleInput
	Reading() (joystick.Direction, bool)
}

// Sentinel error returned when a second remote tries to connect.
const AlreadyConnected = "wsremote: remote already connected"

// Server handles websocket touch input.
type Server struct {
	upgrader websocket.Upgrader

	// mu serialises access to the controllers and the control. events from
	// the remote are handled on the connection's goroutine
	mu      sync.Mutex
	ctl     *userinput.Controllers
	control Control
	hook    func(userinput.Event)
	conn    *websocket.Conn
}

// NewServer is the preferred method of initialisation for the Server type.
func NewServer(ctl *userinput.Controllers, control Control) *Server {
	return &Server{
		ctl:     ctl,
		control: control,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// SetEventHook sets a function that is called with every event received from
// the remote. Must be called before the server starts.
func (s *Server) SetEventHook(f func(userinput.Event)) {
	s.hook = f
}

// ServeHTTP upgrades the connection and processes touch messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log(logger.Allow, "wsremote", err)
		return
	}
	if err := s.acceptConn(conn); err != nil {
		logger.Log(logger.Allow, "wsremote", err)
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error()))
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)

	logger.Logf(logger.Allow, "wsremote", "remote connected from %s", r.RemoteAddr)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		state, err := s.handleMessage(msg)
		if err != nil {
			logger.Log(logger.Allow, "wsremote", err)
			continue
		}

		if err := conn.WriteJSON(state); err != nil {
			return
		}
	}
}

// acceptConn ensures only one active connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return curated.Errorf(AlreadyConnected)
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection and releases the control.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
		_ = s.ctl.HandleUserInput(userinput.EventRelease{}, s.control)
		if s.hook != nil {
			s.hook(userinput.EventRelease{})
		}
	}
	s.mu.Unlock()
	_ = conn.Close()
	logger.Log(logger.Allow, "wsremote", "remote disconnected")
}

// handleMessage dispatches a single message and returns the reply.
func (s *Server) handleMessage(msg Message) (State, error) {
	ev, err := msg.Event()
	if err != nil {
		return State{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ctl.HandleUserInput(ev, s.control); err != nil {
		return State{}, err
	}
	if s.hook != nil {
		s.hook(ev)
	}

	dir, fire := s.control.Reading()
	return State{T: "state", Dir: dir.String(), Fire: fire, Redraw: s.ctl.Redraw}, nil
}

// Connected returns true if a remote is currently connected.
func (s *Server) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn != nil
}

// Path is the URL path of the websocket served by ListenAndServe().
const Path = "/touch"

// closeConn closes the active connection, if any. hijacked connections are not
// closed by http.Server.Shutdown()
func (s *Server) closeConn() {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"),
		time.Now().Add(time.Second))
	_ = conn.Close()
}

// ListenAndServe serves the websocket on Path at the specified address until
// the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return curated.Errorf("wsremote: %v", err)
	}
	return s.Serve(ctx, l)
}

// Serve is the same as ListenAndServe() but with an existing listener. The
// listener is closed when Serve() returns.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle(Path, s)

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	srv.RegisterOnShutdown(s.closeConn)

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	logger.Logf(logger.Allow, "wsremote", "listening on %s", l.Addr())

	err := srv.Serve(l)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return curated.Errorf("wsremote: %v", err)
	}
	return nil
}
