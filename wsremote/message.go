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
	"github.com/jetsetilly/touchstick/curated"
	"github.com/jetsetilly/touchstick/userinput"
)

// Message is the JSON message exchanged with the remote.
type Message struct {
	T  string  `json:"t"`
	ID int64   `json:"id,omitempty"`
	X  float64 `json:"x,omitempty"`
	Y  float64 `json:"y,omitempty"`
	W  float64 `json:"w,omitempty"`
	H  float64 `json:"h,omitempty"`
}

// State is the reply sent to the remote after every message.
type State struct {
	T      string `json:"t"`
	Dir    string `json:"dir"`
	Fire   bool   `json:"fire"`
	Redraw bool   `json:"redraw"`
}

// Sentinel error returned for messages with an unknown type.
const UnknownMessage = "wsremote: unknown message type (%s)"

// Event converts the message to a userinput.Event.
func (msg Message) Event() (userinput.Event, error) {
	touch := func(phase userinput.TouchPhase) userinput.Event {
		return userinput.EventTouch{ID: userinput.TouchID(msg.ID), Phase: phase, X: msg.X, Y: msg.Y}
	}

	switch msg.T {
	case "layout":
		return userinput.EventLayout{Width: msg.W, Height: msg.H}, nil
	case "down":
		return touch(userinput.TouchBegan), nil
	case "move":
		return touch(userinput.TouchMoved), nil
	case "up":
		return touch(userinput.TouchEnded), nil
	case "cancel":
		return touch(userinput.TouchCancelled), nil
	case "release":
		return userinput.EventRelease{}, nil
	}
	return nil, curated.Errorf(UnknownMessage, msg.T)
}
