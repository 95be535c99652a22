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

// Package wsremote accepts touch input from a remote device over a websocket.
// The remote device is typically a phone or tablet running a small web page
// that draws the joystick and forwards its touches.
//
// Messages from the remote are JSON objects with a "t" field naming the
// message type:
//
//	{"t":"layout","w":800,"h":300}
//	{"t":"down","id":1,"x":190,"y":150}
//	{"t":"move","id":1,"x":150,"y":100}
//	{"t":"up","id":1,"x":150,"y":100}
//	{"t":"cancel","id":1}
//	{"t":"release"}
//
// After every message the server replies with the state of the joystick:
//
//	{"t":"state","dir":"Up","fire":false,"redraw":true}
//
// Only one remote can be connected at a time. When the remote disconnects all
// of its touches are released.
package wsremote
