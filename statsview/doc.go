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
// Package statsview offers a local HTTP server with graphical runtime
// statistics. The server is only available when the statsview build tag is
// present. Without the tag, Available() returns false and Launch() does
// nothing.
//
// Underlying functionality is provided by "github.com/go-echarts/statsview".
// After launch the statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// Useful for watching the allocation behaviour of the joystick during a long
// session.
package statsview
