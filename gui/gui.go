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

// Package gui contains the parts of the GUI implementations that are not
// specific to any one GUI toolkit. The toolkit specific implementations are in
// the sub-packages.
//
// Outlines() describes how the joystick should be drawn for a given state. It
// draws the regions of the layout and not the artwork. TouchDiff converts
// toolkits that report the current set of touches, rather than a stream of
// touch events, to userinput events.
package gui

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error
}

// Sentinel errors returned by SetFeature().
const (
	UnsupportedGuiFeature = "gui: unsupported gui feature: %v"
	FeatureArguments      = "gui: %v: wrong arguments"
)
