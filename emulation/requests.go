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

// FeatureReq is used to request the setting of an emulation attribute
// eg. a pause request from the GUI.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData any

// List of valid feature requests. argument must be of the type specified.
const (
	// pause or resume the loop.
	ReqSetPause FeatureReq = "ReqSetPause" // bool

	// change the machine being emulated. the poll rate changes to match.
	ReqSetMachine FeatureReq = "ReqSetMachine" // string (machine ID)
)

// Sentinel errors returned by SetFeature().
const (
	UnsupportedEmulationFeature = "emulation: unsupported emulation feature: %v"
	FeatureArguments            = "emulation: %v: wrong arguments"
)
