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
// Package version reports the version of the application. The version number
// is set at link time. Without it, the version is derived from
// the VCS information embedded in the binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used for window titles and in log messages.
const ApplicationName = "Touchstick"

// set at link time with -ldflags "-X github.com/jetsetilly/touchstick/version.number=..."
var number string

var revision string
var version string

// Version returns the version string and the VCS revision. The boolean is
// true if the version is a release number.
//
// The version is "unreleased" if the binary was built without the makefile
// and "local" if there is no VCS information either. A revision with
// uncommitted changes is suffixed with "+dirty".
func Version() (string, string, bool) {
	return version, revision, version == number
}

// String returns the application name and version on a single line.
func String() string {
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, revision)
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	switch {
	case vcsRevision == "":
		revision = "no revision information"
	case vcsModified:
		revision = vcsRevision + "+dirty"
	default:
		revision = vcsRevision
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
