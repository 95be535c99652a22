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

// Package paths contains functions to prepare paths to Touchstick resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate configuration directory. The directory is created if it does
// not already exist.
//
//	pth, err := paths.ResourcePath("", "preferences.yaml")
//
// Development builds use the ".touchstick" directory in the current working
// directory. Builds with the release tag use the "touchstick" directory in
// the location returned by os.UserConfigDir(). On a modern Linux system that
// would be:
//
//	/home/user/.config/touchstick/preferences.yaml
package paths
