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
package paths

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/touchstick/curated"
)

// Sentinel error returned when the resource directory cannot be prepared.
const ResourceDir = "paths: %v"

// ResourcePath returns the path of the named resource in the configuration
// directory. The subPth directory is created if required but the file itself
// is not.
//
// Both arguments can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := baseDir()
	if err != nil {
		return "", curated.Errorf(ResourceDir, err)
	}

	dir := filepath.Join(base, subPth)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", curated.Errorf(ResourceDir, err)
	}

	return filepath.Join(dir, file), nil
}
