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
	"testing"
	"time"

	"github.com/jetsetilly/touchstick/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	pth, err := ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".touchstick/foo/bar/baz")

	_, err = os.Stat(".touchstick/foo/bar")
	test.ExpectSuccess(t, err)

	pth, err = ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".touchstick/foo/bar")

	pth, err = ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".touchstick/baz")

	pth, err = ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".touchstick")
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("transcript", "48k", n), "transcript_48k_20240305_140709")
	test.ExpectEquality(t, uniqueFilename("transcript", " ", n), "transcript_20240305_140709")
}
