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
// Package modalflag wraps the flag package and adds support for program
// modes. Each mode has its own set of flags. A mode is selected by the first
// non-flag argument and if no mode is given the default mode is used.
//
//	md := modalflag.NewModes(os.Stdout, os.Args[1:])
//	md.AddSubModes("SDL", "EBITEN", "REMOTE")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "REMOTE":
//		md.NewMode()
//		addr := md.AddString("addr", ":8080", "listen address")
//		...
//	}
//
// Flags added before the call to Parse() belong to the current mode. NewMode()
// must be called before adding the flags for a sub-mode.
//
// Mode names are case insensitive and are always reported in upper case. The
// first sub-mode given to AddSubModes() is the default.
package modalflag
