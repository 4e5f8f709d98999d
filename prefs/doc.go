// This file is part of GopherReality.
//
// GopherReality is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherReality is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherReality.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs facilitates the storage of preference values to disk.
// Preference values are added to a Disk instance with the Add() function.
// Each value is a prefs type: Bool or Float. The underlying storage of these
// types is atomic, meaning a prefs value can be read from any goroutine
// without further coordination.
//
// A typical sequence is:
//
//	pth, _ := paths.ResourcePath("", prefs.DefaultPrefsFile)
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("playmode.fullscreen", &fullscreen)
//	dsk.Load()
//
// Values changed during the session are written back with the Save()
// function.
package prefs
