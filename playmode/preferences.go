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

package playmode

import (
	"github.com/jetsetilly/gopherreality/paths"
	"github.com/jetsetilly/gopherreality/prefs"
)

// Preferences are the play window settings that persist between runs.
type Preferences struct {
	dsk *prefs.Disk

	FpsCap     prefs.Bool
	Fullscreen prefs.Bool
	Scale      prefs.Float
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Stored values are loaded from disk immediately.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	// defaults for the first ever run
	err := p.FpsCap.Set(true)
	if err != nil {
		return nil, err
	}
	err = p.Scale.Set(1.0)
	if err != nil {
		return nil, err
	}

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("playmode.fpscap", &p.FpsCap)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("playmode.fullscreen", &p.Fullscreen)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("playmode.scale", &p.Scale)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Save current preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
