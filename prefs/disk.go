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

package prefs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopherreality/curated"
	"github.com/jetsetilly/gopherreality/logger"
)

// DefaultPrefsFile is the default filename of the main preferences file.
const DefaultPrefsFile = "gopherreality.prefs"

// the string the first line of a prefs file must contain in order for it to
// be considered a valid prefs file.
const fileSignature = "*gopherreality*"

// the string used to separate keys from values in the prefs file.
const keySep = " :: "

// Disk represents preference values that are stored to disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add a pref value to the list of values that will be saved/loaded from disk.
// The key is used to identify the value in the prefs file.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return curated.Errorf("prefs: %v", "key cannot be the empty string")
	}
	if strings.Contains(key, keySep) {
		return curated.Errorf("prefs: key cannot contain the %q sequence", keySep)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: duplicate key [%s]", key)
	}

	dsk.entries[key] = p

	return nil
}

// HasEntry returns true if the specified key has been added to the Disk type.
func (dsk *Disk) HasEntry(key string) bool {
	_, ok := dsk.entries[key]
	return ok
}

// Load prefs values from disk. A prefs file that does not exist is not an
// error; the added values are left at whatever they currently are.
func (dsk *Disk) Load() (rerr error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return curated.Errorf("prefs: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("prefs: %v", err)
		}
	}()

	scanner := bufio.NewScanner(f)

	// check file signature on the first line
	if !scanner.Scan() || scanner.Text() != fileSignature {
		return curated.Errorf("prefs: %v", "not a valid prefs file")
	}

	for scanner.Scan() {
		s := strings.SplitN(scanner.Text(), keySep, 2)
		if len(s) != 2 {
			continue
		}

		if p, ok := dsk.entries[s[0]]; ok {
			err := p.Set(s[1])
			if err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		} else {
			// an unrecognised key is not fatal. log it and carry on
			logger.Logf("prefs", "unrecognised key [%s] in %s", s[0], dsk.path)
		}
	}

	return nil
}

// Save current prefs values to disk.
func (dsk *Disk) Save() (rerr error) {
	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("prefs: %v", err)
		}
	}()

	// sort keys so the prefs file is in a predictable order
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	io.WriteString(f, fmt.Sprintf("%s\n", fileSignature))
	for _, k := range keys {
		io.WriteString(f, fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k].String()))
	}

	return nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for k, p := range dsk.entries {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, p.String()))
	}
	return s.String()
}
