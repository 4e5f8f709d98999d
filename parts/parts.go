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

// Package parts collects the scenes of the demo in playback order. The
// original demo sequenced its parts from a script file; the All() function
// is that script.
package parts

import (
	"github.com/jetsetilly/gopherreality/demo/part"
	"github.com/jetsetilly/gopherreality/parts/ender"
	"github.com/jetsetilly/gopherreality/parts/opening"
)

// All returns the demo's parts in playback order.
func All() []part.Part {
	return []part.Part{
		opening.NewOpening(),
		ender.NewEnder(),
	}
}
