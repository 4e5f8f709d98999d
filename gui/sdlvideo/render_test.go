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

package sdlvideo

import (
	"testing"

	"github.com/jetsetilly/gopherreality/test"
)

func TestLetterbox(t *testing.T) {
	// drawable matches the frame aspect exactly. no bars
	x, y, w, h := letterbox(320, 200, 640, 400)
	test.Equate(t, int(x), 0)
	test.Equate(t, int(y), 0)
	test.Equate(t, int(w), 640)
	test.Equate(t, int(h), 400)

	// drawable wider than the frame. bars left and right
	x, y, w, h = letterbox(320, 200, 800, 400)
	test.Equate(t, int(x), 80)
	test.Equate(t, int(y), 0)
	test.Equate(t, int(w), 640)
	test.Equate(t, int(h), 400)

	// drawable taller than the frame. bars top and bottom
	x, y, w, h = letterbox(320, 200, 640, 600)
	test.Equate(t, int(x), 0)
	test.Equate(t, int(y), 100)
	test.Equate(t, int(w), 640)
	test.Equate(t, int(h), 400)
}
