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

package ender

import (
	"testing"

	"github.com/jetsetilly/gopherreality/demo/dis"
	"github.com/jetsetilly/gopherreality/demo/part"
	"github.com/jetsetilly/gopherreality/demo/video"
	"github.com/jetsetilly/gopherreality/test"
)

func newTestEnder(t *testing.T) *Ender {
	t.Helper()
	prt := NewEnder()
	env := &part.Environment{
		Dis:   dis.NewDis(nil),
		Video: video.NewVideo(),
	}
	test.ExpectedSuccess(t, prt.Init(env))
	return prt
}

func TestStarWrap(t *testing.T) {
	prt := newTestEnder(t)

	prt.Update(1)
	prt.Render()

	for i := range prt.stars {
		s := &prt.stars[i]
		if s.x < 0 || s.x >= fieldWidth {
			t.Fatalf("star %d has left the field (x = %d)", i, s.x)
		}
	}
}

func TestStarWrapAfterStall(t *testing.T) {
	prt := newTestEnder(t)

	// a suspended or stalled host can report thousands of elapsed frames in
	// a single update. every star must wrap back onto the field, several
	// screen widths at once if need be
	prt.Update(10000)

	for i := range prt.stars {
		s := &prt.stars[i]
		if s.x < 0 || s.x >= fieldWidth {
			t.Fatalf("star %d has left the field after stall (x = %d)", i, s.x)
		}
		if s.y < 0 || s.y >= video.Height13h {
			t.Fatalf("star %d has left the field after stall (y = %d)", i, s.y)
		}
	}

	// rendering after the stall must plot every star inside the visible
	// framebuffer
	prt.Render()
}
