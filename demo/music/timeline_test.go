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

package music_test

import (
	"testing"

	"github.com/jetsetilly/gopherreality/demo/music"
	"github.com/jetsetilly/gopherreality/test"
)

func TestTimelinePosition(t *testing.T) {
	tml := music.DefaultTimeline()

	// tempo 125 at speed 6 is 0.12 seconds per row, 64 rows per order

	order, row := tml.Position(0)
	test.Equate(t, order, 0)
	test.Equate(t, row, 0)

	order, row = tml.Position(0.5)
	test.Equate(t, order, 0)
	test.Equate(t, row, 4)

	order, row = tml.Position(15.5)
	test.Equate(t, order, 2)
	test.Equate(t, row, 1)

	// positions before the start of the song
	order, row = tml.Position(-1)
	test.Equate(t, order, 0)
	test.Equate(t, row, 0)
}

func TestTimelineOrderMarks(t *testing.T) {
	tml := music.DefaultTimeline()
	tml.OrderMarks = []float64{0, 10, 20}

	// explicit marks override the tempo arithmetic for the order value and
	// the row is counted from the start of the marked order

	order, row := tml.Position(5)
	test.Equate(t, order, 0)
	test.Equate(t, row, 41)

	order, row = tml.Position(25)
	test.Equate(t, order, 2)
	test.Equate(t, row, 41)
}

func TestTimelineDegenerate(t *testing.T) {
	tml := music.Timeline{}

	// a zeroed timeline must not divide by zero
	order, row := tml.Position(100)
	test.Equate(t, order, 0)
	test.Equate(t, row, 0)

	order, row = tml.Position(0)
	test.Equate(t, order, 0)
	test.Equate(t, row, 0)
}
