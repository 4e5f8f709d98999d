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

package music

// Timeline derives tracker coordinates (order and row) from a play position
// in seconds. The original demo played an S3M module and could ask the player
// directly. We play a PCM rendition of the soundtrack so the coordinates are
// recreated from the module's tempo information instead.
//
// Classic tracker arithmetic: one tick lasts 2.5/BPM seconds and one row
// lasts Speed ticks.
type Timeline struct {
	// beats per minute. the tracker "tempo"
	BPM float64

	// ticks per row. the tracker "speed"
	Speed int

	// number of rows in every pattern. 64 for S3M
	RowsPerOrder int

	// OrderMarks optionally lists the starting second of each order. for
	// songs with mid-song tempo changes the plain arithmetic drifts and
	// explicit marks are more reliable. when present, OrderMarks takes
	// priority over the BPM calculation for the order value.
	OrderMarks []float64
}

// DefaultTimeline returns a Timeline with the common S3M values. Tempo 125 at
// speed 6 gives the traditional 0.12s per row.
func DefaultTimeline() Timeline {
	return Timeline{
		BPM:          125,
		Speed:        6,
		RowsPerOrder: 64,
	}
}

// rowDuration returns the length of one pattern row in seconds.
func (tml Timeline) rowDuration() float64 {
	if tml.BPM <= 0 || tml.Speed <= 0 {
		return 0
	}
	return 2.5 / tml.BPM * float64(tml.Speed)
}

// Position converts a play position in seconds to an (order, row) pair.
// Positions before the start of the song return (0, 0).
func (tml Timeline) Position(seconds float64) (int, int) {
	if seconds < 0 {
		return 0, 0
	}

	rowDur := tml.rowDuration()
	if rowDur == 0 || tml.RowsPerOrder <= 0 {
		return 0, 0
	}

	rows := int(seconds / rowDur)
	order := rows / tml.RowsPerOrder
	row := rows % tml.RowsPerOrder

	if len(tml.OrderMarks) > 0 {
		order = 0
		for i := range tml.OrderMarks {
			if seconds < tml.OrderMarks[i] {
				break
			}
			order = i
		}

		// row is counted from the start of the marked order
		rows = int((seconds - tml.OrderMarks[order]) / rowDur)
		row = rows % tml.RowsPerOrder
	}

	return order, row
}
