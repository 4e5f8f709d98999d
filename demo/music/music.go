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

// Tracker is the music position oracle consumed by the dis package. The
// position values are published from whatever goroutine is pushing samples to
// the sound device so implementations must make sure every function is safe
// to call from the demo goroutine.
type Tracker interface {
	// IsPlaying returns true while the soundtrack is being played. Once the
	// end of the track is reached IsPlaying returns false forever.
	IsPlaying() bool

	// PositionSeconds returns the current play position. Zero when not
	// playing.
	PositionSeconds() float64

	// CurrentOrder returns the position in the pattern sequence of the
	// original tracker module.
	CurrentOrder() int

	// CurrentRow returns the row inside the current pattern.
	CurrentRow() int
}

// Nop is the Tracker to use when there is no soundtrack. It reports nothing
// is playing, causing sync decisions to fall through to the frame clock.
type Nop struct{}

// IsPlaying implements the Tracker interface.
func (Nop) IsPlaying() bool {
	return false
}

// PositionSeconds implements the Tracker interface.
func (Nop) PositionSeconds() float64 {
	return 0
}

// CurrentOrder implements the Tracker interface.
func (Nop) CurrentOrder() int {
	return 0
}

// CurrentRow implements the Tracker interface.
func (Nop) CurrentRow() int {
	return 0
}
