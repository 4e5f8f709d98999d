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

package dis

import "github.com/jetsetilly/gopherreality/demo/music"

// Cue is one rung of a Ladder. A rung activates when any of its clocks has
// reached its threshold. A negative threshold excludes that clock from the
// rung.
//
// The music clocks (Seconds and Order) participate only while the tracker
// reports that it is playing. The Frames clock always participates, making
// it the fallback when the soundtrack is absent or has ended.
type Cue struct {
	// music position in seconds
	Seconds float64

	// music order (position in the pattern sequence)
	Order int

	// frames since part start
	Frames int
}

// Ladder is an ordered list of cues. The sync point is the number of leading
// rungs that have activated; evaluation stops at the first inactive rung so
// a rung further down the ladder can never fire before an earlier one,
// whatever thresholds it carries. Declaration order is the tie-break.
type Ladder []Cue

// the nominal frame rate the Frames thresholds are calibrated against.
const framesPerSecond = 60

// DefaultLadder returns the ladder used when a part does not install its
// own: eight cues at five second intervals (starting early, at three
// seconds, because music position reporting is least reliable right after
// playback starts) with frame thresholds trailing at a flat five seconds per
// cue.
func DefaultLadder() Ladder {
	ladder := make(Ladder, 8)
	for i := range ladder {
		ladder[i] = Cue{
			Seconds: float64(5*(i+1)) - 2,
			Order:   -1,
			Frames:  5 * framesPerSecond * (i + 1),
		}
	}
	return ladder
}

// evaluate returns the raw cue index for the current clock values. Stickiness
// is applied by the caller (Dis.SyncPoint()); evaluate itself is stateless.
func (ladder Ladder) evaluate(trk music.Tracker, totalFrames int) int {
	playing := trk.IsPlaying()

	var seconds float64
	var order int
	if playing {
		seconds = trk.PositionSeconds()
		order = trk.CurrentOrder()
	}

	sp := 0
	for _, cue := range ladder {
		active := false

		if playing {
			if cue.Seconds >= 0 && seconds >= cue.Seconds {
				active = true
			}
			if cue.Order >= 0 && order >= cue.Order {
				active = true
			}
		}

		if cue.Frames >= 0 && totalFrames >= cue.Frames {
			active = true
		}

		if !active {
			break // for loop
		}
		sp++
	}

	return sp
}
