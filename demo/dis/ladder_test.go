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

package dis_test

import (
	"testing"

	"github.com/jetsetilly/gopherreality/demo/dis"
	"github.com/jetsetilly/gopherreality/test"
)

func TestSyncPointMonotonic(t *testing.T) {
	trk := &stubTracker{playing: true}
	srv := dis.NewDis(trk)

	// default ladder cues at 3, 8, 13, ... seconds
	test.Equate(t, srv.SyncPoint(), 0)

	trk.seconds = 12
	test.Equate(t, srv.SyncPoint(), 2)

	// a looping or rewinding soundtrack must never lower the sync point
	trk.seconds = 1
	test.Equate(t, srv.SyncPoint(), 2)

	trk.seconds = 14
	test.Equate(t, srv.SyncPoint(), 3)

	// a frozen clock holds, never unwinds
	trk.playing = false
	test.Equate(t, srv.SyncPoint(), 3)
}

func TestLadderFramesFallback(t *testing.T) {
	// no soundtrack at all. the frame thresholds are the only clock
	srv := dis.NewDis(nil)

	for i := 0; i < 299; i++ {
		srv.Frame()
	}
	test.Equate(t, srv.SyncPoint(), 0)

	srv.Frame()
	test.Equate(t, srv.SyncPoint(), 1)
}

func TestLadderFirstInactiveStops(t *testing.T) {
	trk := &stubTracker{playing: true}
	srv := dis.NewDis(trk)

	// the second rung's thresholds have long been reached but the first
	// rung blocks it. declaration order wins
	srv.SetLadder(dis.Ladder{
		{Seconds: 1000, Order: -1, Frames: -1},
		{Seconds: -1, Order: -1, Frames: 0},
	})

	for i := 0; i < 100; i++ {
		srv.Frame()
	}
	test.Equate(t, srv.SyncPoint(), 0)
}

func TestLadderOrderClock(t *testing.T) {
	trk := &stubTracker{playing: true}
	srv := dis.NewDis(trk)

	srv.SetLadder(dis.Ladder{
		{Seconds: -1, Order: 2, Frames: -1},
		{Seconds: -1, Order: 4, Frames: -1},
	})

	test.Equate(t, srv.SyncPoint(), 0)

	trk.order = 2
	test.Equate(t, srv.SyncPoint(), 1)

	trk.order = 5
	test.Equate(t, srv.SyncPoint(), 2)
}

func TestLadderResetRestoresDefault(t *testing.T) {
	trk := &stubTracker{playing: true}
	srv := dis.NewDis(trk)

	// a ladder that fires immediately
	srv.SetLadder(dis.Ladder{
		{Seconds: 0, Order: -1, Frames: -1},
	})
	test.Equate(t, srv.SyncPoint(), 1)

	// Reset() restores the default ladder and the sync point stickiness
	srv.Reset()
	test.Equate(t, srv.SyncPoint(), 0)
}
