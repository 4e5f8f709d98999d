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

// stubTracker reports whatever coordinates the test wants.
type stubTracker struct {
	playing bool
	seconds float64
	order   int
	row     int
}

func (trk *stubTracker) IsPlaying() bool {
	return trk.playing
}

func (trk *stubTracker) PositionSeconds() float64 {
	return trk.seconds
}

func (trk *stubTracker) CurrentOrder() int {
	return trk.order
}

func (trk *stubTracker) CurrentRow() int {
	return trk.row
}

func TestWaitFrame(t *testing.T) {
	srv := dis.NewDis(nil)

	// never less than one frame, even before any Frame() calls
	test.Equate(t, srv.WaitFrame(), 1)

	srv.Frame()
	srv.Frame()
	srv.Frame()
	test.Equate(t, srv.WaitFrame(), 3)

	// elapsed count resets on every call
	srv.Frame()
	test.Equate(t, srv.WaitFrame(), 1)
}

func TestCoppers(t *testing.T) {
	srv := dis.NewDis(nil)

	order := make([]int, 0, dis.NumCoppers)
	for i := 0; i < dis.NumCoppers; i++ {
		slot := i
		err := srv.SetCopper(slot, func() {
			order = append(order, slot)
		})
		test.ExpectedSuccess(t, err)
	}

	// coppers run once per WaitFrame() whatever the elapsed frame count
	srv.Frame()
	srv.Frame()
	srv.Frame()
	srv.WaitFrame()

	test.Equate(t, len(order), dis.NumCoppers)
	test.Equate(t, order[0], dis.CopperTop)
	test.Equate(t, order[1], dis.CopperBottom)
	test.Equate(t, order[2], dis.CopperRetrace)

	// invalid slots
	test.ExpectedFailure(t, srv.SetCopper(-1, func() {}))
	test.ExpectedFailure(t, srv.SetCopper(dis.NumCoppers, func() {}))

	// clearing a slot
	test.ExpectedSuccess(t, srv.SetCopper(dis.CopperTop, nil))
	order = order[:0]
	srv.WaitFrame()
	test.Equate(t, len(order), 2)
}

func TestMessageAreas(t *testing.T) {
	srv := dis.NewDis(nil)

	msg, err := srv.MessageArea(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(msg), dis.MessageAreaSize)

	msg[0] = 0xff
	msg[63] = 0x80

	// message areas survive a part transition, unlike everything else
	srv.RequestExit()
	srv.SetMusicFrame(100)
	srv.Reset()

	test.Equate(t, srv.RequestedExit(), false)
	test.Equate(t, srv.MusicFrame(), 0)

	msg, err = srv.MessageArea(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, msg[0], 0xff)
	test.Equate(t, msg[63], 0x80)

	_, err = srv.MessageArea(dis.NumMessageAreas)
	test.ExpectedFailure(t, err)
	_, err = srv.MessageArea(-1)
	test.ExpectedFailure(t, err)
}

func TestExitFlagSticky(t *testing.T) {
	srv := dis.NewDis(nil)

	test.Equate(t, srv.RequestedExit(), false)
	srv.RequestExit()
	test.Equate(t, srv.RequestedExit(), true)

	// the flag stays set until the next Init()
	srv.Frame()
	srv.WaitFrame()
	test.Equate(t, srv.RequestedExit(), true)

	srv.PartStart()
	test.Equate(t, srv.RequestedExit(), false)
}

func TestMusicQueries(t *testing.T) {
	trk := &stubTracker{playing: true, order: 3, row: 10}
	srv := dis.NewDis(trk)

	test.Equate(t, srv.MusicCode(), 3)
	test.Equate(t, srv.MusicRow(), 10)
	test.Equate(t, srv.MusicPlus(), 3*64+10)
}
