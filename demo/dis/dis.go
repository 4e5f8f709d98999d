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

import (
	"github.com/jetsetilly/gopherreality/curated"
	"github.com/jetsetilly/gopherreality/demo/music"
	"github.com/jetsetilly/gopherreality/logger"
)

// Version reported by the Init() function. 0x0100 means V1.0.
const Version = 0x0100

// Message areas are how consecutive parts pass values to one another. They
// are the only dis state that survives a part transition.
const (
	NumMessageAreas = 4
	MessageAreaSize = 64
)

// CopperFn is a copper callback. Coppers emulate the raster interrupts of the
// original server. They are run by the WaitFrame() function, not by a real
// scan line, but parts cannot tell the difference.
type CopperFn func()

// The three copper slots, in the order they are run.
const (
	CopperTop = iota
	CopperBottom
	CopperRetrace
	NumCoppers
)

// Dis is the demo's synchronisation server. The original DIS was an
// interrupt driven TSR; this one is driven by the host's frame callback
// through the Frame() function but presents the same contract to parts.
//
// Not safe for concurrent use. Frame(), WaitFrame() and all the query
// functions must be called from the same goroutine.
type Dis struct {
	trk music.Tracker

	exit bool

	// frames since the last WaitFrame() call
	waitCount int

	// frames since the current part started. reset by Init() and Reset()
	totalFrames int

	// free counter parts use to hand timing hints forward
	musicFrame int

	coppers  [NumCoppers]CopperFn
	msgAreas [NumMessageAreas][MessageAreaSize]byte

	ladder Ladder

	// the highest cue index returned so far. SyncPoint() never goes lower
	// than this whatever the underlying clocks do
	syncPoint int
}

// NewDis is the preferred method of initialisation for the Dis type. A nil
// tracker is allowed and is replaced with the silent music.Nop.
func NewDis(trk music.Tracker) *Dis {
	if trk == nil {
		trk = music.Nop{}
	}

	srv := &Dis{
		trk:    trk,
		ladder: DefaultLadder(),
	}
	srv.Init()

	return srv
}

// Init clears the exit flag and the frame counters. Message areas and copper
// slots are not touched. Idempotent; parts call this (through PartStart())
// when they start.
//
// Returns the server version.
func (srv *Dis) Init() int {
	srv.exit = false
	srv.waitCount = 0
	srv.totalFrames = 0
	srv.syncPoint = 0
	return Version
}

// PartStart is how parts announce themselves to the server. Equivalent to
// Init() with the version number thrown away.
func (srv *Dis) PartStart() {
	srv.Init()
}

// Frame is called once per host frame, before the part is updated. It is the
// only source of time the server has.
func (srv *Dis) Frame() {
	srv.waitCount++
	srv.totalFrames++
}

// WaitFrame is the frame synchronisation primitive. The original blocked
// until the vertical blank; this version returns immediately with the number
// of Frame() calls since the previous WaitFrame() call, never less than one.
//
// As a mandatory side effect the three copper callbacks are run, in slot
// order, exactly once per call. The elapsed count has no bearing on how often
// the coppers run.
func (srv *Dis) WaitFrame() int {
	for i := 0; i < NumCoppers; i++ {
		if srv.coppers[i] != nil {
			srv.coppers[i]()
		}
	}

	frames := srv.waitCount
	if frames == 0 {
		frames = 1
	}
	srv.waitCount = 0

	return frames
}

// RequestExit sets the exit flag. The flag is sticky; it stays set until the
// next Init() or Reset().
func (srv *Dis) RequestExit() {
	srv.exit = true
}

// RequestedExit returns whether termination has been requested. Parts poll
// this once per tick and end themselves; there is no preemption.
func (srv *Dis) RequestedExit() bool {
	return srv.exit
}

// MusicCode returns the current order of the soundtrack. Parts branch on
// this for coarse synchronisation.
func (srv *Dis) MusicCode() int {
	return srv.trk.CurrentOrder()
}

// MusicRow returns the current row of the soundtrack.
func (srv *Dis) MusicRow() int {
	return srv.trk.CurrentRow()
}

// MusicPlus returns order*64+row. A single value combining the coarse and
// fine position, for parts that want finer sync than MusicCode() alone.
func (srv *Dis) MusicPlus() int {
	return srv.trk.CurrentOrder()*64 + srv.trk.CurrentRow()
}

// SetMusicFrame sets the free music-frame counter.
func (srv *Dis) SetMusicFrame(frame int) {
	srv.musicFrame = frame
}

// MusicFrame returns the free music-frame counter.
func (srv *Dis) MusicFrame() int {
	return srv.musicFrame
}

// MessageArea returns one of the shared 64 byte message areas. The returned
// slice aliases the server's storage so writes are visible to the next part
// that asks for the same area.
func (srv *Dis) MessageArea(area int) ([]byte, error) {
	if area < 0 || area >= NumMessageAreas {
		err := curated.Errorf("dis: invalid message area [%d]", area)
		logger.Log("dis", err.Error())
		return nil, err
	}
	return srv.msgAreas[area][:], nil
}

// SetCopper registers a callback in one of the three copper slots. A nil
// function clears the slot.
func (srv *Dis) SetCopper(slot int, fn CopperFn) error {
	if slot < 0 || slot >= NumCoppers {
		err := curated.Errorf("dis: invalid copper slot [%d]", slot)
		logger.Log("dis", err.Error())
		return err
	}
	srv.coppers[slot] = fn
	return nil
}

// SetLadder installs the cue ladder used by the SyncPoint() function. Parts
// with their own timing install their ladder during init; the default ladder
// is restored by Reset().
func (srv *Dis) SetLadder(ladder Ladder) {
	srv.ladder = ladder

	// a new ladder does not unwind cues already reached. the stickiness of
	// SyncPoint() is per part-run, not per ladder
}

// SyncPoint returns the current cue index. The value is derived from the cue
// ladder (see the Ladder type) and is monotonically non-decreasing within one
// part's run, whatever the music or time signals report.
func (srv *Dis) SyncPoint() int {
	sp := srv.ladder.evaluate(srv.trk, srv.totalFrames)
	if sp > srv.syncPoint {
		srv.syncPoint = sp
	}
	return srv.syncPoint
}

// TotalFrames returns the number of frames since the current part started.
func (srv *Dis) TotalFrames() int {
	return srv.totalFrames
}

// Reset the server for a part transition. Clears the exit flag, the frame
// counters, the music-frame counter and the copper slots; restores the
// default cue ladder. Message areas are explicitly preserved.
func (srv *Dis) Reset() {
	srv.Init()
	srv.musicFrame = 0
	for i := 0; i < NumCoppers; i++ {
		srv.coppers[i] = nil
	}
	srv.ladder = DefaultLadder()
}
