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

// Package dis implements the Demo Interrupt Server, the synchronisation
// heart of the demo. The original DIS was a DOS TSR that parts talked to
// through interrupts: wait for vertical blank, read the music position, hook
// a raster "copper" routine, pass a message to the next part.
//
// This implementation keeps the contract but replaces the interrupt model
// with a cooperative one. The host calls Frame() once per displayed frame
// and the part calls WaitFrame(), which never blocks. Instead of waiting it
// returns the number of frames that have passed since the previous call,
// always at least one, and runs the three copper callbacks. A part written
// against the original blocking semantics works unchanged as long as it
// treats the return value as "frames elapsed".
//
// SyncPoint() is how parts decide when to change phase. It evaluates a
// ladder of cues against the music position and the frame counter, and is
// guaranteed never to decrease within one part's run even when the music
// loops or the position report stutters.
package dis
