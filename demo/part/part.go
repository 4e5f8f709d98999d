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

package part

import (
	"github.com/jetsetilly/gopherreality/demo/dis"
	"github.com/jetsetilly/gopherreality/demo/video"
)

// Environment bundles the handles a part consumes. Passed to the part's
// Init() function; parts keep hold of it for the rest of their run.
type Environment struct {
	Dis   *dis.Dis
	Video *video.Video
}

// Part is one self-contained scene of the demo. The four lifecycle functions
// are called by the Loader; a part never calls them itself.
type Part interface {
	// ID returns a short name for the part ("ALKU", "ENDER", ...)
	ID() string

	// Init acquires whatever the part needs before its first update. An
	// error leaves the part Stopped and the loader moves on to the next
	// part.
	Init(env *Environment) error

	// Update advances the part's state by the given number of elapsed
	// frames. Returning true signals that the part is finished and the
	// loader should transition to the next one.
	Update(frames int) bool

	// Render draws the part's current state into the framebuffer.
	Render()

	// Cleanup releases anything acquired by Init(). Called exactly once,
	// strictly before the next part's Init().
	Cleanup()
}

// State records where in its lifecycle a part is. States are owned and
// changed by the Loader, not by the part.
type State int

// The part lifecycle. Stopped -> Initializing -> Running -> Cleanup ->
// Stopped. A stopped part is not re-entered except by a fresh Start().
const (
	Stopped State = iota
	Initializing
	Running
	Cleanup
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Initializing:
		return "initializing"
	case Running:
		return "running"
	case Cleanup:
		return "cleanup"
	}
	return "unknown"
}
