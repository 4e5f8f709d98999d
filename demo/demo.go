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

// Package demo assembles the demo machine: the dis synchronisation server,
// the part loader and the video pipeline, wired together and driven one
// frame at a time by the Frame() function. The caller decides where the
// frames come from - the play loop paces them with a limiter, the
// performance package runs them as fast as it can.
package demo

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherreality/demo/dis"
	"github.com/jetsetilly/gopherreality/demo/music"
	"github.com/jetsetilly/gopherreality/demo/part"
	"github.com/jetsetilly/gopherreality/demo/video"
)

// NominalFPS is the frame rate of the original demo. The frame thresholds
// of the sync ladders are calibrated against it.
const NominalFPS = 60

// Demo is the fully assembled demo machine.
type Demo struct {
	Dis    *dis.Dis
	Video  *video.Video
	Loader *part.Loader
}

// NewDemo is the preferred method of initialisation for the Demo type. A nil
// tracker runs the demo silent.
func NewDemo(trk music.Tracker) *Demo {
	dmo := &Demo{}
	dmo.Dis = dis.NewDis(trk)
	dmo.Video = video.NewVideo()
	dmo.Loader = part.NewLoader(&part.Environment{
		Dis:   dmo.Dis,
		Video: dmo.Video,
	})
	return dmo
}

// Frame performs the once-per-host-frame sequence: advance the dis frame
// clock, update the running part, render it, present the result.
func (dmo *Demo) Frame() error {
	dmo.Dis.Frame()
	dmo.Loader.Tick()
	dmo.Loader.Render()
	return dmo.Video.Present()
}

// IsRunning returns whether the part sequence is still in progress.
func (dmo *Demo) IsRunning() bool {
	return dmo.Loader.IsRunning()
}

// End cleans up the running part.
func (dmo *Demo) End() {
	dmo.Loader.End()
}

// Dump writes a graphviz visualisation of the demo machine's state to the
// io.Writer. Underlying functionality provided by the memviz package.
func (dmo *Demo) Dump(w io.Writer) {
	memviz.Map(w, dmo)
}
