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

// Package ender is the closing scene of the demo: a horizontally streaming
// starfield with a slow palette cycle, running until the soundtrack ends or
// an exit is requested.
package ender

import (
	"github.com/jetsetilly/gopherreality/demo/dis"
	"github.com/jetsetilly/gopherreality/demo/part"
	"github.com/jetsetilly/gopherreality/demo/video"
)

const numStars = 256

// the width of the starfield in 8.8 fixed point.
const fieldWidth = video.Width << 8

// the palette indices the stars are drawn with. three depth layers, each
// with its own brightness band.
const (
	starBase  = 16
	starBand  = 16
	numLayers = 3
)

// star position is kept in 8.8 fixed point so the layers can move at
// fractional pixel speeds.
type star struct {
	x int
	y int

	// pixels per frame in 8.8 fixed point
	speed int

	// depth layer, 0 is the slowest and dimmest
	layer int
}

// Ender implements the part.Part interface.
type Ender struct {
	env *part.Environment

	stars [numStars]star

	// the palette cycle phase, advanced by the top copper
	cycle int

	rnd uint32
}

// NewEnder is the preferred method of initialisation for the Ender type.
func NewEnder() *Ender {
	return &Ender{}
}

// ID implements the part.Part interface.
func (prt *Ender) ID() string {
	return "ENDER"
}

func (prt *Ender) rand() uint32 {
	prt.rnd = prt.rnd*1664525 + 1013904223
	return prt.rnd >> 16
}

// Init implements the part.Part interface.
func (prt *Ender) Init(env *part.Environment) error {
	prt.env = env

	env.Video.SetMode(video.Mode13h)
	env.Video.Clear(0)

	// the previous part leaves its final scroll position in message area 0.
	// it seeds the starfield, which ties the two scenes together: run the
	// demo twice and the stars differ if the first part was skipped at a
	// different moment
	msg, err := env.Dis.MessageArea(0)
	if err != nil {
		return err
	}
	prt.rnd = uint32(msg[0]) | uint32(msg[1])<<8 | 0xbeef0000

	for i := range prt.stars {
		layer := i % numLayers
		prt.stars[i] = star{
			x:     int(prt.rand()%video.Width) << 8,
			y:     int(prt.rand() % video.Height13h),
			speed: (layer + 1) * 96,
			layer: layer,
		}
	}

	prt.setStarPalette()

	// the palette cycle runs in the top copper so it advances exactly once
	// per displayed frame
	err = env.Dis.SetCopper(dis.CopperTop, prt.copperCycle)
	if err != nil {
		return err
	}

	return nil
}

// setStarPalette writes the three brightness bands, rotated by the current
// cycle phase.
func (prt *Ender) setStarPalette() {
	for l := 0; l < numLayers; l++ {
		base := starBase + l*starBand
		for i := 0; i < starBand; i++ {
			// brightness ramps across the band and shifts with the cycle
			// phase, wrapping within the band
			v := byte((i + prt.cycle) % starBand * 63 / (starBand - 1))

			// deeper layers are dimmer overall
			v = v * byte(l+2) / numLayers

			// a cold blue-white
			prt.env.Video.SetColor(byte(base+i), v*3/4, v*3/4, v)
		}
	}
}

// copperCycle advances the palette cycle. Installed in the top copper slot.
func (prt *Ender) copperCycle() {
	prt.cycle++
	prt.setStarPalette()
}

// Update implements the part.Part interface.
func (prt *Ender) Update(frames int) bool {
	if prt.env.Dis.RequestedExit() {
		return true
	}

	// the scene runs until the final cue of the ladder
	if prt.env.Dis.SyncPoint() >= 8 {
		return true
	}

	for i := range prt.stars {
		s := &prt.stars[i]
		s.x -= s.speed * frames
		if s.x < 0 {
			// a long host stall can report enough elapsed frames to carry a
			// star several screen widths past the edge in one update
			s.x = (s.x%fieldWidth + fieldWidth) % fieldWidth
			s.y = int(prt.rand() % video.Height13h)
		}
	}

	return false
}

// Render implements the part.Part interface.
func (prt *Ender) Render() {
	fb := prt.env.Video.Framebuffer()

	for i := 0; i < video.Width*video.Height13h; i++ {
		fb[i] = 0
	}

	for i := range prt.stars {
		s := &prt.stars[i]
		x := s.x >> 8

		// brightness within the band follows the star's horizontal
		// position so stars twinkle as they cross the screen
		c := starBase + s.layer*starBand + (x/(video.Width/starBand))%starBand
		fb[s.y*video.Width+x] = byte(c)
	}
}

// Cleanup implements the part.Part interface.
func (prt *Ender) Cleanup() {
	prt.env.Dis.SetCopper(dis.CopperTop, nil)
}
