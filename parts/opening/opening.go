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

// Package opening is the title sequence of the demo: three fading captions
// followed by a scrolling horizon with the credits overlaid. Everything is
// paced by the dis cue ladder so the sequence stays locked to the
// soundtrack whatever the frame rate does.
package opening

import (
	"github.com/jetsetilly/gopherreality/demo/dis"
	"github.com/jetsetilly/gopherreality/demo/part"
	"github.com/jetsetilly/gopherreality/demo/video"
	"github.com/jetsetilly/gopherreality/logger"
)

const (
	screenWidth  = video.Width
	screenHeight = video.HeightX
)

// the scroll advances one pixel every scrollRate frames.
const scrollRate = 9

// how long a caption holds at full intensity before fading out, in frames.
const captionHold = 200

// number of steps in a palette fade. the fade runs in the retrace copper so
// this is also its length in frames.
const fadeSteps = 64

// the phases of the sequence, in order. the waiting phases poll the cue
// ladder; the caption phases run their fade in, hold and fade out and then
// wait for the next cue themselves.
const (
	phaseWaitCaption1 = iota
	phaseCaption1
	phaseWaitCaption2
	phaseCaption2
	phaseWaitCaption3
	phaseCaption3
	phaseWaitHorizon
	phaseHorizon
	phaseDone
)

// sub-states of a caption phase.
const (
	captionFadeIn = iota
	captionHolding
	captionFadeOut
)

// Opening implements the part.Part interface.
type Opening struct {
	env *part.Environment

	glyphs  map[rune]glyph
	horizon []byte

	phase int
	sub   int

	// frames spent in the current sub-state
	frameCount int

	// horizon scroll state. scroll is the pixel offset into the horizon
	// bitmap; page alternates every step, like the double buffering of the
	// original
	scroll      int
	scrollCount int
	page        int

	// the next credit to overlay and the cue it appears at
	credit int

	// palette fade state, stepped by the retrace copper
	fadeSrc    []byte
	fadeDst    []byte
	fadeStep   int
	fadeActive bool
}

// NewOpening is the preferred method of initialisation for the Opening
// type.
func NewOpening() *Opening {
	return &Opening{}
}

// ID implements the part.Part interface.
func (prt *Opening) ID() string {
	return "ALKU"
}

// the cue ladder for this part. the seconds thresholds are the timings of
// the original sequence; the frame thresholds trail at the nominal frame
// rate so the sequence still completes without a soundtrack.
func openingLadder() dis.Ladder {
	seconds := []float64{3, 8, 13, 18, 23, 28, 33, 38}
	ladder := make(dis.Ladder, len(seconds))
	for i := range ladder {
		ladder[i] = dis.Cue{
			Seconds: seconds[i],
			Order:   -1,
			Frames:  300 * (i + 1),
		}
	}
	return ladder
}

// the caption palette: black everywhere except the text color range, which
// fades are run against.
func captionPalette() []byte {
	pal := make([]byte, video.PaletteSize)
	for c := textColorBit; c < 256; c++ {
		pal[c*3] = 63
		pal[c*3+1] = 63
		pal[c*3+2] = 63
	}
	return pal
}

// Init implements the part.Part interface.
func (prt *Opening) Init(env *part.Environment) error {
	prt.env = env

	prt.glyphs = buildGlyphs()
	prt.horizon = buildHorizon()

	prt.phase = phaseWaitCaption1
	prt.sub = captionFadeIn
	prt.frameCount = 0
	prt.scroll = 0
	prt.scrollCount = 0
	prt.page = 0
	prt.credit = 0
	prt.fadeActive = false

	env.Video.SetMode(video.ModeX)
	env.Video.Clear(0)

	env.Dis.SetLadder(openingLadder())

	// the fade runs in the retrace copper, once per WaitFrame(), which keeps
	// its speed locked to the displayed frame rate
	err := env.Dis.SetCopper(dis.CopperRetrace, prt.copperFade)
	if err != nil {
		return err
	}

	return nil
}

// copperFade advances the palette fade by one step. Installed in the
// retrace copper slot.
func (prt *Opening) copperFade() {
	if !prt.fadeActive {
		return
	}

	prt.fadeStep++
	if prt.fadeStep >= fadeSteps {
		prt.env.Video.SetPalette(prt.fadeDst)
		prt.fadeActive = false
		return
	}

	pal := make([]byte, video.PaletteSize)
	for i := range pal {
		s := int(prt.fadeSrc[i])
		d := int(prt.fadeDst[i])
		pal[i] = byte((s*(fadeSteps-prt.fadeStep) + d*prt.fadeStep) / fadeSteps)
	}
	prt.env.Video.SetPalette(pal)
}

// startFade begins a palette fade from the current palette to dst.
func (prt *Opening) startFade(dst []byte) {
	prt.fadeSrc = prt.env.Video.Palette()
	prt.fadeDst = dst
	prt.fadeStep = 0
	prt.fadeActive = true
}

// the three captions. each is drawn centred, one line per entry.
var captions = [3][]string{
	{"A", "FUTURE CREW", "PRODUCTION"},
	{"FIRST PRESENTED AT", "ASSEMBLY '93"},
	{"IN", "SECOND REALITY"},
}

// the credits overlaid on the horizon. credit i appears at cue 5+i.
var credits = []string{
	"GRAPHICS BY MARVEL AND PIXEL",
	"MUSIC BY PURPLE MOTION AND SKAVEN",
	"CODE BY PSI TRUG AND WILDFIRE",
	"ADDITIONAL DESIGN BY ABYSS AND GORE",
}

// drawCaption clears any previous text and draws the numbered caption
// centred on the visible Mode13h-sized window the captions play in.
func (prt *Opening) drawCaption(n int) {
	prt.clearText()

	lines := captions[n]
	top := (video.Height13h - len(lines)*(fontRows+6)) / 2
	for i, line := range lines {
		prt.printCentred(screenWidth/2, top+i*(fontRows+6), line)
	}
}

// drawCredit overlays the numbered credit above the horizon.
func (prt *Opening) drawCredit(n int) {
	prt.clearText()
	prt.printCentred(screenWidth/2, horizonTop-40, credits[n])
}

// Update implements the part.Part interface.
func (prt *Opening) Update(frames int) bool {
	if prt.env.Dis.RequestedExit() {
		return true
	}

	sp := prt.env.Dis.SyncPoint()
	prt.frameCount += frames

	switch prt.phase {
	case phaseWaitCaption1, phaseWaitCaption2, phaseWaitCaption3:
		// caption n waits for cue n+1
		cue := 1 + (prt.phase-phaseWaitCaption1)/2
		if sp >= cue {
			prt.drawCaption((prt.phase - phaseWaitCaption1) / 2)
			prt.startFade(captionPalette())
			prt.phase++
			prt.sub = captionFadeIn
			prt.frameCount = 0
		}

	case phaseCaption1, phaseCaption2, phaseCaption3:
		switch prt.sub {
		case captionFadeIn:
			if !prt.fadeActive {
				prt.sub = captionHolding
				prt.frameCount = 0
			}
		case captionHolding:
			if prt.frameCount >= captionHold {
				prt.startFade(make([]byte, video.PaletteSize))
				prt.sub = captionFadeOut
			}
		case captionFadeOut:
			if !prt.fadeActive {
				prt.clearText()
				prt.phase++
				prt.frameCount = 0
			}
		}

	case phaseWaitHorizon:
		if sp >= 4 {
			prt.renderHorizon()
			prt.startFade(horizonPalette())
			prt.phase = phaseHorizon
			prt.frameCount = 0
			logger.Log("opening", "horizon")
		}

	case phaseHorizon:
		// the landscape scrolls one pixel every few frames. elapsed frames
		// are accumulated so a dropped host frame scrolls further rather
		// than slower
		prt.scrollCount += frames
		for prt.scrollCount >= scrollRate {
			prt.scrollCount -= scrollRate
			prt.scroll++
			if prt.scroll >= horizonWidth {
				prt.scroll = 0
			}
			prt.page ^= 1
		}

		// overlay the credits as their cues arrive
		if prt.credit < len(credits) && sp >= 5+prt.credit {
			prt.drawCredit(prt.credit)
			prt.credit++
		}

		if sp >= 8 {
			prt.phase = phaseDone
		}

	case phaseDone:
		return true
	}

	return false
}

// Render implements the part.Part interface.
func (prt *Opening) Render() {
	if prt.phase != phaseHorizon {
		return
	}

	prt.renderHorizon()

	// page flip and fine scroll, like the original's Mode X double buffer.
	// the coarse offset moves a pixel for every four pixels of scroll; the
	// fine scroll covers the rest
	prt.env.Video.SetDisplayStart(prt.scroll/4 + prt.page*88)
	prt.env.Video.SetHScroll((prt.scroll & 3) * 2)
}

// Cleanup implements the part.Part interface. The final scroll position is
// left in message area 0 for the next part to seed itself from.
func (prt *Opening) Cleanup() {
	msg, err := prt.env.Dis.MessageArea(0)
	if err == nil {
		msg[0] = byte(prt.scroll)
		msg[1] = byte(prt.scroll >> 8)
		msg[2] = byte(prt.credit)
	}

	prt.env.Dis.SetCopper(dis.CopperRetrace, nil)
	prt.fadeActive = false
}
