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

package opening

// The horizon landscape. The original loaded a painted 640 pixel wide
// bitmap from a legacy asset file and scrolled it behind the credits; asset
// parsing is outside this program so an equivalent bitmap is generated
// instead: a banded sky above a mountain ridge, wide enough to wrap
// seamlessly as it scrolls.

const (
	horizonWidth  = 640
	horizonHeight = 88

	// the framebuffer row the horizon starts at
	horizonTop = 100
)

// color index layout of the horizon bitmap. all indices stay below the
// text color bit so text compositing cannot corrupt the image.
const (
	skyBase      = 1  // sky gradient, skyBase..skyBase+skyCount-1
	skyCount     = 24 //
	ridgeBase    = 32 // mountain gradient
	ridgeCount   = 16 //
	horizonGlowC = 30 // the bright band at the horizon line
)

// deterministic pseudo random generator for the ridge line. a fixed seed so
// every run scrolls the same landscape.
type ridgeRand struct {
	state uint32
}

func (r *ridgeRand) next() uint32 {
	r.state = r.state*1664525 + 1013904223
	return r.state >> 16
}

// buildHorizon generates the horizon bitmap.
func buildHorizon() []byte {
	bm := make([]byte, horizonWidth*horizonHeight)

	// the row the sky meets the ridge
	const skyline = 40

	// sky gradient, brightest at the skyline
	for y := 0; y < skyline; y++ {
		c := byte(skyBase + (y*skyCount)/skyline)
		for x := 0; x < horizonWidth; x++ {
			bm[y*horizonWidth+x] = c
		}
	}

	// glow band on the skyline itself
	for x := 0; x < horizonWidth; x++ {
		bm[skyline*horizonWidth+x] = horizonGlowC
	}

	// ridge line: a random walk with the endpoints pinned to the same
	// height so the bitmap wraps without a seam
	rnd := ridgeRand{state: 0x1993}
	heights := make([]int, horizonWidth)
	h := 12
	for x := 0; x < horizonWidth; x++ {
		h += int(rnd.next()%5) - 2
		if h < 4 {
			h = 4
		}
		if h > 30 {
			h = 30
		}
		heights[x] = h
	}
	// blend the last few columns back towards the first
	for i := 0; i < 16; i++ {
		x := horizonWidth - 16 + i
		heights[x] = (heights[x]*(16-i) + heights[0]*i) / 16
	}

	// fill the ground, darker with depth
	for x := 0; x < horizonWidth; x++ {
		for y := skyline + 1; y < horizonHeight; y++ {
			depth := y - skyline - 1
			var c byte
			if depth < heights[x] {
				c = byte(ridgeBase + ridgeCount - 1 - (depth*ridgeCount)/heights[x])
			} else {
				c = ridgeBase
			}
			bm[y*horizonWidth+x] = c
		}
	}

	return bm
}

// renderHorizon copies the visible window of the horizon bitmap into the
// framebuffer, wrapping horizontally at the bitmap's width.
func (prt *Opening) renderHorizon() {
	fb := prt.env.Video.Framebuffer()

	for y := 0; y < horizonHeight; y++ {
		srcRow := y * horizonWidth
		dstRow := (y + horizonTop) * screenWidth
		for x := 0; x < screenWidth; x++ {
			srcX := (x + prt.scroll) % horizonWidth
			fb[dstRow+x] = prt.horizon[srcRow+srcX]
		}
	}
}

// horizonPalette returns the 768 byte palette the horizon fades up to: sky
// blues, ridge browns, the glow band, and white for the text color bit
// range.
func horizonPalette() []byte {
	pal := make([]byte, 768)

	// sky: deep blue to pale amber
	for i := 0; i < skyCount; i++ {
		c := skyBase + i
		pal[c*3] = byte(8 + (i*40)/skyCount)
		pal[c*3+1] = byte(8 + (i*28)/skyCount)
		pal[c*3+2] = byte(24 + (i*24)/skyCount)
	}

	// glow band
	pal[horizonGlowC*3] = 63
	pal[horizonGlowC*3+1] = 52
	pal[horizonGlowC*3+2] = 30

	// ridge: near black to warm brown
	for i := 0; i < ridgeCount; i++ {
		c := ridgeBase + i
		pal[c*3] = byte((i * 30) / ridgeCount)
		pal[c*3+1] = byte((i * 18) / ridgeCount)
		pal[c*3+2] = byte((i * 10) / ridgeCount)
	}

	// anything with the text bit set shows as white, whatever base color
	// the text landed on
	for c := textColorBit; c < 256; c++ {
		pal[c*3] = 63
		pal[c*3+1] = 63
		pal[c*3+2] = 63
	}

	return pal
}
