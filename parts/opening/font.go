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

// The original part drew its captions with a bitmap font loaded from a
// legacy asset file. Asset parsing is outside this program so the font is
// generated from the pattern table below instead: a 5x7 pixel typeface,
// doubled in both directions at build time to approximate the size of the
// original lettering.

// dimensions of the source patterns.
const (
	patternWidth  = 5
	patternHeight = 7
)

// dimensions of a built glyph. patterns are doubled in both directions.
const (
	glyphWidth  = patternWidth * 2
	glyphHeight = patternHeight * 2
)

// fontRows is the pixel height of built glyphs. the name echoes the row
// count the text drawing functions work in.
const fontRows = glyphHeight

// the color bit set by text pixels. text occupies the bits above the base
// image colors so it can be removed again by masking (see clearText)
const textColorBit = 0x40

var patterns = map[rune][patternHeight]string{
	'A': {" ### ", "#   #", "#   #", "#####", "#   #", "#   #", "#   #"},
	'B': {"#### ", "#   #", "#### ", "#   #", "#   #", "#   #", "#### "},
	'C': {" ### ", "#   #", "#    ", "#    ", "#    ", "#   #", " ### "},
	'D': {"#### ", "#   #", "#   #", "#   #", "#   #", "#   #", "#### "},
	'E': {"#####", "#    ", "#### ", "#    ", "#    ", "#    ", "#####"},
	'F': {"#####", "#    ", "#### ", "#    ", "#    ", "#    ", "#    "},
	'G': {" ### ", "#   #", "#    ", "# ###", "#   #", "#   #", " ### "},
	'H': {"#   #", "#   #", "#####", "#   #", "#   #", "#   #", "#   #"},
	'I': {"#####", "  #  ", "  #  ", "  #  ", "  #  ", "  #  ", "#####"},
	'J': {"    #", "    #", "    #", "    #", "#   #", "#   #", " ### "},
	'K': {"#   #", "#  # ", "###  ", "#  # ", "#   #", "#   #", "#   #"},
	'L': {"#    ", "#    ", "#    ", "#    ", "#    ", "#    ", "#####"},
	'M': {"#   #", "## ##", "# # #", "#   #", "#   #", "#   #", "#   #"},
	'N': {"#   #", "##  #", "# # #", "#  ##", "#   #", "#   #", "#   #"},
	'O': {" ### ", "#   #", "#   #", "#   #", "#   #", "#   #", " ### "},
	'P': {"#### ", "#   #", "#   #", "#### ", "#    ", "#    ", "#    "},
	'Q': {" ### ", "#   #", "#   #", "#   #", "# # #", "#  # ", " ## #"},
	'R': {"#### ", "#   #", "#   #", "#### ", "#  # ", "#   #", "#   #"},
	'S': {" ####", "#    ", " ### ", "    #", "    #", "#   #", " ### "},
	'T': {"#####", "  #  ", "  #  ", "  #  ", "  #  ", "  #  ", "  #  "},
	'U': {"#   #", "#   #", "#   #", "#   #", "#   #", "#   #", " ### "},
	'V': {"#   #", "#   #", "#   #", "#   #", "#   #", " # # ", "  #  "},
	'W': {"#   #", "#   #", "#   #", "#   #", "# # #", "## ##", "#   #"},
	'X': {"#   #", "#   #", " # # ", "  #  ", " # # ", "#   #", "#   #"},
	'Y': {"#   #", "#   #", " # # ", "  #  ", "  #  ", "  #  ", "  #  "},
	'Z': {"#####", "    #", "   # ", "  #  ", " #   ", "#    ", "#####"},
	'0': {" ### ", "#   #", "#  ##", "# # #", "##  #", "#   #", " ### "},
	'1': {"  #  ", " ##  ", "  #  ", "  #  ", "  #  ", "  #  ", "#####"},
	'2': {" ### ", "#   #", "    #", "   # ", "  #  ", " #   ", "#####"},
	'3': {" ### ", "#   #", "    #", "  ## ", "    #", "#   #", " ### "},
	'4': {"   # ", "  ## ", " # # ", "#  # ", "#####", "   # ", "   # "},
	'5': {"#####", "#    ", "#### ", "    #", "    #", "#   #", " ### "},
	'6': {" ### ", "#    ", "#### ", "#   #", "#   #", "#   #", " ### "},
	'7': {"#####", "    #", "   # ", "  #  ", " #   ", " #   ", " #   "},
	'8': {" ### ", "#   #", " ### ", "#   #", "#   #", "#   #", " ### "},
	'9': {" ### ", "#   #", "#   #", " ####", "    #", "    #", " ### "},
	'.': {"     ", "     ", "     ", "     ", "     ", " ##  ", " ##  "},
	'!': {"  #  ", "  #  ", "  #  ", "  #  ", "  #  ", "     ", "  #  "},
	'-': {"     ", "     ", "     ", "#####", "     ", "     ", "     "},
	'\'': {"  #  ", "  #  ", " #   ", "     ", "     ", "     ", "     "},
}

// glyph is one renderable character.
type glyph struct {
	width int
	bits  [glyphHeight][glyphWidth]bool
}

// buildGlyphs expands the pattern table into renderable glyphs. Lower case
// letters reuse the upper case patterns, like the original font did.
func buildGlyphs() map[rune]glyph {
	glyphs := make(map[rune]glyph, len(patterns))
	for r, pat := range patterns {
		var g glyph
		g.width = glyphWidth
		for y := 0; y < patternHeight; y++ {
			for x := 0; x < patternWidth && x < len(pat[y]); x++ {
				if pat[y][x] != ' ' {
					g.bits[y*2][x*2] = true
					g.bits[y*2][x*2+1] = true
					g.bits[y*2+1][x*2] = true
					g.bits[y*2+1][x*2+1] = true
				}
			}
		}
		glyphs[r] = g
	}
	return glyphs
}

// spacing between characters in pixels.
const charSpacing = 2

// width of a space character.
const spaceWidth = glyphWidth / 2

// lookup a glyph, folding lower case onto the upper case patterns.
func (prt *Opening) lookupGlyph(r rune) (glyph, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	g, ok := prt.glyphs[r]
	return g, ok
}

// textWidth returns the pixel width of a string in the part's font.
func (prt *Opening) textWidth(text string) int {
	w := 0
	for _, r := range text {
		if r == ' ' {
			w += spaceWidth + charSpacing
			continue
		}
		if g, ok := prt.lookupGlyph(r); ok {
			w += g.width + charSpacing
		}
	}
	return w
}

// printText draws a string into the framebuffer with the left edge at x.
// Text pixels OR the text color bit onto whatever is already there, which
// is what lets clearText() remove them again without disturbing the image
// underneath.
func (prt *Opening) printText(x int, y int, text string) {
	fb := prt.env.Video.Framebuffer()

	for _, r := range text {
		if r == ' ' {
			x += spaceWidth + charSpacing
			continue
		}
		g, ok := prt.lookupGlyph(r)
		if !ok {
			continue
		}

		for gy := 0; gy < glyphHeight; gy++ {
			for gx := 0; gx < g.width; gx++ {
				if !g.bits[gy][gx] {
					continue
				}
				dstX := x + gx
				dstY := y + gy
				if dstX < 0 || dstX >= screenWidth || dstY < 0 || dstY >= screenHeight {
					continue
				}
				fb[dstY*screenWidth+dstX] |= textColorBit
			}
		}
		x += g.width + charSpacing
	}
}

// printCentred draws a string centred on x.
func (prt *Opening) printCentred(x int, y int, text string) {
	prt.printText(x-prt.textWidth(text)/2, y, text)
}

// clearText removes all text from the framebuffer by masking off the text
// color bit, leaving the base image intact.
func (prt *Opening) clearText() {
	fb := prt.env.Video.Framebuffer()
	for i := range fb {
		fb[i] &= textColorBit - 1
	}
}
