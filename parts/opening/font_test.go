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

import (
	"testing"

	"github.com/jetsetilly/gopherreality/demo/part"
	"github.com/jetsetilly/gopherreality/demo/video"
	"github.com/jetsetilly/gopherreality/test"
)

func newTestOpening() *Opening {
	return &Opening{
		env:    &part.Environment{Video: video.NewVideo()},
		glyphs: buildGlyphs(),
	}
}

func TestTextCompositing(t *testing.T) {
	prt := newTestOpening()
	fb := prt.env.Video.Framebuffer()

	// text pixels OR the text bit onto the underlying image
	fb[0*screenWidth+0] = 7
	prt.printText(0, 0, "I")

	// the I glyph has a pixel in its top left corner
	test.Equate(t, fb[0], 7|textColorBit)

	// clearing text restores the underlying image exactly
	prt.clearText()
	test.Equate(t, fb[0], 7)
	for i := range fb {
		test.Equate(t, int(fb[i])&textColorBit, 0)
	}
}

func TestTextWidth(t *testing.T) {
	prt := newTestOpening()

	test.Equate(t, prt.textWidth(""), 0)

	// lower case folds onto the upper case glyphs
	test.Equate(t, prt.textWidth("abc"), prt.textWidth("ABC"))

	// unknown runes take no space
	test.Equate(t, prt.textWidth("A#A"), prt.textWidth("AA"))

	w := prt.textWidth("M")
	test.Equate(t, w, glyphWidth+charSpacing)
}

func TestTextClipping(t *testing.T) {
	prt := newTestOpening()

	// drawing off the edges of the framebuffer must not panic or wrap
	prt.printText(-5, -5, "AB")
	prt.printText(screenWidth-3, screenHeight-3, "AB")
	prt.printCentred(0, 0, "WIDE CAPTION")

	fb := prt.env.Video.Framebuffer()
	for y := 0; y < screenHeight; y++ {
		// a pixel drawn off the right edge must not appear at the left
		if fb[y*screenWidth]&textColorBit != 0 && y >= glyphHeight {
			t.Errorf("text wrapped around the framebuffer edge at row %d", y)
		}
	}
}
