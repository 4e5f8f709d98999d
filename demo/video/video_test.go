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

package video_test

import (
	"testing"

	"github.com/jetsetilly/gopherreality/demo/video"
	"github.com/jetsetilly/gopherreality/test"
)

// stubRenderer records what the video pipeline presents.
type stubRenderer struct {
	width   int
	height  int
	resizes int
	pixels  []uint32
}

func (rnd *stubRenderer) Resize(width int, height int) error {
	rnd.width = width
	rnd.height = height
	rnd.resizes++
	return nil
}

func (rnd *stubRenderer) NewFrame(pixels []uint32) error {
	rnd.pixels = make([]uint32, len(pixels))
	copy(rnd.pixels, pixels)
	return nil
}

func TestPresentWithoutRenderer(t *testing.T) {
	vid := video.NewVideo()
	test.ExpectedSuccess(t, vid.Present())
}

func TestModeSelection(t *testing.T) {
	vid := video.NewVideo()
	test.Equate(t, vid.Mode(), video.Mode13h)
	test.Equate(t, vid.VisibleHeight(), video.Height13h)

	// invalid modes are ignored, not an error
	vid.SetMode(99)
	test.Equate(t, vid.Mode(), video.Mode13h)

	vid.SetMode(video.ModeX)
	test.Equate(t, vid.VisibleHeight(), video.HeightX)
}

func TestRendererResize(t *testing.T) {
	vid := video.NewVideo()
	rnd := &stubRenderer{}
	vid.AddRenderer(rnd)

	test.ExpectedSuccess(t, vid.Present())
	test.Equate(t, rnd.width, video.Width)
	test.Equate(t, rnd.height, video.Height13h)
	test.Equate(t, len(rnd.pixels), video.Width*video.Height13h)

	// a second present at the same height does not resize again
	test.ExpectedSuccess(t, vid.Present())
	test.Equate(t, rnd.resizes, 1)

	vid.SetMode(video.ModeX)
	test.ExpectedSuccess(t, vid.Present())
	test.Equate(t, rnd.resizes, 2)
	test.Equate(t, rnd.height, video.HeightX)
}

func TestPaletteLookup(t *testing.T) {
	vid := video.NewVideo()
	rnd := &stubRenderer{}
	vid.AddRenderer(rnd)

	vid.Clear(0)
	vid.SetColor(0, 0, 0, 0)

	// full intensity 63 must expand to an 8 bit 255, not 252
	vid.SetColor(1, 63, 0, 0)
	vid.Framebuffer()[0] = 1

	test.ExpectedSuccess(t, vid.Present())
	test.Equate(t, int(rnd.pixels[0]), 0xff0000ff)
	test.Equate(t, int(rnd.pixels[1]), 0xff000000)

	// components beyond the 6 bit range are clamped on the way in
	vid.SetColor(2, 100, 100, 100)
	vid.Framebuffer()[0] = 2
	test.ExpectedSuccess(t, vid.Present())
	test.Equate(t, int(rnd.pixels[0]), 0xffffffff)
}

func TestSetPaletteClamping(t *testing.T) {
	vid := video.NewVideo()

	data := make([]byte, video.PaletteSize)
	data[0] = 200
	data[1] = 63
	data[2] = 10
	vid.SetPalette(data)

	pal := vid.Palette()
	test.Equate(t, pal[0], 63)
	test.Equate(t, pal[1], 63)
	test.Equate(t, pal[2], 10)
}

func TestSetPaletteRange(t *testing.T) {
	vid := video.NewVideo()

	data := []byte{1, 2, 3, 4, 5, 6}
	vid.SetPaletteRange(10, 2, data)

	pal := vid.Palette()
	test.Equate(t, pal[30], 1)
	test.Equate(t, pal[31], 2)
	test.Equate(t, pal[32], 3)
	test.Equate(t, pal[33], 4)

	// ranges that overflow the palette are truncated, not an error
	vid.SetPaletteRange(255, 10, make([]byte, 30))
	vid.SetPaletteRange(-1, 2, data)
}

func TestDisplayWindow(t *testing.T) {
	vid := video.NewVideo()
	rnd := &stubRenderer{}
	vid.AddRenderer(rnd)

	vid.Clear(0)
	vid.SetColor(0, 0, 0, 0)
	vid.SetColor(5, 63, 63, 63)
	vid.Framebuffer()[10] = 5

	// the coarse offset and the fine scroll add together at present time
	vid.SetDisplayStart(8)
	vid.SetHScroll(2)
	test.ExpectedSuccess(t, vid.Present())
	test.Equate(t, int(rnd.pixels[0]), 0xffffffff)

	// the fine scroll is masked to the range 0 to 7
	vid.SetDisplayStart(2)
	vid.SetHScroll(8)
	test.ExpectedSuccess(t, vid.Present())
	test.Equate(t, int(rnd.pixels[8]), 0xffffffff)
}

func TestWindowWrap(t *testing.T) {
	vid := video.NewVideo()
	rnd := &stubRenderer{}
	vid.AddRenderer(rnd)

	vid.Clear(0)
	vid.SetColor(0, 0, 0, 0)
	vid.SetColor(5, 63, 63, 63)
	vid.Framebuffer()[0] = 5

	// a window that runs off the end of the backing store wraps to the top
	vid.SetDisplayStart(video.Width*video.HeightX - 1)
	test.ExpectedSuccess(t, vid.Present())
	test.Equate(t, int(rnd.pixels[1]), 0xffffffff)
}
