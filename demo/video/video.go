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

package video

import (
	"github.com/jetsetilly/gopherreality/logger"
)

// Screen dimensions. The framebuffer is always sized for ModeX; Mode13h
// simply shows fewer rows of it.
const (
	Width     = 320
	Height13h = 200
	HeightX   = 400
)

// The two supported display modes.
const (
	Mode13h = iota
	ModeX
)

// size of the backing store in bytes
const fbSize = Width * HeightX

// size of the palette in bytes. 256 colors, 3 components each
const PaletteSize = 256 * 3

// Video owns the indexed framebuffer and the palette, and converts both into
// true color frames for whatever Renderer is attached.
//
// There is no locking. The framebuffer has exactly one legitimate writer at
// a time (the running part, or the part loader during a transition) and that
// discipline is enforced by the loader, not here.
type Video struct {
	fb      []byte
	palette []byte

	// index to packed RGBA lookup. rebuilt from the palette on demand
	lut   [256]uint32
	dirty bool

	// true color staging buffer handed to the renderer
	staging []uint32

	mode int

	// page flip offset and fine scroll. recorded immediately, applied at
	// present time
	displayStart int
	hscroll      int

	rnd Renderer

	// visible height last reported to the renderer with Resize()
	rndHeight int
}

// NewVideo is the preferred method of initialisation for the Video type.
// The initial state is Mode13h with the VGA grayscale ramp.
func NewVideo() *Video {
	vid := &Video{
		fb:      make([]byte, fbSize),
		palette: make([]byte, PaletteSize),
		staging: make([]uint32, fbSize),
		mode:    Mode13h,
	}

	// default grayscale palette
	for i := 0; i < 256; i++ {
		gray := byte(i >> 2)
		vid.palette[i*3] = gray
		vid.palette[i*3+1] = gray
		vid.palette[i*3+2] = gray
	}
	vid.dirty = true

	return vid
}

// SetMode selects the visible height. Values other than Mode13h and ModeX
// are logged and ignored, leaving the previous mode in effect.
func (vid *Video) SetMode(mode int) {
	if mode != Mode13h && mode != ModeX {
		logger.Logf("video", "ignoring invalid mode [%d]", mode)
		return
	}
	vid.mode = mode
}

// Mode returns the current display mode.
func (vid *Video) Mode() int {
	return vid.mode
}

// VisibleHeight returns the number of framebuffer rows the current mode
// shows.
func (vid *Video) VisibleHeight() int {
	if vid.mode == ModeX {
		return HeightX
	}
	return Height13h
}

// Framebuffer exposes the mutable backing store. Each byte is a palette
// index. The store is always Width*HeightX bytes whatever the mode.
func (vid *Video) Framebuffer() []byte {
	return vid.fb
}

// Clear fills the entire backing store with one color index.
func (vid *Video) Clear(color byte) {
	for i := range vid.fb {
		vid.fb[i] = color
	}
}

// clamp a palette component to the 6 bit range.
func clampComponent(v byte) byte {
	if v > 63 {
		return 63
	}
	return v
}

// SetPalette replaces the whole palette. Data beyond the palette size is
// truncated; short data leaves the remaining entries untouched. Components
// are clamped to the 6 bit range.
func (vid *Video) SetPalette(data []byte) {
	if len(data) > PaletteSize {
		data = data[:PaletteSize]
	}
	for i, v := range data {
		vid.palette[i] = clampComponent(v)
	}
	vid.dirty = true
}

// SetPaletteRange sets count palette entries starting at start. Ranges that
// overflow the palette are truncated at the palette end.
func (vid *Video) SetPaletteRange(start int, count int, data []byte) {
	if start < 0 || start >= 256 {
		logger.Logf("video", "ignoring palette range starting at [%d]", start)
		return
	}
	if start+count > 256 {
		count = 256 - start
	}
	if count*3 > len(data) {
		count = len(data) / 3
	}
	for i := 0; i < count*3; i++ {
		vid.palette[start*3+i] = clampComponent(data[i])
	}
	vid.dirty = true
}

// SetColor sets a single palette entry.
func (vid *Video) SetColor(index byte, r byte, g byte, b byte) {
	vid.palette[int(index)*3] = clampComponent(r)
	vid.palette[int(index)*3+1] = clampComponent(g)
	vid.palette[int(index)*3+2] = clampComponent(b)
	vid.dirty = true
}

// Palette returns a copy of the current palette.
func (vid *Video) Palette() []byte {
	pal := make([]byte, PaletteSize)
	copy(pal, vid.palette)
	return pal
}

// SetDisplayStart records the page flip offset: a linear byte offset into
// the backing store at which the visible window begins. Applied at present
// time.
func (vid *Video) SetDisplayStart(offset int) {
	if offset < 0 {
		offset = 0
	}
	vid.displayStart = offset % fbSize
}

// SetHScroll records the fine horizontal scroll value, masked to the range
// 0 to 7. Applied at present time.
func (vid *Video) SetHScroll(pixels int) {
	vid.hscroll = pixels & 0x07
}

// AddRenderer attaches the presentation sink. Present() is a no-op until a
// renderer has been attached.
func (vid *Video) AddRenderer(rnd Renderer) {
	vid.rnd = rnd
	vid.rndHeight = 0
}

// rebuild the index to RGBA lookup table. each 6 bit component is expanded
// to 8 bits by replicating the top bits into the low bits, so full intensity
// 63 maps to 255 rather than 252.
func (vid *Video) rebuildLut() {
	for i := 0; i < 256; i++ {
		r := vid.palette[i*3]
		g := vid.palette[i*3+1]
		b := vid.palette[i*3+2]
		r = (r << 2) | (r >> 4)
		g = (g << 2) | (g >> 4)
		b = (b << 2) | (b >> 4)
		vid.lut[i] = uint32(r) | uint32(g)<<8 | uint32(b)<<16 | 0xff000000
	}
	vid.dirty = false
}

// Present converts the visible window of the framebuffer to true color and
// hands it to the renderer. Call at most once per displayed frame.
//
// A no-op when no renderer is attached.
func (vid *Video) Present() error {
	if vid.rnd == nil {
		return nil
	}

	if vid.dirty {
		vid.rebuildLut()
	}

	height := vid.VisibleHeight()

	if height != vid.rndHeight {
		err := vid.rnd.Resize(Width, height)
		if err != nil {
			return err
		}
		vid.rndHeight = height
	}

	// map the visible window through the lookup table. the window starts at
	// the display offset plus the fine scroll and wraps at the end of the
	// backing store
	offset := vid.displayStart + vid.hscroll
	numPixels := Width * height
	for i := 0; i < numPixels; i++ {
		vid.staging[i] = vid.lut[vid.fb[(offset+i)%fbSize]]
	}

	return vid.rnd.NewFrame(vid.staging[:numPixels])
}
