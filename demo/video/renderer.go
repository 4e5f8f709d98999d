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

// Renderer implementations present the true color frames produced by the
// Video type. The gui/sdlvideo package provides the real one; tests and the
// performance package run without any.
type Renderer interface {
	// Resize is called before the first NewFrame() and whenever the visible
	// height changes (a part switching between Mode13h and ModeX).
	Resize(width int, height int) error

	// NewFrame receives one frame of packed RGBA pixels (red in the low
	// byte), width*height long, row major. The slice is reused by the
	// caller; implementations must copy what they need.
	NewFrame(pixels []uint32) error
}
