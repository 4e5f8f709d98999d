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

// Package sdlvideo is the SDL implementation of the demo window: an OpenGL
// 3.2 core context, one streaming texture the size of the demo's visible
// frame, and a fullscreen triangle that draws it into a letterboxed
// viewport.
//
// SDL requires window handling to happen on the main OS thread so the demo
// loop never talks to this package directly. Frames arrive through the
// video.Renderer interface and are parked in a critical section; the
// Service() function, called from the application's main loop, does the GL
// upload, the draw and the buffer swap, and polls SDL events.
package sdlvideo
