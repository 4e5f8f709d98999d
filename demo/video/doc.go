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

// Package video emulates the VGA display path of the original demo: a 256
// color indexed framebuffer, a 6 bit palette, and the Mode 13h / Mode X pair
// of display modes. Parts draw by writing palette indices into the
// framebuffer and by mutating the palette; nothing is converted until
// Present() is called, once per host frame.
//
// The display start offset and fine horizontal scroll emulate the VGA
// hardware's page flipping and panning registers. Like the real registers
// they take effect at presentation, not when set.
//
// The conversion to true color goes through a 256 entry lookup table that is
// rebuilt lazily: palette mutations only mark the table dirty, so a part
// that sets hundreds of colors per frame pays for one rebuild.
package video
