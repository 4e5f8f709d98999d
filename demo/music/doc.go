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

// Package music defines the soundtrack surface of the demo. The original
// demo played its S3M module through a tracker player and the sync server
// asked the player where it was. We play a PCM rendition of the soundtrack
// (see the Track type) and recreate tracker coordinates with the Timeline
// type.
//
// The Tracker interface is the part of this that the rest of the demo sees.
// The real implementation is in the gui/sdlaudio package. The Nop type is the
// Tracker for music-less runs.
package music
