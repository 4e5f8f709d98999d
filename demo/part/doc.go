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

// Package part sequences the scenes of the demo. Each scene is a Part: a
// name plus the four lifecycle functions init, update, render and cleanup.
// The Loader holds the registry of parts in playback order and runs the
// state machine over them.
//
// The original demo drove its parts from a script file; here the registry
// is built in code (see the parts package) but the lifecycle is the same:
// every frame the running part is updated with the elapsed frame count and
// rendered, and when it signals completion the loader cleans it up, resets
// the sync server and the video state, and initialises the next part. The
// four message areas of the sync server are the only state that crosses
// that boundary.
package part
