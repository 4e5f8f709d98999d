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

package gui

// EventID idenitifies the type of event being sent over the event channel.
type EventID int

// List of valid EventID values.
const (
	// the window has been closed or the host has asked the process to end.
	// the demo loop should end immediately.
	EventQuit EventID = iota

	// the user has asked to skip the current part (ESC). forwarded to the
	// demo as a sticky exit request; the running part ends itself when it
	// next polls the flag.
	EventSkipPart
)

// Event is the structure passed over the event channel.
type Event struct {
	ID EventID
}
