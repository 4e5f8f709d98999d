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

// Package gui defines the contract between the demo and the window it plays
// in. The real implementation is the gui/sdlvideo package; the demo loop
// only ever sees the GUI interface and the event channel.
package gui

// GUI defines the operations that can be performed on the demo window.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// Return current state of a GUI feature.
	GetFeature(request FeatureReq) (FeatureReqData, error)
}

// Sentinal errors.
const (
	UnsupportedGuiFeature = "unsupported gui feature: %v"
)
