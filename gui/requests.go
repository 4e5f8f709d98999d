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

// FeatureReq is used to request the setting of a window attribute, for
// example toggling fullscreen.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq.
// See commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// List of valid feature requests. The argument must be of the type specified
// or the interface{} type conversion in the implementation will fail.
//
// Like the name suggests these are requests. They may or may not be
// satisfied depending on conditions in the GUI.
const (
	// make the window visible. sdlvideo windows start hidden so they can be
	// sized before first being shown.
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// set the window to fullscreen or windowed.
	ReqFullScreen FeatureReq = "ReqFullScreen" // bool

	// scale of the window relative to the demo's visible resolution.
	// ignored while fullscreen.
	ReqSetScale FeatureReq = "ReqSetScale" // float32

	// instruct the event loop to forward events to the registered channel.
	// the channel is the argument.
	ReqSetEventChan FeatureReq = "ReqSetEventChan" // chan Event
)
