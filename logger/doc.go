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

// Package logger is the central log for the application. There is only one
// log and it can be accessed through the package level functions Log() and
// Logf().
//
// Log entries are made up of a tag and a detail string. The tag is a short
// name for the sub-system the entry originates from ("dis", "video", "sdl",
// etc.) and the detail is the message itself. Repeated entries are not
// stored; instead a repeat count on the most recent entry is increased.
//
// The contents of the log can be written to an io.Writer with the Write()
// and Tail() functions. Entries can also be echoed to an io.Writer as they
// arrive with SetEcho(), which is useful when the application is run from
// the command line with the log visible.
package logger
