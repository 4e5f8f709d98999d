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

package logger

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherreality/test"
)

func TestCentral(t *testing.T) {
	Clear()

	b := &strings.Builder{}

	// no entries yet so nothing should be written
	test.ExpectedFailure(t, Write(b))
	test.Equate(t, b.String(), "")

	Log("test", "this is a test")
	test.ExpectedSuccess(t, Write(b))
	test.Equate(t, b.String(), "test: this is a test\n")

	b.Reset()
	Logf("test", "this is test %d", 2)
	Tail(b, 1)
	test.Equate(t, b.String(), "test: this is test 2\n")
}

func TestRepeats(t *testing.T) {
	Clear()

	// the same entry logged twice should appear once with a repeat count
	Log("test", "same entry")
	Log("test", "same entry")

	b := &strings.Builder{}
	test.ExpectedSuccess(t, Write(b))
	test.Equate(t, b.String(), "test: same entry (repeat x2)\n")
}

func TestNewlineRemoval(t *testing.T) {
	Clear()

	Log("test", "multi\nline\nentry")

	b := &strings.Builder{}
	test.ExpectedSuccess(t, Write(b))
	test.Equate(t, b.String(), "test: multilineentry\n")
}
