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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherreality/curated"
	"github.com/jetsetilly/gopherreality/test"
)

const testPattern = "test error: %s"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "detail")
	test.ExpectedSuccess(t, curated.Is(e, testPattern))
	test.ExpectedFailure(t, curated.Is(e, "some other pattern"))
	test.ExpectedFailure(t, curated.Is(errors.New("uncurated"), testPattern))
	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedFailure(t, curated.IsAny(errors.New("uncurated")))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, "detail")
	f := curated.Errorf("wrapping: %v", e)

	test.ExpectedSuccess(t, curated.Has(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(f, "wrapping: %v"))
	test.ExpectedFailure(t, curated.Is(f, testPattern))
}

func TestNormalisation(t *testing.T) {
	// adjacent duplicate parts should be removed when the error message is
	// formatted
	e := curated.Errorf("video: %v", curated.Errorf("video: %v", errors.New("not initialised")))
	test.Equate(t, e.Error(), "video: not initialised")
}
