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

package music

import (
	"testing"

	"github.com/go-audio/audio"
	"github.com/jetsetilly/gopherreality/test"
)

func TestNormalise16(t *testing.T) {
	// 16bit samples pass through unchanged
	buf := &audio.IntBuffer{Data: []int{0, 32767, -32768}}
	data := normalise16(buf, 16)
	test.Equate(t, len(data), 3)
	test.Equate(t, data[1], int16(32767))
	test.Equate(t, data[2], int16(-32768))

	// 24bit samples are shifted down
	buf = &audio.IntBuffer{Data: []int{0x7fffff, -0x800000}}
	data = normalise16(buf, 24)
	test.Equate(t, data[0], int16(0x7fff))
	test.Equate(t, data[1], int16(-0x8000))

	// 8bit samples are shifted up
	buf = &audio.IntBuffer{Data: []int{0x7f}}
	data = normalise16(buf, 8)
	test.Equate(t, data[0], int16(0x7f00))
}

func TestPCMStreamSplitRead(t *testing.T) {
	var pcm pcmStream
	var out []int16

	// two samples, the second split across the push boundary
	out = pcm.push([]byte{0x01, 0x02, 0x03}, out)
	out = pcm.push([]byte{0x04}, out)

	test.Equate(t, len(out), 2)
	test.Equate(t, out[0], int16(0x0201))
	test.Equate(t, out[1], int16(0x0403))

	// the carried byte must not survive once it has been consumed
	out = pcm.push([]byte{0x05, 0x06}, out)
	test.Equate(t, len(out), 3)
	test.Equate(t, out[2], int16(0x0605))
}

func TestPCMStreamOddChunks(t *testing.T) {
	var pcm pcmStream
	var out []int16

	// a run of single byte pushes still assembles whole samples
	for _, b := range []byte{0x0a, 0x0b, 0x0c, 0x0d} {
		out = pcm.push([]byte{b}, out)
	}

	test.Equate(t, len(out), 2)
	test.Equate(t, out[0], int16(0x0b0a))
	test.Equate(t, out[1], int16(0x0d0c))

	// empty pushes are a no-op
	out = pcm.push(nil, out)
	test.Equate(t, len(out), 2)
}
