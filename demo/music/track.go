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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopherreality/curated"
	"github.com/jetsetilly/gopherreality/logger"
)

// Track is a fully decoded PCM rendition of the soundtrack. Samples are
// signed 16bit and interleaved when NumChannels is greater than one.
type Track struct {
	Filename    string
	SampleRate  int
	NumChannels int
	Data        []int16
}

// Duration of the track in seconds.
func (trk *Track) Duration() float64 {
	if trk.SampleRate == 0 || trk.NumChannels == 0 {
		return 0
	}
	return float64(len(trk.Data)) / float64(trk.NumChannels) / float64(trk.SampleRate)
}

// normalise16 converts a decoded PCM buffer of any source bit depth to
// signed 16bit samples.
func normalise16(buf *audio.IntBuffer, bitDepth int) []int16 {
	shift := bitDepth - 16
	data := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		if shift > 0 {
			v >>= shift
		} else if shift < 0 {
			v <<= -shift
		}
		data[i] = int16(v)
	}
	return data
}

// pcmStream assembles little endian 16bit samples from a byte stream. a
// sample split across two reads is carried over to the next push.
type pcmStream struct {
	carry    byte
	hasCarry bool
}

func (pcm *pcmStream) push(data []byte, out []int16) []int16 {
	if pcm.hasCarry && len(data) > 0 {
		out = append(out, int16(uint16(pcm.carry)|(uint16(data[0])<<8)))
		data = data[1:]
		pcm.hasCarry = false
	}

	for len(data) >= 2 {
		out = append(out, int16(uint16(data[0])|(uint16(data[1])<<8)))
		data = data[2:]
	}

	if len(data) == 1 {
		pcm.carry = data[0]
		pcm.hasCarry = true
	}

	return out
}

// Load a soundtrack from a WAV or MP3 file. The decoder is chosen by file
// extension.
func Load(filename string) (*Track, error) {
	trk := &Track{
		Filename: filename,
		Data:     make([]int16, 0),
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("music: %v", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		dec := wav.NewDecoder(f)
		if dec == nil {
			return nil, curated.Errorf("music: %v", "error decoding wav file")
		}

		if !dec.IsValidFile() {
			return nil, curated.Errorf("music: %v", "not a valid wav file")
		}

		logger.Log("music", "loading from wav file")

		// load all data at once
		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return nil, curated.Errorf("music: wav: %v", err)
		}

		trk.SampleRate = int(dec.SampleRate)
		trk.NumChannels = int(dec.NumChans)
		trk.Data = normalise16(buf, int(dec.BitDepth))

	case ".mp3":
		dec, err := mp3.NewDecoder(f)
		if err != nil {
			return nil, curated.Errorf("music: mp3: %v", err)
		}

		logger.Log("music", "loading from mp3 file")

		// the go-mp3 decoder always produces 16bit (little endian) samples
		// over 2 channels whatever the format of the source file
		trk.SampleRate = dec.SampleRate()
		trk.NumChannels = 2

		err = nil
		var pcm pcmStream
		chunk := make([]byte, 4096)
		for err != io.EOF {
			var chunkLen int
			chunkLen, err = dec.Read(chunk)
			if err != nil && err != io.EOF {
				return nil, curated.Errorf("music: mp3: %v", err)
			}

			trk.Data = pcm.push(chunk[:chunkLen], trk.Data)
		}

	default:
		return nil, curated.Errorf("music: unsupported file type [%s]", filepath.Ext(filename))
	}

	logger.Logf("music", "%s: %0.1fs at %dHz (%d channels)",
		filepath.Base(filename), trk.Duration(), trk.SampleRate, trk.NumChannels)

	return trk, nil
}
