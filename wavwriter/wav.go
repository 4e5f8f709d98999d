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

// Package wavwriter records the soundtrack to disk as a WAV file. It
// implements the sdlaudio tap so it hears exactly what is queued to the
// sound device. Note that audio data is buffered in memory in its entirety
// and written to disk on program end.
package wavwriter

import (
	"os"

	"github.com/jetsetilly/gopherreality/curated"
	"github.com/jetsetilly/gopherreality/logger"
	"github.com/youpy/go-wav"
)

// WavWriter implements the sdlaudio.Tap interface.
type WavWriter struct {
	filename    string
	sampleRate  int
	numChannels int
	buffer      []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type. The
// sample rate and channel count must match the audio that will arrive
// through SetAudio().
func New(filename string, sampleRate int, numChannels int) (*WavWriter, error) {
	if numChannels < 1 || numChannels > 2 {
		return nil, curated.Errorf("wavwriter: unsupported channel count [%d]", numChannels)
	}

	aw := &WavWriter{
		filename:    filename,
		sampleRate:  sampleRate,
		numChannels: numChannels,
		buffer:      make([]wav.Sample, 0),
	}

	return aw, nil
}

// SetAudio implements the sdlaudio.Tap interface. Samples are interleaved
// when the writer was created with two channels.
func (aw *WavWriter) SetAudio(samples []int16) error {
	if aw.numChannels == 1 {
		for _, s := range samples {
			w := wav.Sample{}
			w.Values[0] = int(s)
			w.Values[1] = int(s)
			aw.buffer = append(aw.buffer, w)
		}
		return nil
	}

	for i := 0; i < len(samples)-1; i += 2 {
		w := wav.Sample{}
		w.Values[0] = int(samples[i])
		w.Values[1] = int(samples[i+1])
		aw.buffer = append(aw.buffer, w)
	}

	return nil
}

// EndMixing implements the sdlaudio.Tap interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), uint16(aw.numChannels), uint32(aw.sampleRate), 16)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf("wavwriter", "writing audio to %s", aw.filename)
	err = enc.WriteSamples(aw.buffer)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
