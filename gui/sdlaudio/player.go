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

package sdlaudio

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopherreality/curated"
	"github.com/jetsetilly/gopherreality/demo/music"
	"github.com/jetsetilly/gopherreality/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// how much audio to keep in the device queue. short enough that pausing
// feels immediate, long enough that a slow frame doesn't starve the device.
const queueTarget = 250 * time.Millisecond

// how often the pump goroutine tops up the queue.
const pumpInterval = 10 * time.Millisecond

// Tap receives a copy of every chunk of samples queued to the sound device.
// The wavwriter package implements this to record the soundtrack to disk.
type Tap interface {
	SetAudio(samples []int16) error
	EndMixing() error
}

// Player plays a decoded music.Track through an SDL audio device. A pump
// goroutine keeps the device queue topped up and publishes the playback
// position through atomic values, which is what makes Player a valid
// music.Tracker for the dis package: the position functions are safe to
// call from the demo goroutine at any time.
//
// The position the demo sees is the position of the samples being heard,
// not the samples most recently queued. The two are reconciled by
// subtracting the length of the device queue from the amount queued so far.
type Player struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	trk *music.Track
	tml music.Timeline

	tap Tap

	// playback position in seconds. published by the pump goroutine, read
	// by the demo goroutine. stored as float64 bits
	position uint64

	// non-zero while playing. flips to zero when the track has been heard
	// to the end or Stop() is called, and stays there
	playing int32

	// pump goroutine control
	quit    chan bool
	pumpEnd sync.WaitGroup

	// next sample to be queued. pump goroutine only
	dataOff int

	// staging buffer for int16 to byte conversion. pump goroutine only
	staging []byte
}

// NewPlayer is the preferred method of initialisation for the Player type.
// The sound device is opened with the track's sample rate and channel
// count; playback does not begin until Play() is called.
func NewPlayer(trk *music.Track, tml music.Timeline) (*Player, error) {
	ply := &Player{
		trk:  trk,
		tml:  tml,
		quit: make(chan bool),
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(trk.SampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: uint8(trk.NumChannels),
		Samples:  2048,
	}

	var err error
	var actualSpec sdl.AudioSpec
	ply.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}
	ply.spec = actualSpec

	logger.Logf("sdlaudio", "device opened: %dHz, %d channels", ply.spec.Freq, ply.spec.Channels)

	return ply, nil
}

// SetTap attaches a Tap. Must be called before Play().
func (ply *Player) SetTap(tap Tap) {
	ply.tap = tap
}

// Play starts (or resumes) playback.
func (ply *Player) Play() {
	if atomic.LoadInt32(&ply.playing) == 1 {
		return
	}

	sdl.PauseAudioDevice(ply.id, false)
	atomic.StoreInt32(&ply.playing, 1)

	ply.pumpEnd.Add(1)
	go ply.pump()
}

// pump keeps the device queue topped up and publishes the playback
// position. Ends by itself once the whole track has been queued and heard.
func (ply *Player) pump() {
	defer ply.pumpEnd.Done()

	bytesPerSample := 2
	bytesPerSecond := ply.trk.SampleRate * ply.trk.NumChannels * bytesPerSample
	targetBytes := uint32(float64(bytesPerSecond) * queueTarget.Seconds())

	tck := time.NewTicker(pumpInterval)
	defer tck.Stop()

	for {
		queued := sdl.GetQueuedAudioSize(ply.id)

		// top up the queue
		for queued < targetBytes && ply.dataOff < len(ply.trk.Data) {
			end := ply.dataOff + int(targetBytes)/bytesPerSample
			if end > len(ply.trk.Data) {
				end = len(ply.trk.Data)
			}
			chunk := ply.trk.Data[ply.dataOff:end]

			if cap(ply.staging) < len(chunk)*bytesPerSample {
				ply.staging = make([]byte, len(chunk)*bytesPerSample)
			}
			ply.staging = ply.staging[:len(chunk)*bytesPerSample]
			for i, s := range chunk {
				ply.staging[i*2] = byte(s)
				ply.staging[i*2+1] = byte(uint16(s) >> 8)
			}

			err := sdl.QueueAudio(ply.id, ply.staging)
			if err != nil {
				logger.Logf("sdlaudio", "queue: %v", err)
			}

			if ply.tap != nil {
				err = ply.tap.SetAudio(chunk)
				if err != nil {
					logger.Logf("sdlaudio", "tap: %v", err)
				}
			}

			ply.dataOff = end
			queued = sdl.GetQueuedAudioSize(ply.id)
		}

		// the samples being heard are the samples queued so far less those
		// still waiting in the device queue
		heard := ply.dataOff - int(queued)/bytesPerSample
		if heard < 0 {
			heard = 0
		}
		seconds := float64(heard) / float64(ply.trk.NumChannels) / float64(ply.trk.SampleRate)
		atomic.StoreUint64(&ply.position, math.Float64bits(seconds))

		// the track has ended when everything has been queued and the
		// device queue has drained. IsPlaying is false from now on; sync
		// decisions fall through to the frame clock
		if ply.dataOff >= len(ply.trk.Data) && queued == 0 {
			atomic.StoreInt32(&ply.playing, 0)
			logger.Log("sdlaudio", "end of track")
			return
		}

		select {
		case <-ply.quit:
			return
		case <-tck.C:
		}
	}
}

// Pause playback. Queued audio is retained; Play() resumes.
func (ply *Player) Pause() {
	if atomic.CompareAndSwapInt32(&ply.playing, 1, 0) {
		close(ply.quit)
		ply.pumpEnd.Wait()
		ply.quit = make(chan bool)
	}
	sdl.PauseAudioDevice(ply.id, true)
}

// EndMixing stops playback, closes the sound device and finalises the tap.
func (ply *Player) EndMixing() error {
	ply.Pause()
	sdl.CloseAudioDevice(ply.id)

	if ply.tap != nil {
		return ply.tap.EndMixing()
	}

	return nil
}

// IsPlaying implements the music.Tracker interface.
func (ply *Player) IsPlaying() bool {
	return atomic.LoadInt32(&ply.playing) == 1
}

// PositionSeconds implements the music.Tracker interface.
func (ply *Player) PositionSeconds() float64 {
	return math.Float64frombits(atomic.LoadUint64(&ply.position))
}

// CurrentOrder implements the music.Tracker interface.
func (ply *Player) CurrentOrder() int {
	order, _ := ply.tml.Position(ply.PositionSeconds())
	return order
}

// CurrentRow implements the music.Tracker interface.
func (ply *Player) CurrentRow() int {
	_, row := ply.tml.Position(ply.PositionSeconds())
	return row
}
