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

// Package limiter paces the demo loop to a fixed frame rate when the host
// delivers frames unthrottled. Pacing is a convenience only; every sync
// decision in the demo is made from elapsed frame counts and must hold
// whether or not the limiter is active.
package limiter

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Limiter stalls the demo loop to a requested frame rate.
type Limiter struct {
	// whether Wait() actually waits
	active atomic.Value // bool

	// the requested and the measured rates
	requested atomic.Value // float32
	measured  atomic.Value // float32

	// channels
	sync    chan bool
	reqRate chan time.Duration

	// actual rate calculation
	measureCt      int
	measureCtTgt   int
	measureRefTime time.Time
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(fps float32) *Limiter {
	lmtr := &Limiter{
		sync:    make(chan bool),
		reqRate: make(chan time.Duration),
	}
	lmtr.active.Store(true)
	lmtr.requested.Store(float32(0))
	lmtr.measured.Store(float32(0))
	lmtr.measureRefTime = time.Now()

	go func() {
		// new ticker with an arbitrary value. it'll get changed soon enough
		tck := time.NewTicker(1)

		for {
			select {
			case <-tck.C:
				select {
				case lmtr.sync <- true:

				// listen for rate requests while signalling the sync
				// channel. without this the sync channel can deadlock
				// against SetRate()
				case d := <-lmtr.reqRate:
					tck.Stop()
					tck = time.NewTicker(d)
				}

			// also listen for rate requests here. a very long ticker
			// duration would otherwise delay the new rate taking effect
			case d := <-lmtr.reqRate:
				tck.Stop()
				tck = time.NewTicker(d)
			}
		}
	}()

	lmtr.SetRate(fps)

	return lmtr
}

// SetRate changes the frame rate the limiter stalls to. Zero and negative
// rates are ignored.
func (lmtr *Limiter) SetRate(fps float32) {
	if fps <= 0 {
		return
	}

	lmtr.requested.Store(fps)

	rate, _ := time.ParseDuration(fmt.Sprintf("%fs", 1.0/fps))
	lmtr.reqRate <- rate

	lmtr.measureCtTgt = int(fps) / 2
	lmtr.measureCt = 0
	lmtr.measureRefTime = time.Now()
}

// Requested returns the frame rate the limiter has been asked for.
func (lmtr *Limiter) Requested() float32 {
	return lmtr.requested.Load().(float32)
}

// SetActive turns the limiter on and off. When off, Wait() returns
// immediately and only the rate measurement remains.
func (lmtr *Limiter) SetActive(active bool) {
	lmtr.active.Store(active)
}

// Wait stalls until the next frame is due. Call once per frame; the measured
// rate is updated as a side effect.
func (lmtr *Limiter) Wait() {
	if lmtr.active.Load().(bool) {
		<-lmtr.sync
	}
	lmtr.measure()
}

// measure the rate actually being achieved. remeasured roughly every half
// second.
func (lmtr *Limiter) measure() {
	lmtr.measureCt++
	if lmtr.measureCt >= lmtr.measureCtTgt {
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureRefTime).Seconds())
		lmtr.measured.Store(m)

		if m > 1 {
			lmtr.measureCtTgt = int(m) / 2
		} else {
			lmtr.measureCtTgt = 1
		}

		lmtr.measureRefTime = t
		lmtr.measureCt = 0
	}
}

// Measured returns the frame rate actually being achieved.
func (lmtr *Limiter) Measured() float32 {
	return lmtr.measured.Load().(float32)
}
