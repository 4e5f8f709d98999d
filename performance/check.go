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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherreality/curated"
	"github.com/jetsetilly/gopherreality/demo"
	"github.com/jetsetilly/gopherreality/demo/limiter"
	"github.com/jetsetilly/gopherreality/parts"
)

// Check is a very rough and ready measurement of the demo's performance. The
// demo runs headless (no window, no soundtrack) from its first part for the
// specified duration, and the achieved frame rate is written to output.
//
// When uncapped is true the frame limiter is disabled and the demo runs as
// fast as the host allows; the sync ladders fall back to their frame
// thresholds so the sequence is still representative of a real run.
func Check(output io.Writer, profile bool, duration string, uncapped bool) error {
	dmo := demo.NewDemo(nil)

	for _, prt := range parts.All() {
		err := dmo.Loader.Register(prt)
		if err != nil {
			return err
		}
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	lmtr := limiter.NewLimiter(demo.NominalFPS)
	lmtr.SetActive(!uncapped)

	err = dmo.Loader.Start(0)
	if err != nil {
		return err
	}
	defer dmo.End()

	numFrames := 0

	runner := func() error {
		// setup trigger that expires when duration has elapsed
		timesUp := make(chan bool)

		// force a two second leadtime to allow the frame rate to settle down
		// and then restart the timer for the specified duration
		go func() {
			time.AfterFunc(2*time.Second, func() {
				numFrames = 0
				time.AfterFunc(dur, func() {
					timesUp <- true
				})
			})
		}()

		done := false
		for !done && dmo.IsRunning() {
			lmtr.Wait()

			err := dmo.Frame()
			if err != nil {
				return err
			}
			numFrames++

			select {
			case <-timesUp:
				done = true
			default:
			}
		}

		return nil
	}

	// launch runner directly or through the CPU profiler, depending on
	// supplied arguments
	if profile {
		err = ProfileCPU("performance.cpu.profile", runner)
	} else {
		err = runner()
	}
	if err != nil {
		return err
	}

	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))

	if profile {
		return ProfileMem("performance.mem.profile")
	}

	return nil
}
