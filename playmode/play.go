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

// Package playmode is the normal mode of the program: the demo plays in a
// window, paced to its nominal frame rate, until it finishes or the user
// quits. The play loop runs in its own goroutine; the window is serviced by
// the main thread (see the main package).
package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopherreality/curated"
	"github.com/jetsetilly/gopherreality/demo"
	"github.com/jetsetilly/gopherreality/demo/limiter"
	"github.com/jetsetilly/gopherreality/gui"
	"github.com/jetsetilly/gopherreality/logger"
	"github.com/jetsetilly/gopherreality/parts"
)

// Play runs the demo from the part at startPart until the part sequence
// ends, the user quits, or (when single is true) the starting part
// transitions away. A non-empty dump filename writes a visualisation of the
// demo machine's final state when playback ends.
//
// Window preferences (scale, fullscreen, frame rate cap) are loaded from
// disk; non-zero/true arguments override them and the overridden values are
// saved back on a clean exit.
func Play(dmo *demo.Demo, scr gui.GUI, fpsCap bool, fullScreen bool, scale float32, startPart int, single bool, dump string) error {
	prf, err := NewPreferences()
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// command line overrides of the stored preferences
	err = prf.FpsCap.Set(fpsCap)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	if scale > 0.0 {
		err = prf.Scale.Set(scale)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	}
	if fullScreen {
		err = prf.Fullscreen.Set(true)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	}

	// wire up the window. events flow back through the channel; the channel
	// is buffered and polled non-blocking so the main thread is never
	// stalled by the demo loop
	events := make(chan gui.Event, 8)
	err = scr.SetFeature(gui.ReqSetEventChan, events)
	if err != nil {
		return err
	}

	err = scr.SetFeature(gui.ReqSetScale, float32(prf.Scale.Get().(float64)))
	if err != nil {
		return err
	}

	if prf.Fullscreen.Get().(bool) {
		err = scr.SetFeature(gui.ReqFullScreen, true)
		if err != nil {
			return err
		}
	}

	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return err
	}

	// register the part sequence
	for _, prt := range parts.All() {
		err = dmo.Loader.Register(prt)
		if err != nil {
			return err
		}
	}

	// a single part run ends at the first transition away from the starting
	// part. the flag is checked in the play loop; the loader has already
	// moved on by then so the run ends with an End() rather than a Next()
	endOfRun := false
	if single {
		dmo.Loader.SetTransitionCallback(func(from int, to int) {
			if from != -1 {
				endOfRun = true
			}
		})
	}

	// handle ctrl-c ourselves so the part gets its Cleanup() and the
	// preferences get saved
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	lmtr := limiter.NewLimiter(demo.NominalFPS)
	lmtr.SetActive(prf.FpsCap.Get().(bool))

	err = dmo.Loader.Start(startPart)
	if err != nil {
		return err
	}

	// the play loop
	done := false
	for !done && dmo.IsRunning() {
		lmtr.Wait()

		err = dmo.Frame()
		if err != nil {
			return err
		}

		if endOfRun {
			break // for loop
		}

		select {
		case <-intChan:
			done = true

		case ev := <-events:
			switch ev.ID {
			case gui.EventQuit:
				done = true
			case gui.EventSkipPart:
				dmo.Dis.RequestExit()
			}

		default:
		}
	}

	logger.Logf("playmode", "%.2f fps", lmtr.Measured())

	if dump != "" {
		err = dumpState(dmo, dump)
		if err != nil {
			logger.Logf("playmode", "dump: %v", err)
		}
	}

	dmo.End()

	return prf.Save()
}

// dumpState writes the demo machine visualisation to the named file.
func dumpState(dmo *demo.Demo, filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("playmode: %v", err)
		}
	}()

	dmo.Dump(f)
	logger.Logf("playmode", "state dumped to %s", filename)

	return nil
}
