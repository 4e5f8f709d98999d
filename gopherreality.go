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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopherreality/demo"
	"github.com/jetsetilly/gopherreality/demo/music"
	"github.com/jetsetilly/gopherreality/gui/sdlaudio"
	"github.com/jetsetilly/gopherreality/gui/sdlvideo"
	"github.com/jetsetilly/gopherreality/logger"
	"github.com/jetsetilly/gopherreality/modalflag"
	"github.com/jetsetilly/gopherreality/parts"
	"github.com/jetsetilly/gopherreality/performance"
	"github.com/jetsetilly/gopherreality/playmode"
	"github.com/jetsetilly/gopherreality/statsview"
	"github.com/jetsetilly/gopherreality/version"
	"github.com/jetsetilly/gopherreality/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the playmode package provides a mode
	// specific handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all).
	// It MUST ONLY be called as part of a larger loop from the main thread.
	// It should service all gui events that are not safe to do in
	// sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this
// is required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two
	// channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var scr GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if scr != nil {
				scr.Destroy(os.Stderr)
			}

			scr, err = creator()
			if err != nil {
				sync.creationError <- err
				scr = nil
			} else {
				sync.creation <- scr
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if scr != nil {
					scr.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			// service the gui if one has been created
			if scr != nil {
				scr.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "LIST", "PERFORMANCE", "VERSION")
	md.AddDefaultSubMode("RUN")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "PLAY":
		err = play(md, sync)

	case "LIST":
		err = list(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		vrs, rev, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, vrs, rev)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	musicFile := md.AddString("music", "", "soundtrack file (wav or mp3). empty runs the demo silent")
	mute := md.AddBool("mute", false, "run the demo silent")
	start := md.AddInt("start", 0, "part to start the demo from")
	single := md.AddBool("single", false, "end the demo when the starting part finishes")
	wav := md.AddString("wav", "", "record audio to wav file")
	fullScreen := md.AddBool("fullscreen", false, "start in fullscreen")
	scaling := md.AddFloat64("scale", 0.0, "window scaling")
	fpsCap := md.AddBool("fpscap", true, "cap frame rate to the demo's nominal rate")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	dump := md.AddString("dump", "", "write a visualisation of the demo's final state to file")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		return sdlvideo.NewWindow(float32(*scaling))
	}

	// wait for creator result
	var win *sdlvideo.Window
	select {
	case g := <-sync.creation:
		win = g.(*sdlvideo.Window)
	case err := <-sync.creationError:
		return err
	}

	// assemble the soundtrack. a missing or muted soundtrack is not an
	// error; the demo falls back to the frame thresholds of its sync ladders
	var ply *sdlaudio.Player
	if !*mute && *musicFile != "" {
		trk, err := music.Load(*musicFile)
		if err != nil {
			return err
		}

		ply, err = sdlaudio.NewPlayer(trk, music.DefaultTimeline())
		if err != nil {
			return err
		}

		if *wav != "" {
			aw, err := wavwriter.New(*wav, trk.SampleRate, trk.NumChannels)
			if err != nil {
				return err
			}
			ply.SetTap(aw)
		}
	} else {
		logger.Log("main", "running silent")
		if *wav != "" {
			fmt.Println("! no soundtrack to record, ignoring wav flag")
		}
	}

	var dmo *demo.Demo
	if ply != nil {
		dmo = demo.NewDemo(ply)
	} else {
		dmo = demo.NewDemo(nil)
	}
	dmo.Video.AddRenderer(win)

	// turn off fallback ctrl-c handling. this so that playmode can clean up
	// the running part and save preferences gracefully
	sync.state <- stateRequest{req: reqNoIntSig}

	if ply != nil {
		ply.Play()
	}

	err = playmode.Play(dmo, win, *fpsCap, *fullScreen, float32(*scaling), *start, *single, *dump)

	if ply != nil {
		merr := ply.EndMixing()
		if err == nil {
			err = merr
		}
	}

	return err
}

func list(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	for i, prt := range parts.All() {
		fmt.Fprintf(md.Output, "%2d: %s\n", i, prt.ID())
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")
	uncapped := md.AddBool("uncapped", false, "run the demo as fast as the host allows")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	return performance.Check(md.Output, *profile, *duration, *uncapped)
}
