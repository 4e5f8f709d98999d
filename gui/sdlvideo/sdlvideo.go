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

package sdlvideo

import (
	"io"
	"runtime"
	"sync"

	"github.com/jetsetilly/gopherreality/curated"
	"github.com/jetsetilly/gopherreality/gui"
	"github.com/jetsetilly/gopherreality/logger"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "Second Reality"

// pixels are doubled by default so a mode 13h window is a sensible size on a
// modern desktop. the prefs scale is applied on top of this.
const pixelScale = 2

// Window is the SDL window the demo plays in. It implements the gui.GUI
// interface for the host application and the video.Renderer interface for
// the demo's video pipeline.
//
// Creation, destruction and the Service() function must happen on the main
// OS thread. NewFrame() and Resize() are called from the demo goroutine and
// only ever touch the critical section; the GL work they imply is deferred
// to the next Service() call.
type Window struct {
	window    *sdl.Window
	glContext sdl.GLContext

	rnd *glRenderer

	crit struct {
		section sync.Mutex

		// the most recent frame from the video pipeline and its dimensions
		pixels []uint32
		width  int
		height int

		// whether the texture needs recreating/updating on the next service
		resize bool
		update bool

		// pending feature requests, applied on the next service
		visibility  *bool
		fullscreen  *bool
		scale       *float32
		eventChan   chan gui.Event
		hasNewScale bool
	}

	// current window state. main thread only
	fullscreen bool
	scale      float32

	// events are forwarded to this channel. nil means events are dropped
	events chan gui.Event
}

// NewWindow is the preferred method of initialisation for the Window type.
// Must be called from the main OS thread.
func NewWindow(scale float32) (*Window, error) {
	// the sdl package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, curated.Errorf("sdlvideo: %v", err)
	}

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	if err != nil {
		return nil, curated.Errorf("sdlvideo: %v", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	if err != nil {
		return nil, curated.Errorf("sdlvideo: %v", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	if err != nil {
		return nil, curated.Errorf("sdlvideo: %v", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	if err != nil {
		return nil, curated.Errorf("sdlvideo: %v", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf("sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	win := &Window{
		scale: scale,
	}

	if win.scale <= 0 {
		win.scale = 1.0
	}

	// window is created hidden. visibility is requested once everything is
	// wired up (ReqSetVisibility)
	winW := int32(320 * pixelScale * win.scale)
	winH := int32(200 * pixelScale * win.scale)
	win.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		winW, winH,
		uint32(sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE|sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlvideo: %v", err)
	}

	win.glContext, err = win.window.GLCreateContext()
	if err != nil {
		return nil, curated.Errorf("sdlvideo: %v", err)
	}
	err = win.window.GLMakeCurrent(win.glContext)
	if err != nil {
		return nil, curated.Errorf("sdlvideo: %v", err)
	}

	// frame pacing is the demo loop's responsibility. rendering never waits
	// for the monitor
	err = sdl.GLSetSwapInterval(0)
	if err != nil {
		logger.Logf("sdl", "cannot set swap interval: %v", err)
	}

	win.rnd, err = newGlRenderer()
	if err != nil {
		return nil, err
	}

	return win, nil
}

// Destroy implements the GuiCreator interface. Must be called from the main
// OS thread.
func (win *Window) Destroy(output io.Writer) {
	win.rnd.destroy()
	sdl.GLDeleteContext(win.glContext)

	err := win.window.Destroy()
	if err != nil {
		io.WriteString(output, err.Error())
	}
}

// Resize implements the video.Renderer interface. Called from the demo
// goroutine when the visible height changes.
func (win *Window) Resize(width int, height int) error {
	win.crit.section.Lock()
	defer win.crit.section.Unlock()

	win.crit.width = width
	win.crit.height = height
	win.crit.pixels = make([]uint32, width*height)
	win.crit.resize = true

	return nil
}

// NewFrame implements the video.Renderer interface. Called from the demo
// goroutine once per frame. The pixels are copied; the GL upload happens on
// the next Service().
func (win *Window) NewFrame(pixels []uint32) error {
	win.crit.section.Lock()
	defer win.crit.section.Unlock()

	if len(pixels) != len(win.crit.pixels) {
		return curated.Errorf("sdlvideo: unexpected frame size [%d pixels]", len(pixels))
	}

	copy(win.crit.pixels, pixels)
	win.crit.update = true

	return nil
}

// Service the window: apply pending feature requests, poll and forward
// events, and present the most recent frame. Must only be called from the
// main OS thread, as part of the application's main loop. Does not block.
func (win *Window) Service() {
	win.serviceFeatures()

	// event polling
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			win.postEvent(gui.Event{ID: gui.EventQuit})

		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Repeat == 0 {
				switch ev.Keysym.Sym {
				case sdl.K_ESCAPE:
					win.postEvent(gui.Event{ID: gui.EventSkipPart})
				case sdl.K_F11:
					win.setFullScreen(!win.fullscreen)
				}
			}
		}
	}

	win.render()
}

// apply feature requests deferred from the demo goroutine.
func (win *Window) serviceFeatures() {
	win.crit.section.Lock()
	defer win.crit.section.Unlock()

	if win.crit.eventChan != nil {
		win.events = win.crit.eventChan
		win.crit.eventChan = nil
	}

	if win.crit.visibility != nil {
		if *win.crit.visibility {
			win.window.Show()
		} else {
			win.window.Hide()
		}
		win.crit.visibility = nil
	}

	if win.crit.fullscreen != nil {
		win.setFullScreen(*win.crit.fullscreen)
		win.crit.fullscreen = nil
	}

	if win.crit.hasNewScale {
		win.scale = *win.crit.scale
		if !win.fullscreen {
			win.window.SetSize(int32(320*pixelScale*win.scale), int32(200*pixelScale*win.scale))
		}
		win.crit.scale = nil
		win.crit.hasNewScale = false
	}
}

func (win *Window) setFullScreen(fullscreen bool) {
	var err error
	if fullscreen {
		err = win.window.SetFullscreen(uint32(sdl.WINDOW_FULLSCREEN_DESKTOP))
	} else {
		err = win.window.SetFullscreen(0)
	}
	if err != nil {
		logger.Logf("sdl", "fullscreen: %v", err)
		return
	}
	win.fullscreen = fullscreen
}

// forward an event without ever blocking the main thread.
func (win *Window) postEvent(ev gui.Event) {
	if win.events == nil {
		return
	}
	select {
	case win.events <- ev:
	default:
		logger.Log("sdl", "dropping event (channel full)")
	}
}

// render the most recent frame. a no-op if nothing new has arrived from the
// demo goroutine since the last service.
func (win *Window) render() {
	win.crit.section.Lock()
	defer win.crit.section.Unlock()

	if win.crit.resize {
		win.rnd.setFrameSize(win.crit.width, win.crit.height)
		win.crit.resize = false
	}

	if !win.crit.update {
		return
	}
	win.crit.update = false

	drawW, drawH := win.window.GLGetDrawableSize()
	win.rnd.render(win.crit.pixels, drawW, drawH)
	win.window.GLSwap()
}

// SetFeature implements the gui.GUI interface. Safe to call from any
// goroutine; requests take effect on the next Service().
func (win *Window) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	win.crit.section.Lock()
	defer win.crit.section.Unlock()

	switch request {
	case gui.ReqSetVisibility:
		v := args[0].(bool)
		win.crit.visibility = &v

	case gui.ReqFullScreen:
		v := args[0].(bool)
		win.crit.fullscreen = &v

	case gui.ReqSetScale:
		v := args[0].(float32)
		win.crit.scale = &v
		win.crit.hasNewScale = true

	case gui.ReqSetEventChan:
		win.crit.eventChan = args[0].(chan gui.Event)

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

// GetFeature implements the gui.GUI interface.
func (win *Window) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	switch request {
	case gui.ReqFullScreen:
		return win.fullscreen, nil
	case gui.ReqSetScale:
		return win.scale, nil
	}
	return nil, curated.Errorf(gui.UnsupportedGuiFeature, request)
}
