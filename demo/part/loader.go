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

package part

import (
	"github.com/jetsetilly/gopherreality/curated"
	"github.com/jetsetilly/gopherreality/logger"
)

// MaxParts is the capacity of the part registry.
const MaxParts = 32

// Sentinal errors.
const (
	RegistryFull = "part: registry full (max %d parts)"
	InvalidIndex = "part: invalid part index [%d]"
)

// Loader sequences the registered parts. It owns every lifecycle state
// change: parts are registered in playback order, started at some index, and
// from then on Tick() and Render() drive the running part until it signals
// completion, at which point the loader transitions to the next one.
//
// At most one part is ever Running. Everything here happens on the demo
// goroutine; the Loader is not safe for concurrent use.
type Loader struct {
	env *Environment

	registry []Part
	states   []State

	current int
	running bool

	transitionCallback func(from int, to int)
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(env *Environment) *Loader {
	return &Loader{
		env:      env,
		registry: make([]Part, 0, MaxParts),
		states:   make([]State, 0, MaxParts),
		current:  -1,
	}
}

// Register appends a part to the registry. Registration order is playback
// order. A nil part or a full registry is an error and leaves the registry
// unchanged.
func (ldr *Loader) Register(prt Part) error {
	if prt == nil {
		return curated.Errorf("part: %v", "cannot register a nil part")
	}
	if len(ldr.registry) >= MaxParts {
		return curated.Errorf(RegistryFull, MaxParts)
	}

	ldr.registry = append(ldr.registry, prt)
	ldr.states = append(ldr.states, Stopped)
	logger.Logf("part", "registered part %d: %s", len(ldr.registry)-1, prt.ID())

	return nil
}

// Start begins the run at the given index. An invalid index fails with no
// side effects.
func (ldr *Loader) Start(index int) error {
	if index < 0 || index >= len(ldr.registry) {
		return curated.Errorf(InvalidIndex, index)
	}

	ldr.running = true
	if !ldr.startAt(-1, index) {
		return curated.Errorf("part: %v", "no part could be started")
	}

	return nil
}

// startAt runs the transition path into the part at index to, initialising
// it and marking it Running. A part whose Init() fails is left Stopped and
// the loader advances to the following part. Returns false when the end of
// the registry is passed, leaving the loader not-running.
func (ldr *Loader) startAt(from int, to int) bool {
	for to < len(ldr.registry) {
		ldr.transition(from, to)

		prt := ldr.registry[to]
		logger.Logf("part", "starting part: %s", prt.ID())

		ldr.states[to] = Initializing
		err := prt.Init(ldr.env)
		if err != nil {
			// policy decision: a part that cannot initialise is left
			// Stopped and the sequence carries on without it
			ldr.states[to] = Stopped
			logger.Logf("part", "init failed for %s: %v", prt.ID(), err)
			from = to
			to++
			continue // for loop
		}

		ldr.states[to] = Running
		ldr.current = to
		return true
	}

	logger.Log("part", "no more parts")
	ldr.running = false
	ldr.current = -1
	return false
}

// transition performs the inter-part reset: the transition callback fires
// first (with from equal to -1 on the very first start), then the dis
// transient state is reset and the video state cleared to a black palette
// and a zero-index framebuffer.
func (ldr *Loader) transition(from int, to int) {
	logger.Logf("part", "transitioning from %d to %d", from, to)

	if ldr.transitionCallback != nil {
		ldr.transitionCallback(from, to)
	}

	ldr.env.Dis.Reset()

	for i := 0; i < 256; i++ {
		ldr.env.Video.SetColor(byte(i), 0, 0, 0)
	}
	ldr.env.Video.Clear(0)
	ldr.env.Video.SetDisplayStart(0)
	ldr.env.Video.SetHScroll(0)
}

// Tick updates the running part. A no-op unless a part is Running. The
// elapsed frame count is obtained from dis.WaitFrame() and passed to the
// part's Update(); a part signalling completion transitions on the same
// tick.
func (ldr *Loader) Tick() {
	if !ldr.running || ldr.current < 0 {
		return
	}
	if ldr.states[ldr.current] != Running {
		return
	}

	frames := ldr.env.Dis.WaitFrame()
	if ldr.registry[ldr.current].Update(frames) {
		ldr.Next()
	}
}

// Render delegates to the running part. A no-op unless a part is Running.
func (ldr *Loader) Render() {
	if !ldr.running || ldr.current < 0 {
		return
	}
	if ldr.states[ldr.current] != Running {
		return
	}

	ldr.registry[ldr.current].Render()
}

// Next ends the current part and starts the following one. Returns true if a
// new part is now running. Advancing past the end of the registry leaves the
// loader not-running and returns false; that is the normal end of the demo,
// not an error. Calling Next while not running is a no-op returning false.
func (ldr *Loader) Next() bool {
	if !ldr.running || ldr.current < 0 {
		return false
	}

	prt := ldr.registry[ldr.current]
	logger.Logf("part", "ending part: %s", prt.ID())
	ldr.states[ldr.current] = Cleanup
	prt.Cleanup()
	ldr.states[ldr.current] = Stopped

	from := ldr.current
	return ldr.startAt(from, from+1)
}

// End cleans up the running part. For use at program exit; the loader is
// left not-running.
func (ldr *Loader) End() {
	if !ldr.running || ldr.current < 0 {
		return
	}

	prt := ldr.registry[ldr.current]
	ldr.states[ldr.current] = Cleanup
	prt.Cleanup()
	ldr.states[ldr.current] = Stopped

	ldr.running = false
	ldr.current = -1
}

// Current returns the running part, or nil when not running.
func (ldr *Loader) Current() Part {
	if !ldr.running || ldr.current < 0 {
		return nil
	}
	return ldr.registry[ldr.current]
}

// Index returns the index of the running part, or -1 when not running.
func (ldr *Loader) Index() int {
	if !ldr.running {
		return -1
	}
	return ldr.current
}

// Count returns the number of registered parts.
func (ldr *Loader) Count() int {
	return len(ldr.registry)
}

// IsRunning returns whether a part sequence is in progress.
func (ldr *Loader) IsRunning() bool {
	return ldr.running
}

// State returns the lifecycle state of the part at the given index.
func (ldr *Loader) State(index int) (State, error) {
	if index < 0 || index >= len(ldr.registry) {
		return Stopped, curated.Errorf(InvalidIndex, index)
	}
	return ldr.states[index], nil
}

// SetTransitionCallback registers a function to be called on every part
// transition, before the dis/video reset, with the from and to registry
// indices. The very first transition has a from of -1. A nil function clears
// the callback.
func (ldr *Loader) SetTransitionCallback(fn func(from int, to int)) {
	ldr.transitionCallback = fn
}
