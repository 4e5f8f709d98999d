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

package part_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/gopherreality/demo/dis"
	"github.com/jetsetilly/gopherreality/demo/part"
	"github.com/jetsetilly/gopherreality/demo/video"
	"github.com/jetsetilly/gopherreality/test"
)

// mockPart records its lifecycle calls into a shared trace so tests can
// check ordering across parts.
type mockPart struct {
	id    string
	trace *[]string

	// the part signals completion after this many Update() calls. zero
	// means the part never finishes by itself
	updatesUntilDone int
	updates          int

	initErr error
}

func (prt *mockPart) ID() string {
	return prt.id
}

func (prt *mockPart) Init(env *part.Environment) error {
	*prt.trace = append(*prt.trace, fmt.Sprintf("%s init", prt.id))
	prt.updates = 0
	return prt.initErr
}

func (prt *mockPart) Update(frames int) bool {
	*prt.trace = append(*prt.trace, fmt.Sprintf("%s update", prt.id))
	prt.updates++
	return prt.updatesUntilDone > 0 && prt.updates >= prt.updatesUntilDone
}

func (prt *mockPart) Render() {
	*prt.trace = append(*prt.trace, fmt.Sprintf("%s render", prt.id))
}

func (prt *mockPart) Cleanup() {
	*prt.trace = append(*prt.trace, fmt.Sprintf("%s cleanup", prt.id))
}

func newTestEnv() *part.Environment {
	return &part.Environment{
		Dis:   dis.NewDis(nil),
		Video: video.NewVideo(),
	}
}

func TestLoaderLifecycle(t *testing.T) {
	env := newTestEnv()
	ldr := part.NewLoader(env)

	trace := make([]string, 0)
	a := &mockPart{id: "a", trace: &trace, updatesUntilDone: 2}
	b := &mockPart{id: "b", trace: &trace}

	test.ExpectedSuccess(t, ldr.Register(a))
	test.ExpectedSuccess(t, ldr.Register(b))
	test.Equate(t, ldr.Count(), 2)

	test.ExpectedSuccess(t, ldr.Start(0))
	test.Equate(t, ldr.IsRunning(), true)
	test.Equate(t, ldr.Index(), 0)

	s, err := ldr.State(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s.String(), "running")

	// first tick. part a still running afterwards
	env.Dis.Frame()
	ldr.Tick()
	ldr.Render()
	test.Equate(t, ldr.Index(), 0)

	// second tick finishes part a. the transition to part b happens on the
	// same tick
	env.Dis.Frame()
	ldr.Tick()
	test.Equate(t, ldr.Index(), 1)

	// the first part's cleanup strictly precedes the second part's init
	expected := []string{"a init", "a update", "a render", "a update", "a cleanup", "b init"}
	test.Equate(t, len(trace), len(expected))
	for i := range expected {
		test.Equate(t, trace[i], expected[i])
	}

	s, err = ldr.State(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s.String(), "stopped")
}

func TestLoaderInitFailure(t *testing.T) {
	env := newTestEnv()
	ldr := part.NewLoader(env)

	trace := make([]string, 0)
	a := &mockPart{id: "a", trace: &trace, initErr: errors.New("no resources")}
	b := &mockPart{id: "b", trace: &trace}

	test.ExpectedSuccess(t, ldr.Register(a))
	test.ExpectedSuccess(t, ldr.Register(b))

	// a failed init is not fatal. the sequence carries on with the next part
	test.ExpectedSuccess(t, ldr.Start(0))
	test.Equate(t, ldr.Index(), 1)

	s, err := ldr.State(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s.String(), "stopped")

	// the failed part is never updated or cleaned up
	expected := []string{"a init", "b init"}
	test.Equate(t, len(trace), len(expected))
	for i := range expected {
		test.Equate(t, trace[i], expected[i])
	}
}

func TestLoaderEndOfSequence(t *testing.T) {
	env := newTestEnv()
	ldr := part.NewLoader(env)

	trace := make([]string, 0)
	a := &mockPart{id: "a", trace: &trace}

	test.ExpectedSuccess(t, ldr.Register(a))
	test.ExpectedSuccess(t, ldr.Start(0))

	// advancing past the end of the registry is the normal end of the demo
	test.ExpectedFailure(t, ldr.Next())
	test.Equate(t, ldr.IsRunning(), false)
	test.Equate(t, ldr.Index(), -1)

	// ticks and renders after the end are no-ops
	ldr.Tick()
	ldr.Render()
	test.Equate(t, trace[len(trace)-1], "a cleanup")
}

func TestLoaderCapacity(t *testing.T) {
	env := newTestEnv()
	ldr := part.NewLoader(env)

	trace := make([]string, 0)
	for i := 0; i < part.MaxParts; i++ {
		err := ldr.Register(&mockPart{id: fmt.Sprintf("p%d", i), trace: &trace})
		test.ExpectedSuccess(t, err)
	}

	test.ExpectedFailure(t, ldr.Register(&mockPart{id: "overflow", trace: &trace}))
	test.ExpectedFailure(t, ldr.Register(nil))
	test.Equate(t, ldr.Count(), part.MaxParts)
}

func TestLoaderStartErrors(t *testing.T) {
	env := newTestEnv()
	ldr := part.NewLoader(env)

	test.ExpectedFailure(t, ldr.Start(0))

	trace := make([]string, 0)
	test.ExpectedSuccess(t, ldr.Register(&mockPart{id: "a", trace: &trace}))
	test.ExpectedFailure(t, ldr.Start(-1))
	test.ExpectedFailure(t, ldr.Start(1))
}

func TestTransitionCallback(t *testing.T) {
	env := newTestEnv()
	ldr := part.NewLoader(env)

	trace := make([]string, 0)
	a := &mockPart{id: "a", trace: &trace, updatesUntilDone: 1}
	b := &mockPart{id: "b", trace: &trace}

	test.ExpectedSuccess(t, ldr.Register(a))
	test.ExpectedSuccess(t, ldr.Register(b))

	transitions := make([][2]int, 0)
	ldr.SetTransitionCallback(func(from int, to int) {
		transitions = append(transitions, [2]int{from, to})
	})

	test.ExpectedSuccess(t, ldr.Start(0))
	env.Dis.Frame()
	ldr.Tick()

	test.Equate(t, len(transitions), 2)
	test.Equate(t, transitions[0][0], -1)
	test.Equate(t, transitions[0][1], 0)
	test.Equate(t, transitions[1][0], 0)
	test.Equate(t, transitions[1][1], 1)
}

func TestTransitionResetsState(t *testing.T) {
	env := newTestEnv()
	ldr := part.NewLoader(env)

	trace := make([]string, 0)
	a := &mockPart{id: "a", trace: &trace, updatesUntilDone: 1}
	b := &mockPart{id: "b", trace: &trace}

	test.ExpectedSuccess(t, ldr.Register(a))
	test.ExpectedSuccess(t, ldr.Register(b))
	test.ExpectedSuccess(t, ldr.Start(0))

	// scribble over the transient state
	env.Video.Framebuffer()[0] = 0xff
	env.Dis.RequestExit()

	msg, err := env.Dis.MessageArea(1)
	test.ExpectedSuccess(t, err)
	msg[0] = 0x42

	env.Dis.Frame()
	ldr.Tick()

	// framebuffer and exit flag are reset by the transition; the message
	// area survives
	test.Equate(t, env.Video.Framebuffer()[0], 0)
	test.Equate(t, env.Dis.RequestedExit(), false)

	msg, err = env.Dis.MessageArea(1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, msg[0], 0x42)
}
