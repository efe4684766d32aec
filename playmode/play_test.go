// This file is part of Trifade.
//
// Trifade is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Trifade is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Trifade.  If not, see <https://www.gnu.org/licenses/>.

package playmode_test

import (
	"testing"

	"github.com/jetsetilly/trifade/config"
	"github.com/jetsetilly/trifade/environment"
	"github.com/jetsetilly/trifade/hardware"
	"github.com/jetsetilly/trifade/ledterm"
	"github.com/jetsetilly/trifade/playmode"
	"github.com/jetsetilly/trifade/test"
)

type display struct {
	frames []ledterm.Frame
	keys   chan byte
}

func (dsp *display) Draw(fr ledterm.Frame, _ string) error {
	dsp.frames = append(dsp.frames, fr)
	return nil
}

func (dsp *display) Keys() <-chan byte {
	return dsp.keys
}

func newFader(t *testing.T) *hardware.Fader {
	t.Helper()
	cfg, err := config.Preset("sim")
	test.DemandSuccess(t, err)
	fdr, err := hardware.NewFader(environment.NewEnvironment(environment.Capture), cfg)
	test.DemandSuccess(t, err)
	return fdr
}

func TestPlayForTicks(t *testing.T) {
	fdr := newFader(t)
	dsp := &display{}

	err := playmode.Play(fdr, dsp, playmode.Options{Rate: 5000, FPS: 100, Ticks: 1000})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fdr.Ticks(), uint64(1000))

	// fifty ticks per frame
	test.ExpectEquality(t, len(dsp.frames), 20)
	for _, fr := range dsp.frames {
		test.ExpectEquality(t, fr.Ticks, 50)
	}
}

func TestQuit(t *testing.T) {
	fdr := newFader(t)
	dsp := &display{keys: make(chan byte, 1)}
	dsp.keys <- 'q'

	err := playmode.Play(fdr, dsp, playmode.Options{Rate: 1000, FPS: 100})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fdr.Ticks(), uint64(10))
	test.ExpectEquality(t, len(dsp.frames), 1)
}

func TestPauseAndStep(t *testing.T) {
	fdr := newFader(t)
	dsp := &display{keys: make(chan byte, 3)}
	dsp.keys <- ' '
	dsp.keys <- 's'
	dsp.keys <- 'q'

	err := playmode.Play(fdr, dsp, playmode.Options{Rate: 800, FPS: 100})
	test.DemandSuccess(t, err)

	// one frame of eight ticks and a single step
	test.ExpectEquality(t, fdr.Ticks(), uint64(9))
	test.DemandSuccess(t, len(dsp.frames) >= 2)
	test.ExpectEquality(t, dsp.frames[0].Ticks, 8)

	// the last frame drawn shows only the stepped tick. pad zero is driven
	// low on that tick
	ref := newFader(t)
	ref.StepTicks(8)
	var want ledterm.Frame
	want.Add(ref.Step().Pads)
	test.ExpectEquality(t, want.Low[0], 1)
	test.ExpectEquality(t, dsp.frames[len(dsp.frames)-1], want)
}

func TestPauseKeepsFrame(t *testing.T) {
	fdr := newFader(t)
	dsp := &display{keys: make(chan byte, 2)}
	dsp.keys <- ' '
	dsp.keys <- 'q'

	err := playmode.Play(fdr, dsp, playmode.Options{Rate: 800, FPS: 100})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fdr.Ticks(), uint64(8))

	// every frame drawn while paused is the last frame before the pause
	for _, fr := range dsp.frames {
		test.ExpectEquality(t, fr, dsp.frames[0])
	}
	test.ExpectEquality(t, dsp.frames[0].Ticks, 8)
}

func TestReset(t *testing.T) {
	fdr := newFader(t)
	dsp := &display{keys: make(chan byte, 2)}
	dsp.keys <- 'r'

	// the reset happens at the end of the first frame. the fader then runs
	// until the tick count reaches the target again
	err := playmode.Play(fdr, dsp, playmode.Options{Rate: 1000, FPS: 100, Ticks: 30})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fdr.Ticks(), uint64(30))
	test.ExpectEquality(t, len(dsp.frames), 4)
}

func TestInvalidOptions(t *testing.T) {
	err := playmode.Play(newFader(t), &display{}, playmode.Options{Rate: -1})
	test.ExpectFailure(t, err)
}
