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

package trace

import (
	"iter"

	"github.com/jetsetilly/trifade/config"
	"github.com/jetsetilly/trifade/curated"
	"github.com/jetsetilly/trifade/environment"
	"github.com/jetsetilly/trifade/hardware"
)

// InvalidLength is returned by Capture() when the requested number of ticks
// is negative.
const InvalidLength = "trace: invalid length: %d"

// Trace is a lazy, finite and restartable sequence of fader signals.
type Trace struct {
	cfg   config.Config
	start *hardware.State
	ticks int
}

// Capture creates a trace of the specified number of ticks, starting from
// reset.
func Capture(cfg config.Config, ticks int) (*Trace, error) {
	if err := cfg.Validate(); err != nil {
		return nil, curated.Errorf("trace: %v", err)
	}
	if ticks < 0 {
		return nil, curated.Errorf(InvalidLength, ticks)
	}
	return &Trace{
		cfg:   cfg,
		ticks: ticks,
	}, nil
}

// CaptureFrom creates a trace of the specified number of ticks, starting from
// the current state of the fader. The fader itself is not affected by the
// trace.
func CaptureFrom(fdr *hardware.Fader, ticks int) (*Trace, error) {
	tr, err := Capture(fdr.Config(), ticks)
	if err != nil {
		return nil, err
	}
	st := fdr.Snapshot()
	tr.start = &st
	return tr, nil
}

// Config returns the configuration of the fader being traced.
func (tr *Trace) Config() config.Config {
	return tr.cfg
}

// Len returns the number of ticks in the trace.
func (tr *Trace) Len() int {
	return tr.ticks
}

// All returns an iterator over the signals of every tick in the trace.
func (tr *Trace) All() iter.Seq[hardware.Signals] {
	return func(yield func(hardware.Signals) bool) {
		fdr, err := hardware.NewFader(environment.NewEnvironment(environment.Capture), tr.cfg)
		if err != nil {
			// the configuration was validated by Capture()
			panic(err)
		}
		if tr.start != nil {
			// the start state was taken from a fader with the same
			// configuration by CaptureFrom()
			if err := fdr.Plumb(*tr.start); err != nil {
				panic(err)
			}
		}
		for range tr.ticks {
			if !yield(fdr.Step()) {
				return
			}
		}
	}
}
