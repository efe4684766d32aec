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

package playmode

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/jetsetilly/trifade/config"
	"github.com/jetsetilly/trifade/curated"
	"github.com/jetsetilly/trifade/govern"
	"github.com/jetsetilly/trifade/hardware"
	"github.com/jetsetilly/trifade/ledterm"
	"github.com/jetsetilly/trifade/logger"
	"github.com/jetsetilly/trifade/performance/limiter"
)

// DefaultFPS is the number of times the display is updated every second.
const DefaultFPS = 30

// Display implementations draw a frame and supply key presses.
type Display interface {
	Draw(fr ledterm.Frame, status string) error
	Keys() <-chan byte
}

// Options for the Play() function.
type Options struct {
	// number of ticks in one second of real time. zero means the speed of the
	// reference board clock
	Rate int

	// number of display updates every second. zero means DefaultFPS
	FPS int

	// stop after the specified number of ticks. zero means run until the user
	// quits
	Ticks uint64
}

type playmode struct {
	fdr *hardware.Fader
	dsp Display
	lim *limiter.FpsLimiter

	rate          int
	ticksPerFrame int
	count         int
	frame         ledterm.Frame

	// the frame has been drawn and is cleared when the next tick arrives.
	// the drawn frame remains on screen while paused
	drawn bool

	// the next call to continueCheck() is for a single step
	stepped bool

	state    govern.State
	intChan  chan os.Signal
	keysOpen bool
}

// Play the fader until the user quits.
func Play(fdr *hardware.Fader, dsp Display, opts Options) error {
	if opts.Rate == 0 {
		opts.Rate = config.BoardClock
	}
	if opts.FPS == 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Rate < 0 {
		return curated.Errorf("playmode: tick rate must be positive: %d", opts.Rate)
	}

	lim, err := limiter.NewFPSLimiter(opts.FPS)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer lim.Stop()

	pl := &playmode{
		fdr:      fdr,
		dsp:      dsp,
		lim:      lim,
		state:    govern.Running,
		intChan:  make(chan os.Signal, 1),
		keysOpen: dsp.Keys() != nil,
	}
	pl.setRate(opts.Rate)

	// ctrl-c is delivered as a key press when the terminal is in raw mode but
	// as a signal otherwise
	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	logger.Logf(fdr.Env(), "playmode", "playing at %d ticks per second", pl.rate)

	if opts.Ticks > 0 {
		err = fdr.RunForTicks(opts.Ticks, pl.continueCheck)
	} else {
		err = fdr.Run(pl.continueCheck)
	}
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}

func (pl *playmode) setRate(rate int) {
	pl.rate = max(1, rate)
	pl.ticksPerFrame = max(1, pl.rate/pl.lim.Limit())
}

func (pl *playmode) status() string {
	sig := pl.fdr.Signals()
	s := fmt.Sprintf("tick %d  ch%d/%-4s  brightness %d  rate %d/s", sig.Tick, sig.Channel, sig.Polarity, sig.Brightness, pl.rate)
	if pl.state == govern.Paused {
		s = fmt.Sprintf("%s  PAUSED", s)
	}
	return s
}

// continueCheck is called by the fader after every tick.
func (pl *playmode) continueCheck(sig hardware.Signals) (govern.State, error) {
	switch {
	case pl.stepped:
		// a single step is shown on its own
		pl.stepped = false
		pl.frame.Reset()
		pl.frame.Add(sig.Pads)
		pl.drawn = false
	case pl.state == govern.Running:
		if pl.drawn {
			pl.frame.Reset()
			pl.drawn = false
		}
		pl.frame.Add(sig.Pads)
		pl.count++
		if pl.count < pl.ticksPerFrame {
			return govern.Running, nil
		}
	}
	pl.count = 0

	if err := pl.dsp.Draw(pl.frame, pl.status()); err != nil {
		return govern.Ending, err
	}
	pl.drawn = true

	return pl.wait()
}

// wait for the start of the next frame, handling any key presses that arrive
// in the meantime.
func (pl *playmode) wait() (govern.State, error) {
	var keys <-chan byte
	if pl.keysOpen {
		keys = pl.dsp.Keys()
	}

	for {
		select {
		case <-pl.intChan:
			pl.state = govern.Ending
			return pl.state, nil
		case k, ok := <-keys:
			if !ok {
				pl.keysOpen = false
				keys = nil
				continue
			}
			if err := pl.handleKey(k); err != nil {
				return govern.Ending, err
			}
			if pl.state == govern.Ending || pl.state == govern.Stepping {
				st := pl.state
				if st == govern.Stepping {
					pl.state = govern.Paused
					pl.stepped = true
				}
				return st, nil
			}
		case <-pl.lim.C():
			return pl.state, nil
		}
	}
}
