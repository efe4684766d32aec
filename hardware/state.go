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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/trifade/hardware/clockdiv"
	"github.com/jetsetilly/trifade/hardware/edgetick"
	"github.com/jetsetilly/trifade/hardware/pwm"
	"github.com/jetsetilly/trifade/hardware/sequencer"
	"github.com/jetsetilly/trifade/hardware/tristate"
	"github.com/jetsetilly/trifade/hardware/updown"
)

// State is every register in the fader.
type State struct {
	// number of committed ticks since reset
	Ticks uint64

	// paces the brightness ramp
	Divider clockdiv.ClockDivider

	// brightness of the active LED
	Brightness updown.Counter

	// watches the brightness for the end of each fade
	Edge edgetick.Detector

	// active channel and polarity
	Sequencer sequencer.Sequencer

	// free running PWM counter
	PWM pwm.Comparator
}

// newState creates the reset state for the specified widths.
func newState(pwmWidth, dividerWidth uint) State {
	return State{
		Divider:    clockdiv.NewClockDivider(dividerWidth),
		Brightness: updown.NewCounter(pwmWidth),
		Sequencer:  sequencer.NewSequencer(),
		PWM:        pwm.NewComparator(pwmWidth),
	}
}

func (st State) String() string {
	return fmt.Sprintf("tick=%d bright=%s seq=%s %s", st.Ticks, st.Brightness, st.Sequencer, st.PWM)
}

// Signals are the combinational outputs of the fader for a single tick.
type Signals struct {
	Tick uint64

	Strobe       bool
	DividedClock bool

	Brightness uint64
	Direction  bool

	LedTick bool

	Channel  int
	Polarity sequencer.Polarity

	PWM bool

	Pads tristate.Bank
}

func (sig Signals) String() string {
	return fmt.Sprintf("%d %s b=%d ch%d/%s", sig.Tick, sig.Pads, sig.Brightness, sig.Channel, sig.Polarity)
}

// Evaluate the combinational signals from the current register values.
func (st State) Evaluate() Signals {
	sig := Signals{
		Tick:         st.Ticks,
		Strobe:       st.Divider.Strobe(),
		DividedClock: st.Divider.DividedClock(),
		Brightness:   st.Brightness.Value(),
		Direction:    st.Brightness.Direction(),
		Channel:      st.Sequencer.Channel(),
		Polarity:     st.Sequencer.Polarity(),
	}

	sig.LedTick = st.Edge.Fire(sig.Brightness)
	sig.PWM = st.PWM.Bit(sig.Brightness)
	sig.Pads = tristate.Mux(sig.PWM, sig.Channel, bool(sig.Polarity))

	return sig
}

// Next returns the register values for the next tick. The signals must be the
// result of Evaluate() on the same state.
//
// The receiver is a copy of the current state so every register is stepped
// in place without affecting the signals, which were all derived from the
// current state.
func (st State) Next(sig Signals) State {
	st.Divider.Step()
	st.Brightness.Tick(sig.Strobe)
	st.Edge.Step(sig.Brightness)
	st.Sequencer.Tick(sig.LedTick)
	st.PWM.Step()
	st.Ticks++
	return st
}
