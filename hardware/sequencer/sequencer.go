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

package sequencer

import (
	"fmt"

	"github.com/jetsetilly/trifade/hardware/updown"
)

// Width is the number of bits in the sequencer counter.
const Width = ChannelBits + 1

// ChannelBits is the number of bits used to select a channel.
const ChannelBits = 3

// NumChannels is the number of channels that can be selected.
const NumChannels = 1 << ChannelBits

// NumStates is the number of distinct states the sequencer can be in.
const NumStates = NumChannels * 2

// Polarity of the active channel.
type Polarity bool

// List of valid Polarity values.
const (
	DriveLow  Polarity = false
	DriveHigh Polarity = true
)

func (p Polarity) String() string {
	if p {
		return "high"
	}
	return "low"
}

// Sequencer steps through every combination of channel and polarity.
type Sequencer struct {
	counter updown.Counter
}

// NewSequencer is the preferred method of initialisation for the Sequencer
// type. The sequencer begins at channel zero, driving low.
func NewSequencer() Sequencer {
	return Sequencer{
		counter: updown.NewCounter(Width),
	}
}

func (sq Sequencer) String() string {
	return fmt.Sprintf("ch%d/%s", sq.Channel(), sq.Polarity())
}

// Value returns the raw value of the sequencer counter.
func (sq Sequencer) Value() uint64 {
	return sq.counter.Value()
}

// Channel returns the index of the active channel.
func (sq Sequencer) Channel() int {
	return int(sq.counter.Value()>>1) & (NumChannels - 1)
}

// Polarity returns the polarity of the active channel.
func (sq Sequencer) Polarity() Polarity {
	return Polarity(sq.counter.Value()&0x01 == 0x01)
}

// Tick advances the sequencer if ledTick is true.
func (sq *Sequencer) Tick(ledTick bool) {
	sq.counter.Tick(ledTick)
}
