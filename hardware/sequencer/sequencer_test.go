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

package sequencer_test

import (
	"testing"

	"github.com/jetsetilly/trifade/hardware/sequencer"
	"github.com/jetsetilly/trifade/test"
)

type state struct {
	channel  int
	polarity sequencer.Polarity
}

func TestInitialState(t *testing.T) {
	sq := sequencer.NewSequencer()
	test.ExpectEquality(t, sq.Channel(), 0)
	test.ExpectEquality(t, sq.Polarity(), sequencer.DriveLow)
	test.ExpectEquality(t, sq.String(), "ch0/low")

	sq.Tick(true)
	test.ExpectEquality(t, sq.Channel(), 0)
	test.ExpectEquality(t, sq.Polarity(), sequencer.DriveHigh)

	sq.Tick(false)
	test.ExpectEquality(t, sq.Value(), uint64(1))
}

func TestVisitsEveryChannelTwice(t *testing.T) {
	sq := sequencer.NewSequencer()

	visits := make(map[int]int)
	seen := make(map[state]bool)

	for range sequencer.NumStates {
		visits[sq.Channel()]++
		seen[state{channel: sq.Channel(), polarity: sq.Polarity()}] = true
		sq.Tick(true)
	}

	test.ExpectEquality(t, len(visits), sequencer.NumChannels)
	for ch := range sequencer.NumChannels {
		test.ExpectEquality(t, visits[ch], 2, ch)
		test.ExpectSuccess(t, seen[state{channel: ch, polarity: sequencer.DriveLow}])
		test.ExpectSuccess(t, seen[state{channel: ch, polarity: sequencer.DriveHigh}])
	}
	test.ExpectEquality(t, len(seen), sequencer.NumStates)
}

func TestPeriodic(t *testing.T) {
	sq := sequencer.NewSequencer()

	// the ramp of a four bit counter repeats every 30 advances
	const period = 30

	var first []uint64
	for range period {
		first = append(first, sq.Value())
		sq.Tick(true)
	}

	distinct := make(map[uint64]bool)
	for i := range 5 * period {
		test.ExpectEquality(t, sq.Value(), first[i%period], i)
		distinct[sq.Value()] = true
		sq.Tick(true)
	}
	test.ExpectEquality(t, len(distinct), sequencer.NumStates)
}
