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

package clockdiv

import (
	"fmt"

	"github.com/jetsetilly/trifade/hardware/register"
)

// ClockDivider produces a one tick strobe every 2^D ticks.
type ClockDivider struct {
	width   uint
	counter register.Register
}

// NewClockDivider is the preferred method of initialisation for the
// ClockDivider type.
func NewClockDivider(width uint) ClockDivider {
	return ClockDivider{
		width:   width,
		counter: register.New(width + 1),
	}
}

func (div ClockDivider) String() string {
	return fmt.Sprintf("div=%s strobe=%v", div.counter, div.Strobe())
}

// Width returns the width of the divider. This is one less than the width of
// the underlying counter.
func (div ClockDivider) Width() uint {
	return div.width
}

// Counter returns the raw value of the divider counter.
func (div ClockDivider) Counter() uint64 {
	return div.counter.Value()
}

// DividedClock returns the state of the divided clock.
func (div ClockDivider) DividedClock() bool {
	return div.counter.Bit(div.width)
}

// Strobe returns true if the low bits of the counter are all set.
func (div ClockDivider) Strobe() bool {
	// the inverse of the low bits is zero only when every low bit is set. a
	// zero width divider has no low bits and strobes on every tick
	inv := ^div.counter.Low(div.width) & ((uint64(1) << div.width) - 1)
	return inv == 0
}

// Step advances the divider by one tick.
func (div *ClockDivider) Step() {
	div.counter = div.counter.Add(1)
}
