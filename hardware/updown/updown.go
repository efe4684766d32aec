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

package updown

import (
	"fmt"

	"github.com/jetsetilly/trifade/hardware/register"
)

// Counter is a self reflecting ramp.
type Counter struct {
	width    uint
	icounter register.Register
}

// NewCounter is the preferred method of initialisation for the Counter type.
// The counter begins at value zero, counting upwards.
func NewCounter(width uint) Counter {
	return Counter{
		width:    width,
		icounter: register.New(width + 1),
	}
}

func (c Counter) String() string {
	dir := "up"
	if c.Direction() {
		dir = "down"
	}
	return fmt.Sprintf("%d (%s)", c.Value(), dir)
}

// Width returns the width of the visible value.
func (c Counter) Width() uint {
	return c.width
}

// Max returns the largest value the counter can show.
func (c Counter) Max() uint64 {
	return (uint64(1) << c.width) - 1
}

// Period returns the number of advances before the sequence of values repeats.
func (c Counter) Period() int {
	if c.width == 0 {
		return 1
	}
	return (1 << (c.width + 1)) - 2
}

// Direction returns true if the counter is in the falling half of the ramp.
func (c Counter) Direction() bool {
	return c.icounter.Bit(c.width)
}

// Value returns the visible value of the counter.
func (c Counter) Value() uint64 {
	v := c.icounter.Low(c.width)
	if c.Direction() {
		v = ^v & c.Max()
	}
	return v
}

// Extended returns the raw value of the extended register.
func (c Counter) Extended() uint64 {
	return c.icounter.Value()
}

// reflecting is true when the low bits are all ones and the next advance
// must skip the duplicate boundary value.
func (c Counter) reflecting() bool {
	inv := ^c.icounter.Low(c.width) & c.Max()
	return inv == 0
}

// Step advances the counter unconditionally.
func (c *Counter) Step() {
	if c.reflecting() {
		c.icounter = c.icounter.Add(2)
	} else {
		c.icounter = c.icounter.Add(1)
	}
}

// Tick advances the counter if tick is true.
func (c *Counter) Tick(tick bool) {
	if tick {
		c.Step()
	}
}
