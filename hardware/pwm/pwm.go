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

package pwm

import (
	"fmt"

	"github.com/jetsetilly/trifade/hardware/register"
)

// Comparator produces a duty cycled boolean from a brightness value.
type Comparator struct {
	counter register.Register
}

// NewComparator is the preferred method of initialisation for the Comparator
// type.
func NewComparator(width uint) Comparator {
	return Comparator{
		counter: register.New(width),
	}
}

func (cmp Comparator) String() string {
	return fmt.Sprintf("pwm=%d", cmp.counter.Value())
}

// Counter returns the current value of the free running counter.
func (cmp Comparator) Counter() uint64 {
	return cmp.counter.Value()
}

// Bit returns the PWM output for the given brightness.
func (cmp Comparator) Bit(brightness uint64) bool {
	return cmp.counter.Value() < brightness
}

// Step advances the free running counter.
func (cmp *Comparator) Step() {
	cmp.counter = cmp.counter.Add(1)
}
