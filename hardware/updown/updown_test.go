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

package updown_test

import (
	"testing"

	"github.com/jetsetilly/trifade/hardware/updown"
	"github.com/jetsetilly/trifade/test"
)

func TestRamp(t *testing.T) {
	c := updown.NewCounter(4)

	expected := []uint64{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1,
		0, 1, 2, 3,
	}

	for i, v := range expected {
		test.ExpectEquality(t, c.Value(), v, i)
		c.Step()
	}
}

func TestNoRepeatAtExtremes(t *testing.T) {
	for w := uint(1); w <= 8; w++ {
		c := updown.NewCounter(w)
		prev := c.Value()
		for i := 0; i < c.Period()*3; i++ {
			c.Step()
			test.ExpectInequality(t, c.Value(), prev, w, i)
			prev = c.Value()
		}
	}
}

func TestPeriod(t *testing.T) {
	for w := uint(1); w <= 8; w++ {
		c := updown.NewCounter(w)
		period := c.Period()
		test.ExpectEquality(t, period, int(1)<<(w+1)-2)

		// record one full period after the initial zero value and compare
		// with the following period
		c.Step()
		seq := make([]uint64, period)
		for i := range seq {
			seq[i] = c.Value()
			c.Step()
		}
		for i := range seq {
			test.ExpectEquality(t, c.Value(), seq[i], w, i)
			c.Step()
		}
	}
}

func TestRange(t *testing.T) {
	for w := uint(0); w <= 10; w++ {
		c := updown.NewCounter(w)
		for i := 0; i < 3*(1<<(w+1)); i++ {
			if c.Value() > c.Max() {
				t.Fatalf("value out of range for width %d: %d", w, c.Value())
			}
			c.Step()
		}
	}
}

func TestDirection(t *testing.T) {
	c := updown.NewCounter(3)
	for range 7 {
		test.ExpectFailure(t, c.Direction())
		c.Step()
	}

	// value 7 is the peak and the counter is still in the rising half
	test.ExpectEquality(t, c.Value(), uint64(7))
	test.ExpectFailure(t, c.Direction())

	c.Step()
	test.ExpectEquality(t, c.Value(), uint64(6))
	test.ExpectSuccess(t, c.Direction())
}

func TestTick(t *testing.T) {
	c := updown.NewCounter(4)
	c.Tick(false)
	test.ExpectEquality(t, c.Value(), uint64(0))
	c.Tick(true)
	test.ExpectEquality(t, c.Value(), uint64(1))
	c.Tick(false)
	test.ExpectEquality(t, c.Value(), uint64(1))
}

func TestZeroWidth(t *testing.T) {
	c := updown.NewCounter(0)
	for range 10 {
		test.ExpectEquality(t, c.Value(), uint64(0))
		c.Step()
	}
	test.ExpectEquality(t, c.Period(), 1)
}
