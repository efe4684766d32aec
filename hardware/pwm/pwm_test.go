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

package pwm_test

import (
	"testing"

	"github.com/jetsetilly/trifade/hardware/pwm"
	"github.com/jetsetilly/trifade/test"
)

func TestDutyCycle(t *testing.T) {
	const width = 4
	const window = 1 << width

	for b := uint64(0); b <= window-1; b++ {
		cmp := pwm.NewComparator(width)

		for w := range 3 {
			var on int
			for i := range window {
				bit := cmp.Bit(b)
				if bit {
					on++
				}

				// the true ticks are the first B ticks of the window
				test.ExpectEquality(t, bit, uint64(i) < b, b, w, i)
				cmp.Step()
			}
			test.ExpectEquality(t, on, int(b))
		}
	}
}

func TestWrapping(t *testing.T) {
	cmp := pwm.NewComparator(3)
	for range 8 {
		cmp.Step()
	}
	test.ExpectEquality(t, cmp.Counter(), uint64(0))
}
