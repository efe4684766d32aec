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

package ledterm_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/trifade/hardware/tristate"
	"github.com/jetsetilly/trifade/ledterm"
	"github.com/jetsetilly/trifade/ledterm/ansi"
	"github.com/jetsetilly/trifade/test"
)

func TestFrameLevel(t *testing.T) {
	var fr ledterm.Frame

	p, i := fr.Level(0)
	test.ExpectEquality(t, p, tristate.HighZ)
	test.ExpectEquality(t, i, 0.0)

	high := tristate.Bank{}
	high[2] = tristate.DrivenHigh
	low := tristate.Bank{}
	low[5] = tristate.DrivenLow

	for range 3 {
		fr.Add(high)
	}
	fr.Add(low)
	fr.Add(tristate.Bank{})
	fr.Add(tristate.Bank{})

	test.ExpectEquality(t, fr.Ticks, 6)

	p, i = fr.Level(2)
	test.ExpectEquality(t, p, tristate.DrivenHigh)
	test.ExpectApproximate(t, i, 0.5, 0.0001)

	p, i = fr.Level(5)
	test.ExpectEquality(t, p, tristate.DrivenLow)
	test.ExpectApproximate(t, i, 1.0/6.0, 0.0001)

	p, _ = fr.Level(0)
	test.ExpectEquality(t, p, tristate.HighZ)

	fr.Reset()
	test.ExpectEquality(t, fr.Ticks, 0)
	test.ExpectEquality(t, fr.High[2], 0)
}

func TestRender(t *testing.T) {
	var fr ledterm.Frame

	on := tristate.Bank{}
	on[0] = tristate.DrivenHigh
	dim := tristate.Bank{}
	dim[7] = tristate.DrivenLow

	for range 99 {
		fr.Add(on)
	}
	fr.Add(dim)

	test.ExpectEquality(t, fr.Render(false), "@      .")

	s := fr.Render(true)
	test.ExpectSuccess(t, strings.HasPrefix(s, ansi.Pens["red"]+"@"))
	test.ExpectSuccess(t, strings.Contains(s, ansi.DimPens["green"]+"."))
	test.ExpectSuccess(t, strings.HasSuffix(s, ansi.NormalPen))
}

func TestDisplay(t *testing.T) {
	w := &test.Writer{}
	dsp, err := ledterm.NewDisplay(nil, w)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dsp.Keys() == nil)

	var fr ledterm.Frame
	fr.Add(tristate.Bank{tristate.DrivenHigh})
	test.ExpectSuccess(t, dsp.Draw(fr, "status"))
	test.ExpectEquality(t, w.String(), "\r[@       ] status")

	dsp.CleanUp()
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "\r\n"))
}
