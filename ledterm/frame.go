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

package ledterm

import (
	"strings"

	"github.com/jetsetilly/trifade/hardware/tristate"
	"github.com/jetsetilly/trifade/ledterm/ansi"
)

// characters used to draw an LED, from off to fully lit
const ramp = " .:-=+*#%@"

// Frame accumulates the state of the pads over many ticks.
type Frame struct {
	Ticks int
	High  [tristate.NumPads]int
	Low   [tristate.NumPads]int
}

// Add the state of the pads for one tick.
func (fr *Frame) Add(b tristate.Bank) {
	fr.Ticks++
	for i, p := range b {
		switch p {
		case tristate.DrivenHigh:
			fr.High[i]++
		case tristate.DrivenLow:
			fr.Low[i]++
		}
	}
}

// Reset the frame ready for a new accumulation.
func (fr *Frame) Reset() {
	*fr = Frame{}
}

// Level returns the state the pad was most often driven to during the frame
// and the fraction of the frame it was in that state. If the pad was never
// driven the state is HighZ.
func (fr Frame) Level(pad int) (tristate.Pad, float64) {
	if fr.Ticks == 0 {
		return tristate.HighZ, 0
	}
	switch {
	case fr.High[pad] == 0 && fr.Low[pad] == 0:
		return tristate.HighZ, 0
	case fr.High[pad] >= fr.Low[pad]:
		return tristate.DrivenHigh, float64(fr.High[pad]) / float64(fr.Ticks)
	}
	return tristate.DrivenLow, float64(fr.Low[pad]) / float64(fr.Ticks)
}

// glyph returns the character for an intensity. any intensity above zero is
// visible
func glyph(intensity float64) byte {
	if intensity <= 0 {
		return ramp[0]
	}
	i := int(intensity*float64(len(ramp)-1) + 0.5)
	i = max(1, min(i, len(ramp)-1))
	return ramp[i]
}

// Render the frame as a single line. Colour is used if the colour argument is
// true.
func (fr Frame) Render(colour bool) string {
	s := strings.Builder{}

	for i := range tristate.NumPads {
		p, intensity := fr.Level(i)
		g := glyph(intensity)

		if !colour {
			s.WriteByte(g)
			continue
		}

		pen := "green"
		if p == tristate.DrivenHigh {
			pen = "red"
		}
		if intensity < 0.5 {
			s.WriteString(ansi.DimPens[pen])
		} else {
			s.WriteString(ansi.Pens[pen])
		}
		s.WriteByte(g)
	}

	if colour {
		s.WriteString(ansi.NormalPen)
	}

	return s.String()
}
