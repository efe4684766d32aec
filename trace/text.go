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

package trace

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/jetsetilly/trifade/curated"
	"github.com/jetsetilly/trifade/hardware"
)

// flags returns a short string showing the state of the single bit signals.
func flags(sig hardware.Signals) string {
	b := []byte("---")
	if sig.Strobe {
		b[0] = 'S'
	}
	if sig.LedTick {
		b[1] = 'L'
	}
	if sig.PWM {
		b[2] = 'P'
	}
	return string(b)
}

// WriteText writes one line for every tick in the sequence. Each line has
// the tick number, the pads, the brightness and direction of the ramp, the
// sequencer state and a flag field showing strobe (S), led tick (L) and PWM
// (P).
func WriteText(w io.Writer, seq iter.Seq[hardware.Signals]) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# tick pads brightness direction channel polarity flags")

	for sig := range seq {
		dir := "up"
		if sig.Direction {
			dir = "down"
		}
		fmt.Fprintf(bw, "%d %s %d %s %d %s %s\n", sig.Tick, sig.Pads, sig.Brightness, dir, sig.Channel, sig.Polarity, flags(sig))
	}

	if err := bw.Flush(); err != nil {
		return curated.Errorf("trace: %v", err)
	}
	return nil
}
