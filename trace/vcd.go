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
	"strconv"

	"github.com/jetsetilly/trifade/curated"
	"github.com/jetsetilly/trifade/hardware"
	"github.com/jetsetilly/trifade/hardware/sequencer"
	"github.com/jetsetilly/trifade/hardware/tristate"
	"github.com/jetsetilly/trifade/version"
)

// DefaultTimescale is the timescale written to the VCD header if none is
// specified. One tick of the 12MHz board clock is a little over 83ns.
const DefaultTimescale = "1 ns"

// DefaultTickLength is the number of timescale units per tick when using the
// DefaultTimescale.
const DefaultTickLength = 83

// VCDOptions control how the VCD file is written.
type VCDOptions struct {
	// timescale string written to the header. eg. "1 ns"
	Timescale string

	// number of timescale units in one tick
	TickLength uint64
}

// identifiers for every variable in the dump. VCD identifiers are made from
// printable ASCII characters. the first NumPads are the pads themselves
const (
	idStrobe = tristate.NumPads + iota
	idLedTick
	idPWM
	idDivClk
	idBrightness
	idChannel
	idPolarity
	numIDs
)

func vcdID(i int) string {
	return string(rune('!' + i))
}

func vcdBit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func vcdVector(v uint64, width int) string {
	return fmt.Sprintf("b%0*s", width, strconv.FormatUint(v, 2))
}

// vcdValues returns the value of every variable for the signals. scalar
// values are concatenated with the identifier, vector values are separated
// by a space.
func vcdValues(sig hardware.Signals, pwmWidth int) [numIDs]string {
	var v [numIDs]string
	for i, p := range sig.Pads {
		v[i] = p.String() + vcdID(i)
	}
	v[idStrobe] = vcdBit(sig.Strobe) + vcdID(idStrobe)
	v[idLedTick] = vcdBit(sig.LedTick) + vcdID(idLedTick)
	v[idPWM] = vcdBit(sig.PWM) + vcdID(idPWM)
	v[idDivClk] = vcdBit(sig.DividedClock) + vcdID(idDivClk)
	v[idBrightness] = vcdVector(sig.Brightness, pwmWidth) + " " + vcdID(idBrightness)
	v[idChannel] = vcdVector(uint64(sig.Channel), sequencer.ChannelBits) + " " + vcdID(idChannel)
	v[idPolarity] = vcdBit(bool(sig.Polarity)) + vcdID(idPolarity)
	return v
}

// WriteVCD writes the trace as a Value Change Dump. Only the values that have
// changed since the previous tick are written.
func (tr *Trace) WriteVCD(w io.Writer, opts VCDOptions) error {
	if opts.Timescale == "" {
		opts.Timescale = DefaultTimescale
		opts.TickLength = DefaultTickLength
	}
	if opts.TickLength == 0 {
		opts.TickLength = 1
	}

	bw := bufio.NewWriter(w)

	ver, _, _ := version.Version()
	fmt.Fprintf(bw, "$version %s %s $end\n", version.ApplicationName, ver)
	fmt.Fprintf(bw, "$comment %s $end\n", tr.cfg)
	fmt.Fprintf(bw, "$timescale %s $end\n", opts.Timescale)
	fmt.Fprintln(bw, "$scope module fader $end")
	for i := range tristate.NumPads {
		fmt.Fprintf(bw, "$var wire 1 %s pad%d $end\n", vcdID(i), i)
	}
	fmt.Fprintf(bw, "$var wire 1 %s strobe $end\n", vcdID(idStrobe))
	fmt.Fprintf(bw, "$var wire 1 %s led_tick $end\n", vcdID(idLedTick))
	fmt.Fprintf(bw, "$var wire 1 %s pwm $end\n", vcdID(idPWM))
	fmt.Fprintf(bw, "$var wire 1 %s divclk $end\n", vcdID(idDivClk))
	fmt.Fprintf(bw, "$var reg %d %s brightness [%d:0] $end\n", tr.cfg.PWMWidth, vcdID(idBrightness), tr.cfg.PWMWidth-1)
	fmt.Fprintf(bw, "$var reg %d %s channel [%d:0] $end\n", sequencer.ChannelBits, vcdID(idChannel), sequencer.ChannelBits-1)
	fmt.Fprintf(bw, "$var wire 1 %s polarity $end\n", vcdID(idPolarity))
	fmt.Fprintln(bw, "$upscope $end")
	fmt.Fprintln(bw, "$enddefinitions $end")

	var prev [numIDs]string
	var base uint64
	first := true

	// timestamps are relative to the first tick in the trace, which is not
	// zero for a trace made with CaptureFrom()
	for sig := range tr.All() {
		v := vcdValues(sig, tr.cfg.PWMWidth)

		if first {
			base = sig.Tick
			fmt.Fprintln(bw, "#0")
			fmt.Fprintln(bw, "$dumpvars")
			for _, s := range v {
				fmt.Fprintln(bw, s)
			}
			fmt.Fprintln(bw, "$end")
			first = false
		} else if v != prev {
			fmt.Fprintf(bw, "#%d\n", (sig.Tick-base)*opts.TickLength)
			for i := range v {
				if v[i] != prev[i] {
					fmt.Fprintln(bw, v[i])
				}
			}
		}

		prev = v
	}

	// final timestamp marks the end of the trace
	fmt.Fprintf(bw, "#%d\n", uint64(tr.ticks)*opts.TickLength)

	if err := bw.Flush(); err != nil {
		return curated.Errorf("trace: %v", err)
	}
	return nil
}
