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

// Package analysis summarises the behaviour of the fader over a sequence of
// ticks. The summary includes the duty cycle of every pad in each driven
// state, the number of strobes and led ticks, and statistics of the
// brightness ramp.
package analysis

import (
	"fmt"
	"io"
	"iter"
	"text/tabwriter"

	"github.com/jetsetilly/trifade/hardware"
	"github.com/jetsetilly/trifade/hardware/tristate"
	"gonum.org/v1/gonum/stat"
)

// Summary of a sequence of ticks.
type Summary struct {
	Ticks    int
	Strobes  int
	LedTicks int

	// the largest number of pads that were driven during a single tick
	MaxEnabled int

	// the fraction of ticks each pad was driven high or low
	HighDuty [tristate.NumPads]float64
	LowDuty  [tristate.NumPads]float64

	// the fraction of ticks the PWM output was on
	PWMDuty float64

	BrightnessMax    uint64
	BrightnessMean   float64
	BrightnessStdDev float64
}

// Exclusive returns true if no more than one pad was ever driven at once.
func (s Summary) Exclusive() bool {
	return s.MaxEnabled <= 1
}

// Summarise the sequence of signals.
func Summarise(seq iter.Seq[hardware.Signals]) Summary {
	var s Summary

	var high, low [tristate.NumPads]int
	var pwm int

	// the brightness changes only on a strobe so the samples are weighted by
	// the number of ticks each value was held for
	var brightness []float64
	var weights []float64

	for sig := range seq {
		s.Ticks++

		if sig.Strobe {
			s.Strobes++
		}
		if sig.LedTick {
			s.LedTicks++
		}
		if sig.PWM {
			pwm++
		}

		s.MaxEnabled = max(s.MaxEnabled, sig.Pads.Enabled())
		for i, p := range sig.Pads {
			switch p {
			case tristate.DrivenHigh:
				high[i]++
			case tristate.DrivenLow:
				low[i]++
			}
		}

		s.BrightnessMax = max(s.BrightnessMax, sig.Brightness)
		b := float64(sig.Brightness)
		if len(brightness) > 0 && brightness[len(brightness)-1] == b {
			weights[len(weights)-1]++
		} else {
			brightness = append(brightness, b)
			weights = append(weights, 1)
		}
	}

	if s.Ticks == 0 {
		return s
	}

	n := float64(s.Ticks)
	for i := range tristate.NumPads {
		s.HighDuty[i] = float64(high[i]) / n
		s.LowDuty[i] = float64(low[i]) / n
	}
	s.PWMDuty = float64(pwm) / n

	if s.Ticks > 1 {
		s.BrightnessMean, s.BrightnessStdDev = stat.MeanStdDev(brightness, weights)
	} else {
		s.BrightnessMean = brightness[0]
	}

	return s
}

// Write the summary as a table.
func (s Summary) Write(output io.Writer) error {
	w := tabwriter.NewWriter(output, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "ticks\t%d\n", s.Ticks)
	fmt.Fprintf(w, "strobes\t%d\n", s.Strobes)
	fmt.Fprintf(w, "led ticks\t%d\n", s.LedTicks)
	fmt.Fprintf(w, "max enabled\t%d\n", s.MaxEnabled)
	fmt.Fprintf(w, "pwm duty\t%.4f\n", s.PWMDuty)
	fmt.Fprintf(w, "brightness\tmax=%d mean=%.3f stddev=%.3f\n", s.BrightnessMax, s.BrightnessMean, s.BrightnessStdDev)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "pad\thigh\tlow")
	for i := range tristate.NumPads {
		fmt.Fprintf(w, "%d\t%.4f\t%.4f\n", i, s.HighDuty[i], s.LowDuty[i])
	}

	return w.Flush()
}
