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

package trace_test

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/jetsetilly/trifade/config"
	"github.com/jetsetilly/trifade/curated"
	"github.com/jetsetilly/trifade/environment"
	"github.com/jetsetilly/trifade/hardware"
	"github.com/jetsetilly/trifade/test"
	"github.com/jetsetilly/trifade/trace"
)

func simConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Preset("sim")
	test.DemandSuccess(t, err)
	return cfg
}

func TestCaptureErrors(t *testing.T) {
	cfg := config.Default()
	cfg.DividerWidth = 99
	_, err := trace.Capture(cfg, 100)
	test.ExpectSuccess(t, curated.Has(err, config.InvalidDividerWidth))

	_, err = trace.Capture(config.Default(), -1)
	test.ExpectSuccess(t, curated.Is(err, trace.InvalidLength))
}

func TestRestartable(t *testing.T) {
	tr, err := trace.Capture(simConfig(t), 500)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tr.Len(), 500)

	a := slices.Collect(tr.All())
	b := slices.Collect(tr.All())
	test.ExpectEquality(t, len(a), 500)
	test.ExpectSuccess(t, slices.Equal(a, b))

	for i, sig := range a {
		test.ExpectEquality(t, sig.Tick, uint64(i))
	}
}

func TestMatchesFader(t *testing.T) {
	cfg := simConfig(t)
	tr, err := trace.Capture(cfg, 300)
	test.DemandSuccess(t, err)

	fdr, err := hardware.NewFader(environment.NewEnvironment(environment.Capture), cfg)
	test.DemandSuccess(t, err)

	for sig := range tr.All() {
		test.ExpectEquality(t, sig, fdr.Step())
	}
}

func TestEarlyStop(t *testing.T) {
	tr, err := trace.Capture(simConfig(t), 1000)
	test.DemandSuccess(t, err)

	var n int
	for sig := range tr.All() {
		if sig.Tick == 9 {
			break
		}
		n++
	}
	test.ExpectEquality(t, n, 9)
}

func TestCaptureFrom(t *testing.T) {
	fdr, err := hardware.NewFader(environment.NewEnvironment(environment.Capture), simConfig(t))
	test.DemandSuccess(t, err)
	fdr.StepTicks(100)

	tr, err := trace.CaptureFrom(fdr, 50)
	test.DemandSuccess(t, err)

	a := slices.Collect(tr.All())
	test.ExpectEquality(t, len(a), 50)
	test.ExpectEquality(t, a[0].Tick, uint64(100))
	test.ExpectEquality(t, a[49].Tick, uint64(149))

	// fader is not affected by the trace
	test.ExpectEquality(t, fdr.Ticks(), uint64(100))
	test.ExpectEquality(t, a[0], fdr.Step())
}

func TestWriteText(t *testing.T) {
	tr, err := trace.Capture(simConfig(t), 120)
	test.DemandSuccess(t, err)

	w := &test.Writer{}
	test.DemandSuccess(t, trace.WriteText(w, tr.All()))

	lines := strings.Split(strings.TrimSuffix(w.String(), "\n"), "\n")
	test.ExpectEquality(t, len(lines), 121)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "#"))
	test.ExpectEquality(t, lines[1], "0 zzzzzzzz 0 up 0 low ---")

	// divider strobes at tick 7
	test.ExpectEquality(t, lines[8], "7 zzzzzzzz 0 up 0 low S--")

	// end of the first fade
	test.ExpectSuccess(t, strings.HasPrefix(lines[113], "112 "))
	test.ExpectSuccess(t, strings.HasSuffix(lines[113], "-L-"))
}

func TestWriteVCD(t *testing.T) {
	tr, err := trace.Capture(simConfig(t), 2000)
	test.DemandSuccess(t, err)

	w := &test.Writer{}
	test.DemandSuccess(t, tr.WriteVCD(w, trace.VCDOptions{Timescale: "1 us", TickLength: 1}))

	out := w.String()
	test.ExpectSuccess(t, strings.Contains(out, "$timescale 1 us $end"))
	test.ExpectSuccess(t, strings.Contains(out, "$var reg 3 - brightness [2:0] $end"))
	test.ExpectSuccess(t, strings.Contains(out, "$enddefinitions $end"))
	test.ExpectSuccess(t, strings.Contains(out, "$dumpvars"))

	// pad zero is driven low during the first fade and is otherwise high
	// impedance. it is driven high after the first change of polarity
	test.ExpectSuccess(t, strings.Contains(out, "\nz!\n"))
	test.ExpectSuccess(t, strings.Contains(out, "\n0!\n"))
	test.ExpectSuccess(t, strings.Contains(out, "\n1!\n"))

	ts := vcdTimestamps(t, out)
	test.ExpectEquality(t, ts[0], 0)
	test.ExpectEquality(t, ts[len(ts)-1], 2000)
}

// vcdTimestamps returns the timestamps in the VCD output, checking that they
// are strictly increasing.
func vcdTimestamps(t *testing.T, out string) []int {
	t.Helper()

	var ts []int
	prev := -1
	for _, l := range strings.Split(out, "\n") {
		if s, ok := strings.CutPrefix(l, "#"); ok {
			n, err := strconv.Atoi(s)
			test.DemandSuccess(t, err)
			test.ExpectSuccess(t, n > prev, l)
			prev = n
			ts = append(ts, n)
		}
	}
	return ts
}

func TestWriteVCDFromRunningFader(t *testing.T) {
	fdr, err := hardware.NewFader(environment.NewEnvironment(environment.Capture), simConfig(t))
	test.DemandSuccess(t, err)
	fdr.StepTicks(1000)

	tr, err := trace.CaptureFrom(fdr, 50)
	test.DemandSuccess(t, err)

	w := &test.Writer{}
	test.DemandSuccess(t, tr.WriteVCD(w, trace.VCDOptions{Timescale: "1 ns", TickLength: 10}))

	// the dump starts at zero and not at the tick count of the fader
	ts := vcdTimestamps(t, w.String())
	test.DemandSuccess(t, len(ts) > 2)
	test.ExpectEquality(t, ts[0], 0)
	test.ExpectEquality(t, ts[len(ts)-1], 500)
	for _, n := range ts {
		test.ExpectSuccess(t, n <= 500, n)
		test.ExpectSuccess(t, n%10 == 0, n)
	}
}
