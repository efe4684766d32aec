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

package analysis_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/trifade/analysis"
	"github.com/jetsetilly/trifade/config"
	"github.com/jetsetilly/trifade/hardware"
	"github.com/jetsetilly/trifade/test"
	"github.com/jetsetilly/trifade/trace"
	"gonum.org/v1/gonum/stat"
)

// one complete cycle of the sequencer with the sim preset. thirty fades of
// one hundred and twelve ticks each
const simCycle = 3360

func simTrace(t *testing.T, ticks int) *trace.Trace {
	t.Helper()
	cfg, err := config.Preset("sim")
	test.DemandSuccess(t, err)
	tr, err := trace.Capture(cfg, ticks)
	test.DemandSuccess(t, err)
	return tr
}

func TestEmpty(t *testing.T) {
	s := analysis.Summarise(func(func(hardware.Signals) bool) {})
	test.ExpectEquality(t, s.Ticks, 0)
	test.ExpectEquality(t, s.BrightnessMean, 0.0)
	test.ExpectSuccess(t, s.Exclusive())
}

func TestCycle(t *testing.T) {
	s := analysis.Summarise(simTrace(t, simCycle).All())

	test.ExpectEquality(t, s.Ticks, simCycle)
	test.ExpectEquality(t, s.Strobes, simCycle/8)
	test.ExpectEquality(t, s.LedTicks, 29)
	test.ExpectEquality(t, s.MaxEnabled, 1)
	test.ExpectSuccess(t, s.Exclusive())
	test.ExpectEquality(t, s.BrightnessMax, uint64(7))
	test.ExpectApproximate(t, s.BrightnessMean, 3.5, 0.0001)
	test.ExpectApproximate(t, s.PWMDuty, 0.4375, 0.0001)

	// every fade has 49 ticks of PWM output. the sequencer visits the first
	// and last states once per cycle and every other state twice
	once := 49.0 / simCycle
	twice := 98.0 / simCycle

	test.ExpectApproximate(t, s.LowDuty[0], once, 0.0001)
	test.ExpectApproximate(t, s.HighDuty[0], twice, 0.0001)
	test.ExpectApproximate(t, s.LowDuty[7], twice, 0.0001)
	test.ExpectApproximate(t, s.HighDuty[7], once, 0.0001)
	for i := 1; i < 7; i++ {
		test.ExpectApproximate(t, s.LowDuty[i], twice, 0.0001, i)
		test.ExpectApproximate(t, s.HighDuty[i], twice, 0.0001, i)
	}
}

func TestStdDev(t *testing.T) {
	tr := simTrace(t, 1000)

	var x []float64
	for sig := range tr.All() {
		x = append(x, float64(sig.Brightness))
	}
	mean, std := stat.MeanStdDev(x, nil)

	s := analysis.Summarise(tr.All())
	test.ExpectApproximate(t, s.BrightnessMean, mean, 0.0001)
	test.ExpectApproximate(t, s.BrightnessStdDev, std, 0.0001)
}

func TestWrite(t *testing.T) {
	s := analysis.Summarise(simTrace(t, 500).All())

	w := &test.Writer{}
	test.DemandSuccess(t, s.Write(w))
	lines := strings.Split(w.String(), "\n")
	test.ExpectEquality(t, strings.Join(strings.Fields(lines[0]), " "), "ticks 500")
	test.ExpectEquality(t, strings.Join(strings.Fields(lines[7]), " "), "pad high low")
}
