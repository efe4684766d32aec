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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/trifade/config"
	"github.com/jetsetilly/trifade/curated"
	"github.com/jetsetilly/trifade/environment"
	"github.com/jetsetilly/trifade/govern"
	"github.com/jetsetilly/trifade/hardware"
	"github.com/jetsetilly/trifade/logger"
)

// sentinel error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the emulation is given time to settle before measurement begins
const leadTime = 2 * time.Second

// Check the performance of the emulator using the supplied configuration.
//
// Emulation will run for the specified duration and will create a cpu,
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument.
func Check(output io.Writer, profile Profile, cfg config.Config, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	return check(output, profile, cfg, dur, leadTime)
}

func check(output io.Writer, profile Profile, cfg config.Config, dur time.Duration, lead time.Duration) error {
	fdr, err := hardware.NewFader(environment.NewEnvironment(environment.MainEmulation), cfg)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var startTick uint64
	var endTick uint64

	runner := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period has finished
		timerChan := make(chan bool, 1)

		time.AfterFunc(lead, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// only check for end of measurement period every PerformanceBrake
		// ticks. checking the timerChan is relatively expensive
		performanceBrake := 0

		return fdr.Run(func(sig hardware.Signals) (govern.State, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					endTick = sig.Tick
					return govern.Ending, timedOut
				}
				startTick = sig.Tick
				logger.Logf(fdr.Env(), "performance", "measurement started at tick %d", startTick)
			default:
			}

			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	numTicks := endTick - startTick
	rate, accuracy := CalcRate(numTicks, dur.Seconds())
	fmt.Fprintf(output, "%.2f MHz (%d ticks in %.2f seconds) %.1f%% of board clock\n", rate/1e6, numTicks, dur.Seconds(), accuracy)

	return nil
}
