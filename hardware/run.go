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

package hardware

import (
	"github.com/jetsetilly/trifade/curated"
	"github.com/jetsetilly/trifade/govern"
)

// It can be expensive to do a full continue check every tick. The
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 1000

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every tick with the signals of that tick and
// decides whether the emulation should continue. A nil continueCheck runs
// forever.
func (fdr *Fader) Run(continueCheck func(sig Signals) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ Signals) (govern.State, error) { return govern.Running, nil }
	}

	var err error
	var sig Signals

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running:
			sig = fdr.Step()
		case govern.Stepping:
			sig = fdr.Step()
			state = govern.Paused
		case govern.Paused:
			sig = fdr.Signals()
		default:
			return curated.Errorf("fader: unsupported emulation state (%d) in Run() function", state)
		}

		state, err = continueCheck(sig)
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForTicks runs the emulation for the specified number of ticks. The
// continueCheck function can end the emulation early.
func (fdr *Fader) RunForTicks(ticks uint64, continueCheck func(sig Signals) (govern.State, error)) error {
	if ticks == 0 {
		return nil
	}
	target := fdr.state.Ticks + ticks
	return fdr.Run(func(sig Signals) (govern.State, error) {
		state := govern.Running
		if continueCheck != nil {
			var err error
			state, err = continueCheck(sig)
			if err != nil || state == govern.Ending {
				return state, err
			}
		}
		if fdr.state.Ticks >= target {
			return govern.Ending, nil
		}
		return state, nil
	})
}
