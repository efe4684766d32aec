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

// Step the fader forward one tick. The signals returned are those that were
// present during the tick, before the registers were updated.
func (fdr *Fader) Step() Signals {
	sig := fdr.state.Evaluate()
	fdr.state = fdr.state.Next(sig)
	return sig
}

// StepTicks steps the fader forward the specified number of ticks. The
// signals for the final tick are returned.
func (fdr *Fader) StepTicks(n int) Signals {
	var sig Signals
	for range n {
		sig = fdr.Step()
	}
	return sig
}
