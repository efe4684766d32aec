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

// Package hardware is the base package for the fader emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Fader type is the root of the emulation and owns every register in the
// design. Each call to Step() advances the emulation by one clock tick.
//
// A tick happens in two phases. In the first phase every combinational signal
// (the strobe, the brightness value, the led tick, the PWM output and the
// state of the pads) is computed from the current register values. In the
// second phase every register is given its next value. No register sees
// the next value of any other register during the same tick, which is how the
// synchronous logic of the real hardware behaves:
//
//	sig := state.Evaluate()
//	state = state.Next(sig)
//
// The State type is a plain value. The Snapshot() and Plumb() functions copy
// the state out of and back into a fader. Because the emulation has no inputs
// other than the clock, a fader started from the same state always produces
// the same sequence of signals.
package hardware
