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

// Package updown implements the triangle wave counter. The counter ramps up
// from zero to its maximum value and then back down again, forever.
//
// Rather than count up and then count down with a subtractor, the counter
// keeps a single extended register that is one bit wider than the visible
// value and only ever counts up. The top bit of the extended register is the
// direction. When the direction bit is set the visible value is the bit
// inversion of the low bits, which reflects the ramp at the top.
//
// Left alone, this scheme would show the extreme values twice in succession
// (15 followed by ^16 which is also 15, for example). To avoid this the
// counter skips a value whenever the low bits are all ones: the extended
// register is incremented by two instead of one. The sequence of values for a
// width of four is therefore:
//
//	0 1 2 ... 14 15 14 13 ... 1 0 1 2 ...
//
// and the period of the ramp is 2^(W+1)-2 advances.
//
// The Step() function always advances the counter. The Tick() function only
// advances the counter when the supplied tick signal is true, allowing the
// rate of the ramp to be paced by a divided clock or by some other event.
package updown
