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

// Package register implements the fixed width storage element that every
// other part of the fader is built from. A register is a value type. Updating
// a register produces a new register, which makes it easy for the owning
// component to compute a next value from the current value without disturbing
// anything that still needs to read the current value during the same tick.
//
// Arithmetic wraps modulo 2^width. There is no overflow error:
//
//	r := register.New(3)
//	r = r.Add(7) // 7
//	r = r.Add(1) // 0
//
// Widths between 0 and MaxWidth inclusive are supported. A zero width register
// always has the value zero.
package register
