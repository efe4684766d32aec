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

// Package clockdiv derives a slow periodic strobe from the fast system clock.
//
// The divider of width D counts every tick in a D+1 bit register. The top bit
// of the register is a square wave with a period of 2^(D+1) ticks. The strobe
// is true for the one tick in every 2^D where the low D bits are all ones, ie.
// on the tick where they are about to wrap to zero:
//
//	tick     ... 13 14 15 16 17 ...   (D = 4)
//	strobe   ...  _  _  *  _  _ ...
//	clock    ...  0  0  0  1  1 ...
//
// The divided clock therefore changes state on the commit of every strobe
// tick, and every second strobe coincides with a falling edge.
package clockdiv
