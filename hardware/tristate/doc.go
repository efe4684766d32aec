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

// Package tristate models the LED pads and the multiplexer that drives them.
//
// A pad can be driven high, driven low or left floating (high impedance). A
// floating pad is electrically disconnected, which is what allows several
// LEDs to share a small number of pads. Only one pad is ever driven at a time
// and the PWM output is used to switch the output enable of that pad, which
// fades the LED connected to it.
package tristate
