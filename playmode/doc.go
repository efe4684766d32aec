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

// Package playmode runs the fader in real time and draws the LEDs on a
// display.
//
// The number of ticks emulated for each frame is the tick rate divided by the
// number of frames per second. The default rate is the clock of the reference
// board, in which case the LEDs fade at the same speed as they would on the
// real hardware, provided the host is fast enough.
//
// While playing, the following keys are recognised:
//
//	q, ESC, ctrl-c   quit
//	space            pause / resume
//	s                step one tick while paused
//	r                reset the fader
//	+ -              double or halve the tick rate
package playmode
