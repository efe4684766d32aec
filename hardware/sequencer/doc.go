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

// Package sequencer selects which of the LED pads is active and whether the
// pad is driven high or low. Each pad has a pair of LEDs connected in
// opposite directions, so driving the pad high lights one of them (red) and
// driving it low lights the other (green).
//
// The sequencer is a four bit triangle wave counter, advanced once for every
// led tick. The bits of the counter's value are interpreted as:
//
//	bit  3 2 1 0
//	     c c c p
//
// where ccc is the active channel and p is the polarity. As the counter ramps
// up every channel is visited in turn, first in one polarity and then the
// other. As it ramps down the channels are visited again in reverse.
package sequencer
