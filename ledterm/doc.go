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

// Package ledterm draws the eight LEDs on a terminal.
//
// The LEDs flicker much faster than a terminal can be redrawn, so the state
// of the pads is accumulated in a Frame and the LEDs are drawn with an
// intensity proportional to how long each one was lit during the frame. A pad
// driven high is drawn red and a pad driven low is drawn green, in the manner
// of a bi-colour LED wired across two pads.
//
// The Display type takes care of putting the terminal into raw mode, so that
// single key presses can be read without waiting for the return key.
package ledterm
