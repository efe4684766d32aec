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

// Package edgetick paces a slow consumer from the output of a triangle wave
// counter. The detector remembers the value it saw on the previous tick and
// fires when the value has changed to zero. Being at zero is not enough: the
// value must have arrived there since the previous tick.
//
// When the observed counter is paced by a divided clock its value stays at
// zero for many ticks but the detector fires on the first of them only. The
// result is a single tick pulse once per ramp period.
package edgetick
