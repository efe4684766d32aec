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

// Package environment describes the context in which a fader emulation is
// running. The main emulation is the one driven directly by the user. Other
// emulations, such as those created by a trace capture or an analysis pass,
// are given a label so that they can be told apart.
//
// The Environment type implements the logger.Permission interface. Only the
// main emulation is allowed to create log entries.
package environment
