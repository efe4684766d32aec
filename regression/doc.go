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

// Package regression facilitates the regression testing of the fader. A
// regression entry records the configuration, the number of ticks and the
// digest of the fader output. Running the regression test recreates the
// digest and compares it to the recorded value.
//
// Entries are kept in a database file, managed by the database package. The
// RegressAdd(), RegressList(), RegressDelete() and RegressRun() functions
// each start and end a database session of their own.
package regression
