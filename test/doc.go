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

// Package test contains helper functions to remove common boilerplate to
// make testing easier.
//
// The Expect*() functions log an error and allow the test to continue. The
// Demand*() functions stop the test immediately.
//
// Every function accepts an optional list of tags. The tags are included in
// the failure message and are useful for identifying which iteration of a
// loop has failed:
//
//	for i, v := range expected {
//		test.ExpectEquality(t, c.Value(), v, i)
//	}
package test
