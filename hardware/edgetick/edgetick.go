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

package edgetick

import "fmt"

// Detector fires on a transition into zero.
type Detector struct {
	prev uint64
}

func (det Detector) String() string {
	return fmt.Sprintf("prev=%d", det.prev)
}

// Previous returns the value observed on the previous tick.
func (det Detector) Previous() uint64 {
	return det.prev
}

// Fire returns true if current represents a transition into zero.
func (det Detector) Fire(current uint64) bool {
	return det.prev != current && current == 0
}

// Step records current as the previously observed value. It should be called
// on every tick whether or not Fire() returned true.
func (det *Detector) Step(current uint64) {
	det.prev = current
}
