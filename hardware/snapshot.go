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

package hardware

import (
	"github.com/jetsetilly/trifade/curated"
	"github.com/jetsetilly/trifade/logger"
)

// MismatchedState is returned by Plumb() when the state was taken from a
// fader with different register widths.
const MismatchedState = "fader: cannot plumb state: widths pwm=%d div=%d do not match pwm=%d div=%d"

// Snapshot returns a copy of the fader's registers.
func (fdr *Fader) Snapshot() State {
	return fdr.state
}

// Plumb a previously snapshotted state into the fader. The state must have
// come from a fader with the same configuration. The fader is unchanged if an
// error is returned.
func (fdr *Fader) Plumb(state State) error {
	if state.Brightness.Width() != uint(fdr.cfg.PWMWidth) || state.Divider.Width() != uint(fdr.cfg.DividerWidth) {
		return curated.Errorf(MismatchedState,
			state.Brightness.Width(), state.Divider.Width(),
			fdr.cfg.PWMWidth, fdr.cfg.DividerWidth)
	}
	fdr.state = state
	logger.Logf(fdr.env, "fader", "plumbed state at tick %d", state.Ticks)
	return nil
}
