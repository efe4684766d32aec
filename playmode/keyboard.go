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

package playmode

import (
	"github.com/jetsetilly/trifade/govern"
	"github.com/jetsetilly/trifade/ledterm"
	"github.com/jetsetilly/trifade/logger"
)

// handleKey changes the play state according to the key press.
func (pl *playmode) handleKey(k byte) error {
	switch k {
	case 'q', 'Q', ledterm.KeyEsc, ledterm.KeyInterrupt:
		pl.state = govern.Ending

	case ledterm.KeySuspend:
		return ledterm.SuspendProcess()

	case ledterm.KeySpace:
		if pl.state == govern.Paused {
			pl.state = govern.Running
		} else {
			pl.state = govern.Paused
		}

	case 's', 'S':
		if pl.state == govern.Paused {
			pl.state = govern.Stepping
		}

	case 'r', 'R':
		pl.fdr.Reset()
		pl.frame.Reset()
		pl.count = 0

	case '+', '=':
		pl.setRate(pl.rate * 2)
		logger.Logf(pl.fdr.Env(), "playmode", "rate changed to %d", pl.rate)

	case '-', '_':
		pl.setRate(pl.rate / 2)
		logger.Logf(pl.fdr.Env(), "playmode", "rate changed to %d", pl.rate)
	}

	return nil
}
