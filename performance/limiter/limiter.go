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

// Package limiter paces an emulation so that it runs at a fixed number of
// frames per second, regardless of how quickly the frame can be emulated.
package limiter

import (
	"time"

	"github.com/jetsetilly/trifade/curated"
)

// InvalidLimit is returned when the frames per second value is not positive.
const InvalidLimit = "limiter: frames per second must be positive: %d"

// FpsLimiter signals the start of each frame.
type FpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration
	ticker          *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter
// type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	lim := &FpsLimiter{}
	if err := lim.SetLimit(framesPerSecond); err != nil {
		return nil, err
	}
	lim.ticker = time.NewTicker(lim.secondsPerFrame)
	return lim, nil
}

// SetLimit changes the number of frames per second.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return curated.Errorf(InvalidLimit, framesPerSecond)
	}
	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Second / time.Duration(framesPerSecond)
	if lim.ticker != nil {
		lim.ticker.Reset(lim.secondsPerFrame)
	}
	return nil
}

// Limit returns the current number of frames per second.
func (lim *FpsLimiter) Limit() int {
	return lim.framesPerSecond
}

// C returns the channel on which the start of each frame is signalled. If a
// frame takes too long to emulate the missed signals are dropped.
func (lim *FpsLimiter) C() <-chan time.Time {
	return lim.ticker.C
}

// Wait blocks until the start of the next frame.
func (lim *FpsLimiter) Wait() {
	<-lim.ticker.C
}

// HasWaited returns true if the next frame has started. It does not block.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Stop the limiter. The limiter should not be used after being stopped.
func (lim *FpsLimiter) Stop() {
	lim.ticker.Stop()
}
