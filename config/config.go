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

package config

import (
	"fmt"

	"github.com/jetsetilly/trifade/curated"
)

// Sentinel error patterns returned by Validate().
const (
	ChannelMismatch      = "config: channel count mismatch: %d (must be %d)"
	SequencerMismatch    = "config: sequencer width mismatch: %d (must be %d)"
	InvalidPWMWidth      = "config: pwm width out of range: %d (must be between %d and %d)"
	InvalidDividerWidth  = "config: divider width out of range: %d (must be between %d and %d)"
	InvalidCombinedWidth = "config: pwm width plus divider width too large: %d (must be no more than %d)"
)

// Fixed values dictated by the design.
const (
	NumChannels    = 8
	SequencerWidth = 4
)

// BoardClock is the frequency in Hz of the clock on the reference board. One
// tick of the fader is one cycle of this clock.
const BoardClock = 12_000_000

// Limits for the configurable widths.
const (
	MinPWMWidth     = 1
	MaxPWMWidth     = 32
	MinDividerWidth = 0
	MaxDividerWidth = 32

	// the sequencer cycle is less than 2^(pwm+div+6) ticks and must fit in
	// an int
	MaxCombinedWidth = 56
)

// Config is the construction time configuration of the fader.
type Config struct {
	// resolution of the PWM and of the brightness ramp, in bits
	PWMWidth int `yaml:"pwm_width"`

	// the brightness ramp advances once every 2^DividerWidth ticks
	DividerWidth int `yaml:"divider_width"`

	// number of pads. must match the width of the channel field in the
	// sequencer
	ChannelCount int `yaml:"channel_count"`

	// width of the sequencer counter. three channel bits and one polarity bit
	SequencerWidth int `yaml:"sequencer_width"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		PWMWidth:       11,
		DividerWidth:   11,
		ChannelCount:   NumChannels,
		SequencerWidth: SequencerWidth,
	}
}

func (cfg Config) String() string {
	return fmt.Sprintf("pwm=%d div=%d channels=%d seq=%d",
		cfg.PWMWidth, cfg.DividerWidth, cfg.ChannelCount, cfg.SequencerWidth)
}

// Validate returns an error if the configuration can not be used to create a
// fader.
func (cfg Config) Validate() error {
	if cfg.ChannelCount != NumChannels {
		return curated.Errorf(ChannelMismatch, cfg.ChannelCount, NumChannels)
	}
	if cfg.SequencerWidth != SequencerWidth {
		return curated.Errorf(SequencerMismatch, cfg.SequencerWidth, SequencerWidth)
	}
	if cfg.PWMWidth < MinPWMWidth || cfg.PWMWidth > MaxPWMWidth {
		return curated.Errorf(InvalidPWMWidth, cfg.PWMWidth, MinPWMWidth, MaxPWMWidth)
	}
	if cfg.DividerWidth < MinDividerWidth || cfg.DividerWidth > MaxDividerWidth {
		return curated.Errorf(InvalidDividerWidth, cfg.DividerWidth, MinDividerWidth, MaxDividerWidth)
	}
	if cfg.PWMWidth+cfg.DividerWidth > MaxCombinedWidth {
		return curated.Errorf(InvalidCombinedWidth, cfg.PWMWidth+cfg.DividerWidth, MaxCombinedWidth)
	}
	return nil
}

// StrobePeriod returns the number of ticks between advances of the brightness
// ramp.
func (cfg Config) StrobePeriod() int {
	return 1 << cfg.DividerWidth
}

// RampPeriod returns the number of ticks in one full fade of a single LED, up
// and back down.
func (cfg Config) RampPeriod() int {
	return ((1 << (cfg.PWMWidth + 1)) - 2) * cfg.StrobePeriod()
}

// CyclePeriod returns the number of ticks before the sequencer returns to its
// starting state. The result is only meaningful for a valid configuration.
func (cfg Config) CyclePeriod() int {
	return ((1 << (cfg.SequencerWidth + 1)) - 2) * cfg.RampPeriod()
}
