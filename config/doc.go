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

// Package config holds the construction time configuration of the fader. A
// configuration is fixed once the fader has been created; there is no
// runtime reconfiguration.
//
// The Default() configuration is the design that runs on the board: an eleven
// bit PWM with the brightness ramp advanced once every 2048 clock ticks.
// Named presets are embedded in the binary and can be retrieved with the
// Preset() function. A configuration can also be loaded from a YAML file:
//
//	pwm_width: 3
//	divider_width: 3
//
// Fields missing from the file keep their default values.
//
// The channel count and the sequencer width are fixed by the design (three
// channel bits and one polarity bit). They are part of the configuration so
// that a mismatched configuration is rejected rather than silently ignored.
package config
