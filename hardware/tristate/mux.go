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

package tristate

// Mux decides the state of every pad. The output enable of the pad selected
// by channel follows the PWM output. Every pad shares the same output level.
func Mux(pwm bool, channel int, level bool) Bank {
	var b Bank
	for i := range b {
		b[i] = Pin{
			OE:    pwm && channel == i,
			Level: level,
		}.Pad()
	}
	return b
}
