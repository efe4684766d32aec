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

package register

import (
	"fmt"
)

// MaxWidth is the widest register that can be created.
const MaxWidth = 63

// Register is a fixed width unsigned integer.
type Register struct {
	width uint
	value uint64
}

// New is the preferred method of initialisation for the Register type. The
// register starts at zero. Widths greater than MaxWidth will cause a panic
// because they indicate a programming error rather than a configuration
// error; configuration is validated before any register is created.
func New(width uint) Register {
	if width > MaxWidth {
		panic(fmt.Sprintf("register: width too large (%d)", width))
	}
	return Register{width: width}
}

func (r Register) String() string {
	if r.width == 0 {
		return ""
	}
	return fmt.Sprintf("%0*b", r.width, r.value)
}

// Width returns the number of bits in the register.
func (r Register) Width() uint {
	return r.width
}

// Mask returns a value with every bit of the register set.
func (r Register) Mask() uint64 {
	return (uint64(1) << r.width) - 1
}

// Value returns the current value of the register.
func (r Register) Value() uint64 {
	return r.value
}

// Bit returns true if bit n of the register is set. Bits outside the width of
// the register are always clear.
func (r Register) Bit(n uint) bool {
	if n >= r.width {
		return false
	}
	return r.value&(1<<n) != 0
}

// Low returns the low n bits of the register.
func (r Register) Low(n uint) uint64 {
	if n >= r.width {
		return r.value
	}
	return r.value & ((uint64(1) << n) - 1)
}

// Add returns the register incremented by n, wrapping as required.
func (r Register) Add(n uint64) Register {
	r.value = (r.value + n) & r.Mask()
	return r
}

// Load returns the register with the value v, truncated to the width of the
// register.
func (r Register) Load(v uint64) Register {
	r.value = v & r.Mask()
	return r
}
