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

import (
	"strings"
)

// NumPads is the number of physical pads driven by the multiplexer.
const NumPads = 8

// Pad is the state of a single physical pad.
type Pad int

// List of valid Pad values.
const (
	HighZ Pad = iota
	DrivenLow
	DrivenHigh
)

// String returns the pad state using the same characters as a value change
// dump.
func (p Pad) String() string {
	switch p {
	case HighZ:
		return "z"
	case DrivenLow:
		return "0"
	case DrivenHigh:
		return "1"
	}
	panic("unknown pad state")
}

// Driven returns true if the pad is not floating.
func (p Pad) Driven() bool {
	return p != HighZ
}

// Pin is the output enable and output level of a tristate buffer.
type Pin struct {
	OE    bool
	Level bool
}

// Pad resolves the pin to a pad state.
func (pn Pin) Pad() Pad {
	if !pn.OE {
		return HighZ
	}
	if pn.Level {
		return DrivenHigh
	}
	return DrivenLow
}

// Bank is the state of every pad at a single instant.
type Bank [NumPads]Pad

func (b Bank) String() string {
	s := strings.Builder{}
	s.Grow(NumPads)
	for _, p := range b {
		s.WriteString(p.String())
	}
	return s.String()
}

// Enabled returns the number of pads being driven.
func (b Bank) Enabled() int {
	var n int
	for _, p := range b {
		if p.Driven() {
			n++
		}
	}
	return n
}

// Active returns the index of the driven pad. Returns -1 if no pad is driven.
func (b Bank) Active() int {
	for i, p := range b {
		if p.Driven() {
			return i
		}
	}
	return -1
}
