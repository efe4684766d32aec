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

package digest

import (
	"crypto/sha1"
	"fmt"
	"iter"

	"github.com/jetsetilly/trifade/hardware"
	"github.com/jetsetilly/trifade/hardware/tristate"
)

// the number of ticks collected before the block is hashed
const blockTicks = 1024

// chain is the data and fingerprint shared by the digest types
type chain struct {
	digest [sha1.Size]byte
	buffer []byte
	ct     int
}

func newChain(bytesPerTick int) chain {
	return chain{
		buffer: make([]byte, sha1.Size+blockTicks*bytesPerTick),
		ct:     sha1.Size,
	}
}

// Hash implements the Digest interface. Data that has not yet filled a
// block is included in the hash.
func (c chain) Hash() string {
	if c.ct == sha1.Size {
		return fmt.Sprintf("%x", c.digest)
	}
	return fmt.Sprintf("%x", sha1.Sum(c.buffer[:c.ct]))
}

// ResetDigest implements the Digest interface.
func (c *chain) ResetDigest() {
	clear(c.digest[:])
	c.ct = copy(c.buffer, c.digest[:])
}

func (c *chain) add(b ...byte) {
	c.ct += copy(c.buffer[c.ct:], b)
	if c.ct >= len(c.buffer) {
		c.digest = sha1.Sum(c.buffer)
		c.ct = copy(c.buffer, c.digest[:])
	}
}

// Pads is a fingerprint of the state of the output pads. It is the
// fingerprint of what can be observed from outside the device.
type Pads struct {
	chain
}

// NewPads is the preferred method of initialisation for the Pads type.
func NewPads() *Pads {
	return &Pads{chain: newChain(tristate.NumPads)}
}

// AddBank adds the state of the pads for one tick.
func (dig *Pads) AddBank(b tristate.Bank) {
	var d [tristate.NumPads]byte
	for i, p := range b {
		d[i] = byte(p)
	}
	dig.add(d[:]...)
}

// Signals is a fingerprint of every signal in the fader, including the
// internal signals that are not visible on the pads.
type Signals struct {
	pads Pads
	chain
}

// bytes per tick for the Signals type: eight bytes of brightness, the
// channel and a byte of flags
const signalsBytes = 10

// NewSignals is the preferred method of initialisation for the Signals type.
func NewSignals() *Signals {
	return &Signals{
		pads:  *NewPads(),
		chain: newChain(signalsBytes),
	}
}

// Hash implements the Digest interface.
func (dig *Signals) Hash() string {
	return fmt.Sprintf("%x", sha1.Sum([]byte(dig.pads.Hash()+dig.chain.Hash())))
}

// ResetDigest implements the Digest interface.
func (dig *Signals) ResetDigest() {
	dig.pads.ResetDigest()
	dig.chain.ResetDigest()
}

// AddSignals adds the signals for one tick.
func (dig *Signals) AddSignals(sig hardware.Signals) {
	dig.pads.AddBank(sig.Pads)

	var d [signalsBytes]byte
	for i := range 8 {
		d[i] = byte(sig.Brightness >> (i * 8))
	}
	d[8] = byte(sig.Channel)
	for i, f := range []bool{sig.Strobe, sig.DividedClock, sig.Direction, sig.LedTick, bool(sig.Polarity), sig.PWM} {
		if f {
			d[9] |= 1 << i
		}
	}
	dig.add(d[:]...)
}

// OfPads returns the pad fingerprint of every tick in the sequence.
func OfPads(seq iter.Seq[hardware.Signals]) string {
	dig := NewPads()
	for sig := range seq {
		dig.AddBank(sig.Pads)
	}
	return dig.Hash()
}

// OfSignals returns the signal fingerprint of every tick in the sequence.
func OfSignals(seq iter.Seq[hardware.Signals]) string {
	dig := NewSignals()
	for sig := range seq {
		dig.AddSignals(sig)
	}
	return dig.Hash()
}
