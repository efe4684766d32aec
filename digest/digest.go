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

// Package digest creates fingerprints of the fader output. Two fingerprints
// made from the same configuration over the same number of ticks will be the
// same, and are very likely to be different otherwise. This is useful for
// regression testing.
//
// Data is collected in fixed sized blocks. The first bytes of every block are
// the fingerprint of the previous block, so the final fingerprint depends on
// every tick that has been added.
package digest

// Digest implementations compute a fingerprint of an emulation.
type Digest interface {
	Hash() string
	ResetDigest()
}
