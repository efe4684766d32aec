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

// Package trace captures the output of the fader over a number of ticks.
//
// A Trace does not store the signals it describes. Every call to All()
// creates a new emulation from the starting state and steps it for the
// length of the trace, yielding the signals for each tick as it goes:
//
//	tr, err := trace.Capture(cfg, 10000)
//	if err != nil {
//		return err
//	}
//	for sig := range tr.All() {
//		fmt.Println(sig.Pads)
//	}
//
// Ranging over the trace a second time yields exactly the same sequence.
//
// A trace can be written as plain text with WriteText() or as a Value Change
// Dump with WriteVCD(). A VCD file can be viewed with a waveform viewer such as
// GTKWave.
package trace
