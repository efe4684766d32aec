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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/trifade/config"
	"github.com/jetsetilly/trifade/curated"
	"github.com/jetsetilly/trifade/environment"
	"github.com/jetsetilly/trifade/hardware/tristate"
	"github.com/jetsetilly/trifade/test"
	"github.com/jetsetilly/trifade/trace"
	"github.com/jetsetilly/trifade/wavwriter"
)

func TestDecimation(t *testing.T) {
	_, err := wavwriter.New(nil, "", 0)
	test.ExpectSuccess(t, curated.Is(err, wavwriter.InvalidDecimation))

	aw, err := wavwriter.New(nil, "", 4)
	test.DemandSuccess(t, err)
	for range 10 {
		aw.AddBank(tristate.Bank{})
	}
	test.ExpectEquality(t, aw.Samples(), 2)

	aw.Reset()
	test.ExpectEquality(t, aw.Samples(), 0)
}

func TestWrite(t *testing.T) {
	cfg, err := config.Preset("sim")
	test.DemandSuccess(t, err)
	tr, err := trace.Capture(cfg, 1000)
	test.DemandSuccess(t, err)

	filename := filepath.Join(t.TempDir(), "pads.wav")
	aw, err := wavwriter.New(environment.NewEnvironment(environment.Capture), filename, 1)
	test.DemandSuccess(t, err)

	for sig := range tr.All() {
		aw.AddBank(sig.Pads)
	}
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, int(dec.NumChans), tristate.NumPads)
	test.ExpectEquality(t, int(dec.SampleRate), wavwriter.SampleRate)
	test.ExpectEquality(t, int(dec.BitDepth), wavwriter.BitDepth)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), 1000*tristate.NumPads)

	// compare samples with the pads of the trace
	var i int
	for sig := range tr.All() {
		for ch, p := range sig.Pads {
			v := buf.Data[i*tristate.NumPads+ch]
			switch p {
			case tristate.DrivenHigh:
				test.ExpectSuccess(t, v > 0, sig.Tick, ch)
			case tristate.DrivenLow:
				test.ExpectSuccess(t, v < 0, sig.Tick, ch)
			default:
				test.ExpectEquality(t, v, 0, sig.Tick, ch)
			}
		}
		i++
	}
}
