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

// Package wavwriter writes the state of the pads to disk as a multi-channel
// WAV file, one channel per pad. A pad driven high is written as a positive
// sample, a pad driven low as a negative sample, and a pad at high impedance
// as silence.
//
// The resulting file can be opened in an audio editor to see the pads in the
// same way as a logic analyser.
//
// Sample data is buffered in memory in its entirety and written to disk when
// EndMixing() is called. It is therefore only suitable for short captures.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/trifade/curated"
	"github.com/jetsetilly/trifade/environment"
	"github.com/jetsetilly/trifade/hardware/tristate"
	"github.com/jetsetilly/trifade/logger"
)

// SampleRate of the WAV file. The rate has no relation to the tick rate of
// the fader.
const SampleRate = 44100

// BitDepth of every sample.
const BitDepth = 16

// amplitude of a driven pad
const amplitude = 1<<(BitDepth-1) - 1

// pcm audio format
const audioFormat = 1

// InvalidDecimation is returned by New() when the decimation value is less
// than one.
const InvalidDecimation = "wavwriter: decimation must be one or more: %d"

// WavWriter collects pad states and writes them as a WAV file.
type WavWriter struct {
	env      *environment.Environment
	filename string
	every    int
	count    int
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type. Only
// every nth bank added with AddBank() will be written to the file.
func New(env *environment.Environment, filename string, every int) (*WavWriter, error) {
	if every < 1 {
		return nil, curated.Errorf(InvalidDecimation, every)
	}

	aw := &WavWriter{
		env:      env,
		filename: filename,
		every:    every,
		buffer:   make([]int, 0),
	}

	return aw, nil
}

// AddBank adds the state of the pads for one tick.
func (aw *WavWriter) AddBank(b tristate.Bank) {
	aw.count++
	if aw.count < aw.every {
		return
	}
	aw.count = 0

	for _, p := range b {
		switch p {
		case tristate.DrivenHigh:
			aw.buffer = append(aw.buffer, amplitude)
		case tristate.DrivenLow:
			aw.buffer = append(aw.buffer, -amplitude)
		default:
			aw.buffer = append(aw.buffer, 0)
		}
	}
}

// Samples returns the number of samples per channel collected so far.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer) / tristate.NumPads
}

// EndMixing writes the collected samples to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, BitDepth, tristate.NumPads, audioFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: tristate.NumPads,
			SampleRate:  SampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: BitDepth,
	}

	logger.Logf(aw.env, "wavwriter", "writing %d samples to %s", aw.Samples(), aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Reset discards all collected samples.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
	aw.count = 0
}
