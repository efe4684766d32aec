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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/trifade/test"
)

func TestTraceMode(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"trace", "-preset", "sim", "-ticks", "20"}, nil, w), 0)

	lines := strings.Split(strings.TrimSuffix(w.String(), "\n"), "\n")
	test.ExpectEquality(t, len(lines), 21)
	test.ExpectEquality(t, lines[1], "0 zzzzzzzz 0 up 0 low ---")
}

func TestTraceVCDFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "trace.vcd")

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"TRACE", "-preset", "sim", "-format", "vcd", "-out", filename}, nil, w), 0)
	test.ExpectEquality(t, w.String(), "")

	b, err := os.ReadFile(filename)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), "$enddefinitions $end"))
}

func TestDigestMode(t *testing.T) {
	a := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"digest", "-preset", "sim"}, nil, a), 0)
	b := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"digest", "-preset", "sim"}, nil, b), 0)
	test.ExpectEquality(t, a.String(), b.String())

	// sha1 in hex and a newline
	test.ExpectEquality(t, len(a.String()), 41)

	c := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"digest", "-preset", "sim", "-pwm", "4"}, nil, c), 0)
	test.ExpectInequality(t, a.String(), c.String())
}

func TestStatsMode(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"stats", "-preset", "sim"}, nil, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "pwm=3 div=3"))

	var found bool
	for _, l := range strings.Split(w.String(), "\n") {
		if strings.Join(strings.Fields(l), " ") == "ticks 3360" {
			found = true
		}
	}
	test.ExpectSuccess(t, found)
}

func TestStatsWidthLimits(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"stats", "-pwm", "32", "-div", "32"}, nil, w), exitModeError)
	test.ExpectSuccess(t, strings.Contains(w.String(), "pwm width plus divider width too large: 64"), w.String())

	w.Clear()
	test.ExpectEquality(t, launch([]string{"stats", "-pwm", "32", "-div", "24"}, nil, w), exitModeError)
	test.ExpectSuccess(t, strings.Contains(w.String(), "too long to summarise"), w.String())

	// an explicit tick count is always accepted
	w.Clear()
	test.ExpectEquality(t, launch([]string{"stats", "-pwm", "32", "-div", "24", "-ticks", "100"}, nil, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "pwm=32 div=24"), w.String())
}

func TestPresetsMode(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"presets"}, nil, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "icebreaker"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "sim"))
}

func TestStateMode(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"state", "-preset", "sim", "-ticks", "100"}, nil, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
}

func TestWavMode(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "pads.wav")
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"wav", "-preset", "sim", "-ticks", "100", "-out", filename}, nil, w), 0)

	_, err := os.Stat(filename)
	test.ExpectSuccess(t, err)
}

func TestRegressMode(t *testing.T) {
	db := filepath.Join(t.TempDir(), "regression.db")

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"regress", "add", "-db", db, "-preset", "sim", "-ticks", "1000"}, nil, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "added: 000"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"regress", "list", "-db", db}, nil, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "Total: 1"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"regress", "run", "-db", db}, nil, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "1 succeed, 0 fail"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"regress", "delete", "-db", db, "-yes", "0"}, nil, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "deleted test #0"))
}

func TestRegressDefaultDatabase(t *testing.T) {
	t.Chdir(t.TempDir())
	test.ExpectSuccess(t, os.Mkdir(".trifade", 0700))

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"regress", "add", "-preset", "sim", "-ticks", "100"}, nil, w), 0)

	_, err := os.Stat(filepath.Join(".trifade", "regression.db"))
	test.ExpectSuccess(t, err)
}

func TestVersionMode(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"version"}, nil, w), 0)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "Trifade "))
}

func TestErrors(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"trace", "-preset", "nosuchpreset"}, nil, w), exitModeError)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error in TRACE mode"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"trace", "-pwm", "99"}, nil, w), exitModeError)

	w.Clear()
	test.ExpectEquality(t, launch([]string{"digest", "-preset", "sim", "extra"}, nil, w), exitModeError)

	w.Clear()
	test.ExpectEquality(t, launch([]string{"trace", "-format", "csv", "-ticks", "1"}, nil, w), exitModeError)
}

func TestHelp(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-help"}, nil, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "PERFORMANCE"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"trace", "-help"}, nil, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "-ticks"))
}
