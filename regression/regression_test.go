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

package regression_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/trifade/config"
	"github.com/jetsetilly/trifade/curated"
	"github.com/jetsetilly/trifade/regression"
	"github.com/jetsetilly/trifade/test"
)

func addEntry(t *testing.T, dbFile string, preset string, mode regression.DigestMode) {
	t.Helper()
	cfg, err := config.Preset(preset)
	test.DemandSuccess(t, err)
	reg, err := regression.NewDigestRegression(cfg, 2000, mode, preset)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, regression.RegressAdd(&test.Writer{}, dbFile, reg))
}

func TestParseDigestMode(t *testing.T) {
	m, err := regression.ParseDigestMode("PADS")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, regression.DigestPads)
	test.ExpectEquality(t, m.String(), "pads")

	_, err = regression.ParseDigestMode("video")
	test.ExpectFailure(t, err)
}

func TestNewDigestRegression(t *testing.T) {
	_, err := regression.NewDigestRegression(config.Default(), 0, regression.DigestPads, "")
	test.ExpectFailure(t, err)

	_, err = regression.NewDigestRegression(config.Default(), 10, regression.DigestUndefined, "")
	test.ExpectFailure(t, err)

	cfg := config.Default()
	cfg.ChannelCount = 4
	_, err = regression.NewDigestRegression(cfg, 10, regression.DigestPads, "")
	test.ExpectSuccess(t, curated.Has(err, config.ChannelMismatch))
}

func TestAddAndRun(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "regression.db")

	addEntry(t, dbFile, "sim", regression.DigestPads)
	addEntry(t, dbFile, "fade4", regression.DigestSignals)

	w := &test.Writer{}
	test.ExpectSuccess(t, regression.RegressList(w, dbFile))
	test.ExpectSuccess(t, strings.Contains(w.String(), "000 [pads] pwm=3 div=3 ticks=2000 [sim]"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "001 [signals] pwm=4 div=4 ticks=2000 [fade4]"))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "Total: 2\n"))

	w.Clear()
	test.ExpectSuccess(t, regression.RegressRun(w, dbFile, true, nil))
	test.ExpectSuccess(t, strings.Contains(w.String(), "regression tests: 2 succeed, 0 fail"))

	w.Clear()
	test.ExpectSuccess(t, regression.RegressRun(w, dbFile, false, []string{"1"}))
	test.ExpectSuccess(t, strings.Contains(w.String(), "regression tests: 1 succeed, 0 fail"))

	err := regression.RegressRun(w, dbFile, false, []string{"one"})
	test.ExpectSuccess(t, curated.Is(err, regression.InvalidKey))
}

func TestFailure(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "regression.db")
	addEntry(t, dbFile, "sim", regression.DigestPads)

	// alter the recorded number of ticks so that the digest no longer matches
	data, err := os.ReadFile(dbFile)
	test.DemandSuccess(t, err)
	data = []byte(strings.Replace(string(data), "2000", "2001", 1))
	test.DemandSuccess(t, os.WriteFile(dbFile, data, 0o644))

	w := &test.Writer{}
	err = regression.RegressRun(w, dbFile, false, nil)
	test.ExpectSuccess(t, curated.Is(err, regression.RegressionFailed))
	test.ExpectSuccess(t, strings.Contains(w.String(), "failure: 000"))
}

func TestDelete(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "regression.db")
	addEntry(t, dbFile, "sim", regression.DigestPads)
	addEntry(t, dbFile, "fade4", regression.DigestPads)

	w := &test.Writer{}
	test.ExpectSuccess(t, regression.RegressDelete(w, strings.NewReader("n\n"), dbFile, "0"))
	test.ExpectSuccess(t, regression.RegressDelete(w, strings.NewReader("y\n"), dbFile, "1"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "deleted test #1"))

	w.Clear()
	test.ExpectSuccess(t, regression.RegressList(w, dbFile))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "Total: 1\n"))

	err := regression.RegressDelete(w, strings.NewReader("y\n"), dbFile, "x")
	test.ExpectSuccess(t, curated.Is(err, regression.InvalidKey))
}
