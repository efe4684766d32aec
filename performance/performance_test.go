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

package performance

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/trifade/config"
	"github.com/jetsetilly/trifade/curated"
	"github.com/jetsetilly/trifade/test"
)

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileNone)

	p, err = ParseProfile("cpu, mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileCPU|ProfileMem)
	test.ExpectEquality(t, p.String(), "cpu,mem")

	p, err = ParseProfile("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileAll)

	_, err = ParseProfile("gpu")
	test.ExpectSuccess(t, curated.Is(err, UnknownProfile))
}

func TestCalcRate(t *testing.T) {
	rate, accuracy := CalcRate(config.BoardClock, 2.0)
	test.ExpectApproximate(t, rate, config.BoardClock/2.0, 0.0001)
	test.ExpectApproximate(t, accuracy, 50.0, 0.0001)

	rate, _ = CalcRate(100, 0)
	test.ExpectEquality(t, rate, 0.0)
}

func TestCheck(t *testing.T) {
	cfg, err := config.Preset("sim")
	test.DemandSuccess(t, err)

	w := &test.Writer{}
	err = check(w, ProfileNone, cfg, 100*time.Millisecond, 10*time.Millisecond)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(w.String(), "of board clock"))
}

func TestCheckDuration(t *testing.T) {
	err := Check(&test.Writer{}, ProfileNone, config.Default(), "not a duration")
	test.ExpectFailure(t, err)
}
