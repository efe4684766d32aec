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

package regression

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/trifade/config"
	"github.com/jetsetilly/trifade/curated"
	"github.com/jetsetilly/trifade/database"
	"github.com/jetsetilly/trifade/digest"
	"github.com/jetsetilly/trifade/trace"
)

const digestEntryType = "digest"

const (
	digestFieldPWMWidth int = iota
	digestFieldDividerWidth
	digestFieldTicks
	digestFieldMode
	digestFieldDigest
	digestFieldNotes
	numDigestFields
)

// DigestRegression is the simplest regression type. It runs the fader for a
// number of ticks and compares the digest of the output with the recorded
// value.
type DigestRegression struct {
	Config config.Config
	Ticks  int
	Mode   DigestMode
	Notes  string
	digest string
}

// NewDigestRegression is the preferred method of initialisation for the
// DigestRegression type.
func NewDigestRegression(cfg config.Config, ticks int, mode DigestMode, notes string) (*DigestRegression, error) {
	if err := cfg.Validate(); err != nil {
		return nil, curated.Errorf("regression: %v", err)
	}
	if ticks <= 0 {
		return nil, curated.Errorf("regression: number of ticks must be positive: %d", ticks)
	}
	if mode == DigestUndefined {
		return nil, curated.Errorf("regression: undefined digest mode")
	}
	return &DigestRegression{
		Config: cfg,
		Ticks:  ticks,
		Mode:   mode,
		Notes:  notes,
	}, nil
}

func deserialiseDigestEntry(_ int, fields []string) (database.Entry, error) {
	if len(fields) != numDigestFields {
		return nil, fmt.Errorf("digest entry: wrong number of fields: %d", len(fields))
	}

	reg := &DigestRegression{
		Config: config.Default(),
		Notes:  fields[digestFieldNotes],
		digest: fields[digestFieldDigest],
	}

	var err error

	reg.Config.PWMWidth, err = strconv.Atoi(fields[digestFieldPWMWidth])
	if err != nil {
		return nil, fmt.Errorf("digest entry: invalid pwm width field (%s)", fields[digestFieldPWMWidth])
	}
	reg.Config.DividerWidth, err = strconv.Atoi(fields[digestFieldDividerWidth])
	if err != nil {
		return nil, fmt.Errorf("digest entry: invalid divider width field (%s)", fields[digestFieldDividerWidth])
	}
	reg.Ticks, err = strconv.Atoi(fields[digestFieldTicks])
	if err != nil {
		return nil, fmt.Errorf("digest entry: invalid ticks field (%s)", fields[digestFieldTicks])
	}
	reg.Mode, err = ParseDigestMode(fields[digestFieldMode])
	if err != nil {
		return nil, fmt.Errorf("digest entry: %w", err)
	}

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg DigestRegression) ID() string {
	return digestEntryType
}

// Serialise implements the database.Entry interface.
func (reg *DigestRegression) Serialise() ([]string, error) {
	return []string{
		strconv.Itoa(reg.Config.PWMWidth),
		strconv.Itoa(reg.Config.DividerWidth),
		strconv.Itoa(reg.Ticks),
		reg.Mode.String(),
		reg.digest,
		reg.Notes,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg DigestRegression) CleanUp() error {
	return nil
}

func (reg DigestRegression) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "[%s] pwm=%d div=%d ticks=%d", reg.Mode, reg.Config.PWMWidth, reg.Config.DividerWidth, reg.Ticks)
	if reg.Notes != "" {
		fmt.Fprintf(&s, " [%s]", reg.Notes)
	}
	return s.String()
}

// regress implements the Regressor interface.
func (reg *DigestRegression) regress(newRegression bool, output io.Writer, msg string) (bool, string, error) {
	fmt.Fprintf(output, "\r%s", msg)

	tr, err := trace.Capture(reg.Config, reg.Ticks)
	if err != nil {
		return false, "", curated.Errorf("regression: %v", err)
	}

	var hash string
	switch reg.Mode {
	case DigestPads:
		hash = digest.OfPads(tr.All())
	case DigestSignals:
		hash = digest.OfSignals(tr.All())
	default:
		return false, "", curated.Errorf("regression: undefined digest mode")
	}

	if newRegression {
		reg.digest = hash
		return true, "", nil
	}

	if hash != reg.digest {
		return false, "digest mismatch", nil
	}

	return true, "", nil
}
