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

package hardware

import (
	"github.com/jetsetilly/trifade/config"
	"github.com/jetsetilly/trifade/environment"
	"github.com/jetsetilly/trifade/hardware/tristate"
	"github.com/jetsetilly/trifade/logger"
)

// Fader is the emulation of the tristate LED fader.
type Fader struct {
	env *environment.Environment
	cfg config.Config

	state State
}

// NewFader is the preferred method of initialisation for the Fader type. The
// configuration is validated and cannot be changed once the fader has been
// created.
func NewFader(env *environment.Environment, cfg config.Config) (*Fader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fdr := &Fader{
		env: env,
		cfg: cfg,
	}
	fdr.state = newState(uint(cfg.PWMWidth), uint(cfg.DividerWidth))

	logger.Logf(env, "fader", "created: %s", cfg)

	return fdr, nil
}

func (fdr *Fader) String() string {
	return fdr.state.String()
}

// Env returns the environment the fader was created with.
func (fdr *Fader) Env() *environment.Environment {
	return fdr.env
}

// Config returns the configuration the fader was created with.
func (fdr *Fader) Config() config.Config {
	return fdr.cfg
}

// Ticks returns the number of ticks since reset.
func (fdr *Fader) Ticks() uint64 {
	return fdr.state.Ticks
}

// Signals returns the combinational signals for the current tick.
func (fdr *Fader) Signals() Signals {
	return fdr.state.Evaluate()
}

// Pads returns the state of the pads for the current tick.
func (fdr *Fader) Pads() tristate.Bank {
	return fdr.state.Evaluate().Pads
}

// Reset every register to zero.
func (fdr *Fader) Reset() {
	fdr.state = newState(uint(fdr.cfg.PWMWidth), uint(fdr.cfg.DividerWidth))
	logger.Log(fdr.env, "fader", "reset")
}
