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

package config

import (
	_ "embed"
	"os"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/trifade/curated"
)

// Sentinel error patterns returned by Preset() and Load().
const (
	UnknownPreset = "config: unknown preset: %s"
	LoadError     = "config: %v"
)

//go:embed presets.yaml
var rawPresets []byte

// PresetInfo is a named configuration.
type PresetInfo struct {
	Name        string
	Description string
	Config      Config
}

var presets []PresetInfo

func init() {
	var p struct {
		Presets []struct {
			Name         string `yaml:"name"`
			Description  string `yaml:"description"`
			PWMWidth     *int   `yaml:"pwm_width"`
			DividerWidth *int   `yaml:"divider_width"`
		} `yaml:"presets"`
	}
	if err := yaml.Unmarshal(rawPresets, &p); err != nil {
		panic(err)
	}

	for _, e := range p.Presets {
		cfg := Default()
		if e.PWMWidth != nil {
			cfg.PWMWidth = *e.PWMWidth
		}
		if e.DividerWidth != nil {
			cfg.DividerWidth = *e.DividerWidth
		}
		if err := cfg.Validate(); err != nil {
			panic(err)
		}
		presets = append(presets, PresetInfo{
			Name:        strings.ToLower(e.Name),
			Description: e.Description,
			Config:      cfg,
		})
	}
}

// Presets returns every preset.
func Presets() []PresetInfo {
	return slices.Clone(presets)
}

// PresetNames returns the names of the presets in alphabetical order.
func PresetNames() []string {
	n := make([]string, 0, len(presets))
	for _, p := range presets {
		n = append(n, p.Name)
	}
	slices.Sort(n)
	return n
}

// Preset returns the named configuration. Names are not case sensitive.
func Preset(name string) (Config, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	i := slices.IndexFunc(presets, func(p PresetInfo) bool {
		return p.Name == name
	})
	if i == -1 {
		return Config{}, curated.Errorf(UnknownPreset, name)
	}
	return presets[i].Config, nil
}

// Parse configuration from YAML data. Fields not present in the data keep the
// value found in the Default() configuration.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, curated.Errorf(LoadError, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load configuration from a YAML file.
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, curated.Errorf(LoadError, err)
	}
	return Parse(data)
}
