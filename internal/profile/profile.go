// Package profile handles operator-facing tuning profiles: TOML files on
// disk, conversion to staged textual values, and hot reload on change.
package profile

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	pointeraccel "github.com/tphakala/go-pointer-accel"
)

// Profile is a tuning profile as stored on disk.
type Profile struct {
	Sensitivity    float64 `toml:"sensitivity"`
	Acceleration   float64 `toml:"acceleration"`
	SensitivityCap float64 `toml:"sensitivity_cap"`
	SpeedCap       float64 `toml:"speed_cap"`
	Offset         float64 `toml:"offset"`
	Exponent       float64 `toml:"exponent"`
	Midpoint       float64 `toml:"midpoint"`
	ScrollsPerTick float64 `toml:"scrolls_per_tick"`
	Mode           string  `toml:"mode"`
}

// Default returns a profile with the library defaults.
func Default() Profile {
	return Profile{
		Sensitivity:    pointeraccel.DefaultSensitivity,
		Acceleration:   pointeraccel.DefaultAcceleration,
		SensitivityCap: pointeraccel.DefaultSensitivityCap,
		SpeedCap:       pointeraccel.DefaultSpeedCap,
		Offset:         pointeraccel.DefaultOffset,
		Exponent:       pointeraccel.DefaultExponent,
		Midpoint:       pointeraccel.DefaultMidpoint,
		ScrollsPerTick: pointeraccel.DefaultScrollsPerTick,
		Mode:           "linear",
	}
}

// Load reads and parses a profile file.
func Load(path string) (*Profile, error) {
	p := Default()
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("load profile %s: %w", path, err)
	}
	return &p, nil
}

// Save writes the profile to path.
func (p *Profile) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save profile %s: %w", path, err)
	}

	if err := toml.NewEncoder(f).Encode(p); err != nil {
		f.Close()
		return fmt.Errorf("save profile %s: %w", path, err)
	}
	return f.Close()
}

// Pending converts the profile into textual values ready for staging with
// Accelerator.StageTuning.
func (p *Profile) Pending() pointeraccel.PendingConfig {
	return pointeraccel.PendingConfig{
		Sensitivity:    formatValue(p.Sensitivity),
		Acceleration:   formatValue(p.Acceleration),
		SensitivityCap: formatValue(p.SensitivityCap),
		SpeedCap:       formatValue(p.SpeedCap),
		Offset:         formatValue(p.Offset),
		Exponent:       formatValue(p.Exponent),
		Midpoint:       formatValue(p.Midpoint),
		ScrollsPerTick: formatValue(p.ScrollsPerTick),
		Mode:           p.Mode,
	}
}

// Apply stages the profile on the accelerator and requests a refresh.
func (p *Profile) Apply(acc pointeraccel.Accelerator) {
	acc.StageTuning(p.Pending())
	acc.RequestRefresh()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
