// Package config loads host-side board profiles. A profile describes how
// to reach one device and how to interpret its readings; firmware-side
// parameters stay compile-time constants in the image itself.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is one board's monitoring configuration.
type Profile struct {
	// Device is the serial device path.
	Device string `yaml:"device"`

	// Baud must match the firmware's UART setup.
	Baud int `yaml:"baud"`

	// ReferenceMilliVolts is the ADC reference, for sanity-checking
	// readings against full scale.
	ReferenceMilliVolts uint32 `yaml:"reference_mv"`

	// Channel is the ADC channel the firmware reports.
	Channel uint8 `yaml:"channel"`

	// Window is the number of samples `check` collects before printing
	// statistics.
	Window int `yaml:"window"`
}

// Default returns the profile matching the stock firmware image.
func Default() *Profile {
	return &Profile{
		Device:              "/dev/ttyUSB0",
		Baud:                115200,
		ReferenceMilliVolts: 2500,
		Channel:             0,
		Window:              60,
	}
}

// Load reads a YAML profile, applying defaults for absent fields.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Validate rejects values the monitor cannot work with.
func (p *Profile) Validate() error {
	if p.Device == "" {
		return fmt.Errorf("device path is empty")
	}
	if p.Baud <= 0 {
		return fmt.Errorf("baud %d is not positive", p.Baud)
	}
	if p.ReferenceMilliVolts == 0 {
		return fmt.Errorf("reference_mv is zero")
	}
	if p.Window <= 0 {
		return fmt.Errorf("window %d is not positive", p.Window)
	}
	return nil
}
