package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeProfile(t, "device: /dev/ttyUSB1\n")

	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Device != "/dev/ttyUSB1" {
		t.Errorf("Device = %q", p.Device)
	}
	if p.Baud != 115200 {
		t.Errorf("Baud = %d, want default 115200", p.Baud)
	}
	if p.ReferenceMilliVolts != 2500 {
		t.Errorf("ReferenceMilliVolts = %d, want default 2500", p.ReferenceMilliVolts)
	}
	if p.Window != 60 {
		t.Errorf("Window = %d, want default 60", p.Window)
	}
}

func TestLoadFullProfile(t *testing.T) {
	path := writeProfile(t, `
device: COM3
baud: 9600
reference_mv: 3300
channel: 2
window: 10
`)

	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Device != "COM3" || p.Baud != 9600 || p.ReferenceMilliVolts != 3300 ||
		p.Channel != 2 || p.Window != 10 {
		t.Errorf("unexpected profile: %+v", p)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"negative baud", "baud: -1\n"},
		{"zero window", "window: 0\n"},
		{"empty device", "device: \"\"\n"},
		{"not yaml", "{device\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeProfile(t, tc.body)); err == nil {
				t.Errorf("Load accepted %q", tc.body)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load accepted a missing file")
	}
}
