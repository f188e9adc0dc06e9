package telemetry

import "testing"

func TestMilliVolts(t *testing.T) {
	cases := []struct {
		raw  uint16
		want uint32
	}{
		{0, 0},
		{1, 0}, // truncation, not rounding
		{819, 500},
		{2048, 1250},
		{4095, 2500},
	}
	for _, tc := range cases {
		if got := MilliVolts(tc.raw); got != tc.want {
			t.Errorf("MilliVolts(%d) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestFormatMilliVolts(t *testing.T) {
	cases := []struct {
		mv   uint32
		want string
	}{
		{0, "0.000"},
		{1, "0.001"},
		{42, "0.042"},
		{500, "0.500"},
		{1250, "1.250"},
		{2500, "2.500"},
	}
	for _, tc := range cases {
		if got := FormatMilliVolts(tc.mv); got != tc.want {
			t.Errorf("FormatMilliVolts(%d) = %q, want %q", tc.mv, got, tc.want)
		}
	}
}

func TestVoltageLineMatchesSpecVectors(t *testing.T) {
	cases := []struct {
		raw  uint16
		want string
	}{
		{0, "0.000\r\n"},
		{4095, "2.500\r\n"},
		{2048, "1.250\r\n"},
		{1, "0.000\r\n"},
	}
	for _, tc := range cases {
		if got := VoltageLine(tc.raw); got != tc.want {
			t.Errorf("VoltageLine(%d) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestUtoa(t *testing.T) {
	cases := []struct {
		v    uint32
		want string
	}{
		{0, "0"},
		{7, "7"},
		{10, "10"},
		{4095, "4095"},
		{4294967295, "4294967295"},
	}
	for _, tc := range cases {
		if got := Utoa(tc.v); got != tc.want {
			t.Errorf("Utoa(%d) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestUtoaPad(t *testing.T) {
	cases := []struct {
		v     uint32
		width int
		want  string
	}{
		{0, 3, "000"},
		{7, 3, "007"},
		{42, 3, "042"},
		{999, 3, "999"},
		{1234, 3, "1234"}, // wider than the field, no truncation
	}
	for _, tc := range cases {
		if got := UtoaPad(tc.v, tc.width); got != tc.want {
			t.Errorf("UtoaPad(%d, %d) = %q, want %q", tc.v, tc.width, got, tc.want)
		}
	}
}
