// Package telemetry defines the ASCII line format the firmware emits on
// its UART and the host monitor parses back: a startup banner followed by
// one voltage reading per sample interval, each line CRLF terminated.
// The package is shared between the firmware image and host tooling, so it
// avoids fmt and allocation-heavy helpers.
package telemetry

const (
	// VRefMilliVolts is the ADC reference voltage.
	VRefMilliVolts = 2500

	// SampleMax is the full-scale 12-bit ADC reading.
	SampleMax = 0xFFF

	// EOL terminates every line on the wire.
	EOL = "\r\n"

	BannerSeparator = "--------------------------------"
	BannerName      = "voltmon MT3620 RTApp"
)

// MilliVolts converts a raw 12-bit sample to millivolts. Integer division
// truncates: raw=1 reads back as 0 mV. That loss is accepted, not
// corrected, and the host-side test vectors depend on it.
func MilliVolts(raw uint16) uint32 {
	return uint32(raw) * VRefMilliVolts / SampleMax
}

// Utoa renders an unsigned integer in decimal without fmt.
func Utoa(v uint32) string {
	if v == 0 {
		return "0"
	}

	digits := 0
	for n := v; n > 0; n /= 10 {
		digits++
	}

	buf := make([]byte, digits)
	for pos := digits - 1; v > 0; pos-- {
		buf[pos] = byte('0' + v%10)
		v /= 10
	}
	return string(buf)
}

// UtoaPad renders an unsigned integer in decimal, zero-padded on the left
// to at least width characters.
func UtoaPad(v uint32, width int) string {
	s := Utoa(v)
	if len(s) >= width {
		return s
	}

	buf := make([]byte, width)
	pad := width - len(s)
	for i := 0; i < pad; i++ {
		buf[i] = '0'
	}
	copy(buf[pad:], s)
	return string(buf)
}

// FormatMilliVolts renders millivolts as "whole.fractional" with a three
// digit fractional part: 1250 -> "1.250", 0 -> "0.000".
func FormatMilliVolts(mv uint32) string {
	return Utoa(mv/1000) + "." + UtoaPad(mv%1000, 3)
}

// VoltageLine renders the full wire line for one raw sample.
func VoltageLine(raw uint16) string {
	return FormatMilliVolts(MilliVolts(raw)) + EOL
}
