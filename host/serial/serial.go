// Package serial abstracts the host-side serial port so the monitor can
// run against real hardware or a mock stream in tests.
package serial

import "io"

// Port is a byte stream to the device's UART.
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g. "/dev/ttyUSB0", "COM3"). The MT3620 real-time
	// core UART usually shows up behind an FTDI adapter.
	Device string

	// Baud rate. The firmware configures 115200 8N1.
	Baud int

	// Read timeout in milliseconds (0 = blocking).
	ReadTimeout int
}

// DefaultConfig returns the configuration matching the firmware's UART
// setup.
func DefaultConfig(device string) *Config {
	return &Config{
		Device: device,
		Baud:   115200,
	}
}
