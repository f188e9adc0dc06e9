//go:build mt3620

package main

import (
	"voltmon/core"
	"voltmon/telemetry"
)

// Polled driver for the IOM4 debug UART. The block is 16550-like with
// MediaTek extensions for fractional baud-rate division.
const uartBase uintptr = 0x21040000

const (
	uartTHR         = 0x00 // transmit holding (DLAB=0) / divisor low (DLAB=1)
	uartDLM         = 0x04 // divisor high (DLAB=1)
	uartLCR         = 0x0C // line control
	uartLSR         = 0x14 // line status
	uartHighspeed   = 0x24
	uartSampleCount = 0x28
	uartSamplePoint = 0x2C
	uartFracdivL    = 0x54
	uartFracdivM    = 0x58
)

const (
	uartLCRDLAB = 0xBF // access divisor latches
	uartLCR8N1  = 0x03
	uartLSRTHRE = 0x20 // transmit holding register empty
)

type iom4UART struct{}

// Init configures 115200 8N1 against the 26 MHz bus clock. Divisor and
// fractional values follow the MT3620 datasheet baud table.
func (u *iom4UART) Init() error {
	core.WriteReg32(uartBase, uartLCR, uartLCRDLAB)
	core.WriteReg32(uartBase, uartHighspeed, 3)
	core.WriteReg32(uartBase, uartDLM, 0)
	core.WriteReg32(uartBase, uartTHR, 1) // DLL while DLAB is set
	core.WriteReg32(uartBase, uartSampleCount, 224)
	core.WriteReg32(uartBase, uartSamplePoint, 110)
	core.WriteReg32(uartBase, uartFracdivM, 0)
	core.WriteReg32(uartBase, uartFracdivL, 223)
	core.WriteReg32(uartBase, uartLCR, uartLCR8N1)
	return nil
}

// writeByte spins until the transmit FIFO drains, then queues one byte.
func (u *iom4UART) writeByte(b byte) {
	for core.ReadReg32(uartBase, uartLSR)&uartLSRTHRE == 0 {
	}
	core.WriteReg32(uartBase, uartTHR, uint32(b))
}

func (u *iom4UART) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		u.writeByte(s[i])
	}
}

func (u *iom4UART) WriteUint32(v uint32) {
	u.WriteString(telemetry.Utoa(v))
}

func (u *iom4UART) WriteUint32Width(v uint32, width int) {
	u.WriteString(telemetry.UtoaPad(v, width))
}
