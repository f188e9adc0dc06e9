//go:build mt3620

package main

import "voltmon/core"

// MT3620 ADC block. Samples are 12-bit and arrive through a UART-shaped
// FIFO: data-ready in a line-status register, sample words read from the
// receive buffer. Bits [15:4] of a FIFO word hold the sample, [3:0] the
// channel it came from.
const adcBase uintptr = 0x38000000

const (
	adcFIFORBR = 0x000 // FIFO receive buffer
	adcFIFOLSR = 0x014 // FIFO line status, bit 0 = data ready

	adcCtl0 = 0x100 // global enable, one-shot trigger
	adcCtl1 = 0x104 // channel steering map, one bit per channel
)

const (
	adcCtl0Enable  = 0x1
	adcCtl0OneShot = 0x2

	adcFIFODataReady = 0x1

	adcChannelCount = 8
)

type mt3620ADC struct{}

// Enable powers up the converter. Called once from INIT.
func (a *mt3620ADC) Enable() error {
	core.SetReg32(adcBase, adcCtl0, adcCtl0Enable)
	return nil
}

// Read performs a one-shot conversion and returns the raw 12-bit sample.
// The channel-steering update is a read-modify-write on a register an
// interrupt-driven ADC user would share, so it runs inside a critical
// section.
func (a *mt3620ADC) Read(channel uint8) uint16 {
	if channel >= adcChannelCount {
		core.DefaultExceptionHandler()
	}

	cs := core.EnterCritical()
	core.ClearReg32(adcBase, adcCtl1, (1<<adcChannelCount)-1)
	core.SetReg32(adcBase, adcCtl1, 1<<channel)
	core.SetReg32(adcBase, adcCtl0, adcCtl0OneShot)
	cs.Exit()

	for core.ReadReg32(adcBase, adcFIFOLSR)&adcFIFODataReady == 0 {
	}
	word := core.ReadReg32(adcBase, adcFIFORBR)
	return uint16((word >> 4) & 0xFFF)
}
