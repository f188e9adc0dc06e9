package core

import "voltmon/telemetry"

// Driver interfaces for the three peripheral collaborators the sampling
// loop consumes. Target-specific code registers concrete drivers before
// the app runs; the core never touches their registers directly.

// UARTDriver is the polled serial transmit line.
type UARTDriver interface {
	// Init configures the line for 115200 8N1.
	Init() error

	// WriteString transmits a string byte by byte, blocking on FIFO space.
	WriteString(s string)

	// WriteUint32 transmits an integer in decimal.
	WriteUint32(v uint32)

	// WriteUint32Width transmits an integer in decimal, zero-padded on the
	// left to at least width digits.
	WriteUint32Width(v uint32, width int)
}

// ADCDriver is the analog-to-digital converter.
type ADCDriver interface {
	// Enable powers up the converter. Called once before sampling.
	Enable() error

	// Read performs a one-shot conversion on the given channel and returns
	// the raw 12-bit sample (0..4095).
	Read(channel uint8) uint16
}

// TimerDriver is the busy-poll delay source.
type TimerDriver interface {
	// WaitUs blocks for at least us microseconds. No early exit.
	WaitUs(us uint32)
}

// Global singletons used by core code; target-specific main registers its
// drivers here.
var (
	uartDriver  UARTDriver
	adcDriver   ADCDriver
	timerDriver TimerDriver
)

// SetUARTDriver is called by target-specific code to register its driver.
func SetUARTDriver(d UARTDriver) { uartDriver = d }

// SetADCDriver is called by target-specific code to register its driver.
func SetADCDriver(d ADCDriver) { adcDriver = d }

// SetTimerDriver is called by target-specific code to register its driver.
func SetTimerDriver(d TimerDriver) { timerDriver = d }

// MustUART returns the configured driver or panics if missing.
func MustUART() UARTDriver {
	if uartDriver == nil {
		panic("UART driver not configured")
	}
	return uartDriver
}

// MustADC returns the configured driver or panics if missing.
func MustADC() ADCDriver {
	if adcDriver == nil {
		panic("ADC driver not configured")
	}
	return adcDriver
}

// MustTimer returns the configured driver or panics if missing.
func MustTimer() TimerDriver {
	if timerDriver == nil {
		panic("timer driver not configured")
	}
	return timerDriver
}

// SampleIntervalUs is the delay between voltage reports.
const SampleIntervalUs = 1000 * 1000

// sampleChannel is the ADC input the loop reports.
const sampleChannel = 0

// BuildInfo is stamped via -ldflags "-X voltmon/core.BuildInfo=..." and
// echoed in the startup banner.
var BuildInfo = "unknown"

// App is the firmware's single thread of control: one INIT pass, then the
// SAMPLE loop forever.
type App struct {
	vectors *VectorTable
	uart    UARTDriver
	adc     ADCDriver
	timer   TimerDriver
}

// NewApp captures the registered drivers and the vector table to install.
func NewApp(vt *VectorTable) *App {
	return &App{
		vectors: vt,
		uart:    MustUART(),
		adc:     MustADC(),
		timer:   MustTimer(),
	}
}

// Init is the one-shot INIT state: relocate the vector table, bring up the
// serial line, emit the banner, enable the ADC. A peripheral that fails to
// come up this early has no error channel; the core halts the same way an
// unhandled fault would.
func (a *App) Init() {
	a.vectors.Install()

	if err := a.uart.Init(); err != nil {
		DefaultExceptionHandler()
	}

	a.uart.WriteString(telemetry.BannerSeparator)
	a.uart.WriteString(telemetry.EOL)
	a.uart.WriteString(telemetry.BannerName)
	a.uart.WriteString(telemetry.EOL)
	a.uart.WriteString("Built: ")
	a.uart.WriteString(BuildInfo)
	a.uart.WriteString(telemetry.EOL)

	if err := a.adc.Enable(); err != nil {
		DefaultExceptionHandler()
	}
}

// SampleOnce is one SAMPLE iteration: wait the fixed interval, convert
// channel zero, report millivolts as "whole.fractional".
func (a *App) SampleOnce() {
	a.timer.WaitUs(SampleIntervalUs)

	raw := a.adc.Read(sampleChannel)
	mv := telemetry.MilliVolts(raw)

	a.uart.WriteUint32(mv / 1000)
	a.uart.WriteString(".")
	a.uart.WriteUint32Width(mv%1000, 3)
	a.uart.WriteString(telemetry.EOL)
}

// Run executes INIT then samples forever. It never returns; the loop is
// the lifetime of the powered device.
func (a *App) Run() {
	a.Init()
	for {
		a.SampleOnce()
	}
}
