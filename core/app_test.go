package core

import (
	"strings"
	"testing"

	"voltmon/telemetry"
)

// Mock drivers for the sampling loop, injected through the same
// registration hooks target main uses.

type mockUART struct {
	out    strings.Builder
	inited int
}

func (u *mockUART) Init() error          { u.inited++; return nil }
func (u *mockUART) WriteString(s string) { u.out.WriteString(s) }
func (u *mockUART) WriteUint32(v uint32) { u.out.WriteString(telemetry.Utoa(v)) }
func (u *mockUART) WriteUint32Width(v uint32, width int) {
	u.out.WriteString(telemetry.UtoaPad(v, width))
}

type mockADC struct {
	enabled int
	samples []uint16
	next    int
}

func (a *mockADC) Enable() error { a.enabled++; return nil }
func (a *mockADC) Read(channel uint8) uint16 {
	if channel != 0 {
		panic("sampling loop must read channel 0")
	}
	s := a.samples[a.next%len(a.samples)]
	a.next++
	return s
}

type mockTimer struct {
	waits []uint32
}

func (t *mockTimer) WaitUs(us uint32) { t.waits = append(t.waits, us) }

func newTestApp(samples []uint16) (*App, *mockUART, *mockADC, *mockTimer) {
	simReset()
	uart := &mockUART{}
	adc := &mockADC{samples: samples}
	timer := &mockTimer{}
	SetUARTDriver(uart)
	SetADCDriver(adc)
	SetTimerDriver(timer)
	return NewApp(NewVectorTable(testStackTop, testReset)), uart, adc, timer
}

func TestInitEmitsBannerOnceAndEnablesADC(t *testing.T) {
	app, uart, adc, _ := newTestApp([]uint16{0})
	app.Init()

	want := telemetry.BannerSeparator + telemetry.EOL +
		telemetry.BannerName + telemetry.EOL +
		"Built: " + BuildInfo + telemetry.EOL
	if uart.out.String() != want {
		t.Errorf("banner = %q, want %q", uart.out.String(), want)
	}
	if uart.inited != 1 {
		t.Errorf("UART inited %d times, want 1", uart.inited)
	}
	if adc.enabled != 1 {
		t.Errorf("ADC enabled %d times, want 1", adc.enabled)
	}

	// INIT must have relocated the vector table before touching peripherals.
	if got := ReadReg32(scbBase, scbVTOROffset); got == 0 {
		t.Error("VTOR not written during INIT")
	}
}

func TestSampleOnceFormatsTruncatedMillivolts(t *testing.T) {
	cases := []struct {
		raw  uint16
		line string
	}{
		{0, "0.000"},
		{4095, "2.500"},
		{2048, "1.250"},
		{1, "0.000"}, // 1*2500/4095 truncates to 0
		{819, "0.500"},
	}

	for _, tc := range cases {
		app, uart, _, timer := newTestApp([]uint16{tc.raw})
		app.SampleOnce()

		want := tc.line + telemetry.EOL
		if uart.out.String() != want {
			t.Errorf("raw %d: line = %q, want %q", tc.raw, uart.out.String(), want)
		}
		if len(timer.waits) != 1 || timer.waits[0] != SampleIntervalUs {
			t.Errorf("raw %d: waits = %v, want one wait of %d us", tc.raw, timer.waits, SampleIntervalUs)
		}
	}
}

func TestSampleLoopEmitsOneLinePerInterval(t *testing.T) {
	app, uart, _, timer := newTestApp([]uint16{2048, 4095, 0})
	app.Init()

	const rounds = 6
	for i := 0; i < rounds; i++ {
		app.SampleOnce()
	}

	lines := strings.Split(uart.out.String(), telemetry.EOL)
	// 3 banner lines + one line per round + trailing empty split.
	if got := len(lines) - 1; got != 3+rounds {
		t.Fatalf("emitted %d lines, want %d", got, 3+rounds)
	}
	if len(timer.waits) != rounds {
		t.Fatalf("waited %d times, want %d", len(timer.waits), rounds)
	}

	voltage := lines[3 : 3+rounds]
	wantCycle := []string{"1.250", "2.500", "0.000"}
	for i, line := range voltage {
		if line != wantCycle[i%3] {
			t.Errorf("line %d = %q, want %q", i, line, wantCycle[i%3])
		}
	}
}

func TestMustDriversPanicWhenUnregistered(t *testing.T) {
	SetUARTDriver(nil)
	defer func() {
		if recover() == nil {
			t.Error("MustUART with no driver did not panic")
		}
	}()
	MustUART()
}
