// Package monitor consumes the firmware's serial output: it scans lines,
// parses voltage readings, and summarizes them.
package monitor

import (
	"bufio"
	"errors"
	"io"

	"gonum.org/v1/gonum/stat"

	"voltmon/telemetry"
)

// Reading is one parsed voltage line.
type Reading struct {
	MilliVolts uint32
	Line       string
}

// Monitor reads the device's line stream. Banner and build-info lines are
// passed to OnText; voltage lines are parsed into readings.
type Monitor struct {
	scanner *bufio.Scanner

	// OnText, when set, receives every non-voltage line (the banner).
	OnText func(line string)
}

// New wraps a serial port or any other line stream.
func New(r io.Reader) *Monitor {
	return &Monitor{scanner: bufio.NewScanner(r)}
}

// Collect reads until n voltage lines have been parsed, calling each for
// every reading. n <= 0 means read until the stream ends. Returns the
// readings collected; the error is nil on clean EOF.
func (m *Monitor) Collect(n int, each func(Reading)) ([]Reading, error) {
	var readings []Reading
	for n <= 0 || len(readings) < n {
		if !m.scanner.Scan() {
			return readings, m.scanner.Err()
		}
		line := m.scanner.Text()

		mv, err := telemetry.ParseVoltageLine(line)
		if errors.Is(err, telemetry.ErrBadLine) {
			if m.OnText != nil {
				m.OnText(line)
			}
			continue
		}
		if err != nil {
			return readings, err
		}

		r := Reading{MilliVolts: mv, Line: line}
		readings = append(readings, r)
		if each != nil {
			each(r)
		}
	}
	return readings, nil
}

// Stats summarizes a batch of readings.
type Stats struct {
	Count  int
	MeanMV float64
	StdDev float64
	MinMV  uint32
	MaxMV  uint32
}

// Summarize computes sample statistics over a batch of readings.
func Summarize(readings []Reading) Stats {
	if len(readings) == 0 {
		return Stats{}
	}

	mvs := make([]float64, len(readings))
	s := Stats{
		Count: len(readings),
		MinMV: readings[0].MilliVolts,
		MaxMV: readings[0].MilliVolts,
	}
	for i, r := range readings {
		mvs[i] = float64(r.MilliVolts)
		if r.MilliVolts < s.MinMV {
			s.MinMV = r.MilliVolts
		}
		if r.MilliVolts > s.MaxMV {
			s.MaxMV = r.MilliVolts
		}
	}

	s.MeanMV = stat.Mean(mvs, nil)
	if len(mvs) > 1 {
		s.StdDev = stat.StdDev(mvs, nil)
	}
	return s
}
