package telemetry

import (
	"errors"
	"strings"
)

// ErrBadLine reports a line that is not a voltage reading. Banner and
// build-info lines fall under it too; the monitor skips those.
var ErrBadLine = errors.New("telemetry: not a voltage line")

// maxWholeDigits caps the whole-volt part so whole*1000+frac cannot wrap
// uint32. The firmware never emits more than one digit there.
const maxWholeDigits = 6

// ParseVoltageLine parses "whole.fractional" back into millivolts. The
// fractional part must be exactly three digits, matching what the firmware
// emits. A trailing CRLF or LF is tolerated.
func ParseVoltageLine(line string) (uint32, error) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	whole, frac, ok := strings.Cut(line, ".")
	if !ok || whole == "" || len(whole) > maxWholeDigits || len(frac) != 3 {
		return 0, ErrBadLine
	}

	w, err := parseDigits(whole)
	if err != nil {
		return 0, err
	}
	f, err := parseDigits(frac)
	if err != nil {
		return 0, err
	}
	return w*1000 + f, nil
}

func parseDigits(s string) (uint32, error) {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, ErrBadLine
		}
		v = v*10 + uint32(c-'0')
	}
	return v, nil
}
