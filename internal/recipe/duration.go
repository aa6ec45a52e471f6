package recipe

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// parseMinutes converts a schema.org time value to whole minutes.
// Publishers emit ISO-8601 durations ("PT1H30M"), bare numbers already
// in minutes, or numeric strings.
func parseMinutes(v any) (int, error) {
	switch t := v.(type) {
	case float64:
		return int(t), nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, fmt.Errorf("empty duration")
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, nil
		}
		return parseISODuration(s)
	}
	return 0, fmt.Errorf("unsupported duration value %v", v)
}

// parseISODuration handles the P[nD]T[nH][nM][nS] subset used by recipe
// markup. Fractional components are accepted; the result is truncated
// to whole minutes.
func parseISODuration(s string) (int, error) {
	upper := strings.ToUpper(s)
	if !strings.HasPrefix(upper, "P") {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	var minutes float64
	inTime := false
	num := strings.Builder{}
	for _, r := range upper[1:] {
		switch {
		case r == 'T':
			inTime = true
		case unicode.IsDigit(r) || r == '.' || r == ',':
			if r == ',' {
				r = '.'
			}
			num.WriteRune(r)
		default:
			if num.Len() == 0 {
				return 0, fmt.Errorf("invalid duration %q", s)
			}
			n, err := strconv.ParseFloat(num.String(), 64)
			if err != nil {
				return 0, fmt.Errorf("invalid duration %q", s)
			}
			num.Reset()
			switch r {
			case 'D':
				minutes += n * 24 * 60
			case 'H':
				minutes += n * 60
			case 'M':
				if inTime {
					minutes += n
				} else {
					// months are not meaningful for cook times
					return 0, fmt.Errorf("invalid duration %q", s)
				}
			case 'S':
				minutes += n / 60
			case 'W':
				minutes += n * 7 * 24 * 60
			case 'Y':
				return 0, fmt.Errorf("invalid duration %q", s)
			default:
				return 0, fmt.Errorf("invalid duration %q", s)
			}
		}
	}
	if num.Len() > 0 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return int(minutes), nil
}
