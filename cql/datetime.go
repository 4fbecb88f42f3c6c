package cql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/juju/errors"
)

// dateEpochOffset is 2^31 - 2440588, the constant the wire's unsigned day
// count is shifted by to produce a Julian Day Number.
const dateEpochOffset = int64(1)<<31 - 2440588

// floorDiv is integer division rounding toward negative infinity, needed
// throughout the date math because Go's native / truncates toward zero.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is the non-negative modulo paired with floorDiv.
func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		if b < 0 {
			m -= b
		} else {
			m += b
		}
	}
	return m
}

// julianDayToDate converts a Julian Day Number to a proleptic Gregorian
// (year, month, day), per spec.md §6.1.
func julianDayToDate(jdn int64) (year, month, day int64) {
	f := jdn + 1401 + floorDiv(floorDiv(4*jdn+274277, 146097)*3, 4) - 38
	e := 4*f + 3
	g := floorMod(e, 1461) / 4
	h := 5*g + 2
	d := floorMod(h, 153)/5 + 1
	m := floorMod(floorDiv(h, 153)+2, 12) + 1
	y := floorDiv(e, 1461) - 4716 + floorDiv(12+2-m, 12)
	return y, m, d
}

// dateToJulianDay converts a proleptic Gregorian (year, month, day) to a
// Julian Day Number, the inverse of julianDayToDate.
func dateToJulianDay(year, month, day int64) int64 {
	a := int64(0)
	if month == 1 || month == 2 {
		a = 1
	}
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
}

// decodeDateString renders the unsigned wire day count d as "Y-MM-DD".
func decodeDateString(d uint32) string {
	jdn := int64(d) - dateEpochOffset
	y, m, day := julianDayToDate(jdn)
	return fmt.Sprintf("%d-%02d-%02d", y, m, day)
}

// encodeDateString parses "[-]Y-M-D" and returns the unsigned wire day
// count.
func encodeDateString(s string) (uint32, error) {
	pos := 0
	negative := false
	if pos < len(s) && s[pos] == '-' {
		negative = true
		pos++
	}

	parts := strings.Split(s[pos:], "-")
	if len(parts) != 3 {
		return 0, errors.Annotatef(ErrMalformedText, "date %q is invalid", s)
	}

	numbers := make([]int64, 3)
	for i, p := range parts {
		if p == "" {
			return 0, errors.Annotatef(ErrMalformedText, "date %q is invalid", s)
		}
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return 0, errors.Annotatef(ErrMalformedText, "date %q is invalid", s)
		}
		numbers[i] = v
	}

	year := numbers[0]
	if negative {
		year = -year
	}
	jdn := dateToJulianDay(year, numbers[1], numbers[2])
	return uint32(jdn + dateEpochOffset), nil
}

const (
	nanosPerSecond = 1_000_000_000
	secondsPerDay  = 86400
	maxTimeNanos   = 86_399_999_999_999
)

// decodeTimeString renders a nanoseconds-of-day count as "H:MM:SS[.nnn]",
// trimming trailing zero digits from the fraction (and the decimal point
// itself, if the fraction collapses entirely).
func decodeTimeString(nanos int64) (string, error) {
	if nanos < 0 || nanos > maxTimeNanos {
		return "", errors.Annotatef(ErrRange, "time %d out of range", nanos)
	}

	nano := nanos % nanosPerSecond
	seconds := nanos / nanosPerSecond
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	seconds = seconds % 60

	s := fmt.Sprintf("%d:%02d:%02d.%09d", hours, minutes, seconds, nano)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s, nil
}

// encodeTimeString parses "H:MM:SS[.frac]" into a nanoseconds-of-day count,
// normalising the hour component modulo 24.
func encodeTimeString(s string) (int64, error) {
	var numbers [4]int64
	var fracDigits int
	field := 0
	sawDigit := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ':' || c == '.':
			field++
			fracDigits = 0
			if field > 3 {
				return 0, errors.Annotatef(ErrMalformedText, "time %q is invalid", s)
			}
		case c >= '0' && c <= '9':
			numbers[field] = numbers[field]*10 + int64(c-'0')
			if field == 3 {
				fracDigits++
			}
			sawDigit = true
		default:
			return 0, errors.Annotatef(ErrMalformedText, "time %q is invalid", s)
		}
	}
	if !sawDigit || field < 2 {
		return 0, errors.Annotatef(ErrMalformedText, "time %q is invalid", s)
	}

	nano := numbers[3]
	if field == 3 && nano > 0 {
		for ; fracDigits < 9; fracDigits++ {
			nano *= 10
		}
	}

	seconds := ((numbers[0] % 24) * 3600) + (numbers[1] * 60) + numbers[2]
	seconds = seconds % secondsPerDay
	return seconds*nanosPerSecond + nano, nil
}
