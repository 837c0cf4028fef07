package ledger

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber coerces form input into a number.
// Empty input is 0 without error. Anything that is not a finite number is also 0,
// returned together with an *InvalidNumericError so the caller can report it.
func ParseNumber(field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InvalidNumericError{Field: field, Input: raw}
	}
	return v, nil
}

// finite replaces NaN and infinities with 0.
func finite(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func plainNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
