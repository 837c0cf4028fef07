// Package validation collects field-level problems for editor input.
// Violations are reported alongside the updated invoice; they never block a
// mutation because numeric input is coerced rather than rejected.
package validation

import (
	"strings"

	"github.com/diewo77/invoice-studio/internal/ledger"
)

// Violations maps a field name to a problem code.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Required flags blank text.
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

// Numeric coerces raw through ledger.ParseNumber and records invalid_number
// when the input was not a finite number. The coerced value is returned either way.
func Numeric(field, raw string, v Violations) float64 {
	n, err := ledger.ParseNumber(field, raw)
	if err != nil {
		v[field] = "invalid_number"
	}
	return n
}

func RangeFloat(field string, val, minVal, maxVal float64, v Violations) {
	if val < minVal || val > maxVal {
		v[field] = "out_of_range"
	}
}

// NonNegative flags values below zero.
func NonNegative(field string, val float64, v Violations) {
	if val < 0 {
		v[field] = "must_be_non_negative"
	}
}
