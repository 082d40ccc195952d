// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/growthsim/internal/currency"
	"github.com/theirongolddev/growthsim/internal/projection"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatRate formats an annual rate given in percent, e.g. 6.5 -> "6.5%".
func FormatRate(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// FormatYears formats a horizon, e.g. 1 -> "1 year", 2.5 -> "2.5 years".
func FormatYears(y float64) string {
	s := strconv.FormatFloat(y, 'f', -1, 64)
	if y == 1 {
		return s + " year"
	}
	return s + " years"
}

// FormatField renders an input value with its unit decorator.
func FormatField(f projection.Field, v float64, cur currency.Currency) string {
	switch f.Unit {
	case projection.UnitMoney:
		return cur.Format(v)
	case projection.UnitPercent:
		return FormatRate(v)
	case projection.UnitYears:
		return FormatYears(v)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
