// Package bytesize renders byte counts with base-1024 units and short labels (KB, MB, ...).
package bytesize

import (
	"math"
	"strconv"
	"strings"
)

var units = [...]string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// Format returns "<value> <unit>" where unit is the largest power of 1024 not above n
// and value is n scaled to it, rounded to two decimals with ties to even. Whole values
// keep a trailing ".0" (1024 -> "1.0 KB"). Zero renders as "0.0 B".
func Format(n uint64) string {
	i := Exponent(n)
	value := float64(n) / math.Pow(1024, float64(i))
	return formatRounded(value) + " " + units[i]
}

// Exponent returns floor(log1024(n)), capped at the largest known unit. Zero maps to 0.
func Exponent(n uint64) int {
	i := 0
	for v := n; v >= 1024 && i < len(units)-1; v /= 1024 {
		i++
	}
	return i
}

// formatRounded rounds to two decimals, exact ties to even (1.125 -> "1.12"),
// then trims trailing zeros down to one decimal.
func formatRounded(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}
