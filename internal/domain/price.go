package domain

import (
	"strconv"
	"strings"
)

// FormatPrice renders a price with its shortest decimal representation,
// keeping at least one fractional digit so integral prices print as
// "1500.0" rather than "1500". Report strings depend on this form.
func FormatPrice(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
