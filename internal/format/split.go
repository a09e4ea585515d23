package format

import (
	"strconv"
	"strings"
)

// splitMagnitude rounds a non-negative magnitude to the given precision and
// splits the result into its integer digit string and exactly precision
// fractional digits, zero-padded on the right.
//
// Rounding is delegated to the platform's decimal conversion
// (strconv.FormatFloat), which rounds the exact binary value of m to the
// nearest decimal at the requested precision, breaking ties to even.
// With precision 0 the fractional string is empty.
func splitMagnitude(m float64, precision int) (intDigits, fracDigits string) {
	s := strconv.FormatFloat(m, 'f', precision, 64)
	if precision == 0 {
		return s, ""
	}
	dot := strings.LastIndexByte(s, '.')
	return s[:dot], s[dot+1:]
}
