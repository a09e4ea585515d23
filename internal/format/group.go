package format

import "strings"

// groupDigits inserts delimiter after every group of three digits, counted
// from the least-significant end of a non-negative decimal digit string.
// The leading group keeps 1-3 digits and is never preceded by a delimiter;
// no delimiter is ever trailing. The delimiter is inserted verbatim, so
// empty, multi-character, and non-ASCII delimiters all work.
//
// The walk is a single iterative pass with group boundaries at positions
// divisible by three from the end, so arbitrarily long digit strings group
// without recursion.
func groupDigits(digits, delimiter string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(n + (n-1)/3*len(delimiter))

	lead := n % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < n; i += 3 {
		b.WriteString(delimiter)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
