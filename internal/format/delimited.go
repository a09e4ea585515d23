package format

import (
	"errors"

	"github.com/agbru/numfmt/internal/numeric"
)

// std is the package-level formatter bound to the built-in defaults.
var std = New()

// Delimited formats a numeric value with grouped thousands using the
// built-in defaults overlaid with the given options. See
// [Formatter.Delimited].
func Delimited(v any, opts ...Option) (string, error) {
	return std.Delimited(v, opts...)
}

// Delimited formats a numeric value with grouped thousands and, for
// non-integer inputs, a fixed number of decimal places.
//
// Accepted inputs are the representations numeric.Normalize supports:
// Go integers, floats, *big.Int, *big.Float, *gmp.Int, decimal.Decimal, and
// numeric strings. A nil input returns ("", nil) — absence passes through,
// it is not an error.
//
// Inputs typed as exact integers are grouped from their full digit string
// and never receive a decimal part, regardless of the resolved precision:
// a caller that typed a whole number gets a whole number back. All other
// inputs are rounded to the resolved precision; with precision 0 the
// separator is omitted entirely, never left trailing.
//
// The sign is a single leading "-" for negative values, applied after the
// magnitude is grouped.
func (f *Formatter) Delimited(v any, opts ...Option) (string, error) {
	if v == nil {
		return "", nil
	}

	o, err := f.resolve(opts)
	if err != nil {
		return "", err
	}

	val, err := numeric.Normalize(v)
	if err != nil {
		if errors.Is(err, numeric.ErrNilValue) {
			return "", nil
		}
		return "", err
	}

	var sign string
	if val.Neg {
		sign = "-"
	}

	if val.ExactInt {
		return sign + groupDigits(val.Digits, o.Delimiter), nil
	}

	intDigits, fracDigits := splitMagnitude(val.Magnitude, o.Precision)
	out := sign + groupDigits(intDigits, o.Delimiter)
	if o.Precision > 0 {
		out += o.Separator + fracDigits
	}
	return out, nil
}
