// Package numeric converts the numeric representations accepted by the
// formatter (machine integers, floats, big integers, decimals, numeric
// strings) into a single normalized form. The rest of the pipeline is
// representation-agnostic: it only ever sees a Value.
package numeric

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
	"github.com/ncw/gmp"

	apperrors "github.com/agbru/numfmt/internal/errors"
)

// ErrNilValue reports a nil input (untyped nil or a typed nil pointer).
// Callers that treat absence as pass-through check for it with errors.Is.
var ErrNilValue = errors.New("nil numeric value")

// Value is the normalized form of a numeric input.
//
// Exactly one of Digits and Magnitude is meaningful: Digits holds the
// absolute decimal digit string when ExactInt is true, Magnitude holds the
// absolute floating-point value otherwise. The split keeps arbitrarily large
// integers lossless while floats, decimals, and numeric strings share one
// rounding path.
type Value struct {
	// ExactInt is true when the input was typed as a whole number
	// (machine integer, *big.Int, *gmp.Int).
	ExactInt bool
	// Neg is true when the input is negative.
	Neg bool
	// Digits is the absolute decimal digit string of an exact integer.
	Digits string
	// Magnitude is the absolute floating-point value of a non-integer input.
	Magnitude float64
}

// Normalize converts any supported numeric representation into a Value.
//
// Supported inputs: Go integer types, float32/float64, *big.Int, *big.Float,
// *gmp.Int, decimal.Decimal, and strings containing a numeric literal.
// A nil input (or typed nil pointer) returns ErrNilValue. Anything else is
// rejected with an apperrors.InputError.
func Normalize(v any) (Value, error) {
	if v == nil {
		return Value{}, ErrNilValue
	}

	switch n := v.(type) {
	case int:
		return fromInt64(int64(n)), nil
	case int8:
		return fromInt64(int64(n)), nil
	case int16:
		return fromInt64(int64(n)), nil
	case int32:
		return fromInt64(int64(n)), nil
	case int64:
		return fromInt64(n), nil
	case uint:
		return fromUint64(uint64(n)), nil
	case uint8:
		return fromUint64(uint64(n)), nil
	case uint16:
		return fromUint64(uint64(n)), nil
	case uint32:
		return fromUint64(uint64(n)), nil
	case uint64:
		return fromUint64(n), nil
	case *big.Int:
		if n == nil {
			return Value{}, ErrNilValue
		}
		return Value{
			ExactInt: true,
			Neg:      n.Sign() < 0,
			Digits:   new(big.Int).Abs(n).String(),
		}, nil
	case *gmp.Int:
		if n == nil {
			return Value{}, ErrNilValue
		}
		return Value{
			ExactInt: true,
			Neg:      n.Sign() < 0,
			Digits:   new(gmp.Int).Abs(n).String(),
		}, nil
	case float32:
		return fromFloat64(float64(n), fmt.Sprintf("%v", n))
	case float64:
		return fromFloat64(n, fmt.Sprintf("%v", n))
	case *big.Float:
		if n == nil {
			return Value{}, ErrNilValue
		}
		f, _ := n.Float64()
		return fromFloat64(f, n.Text('g', -1))
	case decimal.Decimal:
		f, _ := n.Float64()
		return fromFloat64(f, n.String())
	case string:
		s := strings.TrimSpace(n)
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, apperrors.InputError{Input: n, Cause: err}
		}
		return fromFloat64(f, n)
	default:
		return Value{}, apperrors.InputError{
			Input: fmt.Sprint(v),
			Cause: fmt.Errorf("unsupported numeric type %T", v),
		}
	}
}

// ToFloat converts any supported numeric representation to a native float64.
// Exact integers larger than the float64 range saturate to infinity.
func ToFloat(v any) (float64, error) {
	val, err := Normalize(v)
	if err != nil {
		return 0, err
	}
	if !val.ExactInt {
		if val.Neg {
			return -val.Magnitude, nil
		}
		return val.Magnitude, nil
	}

	// Range errors saturate to +Inf, which is the intended behavior for
	// integers with more digits than float64 can carry.
	f, err := strconv.ParseFloat(val.Digits, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, apperrors.InputError{Input: val.Digits, Cause: err}
	}
	if val.Neg {
		f = -f
	}
	return f, nil
}

// fromInt64 normalizes a signed machine integer. The unsigned negation
// handles math.MinInt64 without overflow.
func fromInt64(v int64) Value {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	return Value{ExactInt: true, Neg: neg, Digits: strconv.FormatUint(u, 10)}
}

// fromUint64 normalizes an unsigned machine integer.
func fromUint64(v uint64) Value {
	return Value{ExactInt: true, Digits: strconv.FormatUint(v, 10)}
}

// fromFloat64 normalizes a floating-point magnitude, rejecting values that
// have no decimal rendering. raw is the original textual form for error
// reporting.
func fromFloat64(f float64, raw string) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, apperrors.InputError{
			Input: raw,
			Cause: errors.New("value is not a finite number"),
		}
	}
	return Value{Neg: f < 0, Magnitude: math.Abs(f)}, nil
}
