package format

import (
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestGrouping_PropertyBased verifies structural invariants of integer
// grouping for arbitrary non-negative integers.
func TestGrouping_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("inputs with at most three digits are unchanged", prop.ForAll(
		func(n int64) bool {
			out, err := Delimited(n)
			return err == nil && out == strconv.FormatInt(n, 10)
		},
		gen.Int64Range(0, 999),
	))

	properties.Property("stripping the delimiter recovers the digit string", prop.ForAll(
		func(n uint64) bool {
			out, err := Delimited(n)
			if err != nil {
				return false
			}
			return strings.ReplaceAll(out, ",", "") == strconv.FormatUint(n, 10)
		},
		gen.UInt64(),
	))

	properties.Property("groups after the first have exactly three digits", prop.ForAll(
		func(n uint64) bool {
			out, err := Delimited(n)
			if err != nil {
				return false
			}
			groups := strings.Split(out, ",")
			if len(groups[0]) < 1 || len(groups[0]) > 3 {
				return false
			}
			for _, g := range groups[1:] {
				if len(g) != 3 {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestSign_PropertyBased verifies sign handling through the full entry point:
// formatting -n equals "-" prepended to the formatting of n.
func TestSign_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("negation prepends a single minus", prop.ForAll(
		func(n int64) bool {
			pos, err1 := Delimited(n)
			neg, err2 := Delimited(-n)
			return err1 == nil && err2 == nil && neg == "-"+pos
		},
		gen.Int64Range(1, 1<<62),
	))

	properties.TestingRun(t)
}

// TestRoundTrip_PropertyBased verifies that stripping the delimiter and
// reparsing the output reproduces the input rounded to the configured
// precision.
func TestRoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("reparsed output equals the rounded input", prop.ForAll(
		func(v float64) bool {
			out, err := Delimited(v)
			if err != nil {
				return false
			}
			reparsed, err := strconv.ParseFloat(strings.ReplaceAll(out, ",", ""), 64)
			if err != nil {
				return false
			}
			rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
			if err != nil {
				return false
			}
			return reparsed == rounded
		},
		gen.Float64Range(-1e12, 1e12),
	))

	properties.Property("zero precision never leaves a trailing separator", prop.ForAll(
		func(v float64) bool {
			out, err := Delimited(v, WithPrecision(0))
			if err != nil {
				return false
			}
			return !strings.Contains(out, ".")
		},
		gen.Float64Range(-1e12, 1e12),
	))

	properties.TestingRun(t)
}
