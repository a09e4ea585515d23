// Package format renders numeric values as human-readable strings with
// grouped thousands and a fixed number of decimal places.
//
// The package is pure computation: resolving options, grouping integer
// digits, and rounding fractional digits all happen in a single synchronous
// pass with no I/O and no shared mutable state. Process-wide defaults are
// passed explicitly to New, so concurrent callers need no coordination.
//
// Option layering, in increasing priority: built-in defaults (delimiter ",",
// separator ".", precision 2), the defaults given to New, then per-call
// options. Any layer may set only some keys; absent keys fall through.
package format
