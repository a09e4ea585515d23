package format

import (
	apperrors "github.com/agbru/numfmt/internal/errors"
)

// Built-in option defaults, the lowest layer of the resolution chain.
const (
	// DefaultDelimiter separates groups of three integer digits.
	DefaultDelimiter = ","
	// DefaultSeparator separates the integer part from the decimal part.
	DefaultSeparator = "."
	// DefaultPrecision is the number of decimal digits rendered for
	// non-integer inputs.
	DefaultPrecision = 2
)

// Options is a fully resolved set of formatting options. The formatter never
// reads an Options value that has not been through resolution.
type Options struct {
	// Delimiter is inserted between groups of three integer digits.
	// May be empty or multi-rune; it is inserted verbatim.
	Delimiter string
	// Separator is inserted between the integer and decimal parts.
	Separator string
	// Precision is the number of decimal digits to render.
	Precision int
}

// DefaultOptions returns the built-in defaults.
func DefaultOptions() Options {
	return Options{
		Delimiter: DefaultDelimiter,
		Separator: DefaultSeparator,
		Precision: DefaultPrecision,
	}
}

// Option overrides a single formatting option. Options compose key-wise:
// a key no Option sets falls through to the next lower layer.
type Option func(*overrides)

// overrides records which keys a layer actually set. Pointers distinguish
// "not set" from legitimate zero values such as an empty delimiter.
type overrides struct {
	delimiter *string
	separator *string
	precision *int
}

// WithDelimiter overrides the digit-group delimiter.
func WithDelimiter(d string) Option {
	return func(o *overrides) { o.delimiter = &d }
}

// WithSeparator overrides the integer/decimal separator.
func WithSeparator(s string) Option {
	return func(o *overrides) { o.separator = &s }
}

// WithPrecision overrides the number of decimal digits.
func WithPrecision(p int) Option {
	return func(o *overrides) { o.precision = &p }
}

// layer applies the given options on top of base and returns the result.
func layer(base Options, opts []Option) Options {
	var ov overrides
	for _, opt := range opts {
		opt(&ov)
	}
	if ov.delimiter != nil {
		base.Delimiter = *ov.delimiter
	}
	if ov.separator != nil {
		base.Separator = *ov.separator
	}
	if ov.precision != nil {
		base.Precision = *ov.precision
	}
	return base
}

// Formatter formats numbers using a fixed set of process-wide default
// options. It is immutable after construction and safe for concurrent use.
type Formatter struct {
	defaults Options
}

// New creates a Formatter whose defaults are the built-in defaults overlaid
// with the given options. Pass the process-wide configured defaults here,
// resolved once at the call boundary.
func New(defaults ...Option) *Formatter {
	return &Formatter{defaults: layer(DefaultOptions(), defaults)}
}

// Defaults returns the formatter's resolved default options.
func (f *Formatter) Defaults() Options {
	return f.defaults
}

// resolve merges per-call options over the formatter defaults and validates
// the result. Negative precision is a caller error, rejected here so the
// formatting algorithms never see it.
func (f *Formatter) resolve(opts []Option) (Options, error) {
	o := layer(f.defaults, opts)
	if o.Precision < 0 {
		return Options{}, apperrors.NewValidationError("precision", "must not be negative, got %d", o.Precision)
	}
	return o, nil
}
