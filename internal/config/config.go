// Package config handles application configuration from command-line flags
// and environment variables.
//
// Resolution chain for the formatting defaults (highest priority first):
//  1. CLI flags (--delimiter, --separator, --precision)
//  2. Environment variables (NUMFMT_DELIMITER, NUMFMT_SEPARATOR, ...)
//  3. Built-in defaults in the format package
//
// The resolved values are handed to the format package once, at the call
// boundary, as an explicit read-only defaults layer.
package config

import (
	"flag"
	"fmt"
	"io"

	apperrors "github.com/agbru/numfmt/internal/errors"
	"github.com/agbru/numfmt/internal/format"
)

// EnvPrefix is prepended to all environment variable names.
const EnvPrefix = "NUMFMT_"

// AppConfig holds the complete application configuration.
type AppConfig struct {
	// Delimiter is the digit-group delimiter default for this process.
	Delimiter string
	// Separator is the integer/decimal separator default for this process.
	Separator string
	// Precision is the decimal-digit count default for this process.
	Precision int
	// Quiet suppresses everything but the formatted results.
	Quiet bool
	// Verbose echoes the resolved options and batch timing to stderr.
	Verbose bool
	// Interactive starts the REPL instead of batch processing.
	Interactive bool
	// NoColor disables ANSI color output.
	NoColor bool
	// OutputFile is a path to additionally write results to (empty for none).
	OutputFile string
	// Completion selects a shell to emit a completion script for.
	Completion string
	// Values are the positional arguments left after flag parsing, one
	// numeric value per argument.
	Values []string
}

// ParseConfig parses command-line arguments and environment variables into
// an AppConfig.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errWriter: The writer for usage and flag error output.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when help was requested, a ConfigError or
//     ValidationError for invalid values.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.Delimiter, "delimiter", format.DefaultDelimiter, "string inserted between groups of three integer digits")
	fs.StringVar(&cfg.Separator, "separator", format.DefaultSeparator, "string inserted between the integer and decimal parts")
	fs.IntVar(&cfg.Precision, "precision", format.DefaultPrecision, "number of decimal digits for non-integer values")
	fs.IntVar(&cfg.Precision, "p", format.DefaultPrecision, "number of decimal digits (shorthand)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print formatted results only")
	fs.BoolVar(&cfg.Quiet, "q", false, "print formatted results only (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "echo resolved options and timing to stderr")
	fs.BoolVar(&cfg.Verbose, "v", false, "echo resolved options and timing (shorthand)")
	fs.BoolVar(&cfg.Interactive, "interactive", false, "start an interactive session")
	fs.BoolVar(&cfg.Interactive, "i", false, "start an interactive session (shorthand)")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&cfg.OutputFile, "output", "", "also write results to the given file")
	fs.StringVar(&cfg.OutputFile, "o", "", "also write results to the given file (shorthand)")
	fs.StringVar(&cfg.Completion, "completion", "", "emit a completion script for the given shell (bash, zsh, fish)")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags] [value ...]\n\n", programName)
		fmt.Fprintf(errWriter, "Formats numeric values with grouped thousands and fixed decimals.\n")
		fmt.Fprintf(errWriter, "Values are taken from the arguments, or from stdin (one per line)\nwhen no arguments are given.\n\n")
		fmt.Fprintf(errWriter, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errWriter, "\nExamples:\n")
		fmt.Fprintf(errWriter, "  %s 12345678.05\n", programName)
		fmt.Fprintf(errWriter, "  %s --delimiter ' ' --separator ',' 98765432.98\n", programName)
		fmt.Fprintf(errWriter, "  seq 1000 1010 | %s --precision 0\n", programName)
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("invalid arguments: %v", err)
	}

	applyEnvOverrides(&cfg, fs)
	cfg.Values = fs.Args()

	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// validate rejects configuration values the formatting core must never see.
func validate(cfg AppConfig) error {
	if cfg.Precision < 0 {
		return apperrors.NewValidationError("precision", "must not be negative, got %d", cfg.Precision)
	}
	switch cfg.Completion {
	case "", "bash", "zsh", "fish":
	default:
		return apperrors.NewConfigError("unsupported completion shell %q (want bash, zsh, or fish)", cfg.Completion)
	}
	return nil
}

// FormatDefaults returns the process-wide formatting defaults as options for
// format.New.
func (c AppConfig) FormatDefaults() []format.Option {
	return []format.Option{
		format.WithDelimiter(c.Delimiter),
		format.WithSeparator(c.Separator),
		format.WithPrecision(c.Precision),
	}
}
