// Package app wires configuration, formatting, and presentation into the
// numfmt executable.
package app

import (
	"errors"
	"flag"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/numfmt/internal/cli"
	"github.com/agbru/numfmt/internal/config"
	apperrors "github.com/agbru/numfmt/internal/errors"
	"github.com/agbru/numfmt/internal/format"
	"github.com/agbru/numfmt/internal/logging"
	"github.com/agbru/numfmt/internal/ui"
)

// Application represents the numfmt application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Stdin     io.Reader
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithStdin sets a custom stdin reader (useful for testing).
func WithStdin(r io.Reader) AppOption {
	return func(a *Application) { a.Stdin = r }
}

// WithLogger sets a custom logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, Stdin: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}

	programName := "numfmt"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "numfmt")
	}
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	formatter := format.New(a.Config.FormatDefaults()...)

	if a.Config.Interactive {
		return a.runInteractive(formatter, out)
	}

	return a.runBatch(formatter, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		cli.DisplayError(a.ErrWriter, err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runInteractive starts the REPL with the process defaults as session options.
func (a *Application) runInteractive(formatter *format.Formatter, out io.Writer) int {
	repl := cli.NewREPL(formatter.Defaults())
	repl.SetInput(a.Stdin)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runBatch formats the positional arguments, or stdin lines when no
// arguments were given.
func (a *Application) runBatch(formatter *format.Formatter, out io.Writer) int {
	if a.Config.Verbose && !a.Config.Quiet {
		cli.DisplayResolvedOptions(a.ErrWriter, formatter.Defaults())
	}

	start := time.Now()
	var res cli.BatchResult
	if len(a.Config.Values) > 0 {
		res = cli.Batch(formatter, a.Config.Values, out, a.ErrWriter)
	} else {
		res = cli.BatchReader(formatter, a.Stdin, out, a.ErrWriter)
	}
	elapsed := time.Since(start)

	a.Logger.Debug("batch complete",
		logging.Int("formatted", len(res.Formatted)),
		logging.Int("failures", res.Failures),
		logging.String("duration", format.FormatDuration(elapsed)))

	if a.Config.Verbose && !a.Config.Quiet {
		cli.DisplayBatchTiming(a.ErrWriter, len(res.Formatted), elapsed)
	}

	if a.Config.OutputFile != "" {
		if err := cli.WriteResultsToFile(res.Formatted, a.Config.OutputFile); err != nil {
			a.Logger.Error("writing output file", err, logging.String("path", a.Config.OutputFile))
			cli.DisplayError(a.ErrWriter, err)
			return apperrors.ExitErrorGeneric
		}
	}

	return res.ExitCode()
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
