// This file provides the REPL (Read-Eval-Print Loop) functionality
// for interactive number formatting.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/agbru/numfmt/internal/format"
	"github.com/agbru/numfmt/internal/ui"
)

// REPL represents an interactive formatting session. Session options start
// from the process-wide defaults and can be changed with "set" commands.
type REPL struct {
	opts format.Options
	in   io.Reader
	out  io.Writer
}

// NewREPL creates a new REPL instance starting from the given defaults.
func NewREPL(defaults format.Options) *REPL {
	return &REPL{
		opts: defaults,
		in:   os.Stdin,
		out:  os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive session. It continuously reads user input and
// processes commands until the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"numfmt> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// processCommand handles one line of input. Returns false when the session
// should end.
func (r *REPL) processCommand(input string) bool {
	fields := strings.Fields(input)

	switch fields[0] {
	case "quit", "exit", "q":
		fmt.Fprintln(r.out, "Goodbye!")
		return false
	case "help", "h", "?":
		r.printHelp()
		return true
	case "show":
		DisplayResolvedOptions(r.out, r.opts)
		return true
	case "set":
		r.handleSet(fields[1:])
		return true
	}

	r.formatLine(input)
	return true
}

// handleSet updates one session option: set delimiter|separator|precision <value>.
// The value may be quoted to allow spaces and empty strings.
func (r *REPL) handleSet(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(r.out, "%sUsage: set delimiter|separator|precision <value>%s\n", ui.ColorYellow(), ui.ColorReset())
		return
	}
	key := args[0]
	value := strings.TrimSpace(strings.TrimPrefix(strings.Join(args, " "), key))
	value = strings.Trim(value, `"'`)

	switch key {
	case "delimiter":
		r.opts.Delimiter = value
	case "separator":
		r.opts.Separator = value
	case "precision":
		p, err := strconv.Atoi(value)
		if err != nil || p < 0 {
			fmt.Fprintf(r.out, "%sPrecision must be a non-negative integer.%s\n", ui.ColorRed(), ui.ColorReset())
			return
		}
		r.opts.Precision = p
	default:
		fmt.Fprintf(r.out, "%sUnknown option %q.%s\n", ui.ColorRed(), key, ui.ColorReset())
		return
	}
	DisplayResolvedOptions(r.out, r.opts)
}

// formatLine formats a single value with the session options.
func (r *REPL) formatLine(input string) {
	f := format.New(
		format.WithDelimiter(r.opts.Delimiter),
		format.WithSeparator(r.opts.Separator),
		format.WithPrecision(r.opts.Precision),
	)
	result, err := f.Delimited(ParseValue(input))
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "%s%s%s\n", ui.ColorBold(), result, ui.ColorReset())
}

// printBanner displays the session welcome line.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%sNumber Formatter - Interactive Mode%s\n", ui.ColorBold(), ui.ColorReset())
}

// printHelp displays the available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "Commands:\n")
	fmt.Fprintf(r.out, "  <value>                 format a number (e.g. 12345678.05)\n")
	fmt.Fprintf(r.out, "  set delimiter <s>       change the digit group delimiter\n")
	fmt.Fprintf(r.out, "  set separator <s>       change the decimal separator\n")
	fmt.Fprintf(r.out, "  set precision <n>       change the decimal digit count\n")
	fmt.Fprintf(r.out, "  show                    show the current options\n")
	fmt.Fprintf(r.out, "  help                    show this help\n")
	fmt.Fprintf(r.out, "  quit                    exit\n")
}
