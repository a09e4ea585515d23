// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayError], [DisplayResolvedOptions].
//
//   - Format* and Parse* functions are pure and perform no I/O.
//     Examples: [ParseValue].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Example: [WriteResultsToFile].

package cli

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/numfmt/internal/format"
	"github.com/agbru/numfmt/internal/ui"
)

// ParseValue interprets a raw command-line or stdin token as the most precise
// numeric representation available. Integer-looking tokens stay integral
// (machine int64 first, arbitrary-size big.Int beyond that) so whole numbers
// never grow a decimal part; everything else is handed to the formatter as a
// string and takes the rounding path.
func ParseValue(raw string) any {
	s := strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if i, ok := new(big.Int).SetString(s, 10); ok {
		return i
	}
	return s
}

// DisplayResult writes a single formatted result on its own line.
func DisplayResult(out io.Writer, result string) {
	fmt.Fprintln(out, result)
}

// DisplayError reports a failed input to the error writer, colorized for
// humans.
func DisplayError(errOut io.Writer, err error) {
	fmt.Fprintf(errOut, "%sError:%s %v\n", ui.ColorRed(), ui.ColorReset(), err)
}

// DisplayResolvedOptions echoes the options a batch will run with.
// Used in verbose mode so scripts can confirm which layer won.
func DisplayResolvedOptions(out io.Writer, opts format.Options) {
	fmt.Fprintf(out, "--- Resolved Options ---\n")
	fmt.Fprintf(out, "Delimiter: %s%q%s  Separator: %s%q%s  Precision: %s%d%s\n",
		ui.ColorCyan(), opts.Delimiter, ui.ColorReset(),
		ui.ColorCyan(), opts.Separator, ui.ColorReset(),
		ui.ColorCyan(), opts.Precision, ui.ColorReset())
}

// DisplayBatchTiming reports how long a batch took, in verbose mode.
func DisplayBatchTiming(out io.Writer, count int, d time.Duration) {
	fmt.Fprintf(out, "Formatted %s%d%s value(s) in %s%s%s.\n",
		ui.ColorGreen(), count, ui.ColorReset(),
		ui.ColorYellow(), format.FormatDuration(d), ui.ColorReset())
}

// WriteResultsToFile writes formatted results to a file, one per line, with
// a commented header.
//
// Parameters:
//   - results: The formatted values, in input order.
//   - path: The destination file path.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultsToFile(results []string, path string) error {
	if path == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Formatted Numbers\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Count: %d\n", len(results))
	fmt.Fprintf(file, "\n")
	for _, r := range results {
		fmt.Fprintln(file, r)
	}

	return nil
}
