package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/agbru/numfmt/internal/errors"
	"github.com/agbru/numfmt/internal/format"
)

// BatchResult summarizes a batch run.
type BatchResult struct {
	// Formatted holds the successfully formatted values, in input order.
	Formatted []string
	// Failures counts inputs that could not be formatted.
	Failures int
}

// Batch formats each raw value in order, writing one result per line to out.
// A value that fails to format is reported to errOut and counted; the batch
// continues with the remaining values so one bad line never aborts a pipe.
func Batch(f *format.Formatter, values []string, out, errOut io.Writer) BatchResult {
	res := BatchResult{Formatted: make([]string, 0, len(values))}
	for _, raw := range values {
		formatted, err := f.Delimited(ParseValue(raw))
		if err != nil {
			DisplayError(errOut, err)
			res.Failures++
			continue
		}
		DisplayResult(out, formatted)
		res.Formatted = append(res.Formatted, formatted)
	}
	return res
}

// BatchReader formats one value per line read from r, skipping blank lines.
// Line numbers are attached to errors so failures in long pipes can be found.
func BatchReader(f *format.Formatter, r io.Reader, out, errOut io.Writer) BatchResult {
	var res BatchResult

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		formatted, err := f.Delimited(ParseValue(line))
		if err != nil {
			DisplayError(errOut, apperrors.WrapError(err, "line %d", lineNo))
			res.Failures++
			continue
		}
		DisplayResult(out, formatted)
		res.Formatted = append(res.Formatted, formatted)
	}
	if err := scanner.Err(); err != nil {
		DisplayError(errOut, fmt.Errorf("reading input: %w", err))
		res.Failures++
	}
	return res
}

// ExitCode maps a batch outcome to the process exit code.
func (r BatchResult) ExitCode() int {
	if r.Failures > 0 {
		return apperrors.ExitErrorInput
	}
	return apperrors.ExitSuccess
}
