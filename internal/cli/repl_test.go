package cli

import (
	"strings"
	"testing"

	"github.com/agbru/numfmt/internal/format"
)

func runREPL(t *testing.T, input string) string {
	t.Helper()
	noColor(t)

	r := NewREPL(format.DefaultOptions())
	r.SetInput(strings.NewReader(input))
	var out strings.Builder
	r.SetOutput(&out)
	r.Start()
	return out.String()
}

// TestREPL_FormatsValues verifies plain values are formatted.
func TestREPL_FormatsValues(t *testing.T) {
	out := runREPL(t, "12345678.05\nquit\n")

	if !strings.Contains(out, "12,345,678.05") {
		t.Errorf("output should contain formatted value, got: %s", out)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("output should contain exit message, got: %s", out)
	}
}

// TestREPL_SetCommands verifies session options change formatting.
func TestREPL_SetCommands(t *testing.T) {
	out := runREPL(t, "set delimiter .\nset separator ,\nset precision 0\n12345678.99\nexit\n")

	if !strings.Contains(out, "12.345.679") {
		t.Errorf("output should reflect session options, got: %s", out)
	}
}

// TestREPL_SetRejectsBadPrecision verifies invalid precision is refused.
func TestREPL_SetRejectsBadPrecision(t *testing.T) {
	out := runREPL(t, "set precision -1\nset precision abc\nquit\n")

	if strings.Count(out, "Precision must be a non-negative integer.") != 2 {
		t.Errorf("both bad values should be rejected, got: %s", out)
	}
}

// TestREPL_BadInputKeepsSessionAlive verifies errors do not end the session.
func TestREPL_BadInputKeepsSessionAlive(t *testing.T) {
	out := runREPL(t, "garbage!\n1234\nquit\n")

	if !strings.Contains(out, "Error:") {
		t.Errorf("bad input should report an error, got: %s", out)
	}
	if !strings.Contains(out, "1,234") {
		t.Errorf("session should continue after an error, got: %s", out)
	}
}

// TestREPL_EOFExits verifies EOF ends the session cleanly.
func TestREPL_EOFExits(t *testing.T) {
	out := runREPL(t, "1234\n")

	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("EOF should end the session with a goodbye, got: %s", out)
	}
}

// TestREPL_ShowAndHelp verifies informational commands.
func TestREPL_ShowAndHelp(t *testing.T) {
	out := runREPL(t, "show\nhelp\nquit\n")

	if !strings.Contains(out, "Resolved Options") {
		t.Errorf("show should print the current options, got: %s", out)
	}
	if strings.Count(out, "set precision <n>") < 2 {
		t.Errorf("help should print the command list again, got: %s", out)
	}
}
