package cli

import (
	"strings"
	"testing"
)

// TestGenerateCompletion verifies script generation for each shell.
func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"_numfmt_completions", "complete -F", "--precision", "--delimiter"}},
		{"zsh", []string{"#compdef numfmt", "_arguments", "--precision"}},
		{"fish", []string{"complete -c numfmt", "-l precision", "-s p"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf strings.Builder
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) returned error: %v", tt.shell, err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script should contain %q", tt.shell, want)
				}
			}
		})
	}
}

// TestGenerateCompletion_UnsupportedShell verifies rejection.
func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()
	var buf strings.Builder
	if err := GenerateCompletion(&buf, "tcsh"); err == nil {
		t.Error("GenerateCompletion should reject unsupported shells")
	}
}

// TestFlagRegistry_CoversEveryFlag keeps the registry aligned with the
// flags ParseConfig registers.
func TestFlagRegistry_CoversEveryFlag(t *testing.T) {
	t.Parallel()
	want := []string{"delimiter", "separator", "precision", "quiet", "verbose", "interactive", "no-color", "output", "completion"}

	have := map[string]bool{}
	for _, f := range flagRegistry {
		have[f.Long] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("flagRegistry is missing %q", name)
		}
	}
}
