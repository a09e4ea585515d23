package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles the numfmt binary into a temp dir and returns its path.
func buildBinary(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	binName := "numfmt"
	if runtime.GOOS == "windows" {
		binName = "numfmt.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as CWD; the module root is
	// two levels up.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/numfmt")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to build numfmt: %v", err)
	}
	return binPath
}

// TestCLI_E2E verifies the built binary functions correctly.
func TestCLI_E2E(t *testing.T) {
	binPath := buildBinary(t)

	tests := []struct {
		name     string
		args     []string
		stdin    string
		env      []string
		wantOut  string
		wantCode int
	}{
		{
			name:     "integer argument",
			args:     []string{"12345678"},
			wantOut:  "12,345,678\n",
			wantCode: 0,
		},
		{
			name:     "float rounds with carry",
			args:     []string{"998.999"},
			wantOut:  "999.00\n",
			wantCode: 0,
		},
		{
			name:     "negative float",
			args:     []string{"-234234.234"},
			wantOut:  "-234,234.23\n",
			wantCode: 0,
		},
		{
			name:     "custom delimiter",
			args:     []string{"--delimiter", ".", "12345678"},
			wantOut:  "12.345.678\n",
			wantCode: 0,
		},
		{
			name:     "custom separator",
			args:     []string{"--separator", " ", "12345678.05"},
			wantOut:  "12,345,678 05\n",
			wantCode: 0,
		},
		{
			name:     "european style",
			args:     []string{"--delimiter", " ", "--separator", ",", "98765432.98"},
			wantOut:  "98 765 432,98\n",
			wantCode: 0,
		},
		{
			name:     "zero precision drops separator",
			args:     []string{"--precision", "0", "12345678.05"},
			wantOut:  "12,345,678\n",
			wantCode: 0,
		},
		{
			name:     "stdin batch",
			stdin:    "1234\n998.999\n",
			wantOut:  "1,234\n999.00\n",
			wantCode: 0,
		},
		{
			name:     "env default applies",
			args:     []string{"12345678"},
			env:      []string{"NUMFMT_DELIMITER=_"},
			wantOut:  "12_345_678\n",
			wantCode: 0,
		},
		{
			name:     "flag beats env default",
			args:     []string{"--delimiter", ".", "12345678"},
			env:      []string{"NUMFMT_DELIMITER=_"},
			wantOut:  "12.345.678\n",
			wantCode: 0,
		},
		{
			name:     "bad value exits with input error",
			args:     []string{"1234", "junk"},
			wantOut:  "1,234\n",
			wantCode: 2,
		},
		{
			name:     "negative precision exits with config error",
			args:     []string{"--precision", "-1", "1234"},
			wantOut:  "",
			wantCode: 4,
		},
		{
			name:     "version flag",
			args:     []string{"--version"},
			wantOut:  "numfmt",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			cmd.Env = append(cmd.Env, tt.env...)
			if tt.stdin != "" {
				cmd.Stdin = strings.NewReader(tt.stdin)
			} else {
				cmd.Stdin = strings.NewReader("")
			}

			out, err := cmd.Output()
			code := 0
			if exitErr, ok := err.(*exec.ExitError); ok {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running binary: %v", err)
			}

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if tt.name == "version flag" {
				if !strings.Contains(string(out), tt.wantOut) {
					t.Errorf("output %q should contain %q", out, tt.wantOut)
				}
				return
			}
			if string(out) != tt.wantOut {
				t.Errorf("output = %q, want %q", out, tt.wantOut)
			}
		})
	}
}

// TestCLI_E2E_OutputFile verifies the --output file path.
func TestCLI_E2E_OutputFile(t *testing.T) {
	binPath := buildBinary(t)
	outFile := filepath.Join(t.TempDir(), "results.txt")

	cmd := exec.Command(binPath, "-o", outFile, "12345678", "998.999")
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	cmd.Stdin = strings.NewReader("")
	if out, err := cmd.Output(); err != nil {
		t.Fatalf("running binary: %v (stdout %q)", err, out)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	for _, want := range []string{"12,345,678", "999.00", "# Count: 2"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output file should contain %q, got:\n%s", want, data)
		}
	}
}
