package config

import (
	"bytes"
	"testing"
)

// TestEnvOverrides verifies environment values apply when flags are unset.
func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"DELIMITER", " ")
	t.Setenv(EnvPrefix+"SEPARATOR", ",")
	t.Setenv(EnvPrefix+"PRECISION", "4")
	t.Setenv(EnvPrefix+"QUIET", "yes")

	var buf bytes.Buffer
	cfg, err := ParseConfig("numfmt", nil, &buf)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.Delimiter != " " || cfg.Separator != "," || cfg.Precision != 4 {
		t.Errorf("env overrides not applied: %q %q %d", cfg.Delimiter, cfg.Separator, cfg.Precision)
	}
	if !cfg.Quiet {
		t.Error("NUMFMT_QUIET=yes should set Quiet")
	}
}

// TestEnvOverrides_FlagWins verifies explicit flags take priority over env.
func TestEnvOverrides_FlagWins(t *testing.T) {
	t.Setenv(EnvPrefix+"PRECISION", "7")
	t.Setenv(EnvPrefix+"DELIMITER", "_")

	var buf bytes.Buffer
	cfg, err := ParseConfig("numfmt", []string{"-p", "1"}, &buf)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.Precision != 1 {
		t.Errorf("Precision = %d; flag should win over env", cfg.Precision)
	}
	if cfg.Delimiter != "_" {
		t.Errorf("Delimiter = %q; env should apply for unset flag", cfg.Delimiter)
	}
}

// TestEnvOverrides_InvalidValues verifies malformed env values are ignored.
func TestEnvOverrides_InvalidValues(t *testing.T) {
	t.Setenv(EnvPrefix+"PRECISION", "lots")
	t.Setenv(EnvPrefix+"VERBOSE", "maybe")

	var buf bytes.Buffer
	cfg, err := ParseConfig("numfmt", nil, &buf)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.Precision != 2 {
		t.Errorf("Precision = %d; unparseable env value should keep default", cfg.Precision)
	}
	if cfg.Verbose {
		t.Error("unrecognized boolean env value should keep default")
	}
}

// TestEnvOverrides_NegativePrecisionRejected verifies validation still runs
// on env-supplied values.
func TestEnvOverrides_NegativePrecisionRejected(t *testing.T) {
	t.Setenv(EnvPrefix+"PRECISION", "-3")

	var buf bytes.Buffer
	if _, err := ParseConfig("numfmt", nil, &buf); err == nil {
		t.Error("ParseConfig should reject negative precision from env")
	}
}

// TestParseBoolEnv covers the accepted spellings.
func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		val        string
		defaultVal bool
		want       bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"false", true, false},
		{"0", true, false},
		{"No", true, false},
		{"maybe", true, true},
		{"", false, false},
	}

	for _, tt := range tests {
		if got := parseBoolEnv(tt.val, tt.defaultVal); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v; want %v", tt.val, tt.defaultVal, got, tt.want)
		}
	}
}
