package app

import (
	"fmt"
	"io"
)

// Version information, overridable at build time via -ldflags.
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the VCS revision the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// HasVersionFlag reports whether the arguments request version output.
// Checked before flag parsing so --version works alongside any other input.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" || arg == "-V" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version information to the given writer.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "numfmt %s (commit %s, built %s)\n", Version, Commit, Date)
}
