package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "precision")
	Short     string   // short flag without "-" (e.g., "p")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number")
	IsFile    bool     // true if the flag takes a file path
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "delimiter", Help: "Digit group delimiter", Values: []string{",", ".", " ", "_"}, ValueName: "string"},
	{Long: "separator", Help: "Decimal separator", Values: []string{".", ","}, ValueName: "string"},
	{Long: "precision", Short: "p", Help: "Decimal digits to render", Values: []string{"0", "1", "2", "3", "4"}, ValueName: "number"},
	{Long: "quiet", Short: "q", Help: "Print results only"},
	{Long: "verbose", Short: "v", Help: "Echo resolved options and timing"},
	{Long: "interactive", Short: "i", Help: "Start an interactive session"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "output", Short: "o", Help: "Also write results to a file", IsFile: true, ValueName: "file"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for the given shell.
// Supported shells: bash, zsh, fish.
func GenerateCompletion(out io.Writer, shell string) error {
	switch shell {
	case "bash":
		generateBash(out)
	case "zsh":
		generateZsh(out)
	case "fish":
		generateFish(out)
	default:
		return fmt.Errorf("unsupported shell %q (want bash, zsh, or fish)", shell)
	}
	return nil
}

// allFlagNames returns every long and short flag spelling with dashes.
func allFlagNames() []string {
	var names []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			names = append(names, "--"+f.Long)
		}
		if f.Short != "" {
			names = append(names, "-"+f.Short)
		}
	}
	return names
}

func generateBash(out io.Writer) {
	fmt.Fprintln(out, "# bash completion for numfmt")
	fmt.Fprintln(out, "_numfmt_completions() {")
	fmt.Fprintln(out, `    local cur prev`)
	fmt.Fprintln(out, `    cur="${COMP_WORDS[COMP_CWORD]}"`)
	fmt.Fprintln(out, `    prev="${COMP_WORDS[COMP_CWORD-1]}"`)
	fmt.Fprintln(out, `    case "$prev" in`)
	for _, f := range flagRegistry {
		if len(f.Values) == 0 && !f.IsFile {
			continue
		}
		spellings := "--" + f.Long
		if f.Short != "" {
			spellings += "|-" + f.Short
		}
		if f.IsFile {
			fmt.Fprintf(out, "        %s)\n            COMPREPLY=($(compgen -f -- \"$cur\")); return ;;\n", spellings)
			continue
		}
		fmt.Fprintf(out, "        %s)\n            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\")); return ;;\n",
			spellings, strings.Join(f.Values, " "))
	}
	fmt.Fprintln(out, "    esac")
	fmt.Fprintf(out, "    COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(allFlagNames(), " "))
	fmt.Fprintln(out, "}")
	fmt.Fprintln(out, "complete -F _numfmt_completions numfmt")
}

func generateZsh(out io.Writer) {
	fmt.Fprintln(out, "#compdef numfmt")
	fmt.Fprintln(out, "_numfmt() {")
	fmt.Fprintln(out, "    _arguments \\")
	for _, f := range flagRegistry {
		spec := "--" + f.Long
		if f.Long == "" {
			spec = "-" + f.Short
		}
		desc := strings.ReplaceAll(f.Help, "'", "")
		switch {
		case f.IsFile:
			fmt.Fprintf(out, "        '%s[%s]:%s:_files' \\\n", spec, desc, f.ValueName)
		case len(f.Values) > 0:
			fmt.Fprintf(out, "        '%s[%s]:%s:(%s)' \\\n", spec, desc, f.ValueName, strings.Join(f.Values, " "))
		default:
			fmt.Fprintf(out, "        '%s[%s]' \\\n", spec, desc)
		}
	}
	fmt.Fprintln(out, "        '*:value:'")
	fmt.Fprintln(out, "}")
	fmt.Fprintln(out, "_numfmt \"$@\"")
}

func generateFish(out io.Writer) {
	fmt.Fprintln(out, "# fish completion for numfmt")
	for _, f := range flagRegistry {
		var b strings.Builder
		b.WriteString("complete -c numfmt")
		if f.Long != "" {
			b.WriteString(" -l " + f.Long)
		}
		if f.Short != "" {
			b.WriteString(" -s " + f.Short)
		}
		b.WriteString(fmt.Sprintf(" -d %q", f.Help))
		if len(f.Values) > 0 {
			b.WriteString(fmt.Sprintf(" -xa %q", strings.Join(f.Values, " ")))
		}
		if f.IsFile {
			b.WriteString(" -r")
		}
		fmt.Fprintln(out, b.String())
	}
}
