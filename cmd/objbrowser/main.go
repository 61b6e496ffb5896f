package main

import (
	"os"
	"strconv"
	"strings"

	"objbrowser/internal/cli"
)

// isLineArg reports whether s looks like a displayed line number ("0003").
func isLineArg(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n > 0
}

func rewriteDirectLineLookupArgs(argv []string) []string {
	// Convenience: `objbrowser 0003` works like `objbrowser inspect 0003`.
	//
	// Cobra treats the first non-flag token as a subcommand, so argv is
	// rewritten before parsing. Persistent flags may come first, so look for
	// the first positional token rather than argv[1].
	if len(argv) < 2 {
		return argv
	}

	// Unknown flags are skipped without consuming a value so the line
	// number is never swallowed.
	valueFlags := map[string]bool{
		"--scene":     true,
		"--format":    true,
		"--filter":    true,
		"--log-level": true,
	}
	boolFlags := map[string]bool{
		"--pretty":  true,
		"--reverse": true,
		"--watch":   true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isLineArg(argv[i+1]) {
				out := make([]string, 0, len(argv)+1)
				out = append(out, argv[:i+1]...)
				out = append(out, "inspect")
				out = append(out, argv[i+1:]...)
				return out
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") || boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++
			}
			continue
		}

		if isLineArg(a) {
			out := make([]string, 0, len(argv)+1)
			out = append(out, argv[:i]...)
			out = append(out, "inspect")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectLineLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
