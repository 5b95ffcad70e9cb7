// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// InCI reports whether the process runs under a CI system.
var InCI = func() bool {
	return os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""
}

// ForConfigNotFound suggests --config or creating the per-user config that
// was searched for.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(toSlash(p), "/go-mdfix/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the built-in styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForStdinTerminal is shown when no path was given and stdin is interactive.
func ForStdinTerminal() string {
	return format("pipe a document in (cat doc.md | mdfix fix) or pass a file path")
}

// ForDirectoryNeedsOutput is shown when a directory is fixed without a
// destination.
func ForDirectoryNeedsOutput() string {
	return format("use -w to rewrite files in place or -o <dir> to write copies")
}

// ForCheckFailed suggests how to apply the changes check reported.
func ForCheckFailed(paths []string) string {
	target := "<paths>"
	if len(paths) > 0 {
		target = strings.Join(paths, " ")
	}
	hints := []string{"run mdfix fix -w " + target}
	if InCI() {
		hints = append(hints, "fix locally and commit, CI only reports")
	}
	hints = append(hints, "spans already padded are padded again, review before writing")
	return formatHints(hints)
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
