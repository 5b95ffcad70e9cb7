package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/alnah/go-mdfix/internal/fileutil"
	"github.com/alnah/go-mdfix/internal/hints"
)

// stdinPath names standard input on the command line.
const stdinPath = "-"

// Sentinel errors for file discovery and output planning.
var (
	ErrInvalidExtension = errors.New("not a markdown file")
	ErrNeedsOutput      = errors.New("multiple files need a destination")
	ErrConflictingFlags = errors.New("conflicting flags")
	ErrTooManyInputs    = errors.New("too many inputs")
)

// source is one discovered markdown file.
type source struct {
	path string
	root string // walked directory, empty for a file named on the command line
}

// fileTarget pairs an input with where its fixed content goes.
type fileTarget struct {
	InputPath  string
	OutputPath string // empty writes to stdout
}

// resolveInputs returns the paths to process. With no arguments it falls
// back to the configured input directory, then to stdin.
func resolveInputs(args []string, defaultDir string) ([]string, error) {
	if len(args) == 0 {
		if defaultDir != "" {
			return []string{defaultDir}, nil
		}
		return []string{stdinPath}, nil
	}
	if len(args) > 1 && slices.Contains(args, stdinPath) {
		return nil, fmt.Errorf("%w: stdin cannot be combined with paths", ErrTooManyInputs)
	}
	return args, nil
}

// discoverFiles expands directories into the markdown files they contain.
// Files named explicitly must carry one of exts.
func discoverFiles(paths, exts []string) ([]source, error) {
	var sources []source
	for _, p := range paths {
		if p == stdinPath {
			sources = append(sources, source{path: stdinPath})
			continue
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if !fileutil.IsMarkdownPath(p, exts) {
				return nil, fmt.Errorf("%w: %s (extension %q)", ErrInvalidExtension, p, filepath.Ext(p))
			}
			sources = append(sources, source{path: p})
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() || !fileutil.IsMarkdownPath(path, exts) {
				return nil
			}
			sources = append(sources, source{path: path, root: p})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return sources, nil
}

// outputPlan holds the destination flags of the fix command.
type outputPlan struct {
	write      bool   // rewrite files in place
	output     string // -o file or directory
	defaultDir string // output.defaultDir from config or env
}

// planOutputs decides where each source is written.
//
//   - -w rewrites every file in place.
//   - A single file or stdin goes to stdout, or to -o when given.
//   - Several files or a directory go under -o (or the configured default
//     directory), mirroring the tree below each walked directory.
func planOutputs(sources []source, plan outputPlan) ([]fileTarget, error) {
	if plan.write && plan.output != "" {
		return nil, fmt.Errorf("%w: --write and --output cannot be used together", ErrConflictingFlags)
	}

	single := len(sources) == 1 && sources[0].root == ""

	if plan.write {
		if single && sources[0].path == stdinPath {
			return nil, fmt.Errorf("%w: --write needs a file, not stdin", ErrConflictingFlags)
		}
		targets := make([]fileTarget, len(sources))
		for i, s := range sources {
			targets[i] = fileTarget{InputPath: s.path, OutputPath: s.path}
		}
		return targets, nil
	}

	if single {
		out := plan.output
		if out != "" && fileutil.IsDir(out) {
			out = filepath.Join(out, stdinName(sources[0].path))
		}
		return []fileTarget{{InputPath: sources[0].path, OutputPath: out}}, nil
	}

	dir := plan.output
	if dir == "" {
		dir = plan.defaultDir
	}
	if dir == "" {
		return nil, fmt.Errorf("%w%s", ErrNeedsOutput, hints.ForDirectoryNeedsOutput())
	}

	targets := make([]fileTarget, len(sources))
	for i, s := range sources {
		targets[i] = fileTarget{InputPath: s.path, OutputPath: mirrorPath(s, dir)}
	}
	return targets, nil
}

// mirrorPath places s under dir, keeping its position below the walked
// directory. Explicit files land directly in dir.
func mirrorPath(s source, dir string) string {
	if s.root != "" {
		if rel, err := filepath.Rel(s.root, s.path); err == nil {
			return filepath.Join(dir, rel)
		}
	}
	return filepath.Join(dir, filepath.Base(s.path))
}

// stdinName gives stdin a file name when it is written into a directory.
func stdinName(path string) string {
	if path == stdinPath {
		return "stdin.md"
	}
	return filepath.Base(path)
}

// displayName is how a path appears in reports.
func displayName(path string) string {
	if path == stdinPath {
		return "<stdin>"
	}
	return path
}
