package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-mdfix"
	"github.com/alnah/go-mdfix/internal/config"
	"github.com/alnah/go-mdfix/internal/fileutil"
	"github.com/alnah/go-mdfix/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteOutput  = errors.New("failed to write output file")
	ErrBatchFailed  = errors.New("some files failed")
)

// Fixer is the part of mdfix.Fixer the commands use.
type Fixer interface {
	Fix(ctx context.Context, input mdfix.Input) (*mdfix.Result, error)
}

// Compile-time interface implementation check.
var _ Fixer = (*mdfix.Fixer)(nil)

// fileResult holds the outcome of processing one file.
type fileResult struct {
	InputPath  string
	OutputPath string
	Original   string // input content as read
	Result     *mdfix.Result
	Written    bool
	Err        error
	Duration   time.Duration
}

// runBatch applies fn to every target with at most workers in flight.
// Results keep the order of targets.
func runBatch(ctx context.Context, targets []fileTarget, workers int, fn func(context.Context, fileTarget) fileResult) []fileResult {
	if len(targets) == 0 {
		return nil
	}

	results := make([]fileResult, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveWorkers(workers, len(targets)))

	for i, t := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = fileResult{InputPath: t.InputPath, Err: err}
				return nil
			}
			results[i] = fn(gctx, t)
			return nil
		})
	}

	// Workers record failures in results and never return an error.
	_ = g.Wait()
	return results
}

// resolveWorkers determines how many files are processed at once.
// Priority: explicit value > GOMAXPROCS. Never more than the file count.
func resolveWorkers(n, files int) int {
	if n <= 0 {
		// GOMAXPROCS is adjusted by automaxprocs for containers.
		n = runtime.GOMAXPROCS(0)
	}
	n = min(n, config.MaxWorkers)
	if files > 0 {
		n = min(n, files)
	}
	return max(n, 1)
}

// readInput reads a markdown file, or stdin for "-".
func readInput(path string, env *Environment) (string, error) {
	if path == stdinPath {
		if env.IsTerminal != nil && env.IsTerminal(env.Stdin) {
			return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForStdinTerminal())
		}
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return "", fmt.Errorf("%w: stdin: %v", ErrReadMarkdown, err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided or discovered path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return string(data), nil
}

// fixFile fixes one target and writes it when it has a destination.
// Files rewritten in place are only touched when their content changed.
func fixFile(ctx context.Context, fixer Fixer, t fileTarget, env *Environment) (result fileResult) {
	start := env.Now()
	result = fileResult{InputPath: t.InputPath, OutputPath: t.OutputPath}
	defer func() { result.Duration = env.Now().Sub(start) }()

	content, err := readInput(t.InputPath, env)
	if err != nil {
		result.Err = err
		return result
	}
	result.Original = content

	res, err := fixer.Fix(ctx, mdfix.Input{Markdown: content})
	if err != nil {
		result.Err = err
		return result
	}
	result.Result = res

	if t.OutputPath == "" {
		return result
	}
	if t.OutputPath == t.InputPath && !res.Changed {
		return result
	}

	if err := os.MkdirAll(filepath.Dir(t.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		return result
	}
	if err := fileutil.WriteFileAtomic(t.OutputPath, []byte(res.Markdown), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return result
	}
	result.Written = true
	return result
}

// resultSummary counts outcomes across a batch.
type resultSummary struct {
	Changed   int
	Unchanged int
	Failed    int
}

func countResults(results []fileResult) resultSummary {
	var summary resultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Result != nil && r.Result.Changed:
			summary.Changed++
		default:
			summary.Unchanged++
		}
	}
	return summary
}

// printResults outputs fix results and returns the number of failures.
func printResults(results []fileResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", displayName(r.InputPath), r.Err)
			continue
		}
		if quiet {
			continue
		}

		if verbose {
			s := r.Result.Stats
			fmt.Fprintf(env.Stderr, "%s -> %s (%d URLs, %d spans, %d lines, %v)\n",
				displayName(r.InputPath), outputName(r), s.URLs, s.SpacedSpans, s.ChangedLines,
				r.Duration.Round(time.Millisecond))
			continue
		}
		if r.Written {
			fmt.Fprintf(env.Stderr, "Fixed %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stderr, "\n%d fixed, %d unchanged, %d failed\n",
			summary.Changed, summary.Unchanged, summary.Failed)
	}

	return summary.Failed
}

func outputName(r fileResult) string {
	switch {
	case r.OutputPath == "":
		return "<stdout>"
	case !r.Written:
		return r.OutputPath + " (unchanged)"
	default:
		return r.OutputPath
	}
}

// batchError reports failed files as one error.
func batchError(failed, total int) error {
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d", ErrBatchFailed, failed, total)
}
