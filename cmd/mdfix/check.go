package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-mdfix"
	"github.com/alnah/go-mdfix/internal/hints"
	"github.com/alnah/go-mdfix/internal/report"
)

// ErrCheckFailed indicates at least one file would change under fix.
var ErrCheckFailed = errors.New("files need fixing")

// runCheck executes the check command. Nothing is written.
func runCheck(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseCheckFlags(args, env)
	if err != nil {
		return err
	}

	cfg, err := loadSettings(flags.common, env)
	if err != nil {
		return err
	}
	mergeFixOptions(flags.options, flags.changed, cfg)
	if flags.changed("workers") {
		cfg.Workers = flags.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	paths, err := resolveInputs(positional, cfg.Input.DefaultDir)
	if err != nil {
		return err
	}
	sources, err := discoverFiles(paths, cfg.Input.Extensions)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("%w: no markdown files found in %v", ErrNoInput, paths)
	}

	// Targets without an output path are fixed in memory only.
	targets := make([]fileTarget, len(sources))
	for i, s := range sources {
		targets[i] = fileTarget{InputPath: s.path}
	}

	fixer, err := newFixer(fixerOptions(cfg)...)
	if err != nil {
		return err
	}

	results := runBatch(ctx, targets, cfg.Workers, func(ctx context.Context, t fileTarget) fileResult {
		return fixFile(ctx, fixer, t, env)
	})
	return reportCheck(results, flags, env)
}

// reportCheck prints the changes of every file that needs fixing and
// returns ErrCheckFailed when there is at least one.
func reportCheck(results []fileResult, flags *checkFlags, env *Environment) error {
	if len(results) == 1 && results[0].Err != nil {
		return results[0].Err
	}

	printer := report.New(env.Stdout, useColor(env, env.Stdout, flags.noColor))

	var needFix []string
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", displayName(r.InputPath), r.Err)
			failed++
			continue
		}
		if !r.Result.Changed {
			if flags.common.verbose {
				fmt.Fprintf(env.Stderr, "ok %s\n", displayName(r.InputPath))
			}
			continue
		}
		needFix = append(needFix, r.InputPath)
		if !flags.common.quiet {
			printer.File(displayName(r.InputPath), mdfix.Diff(r.Original, r.Result.Markdown))
		}
	}

	if !flags.common.quiet {
		printer.Summary(len(results)-failed, len(needFix))
	}

	if err := batchError(failed, len(results)); err != nil {
		return err
	}
	if len(needFix) > 0 {
		return fmt.Errorf("%w: %d of %d%s", ErrCheckFailed, len(needFix), len(results), hints.ForCheckFailed(needFix))
	}
	return nil
}
