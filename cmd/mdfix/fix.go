package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-mdfix/internal/config"
)

// runFix executes the fix command.
func runFix(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseFixFlags(args, env)
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

	targets, err := fixTargets(positional, flags, cfg)
	if err != nil {
		return err
	}

	fixer, err := newFixer(fixerOptions(cfg)...)
	if err != nil {
		return err
	}

	results := runBatch(ctx, targets, cfg.Workers, func(ctx context.Context, t fileTarget) fileResult {
		return fixFile(ctx, fixer, t, env)
	})
	return reportFix(results, flags.common, env)
}

// fixTargets resolves inputs and destinations for the fix command.
func fixTargets(args []string, flags *fixFlags, cfg *config.Config) ([]fileTarget, error) {
	paths, err := resolveInputs(args, cfg.Input.DefaultDir)
	if err != nil {
		return nil, err
	}
	sources, err := discoverFiles(paths, cfg.Input.Extensions)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: no markdown files found in %v", ErrNoInput, paths)
	}
	return planOutputs(sources, outputPlan{
		write:      flags.write,
		output:     flags.output,
		defaultDir: cfg.Output.DefaultDir,
	})
}

// reportFix prints documents bound for stdout, then the per-file results.
func reportFix(results []fileResult, common commonFlags, env *Environment) error {
	if len(results) == 1 && results[0].Err != nil {
		return results[0].Err
	}

	for _, r := range results {
		if r.Err == nil && r.OutputPath == "" {
			fmt.Fprint(env.Stdout, r.Result.Markdown)
		}
	}

	failed := printResults(results, common.quiet, common.verbose, env)
	return batchError(failed, len(results))
}
