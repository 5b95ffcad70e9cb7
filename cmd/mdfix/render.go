package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-mdfix"
	"github.com/alnah/go-mdfix/internal/config"
	"github.com/alnah/go-mdfix/internal/fileutil"
	"github.com/alnah/go-mdfix/internal/hints"
)

// runRender executes the render command: fix one document, then write it
// as a standalone HTML page.
func runRender(ctx context.Context, args []string, env *Environment) error {
	start := env.Now()

	flags, positional, err := parseRenderFlags(args, env)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: render takes one file, got %d", ErrTooManyInputs, len(positional))
	}

	cfg, err := loadSettings(flags.common, env)
	if err != nil {
		return err
	}
	mergeFixOptions(flags.options, flags.changed, cfg)
	mergeRenderFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	input := stdinPath
	if len(positional) == 1 {
		input = positional[0]
	}
	if input != stdinPath && !fileutil.IsMarkdownPath(input, cfg.Input.Extensions) {
		if _, err := os.Stat(input); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s (extension %q)", ErrInvalidExtension, input, filepath.Ext(input))
	}

	title := cfg.Render.Title
	if title == "" && input != stdinPath {
		title = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}

	opts := append(fixerOptions(cfg),
		mdfix.WithStyle(cfg.Render.Style),
		mdfix.WithAssetPath(cfg.Render.AssetPath),
		mdfix.WithTitle(title),
		mdfix.WithLang(cfg.Render.Lang),
	)
	fixer, err := newFixer(opts...)
	if err != nil {
		return err
	}

	content, err := readInput(input, env)
	if err != nil {
		return err
	}

	res, err := fixer.Fix(ctx, mdfix.Input{Markdown: content, HTML: true})
	if err != nil {
		return err
	}

	if flags.output == "" {
		_, err := env.Stdout.Write(res.HTML)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(flags.output), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	if err := fileutil.WriteFileAtomic(flags.output, res.HTML, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "%s -> %s (%v)\n", displayName(input), flags.output, env.Now().Sub(start).Round(time.Millisecond))
	} else if !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "Created %s\n", flags.output)
	}
	return nil
}

// mergeRenderFlags applies explicitly set render flags over the config.
func mergeRenderFlags(f *renderFlags, cfg *config.Config) {
	if f.changed("style") {
		cfg.Render.Style = f.style
	}
	if f.changed("asset-path") {
		cfg.Render.AssetPath = f.assetPath
	}
	if f.changed("title") {
		cfg.Render.Title = f.title
	}
	if f.changed("lang") {
		cfg.Render.Lang = f.lang
	}
}
