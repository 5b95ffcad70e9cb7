package mdfix

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-mdfix/internal/assets"
	"github.com/alnah/go-mdfix/internal/fileutil"
	"github.com/alnah/go-mdfix/internal/pipeline"
)

var _ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)

// Input is one document to fix.
type Input struct {
	Markdown string
	HTML     bool // also render the fixed Markdown to a standalone HTML page
}

// Stats counts what a Fix changed.
type Stats struct {
	URLs         int // parenthesized URLs rewritten
	SpacedSpans  int // emphasis spans that received padding
	ChangedLines int // regions reported by Diff
}

// Result holds the fixed document.
type Result struct {
	Markdown string
	HTML     []byte // nil unless Input.HTML was set
	Changed  bool   // Markdown differs from the input bytes
	Stats    Stats
}

// Fixer applies Transform with document-level options.
// Create with NewFixer. Safe for concurrent use.
type Fixer struct {
	cfg           fixerConfig
	styleLoader   assets.StyleLoader
	htmlConverter pipeline.HTMLConverter
}

// NewFixer creates a Fixer. The preview style is resolved eagerly so a
// missing style fails here rather than on the first Fix.
func NewFixer(opts ...Option) (*Fixer, error) {
	f := &Fixer{
		cfg:           fixerConfig{lang: pipeline.DefaultLang},
		styleLoader:   assets.NewEmbeddedLoader(),
		htmlConverter: pipeline.NewGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(f.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		f.styleLoader = resolver
	}

	if err := f.resolveStyle(); err != nil {
		return nil, err
	}

	return f, nil
}

// resolveStyle turns the style input (name, path, or CSS content) into CSS.
// The CSS is embedded in a <style> element, so it must not close that element.
func (f *Fixer) resolveStyle() error {
	input := f.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyle
	}

	css, source, err := f.loadStyle(input)
	if err != nil {
		return err
	}
	if closesStyleElement(css) {
		return fmt.Errorf("%w: %s contains </style>", ErrInvalidStyle, source)
	}
	f.cfg.resolvedStyle = css
	return nil
}

// loadStyle reads the CSS for input and names where it came from.
// Inline CSS is recognized first since "</style>" and comments contain '/'.
func (f *Fixer) loadStyle(input string) (css, source string, err error) {
	if fileutil.IsCSS(input) {
		return input, "inline style", nil
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return "", "", fmt.Errorf("loading style file %q: %w", input, err)
		}
		return string(content), fmt.Sprintf("style file %q", input), nil
	}

	css, err = f.styleLoader.LoadStyle(input)
	if err != nil {
		return "", "", fmt.Errorf("loading style %q: %w", input, err)
	}
	return css, fmt.Sprintf("style %q", input), nil
}

func closesStyleElement(css string) bool {
	return strings.Contains(strings.ToLower(css), "</style")
}

// Fix normalizes input.Markdown and optionally renders it to HTML.
// With no options set, Result.Markdown equals Transform(input.Markdown).
// Recovers from internal panics so a single bad document cannot crash a batch.
func (f *Fixer) Fix(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source := input.Markdown
	if f.cfg.normalizeEOL {
		source = pipeline.NormalizeLineEndings(source)
	}

	fixed, st := pipeline.Fix(source, pipeline.Options{
		ProtectCode:     f.cfg.protectCode,
		SkipFrontmatter: f.cfg.skipFrontmatter,
	})

	res := &Result{
		Markdown: fixed,
		Changed:  fixed != input.Markdown,
		Stats: Stats{
			URLs:         st.URLs,
			SpacedSpans:  st.SpacedSpans,
			ChangedLines: len(Diff(source, fixed)),
		},
	}

	if !input.HTML {
		return res, nil
	}

	page, err := f.htmlConverter.ToHTML(ctx, fixed, pipeline.Document{
		Title: f.cfg.title,
		Lang:  f.cfg.lang,
		CSS:   f.cfg.resolvedStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}
	res.HTML = []byte(page)

	return res, nil
}
