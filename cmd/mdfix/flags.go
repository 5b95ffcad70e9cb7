package main

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdfix/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// fixOptionFlags holds the document-level fix options.
type fixOptionFlags struct {
	protectCode     bool
	skipFrontmatter bool
	normalizeEOL    bool
}

// fixFlags holds all flags for the fix command.
type fixFlags struct {
	common  commonFlags
	options fixOptionFlags
	write   bool
	output  string
	workers int
	changed func(name string) bool
}

// checkFlags holds all flags for the check command.
type checkFlags struct {
	common  commonFlags
	options fixOptionFlags
	workers int
	noColor bool
	changed func(name string) bool
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common    commonFlags
	options   fixOptionFlags
	output    string
	style     string
	assetPath string
	title     string
	lang      string
	changed   func(name string) bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file details and timing")
}

// addFixOptionFlags adds document-level fix options to a FlagSet.
func addFixOptionFlags(fs *flag.FlagSet, f *fixOptionFlags) {
	fs.BoolVar(&f.protectCode, "protect-code", false, "leave fenced code blocks untouched")
	fs.BoolVar(&f.skipFrontmatter, "skip-frontmatter", false, "leave leading YAML frontmatter untouched")
	fs.BoolVar(&f.normalizeEOL, "normalize-eol", false, "convert CRLF and CR line endings to LF")
}

func addWorkersFlag(fs *flag.FlagSet, n *int) {
	fs.IntVarP(n, "workers", "j", 0, "parallel workers (0 = auto)")
}

// newFixFlagSet registers the fix flags. Shared by parsing and completion.
func newFixFlagSet(f *fixFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("fix", flag.ContinueOnError)
	fs.BoolVarP(&f.write, "write", "w", false, "rewrite files in place")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	addWorkersFlag(fs, &f.workers)
	addCommonFlags(fs, &f.common)
	addFixOptionFlags(fs, &f.options)
	return fs
}

// newCheckFlagSet registers the check flags. Shared by parsing and completion.
func newCheckFlagSet(f *checkFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	addWorkersFlag(fs, &f.workers)
	fs.BoolVar(&f.noColor, "no-color", false, "disable coloured output")
	addCommonFlags(fs, &f.common)
	addFixOptionFlags(fs, &f.options)
	return fs
}

// newRenderFlagSet registers the render flags. Shared by parsing and completion.
func newRenderFlagSet(f *renderFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.StringVarP(&f.output, "output", "o", "", "output HTML file")
	fs.StringVar(&f.style, "style", "", "CSS style name, file path, or inline CSS")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with styles/{name}.css")
	fs.StringVar(&f.title, "title", "", "HTML title (default: file name)")
	fs.StringVar(&f.lang, "lang", "", "HTML lang attribute (default: ja)")
	addCommonFlags(fs, &f.common)
	addFixOptionFlags(fs, &f.options)
	return fs
}

func parseFixFlags(args []string, env *Environment) (*fixFlags, []string, error) {
	f := &fixFlags{}
	fs := newFixFlagSet(f)
	if err := parseFlagSet(fs, args, env, printFixUsage); err != nil {
		return nil, nil, err
	}
	f.changed = fs.Changed
	return f, fs.Args(), nil
}

func parseCheckFlags(args []string, env *Environment) (*checkFlags, []string, error) {
	f := &checkFlags{}
	fs := newCheckFlagSet(f)
	if err := parseFlagSet(fs, args, env, printCheckUsage); err != nil {
		return nil, nil, err
	}
	f.changed = fs.Changed
	return f, fs.Args(), nil
}

func parseRenderFlags(args []string, env *Environment) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := newRenderFlagSet(f)
	if err := parseFlagSet(fs, args, env, printRenderUsage); err != nil {
		return nil, nil, err
	}
	f.changed = fs.Changed
	return f, fs.Args(), nil
}

// parseFlagSet parses args. -h prints usage to stdout; any other failure
// prints usage to stderr and is tagged as a usage error.
func parseFlagSet(fs *flag.FlagSet, args []string, env *Environment, usage func(io.Writer)) error {
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage(env.Stdout)
			return err
		}
		usage(env.Stderr)
		return &flagParseError{err: err}
	}
	return nil
}

// mergeFixOptions applies explicitly set flags over the config.
// A flag left at its default never overrides a value from config or env.
func mergeFixOptions(f fixOptionFlags, changed func(string) bool, cfg *config.Config) {
	if changed("protect-code") {
		cfg.Fix.ProtectCode = f.protectCode
	}
	if changed("skip-frontmatter") {
		cfg.Fix.SkipFrontmatter = f.skipFrontmatter
	}
	if changed("normalize-eol") {
		cfg.Fix.NormalizeLineEndings = f.normalizeEOL
	}
}
