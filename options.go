package mdfix

// Option configures a Fixer.
type Option func(*Fixer)

type fixerConfig struct {
	protectCode     bool
	skipFrontmatter bool
	normalizeEOL    bool
	styleInput      string // name, file path, or inline CSS
	resolvedStyle   string
	assetPath       string
	title           string
	lang            string
}

// WithProtectCode leaves fenced code blocks untouched.
func WithProtectCode(enabled bool) Option {
	return func(f *Fixer) {
		f.cfg.protectCode = enabled
	}
}

// WithSkipFrontmatter leaves a leading YAML frontmatter block untouched.
// The block is only recognized when its body parses as a YAML mapping.
func WithSkipFrontmatter(enabled bool) Option {
	return func(f *Fixer) {
		f.cfg.skipFrontmatter = enabled
	}
}

// WithNormalizeLineEndings converts CRLF and CR to LF before fixing.
func WithNormalizeLineEndings(enabled bool) Option {
	return func(f *Fixer) {
		f.cfg.normalizeEOL = enabled
	}
}

// WithStyle sets the CSS used by the HTML preview.
// Accepts a style name ("default", "minimal"), a file path ("./custom.css"),
// or inline CSS ("body { ... }").
func WithStyle(style string) Option {
	return func(f *Fixer) {
		f.cfg.styleInput = style
	}
}

// WithAssetPath adds a directory searched for {dir}/styles/{name}.css before
// the built-in styles.
func WithAssetPath(dir string) Option {
	return func(f *Fixer) {
		f.cfg.assetPath = dir
	}
}

// WithTitle sets the <title> of the HTML preview.
func WithTitle(title string) Option {
	return func(f *Fixer) {
		f.cfg.title = title
	}
}

// WithLang sets the lang attribute of the HTML preview. Defaults to "ja".
func WithLang(lang string) Option {
	return func(f *Fixer) {
		f.cfg.lang = lang
	}
}
