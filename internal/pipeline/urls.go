package pipeline

import "github.com/dlclark/regexp2"

// Precompiled URL patterns. Both swallow the surrounding whitespace so the
// replacement can collapse it to exactly one space on each side.
var (
	// Full-width parentheses: ページ（https://example.com）から
	fullWidthURL = regexp2.MustCompile(`\s*（\s*(https?://[^）]+?)\s*）\s*`, regexp2.None)

	// Half-width parentheses not directly after ']', which would make it
	// the target of a Markdown link.
	halfWidthURL = regexp2.MustCompile(`\s*(?<!\])\(\s*(https?://[^)\s]+)\s*\)\s*`, regexp2.None)
)

// NormalizeURLs rewrites parenthesized http(s) URLs to " (url) ".
func NormalizeURLs(content string) string {
	out, _ := normalizeURLs(content)
	return out
}

// normalizeURLs runs the full-width rule, then the half-width rule, and
// returns the rewritten text with the number of URLs touched.
func normalizeURLs(content string) (string, int) {
	count := 0
	rewrite := func(m *regexp2.Match) string {
		count++
		return " (" + m.GroupByNumber(1).String() + ") "
	}

	content = replaceMatches(fullWidthURL, content, rewrite)
	content = replaceMatches(halfWidthURL, content, rewrite)
	return content, count
}
