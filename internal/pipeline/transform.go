package pipeline

import "strings"

// Stats counts what a fix pass changed.
type Stats struct {
	URLs        int // parenthesized URLs normalized
	SpacedSpans int // emphasis spans that received padding
}

// Add returns the sum of two Stats.
func (s Stats) Add(o Stats) Stats {
	return Stats{URLs: s.URLs + o.URLs, SpacedSpans: s.SpacedSpans + o.SpacedSpans}
}

// Options selects which parts of a document are left untouched.
type Options struct {
	ProtectCode     bool // skip fenced code blocks
	SkipFrontmatter bool // skip a leading YAML frontmatter block
}

// Transform normalizes parenthesized URLs across the whole document, then
// pads emphasis spans line by line. It never fails.
func Transform(markdown string) string {
	out, _ := transform(markdown)
	return out
}

func transform(markdown string) (string, Stats) {
	content, urls := normalizeURLs(markdown)
	content, spans := spaceEmphasis(content)
	return content, Stats{URLs: urls, SpacedSpans: spans}
}

// Fix runs Transform on every unprotected segment of the document and
// copies protected segments verbatim. With zero Options it equals Transform.
func Fix(markdown string, opts Options) (string, Stats) {
	if !opts.ProtectCode && !opts.SkipFrontmatter {
		return transform(markdown)
	}

	segments := splitSegments(markdown, opts)
	parts := make([]string, len(segments))
	var stats Stats
	for i, seg := range segments {
		if seg.protected {
			parts[i] = seg.text
			continue
		}
		out, st := transform(seg.text)
		parts[i] = out
		stats = stats.Add(st)
	}
	return strings.Join(parts, "\n"), stats
}
