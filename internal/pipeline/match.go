package pipeline

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// replaceMatches rewrites every non-overlapping match of re in s, left to
// right, with the string returned by rewrite. Text between matches is copied
// unchanged. regexp2 reports positions in runes, so s is scanned as a rune
// slice.
//
// regexp2 only fails on a match timeout, which is never set on the package
// patterns; if it happens anyway the remaining text is copied as-is.
func replaceMatches(re *regexp2.Regexp, s string, rewrite func(m *regexp2.Match) string) string {
	text := []rune(s)
	m, err := re.FindRunesMatch(text)
	if err != nil || m == nil {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	last := 0
	for m != nil {
		b.WriteString(string(text[last:m.Index]))
		b.WriteString(rewrite(m))
		last = m.Index + m.Length

		m, err = re.FindNextMatch(m)
		if err != nil {
			break
		}
	}
	b.WriteString(string(text[last:]))
	return b.String()
}
