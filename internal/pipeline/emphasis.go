package pipeline

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Character classes that decide whether an emphasis span needs padding.
const (
	openingBrackets = "「『（【"
	closingBrackets = "」』）】"
	specialChars    = `%％！？。、，；：＠＃＄＆＊（）()"'“”‘’[]［］`
)

// emphasisPatterns are applied in order against the evolving string.
// Strong markers come first; the single-marker patterns refuse to start or
// end next to a second marker so they never split a ** or __ pair.
var emphasisPatterns = []*regexp2.Regexp{
	regexp2.MustCompile(`\*\*([^*]+?)\*\*`, regexp2.None),
	regexp2.MustCompile(`__([^_]+?)__`, regexp2.None),
	regexp2.MustCompile(`(?<!\*)\*(?!\*)([^*]+?)\*(?!\*)`, regexp2.None),
	regexp2.MustCompile(`(?<!_)_(?!_)([^_]+?)_(?!_)`, regexp2.None),
}

// spanSpacing reports whether a span with the given inner text needs a space
// before its opening marker and after its closing marker. Any bracket or
// special character anywhere in the text pads both sides.
func spanSpacing(inner []rune) (before, after bool) {
	if len(inner) == 0 {
		return false, false
	}

	s := string(inner)
	marked := strings.ContainsAny(s, openingBrackets) ||
		strings.ContainsAny(s, closingBrackets) ||
		strings.ContainsAny(s, specialChars)

	before = strings.ContainsRune(openingBrackets, inner[0]) || marked
	after = strings.ContainsRune(closingBrackets, inner[len(inner)-1]) || marked
	return before, after
}

// evaluateEmphasis pads emphasis spans in a single line's content and
// returns the result with the number of spans that received padding.
// List item content is returned untouched.
func evaluateEmphasis(content string, listItem bool) (string, int) {
	if listItem {
		return content, 0
	}

	count := 0
	for _, re := range emphasisPatterns {
		content = replaceMatches(re, content, func(m *regexp2.Match) string {
			span := m.String()
			before, after := spanSpacing(m.GroupByNumber(1).Runes())
			if after {
				span += " "
			}
			if before {
				span = " " + span
			}
			if before || after {
				count++
			}
			return span
		})
	}
	return content, count
}
