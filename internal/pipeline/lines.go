package pipeline

import (
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"
)

// listItemLine splits a list item into its structure (indentation, marker,
// following whitespace) and the content after it. Singleline lets the content
// group take a trailing '\r' from CRLF input.
var listItemLine = regexp2.MustCompile(`^(\s*[*\-+]\s+)(.*)$`, regexp2.Singleline)

// splitStructure separates the leading structure of a line from its content.
// listItem is true when the structure ends with a list marker.
//
// A CRLF line keeps its '\r' at the end of content and is handled like its
// LF counterpart: list items stay untouched and paragraphs are padded. This
// differs from line patterns whose '.' and '$' stop at '\r', which match
// neither form and leave every CRLF line as written.
func splitStructure(line string) (structure, content string, listItem bool) {
	if m, err := listItemLine.FindStringMatch(line); err == nil && m != nil {
		return m.GroupByNumber(1).String(), m.GroupByNumber(2).String(), true
	}

	content = strings.TrimLeftFunc(line, unicode.IsSpace)
	return line[:len(line)-len(content)], content, false
}

// SpaceEmphasis pads emphasis spans line by line, keeping each line's
// indentation and list marker exactly as written.
func SpaceEmphasis(content string) string {
	out, _ := spaceEmphasis(content)
	return out
}

func spaceEmphasis(content string) (string, int) {
	lines := strings.Split(content, "\n")
	total := 0
	for i, line := range lines {
		structure, rest, listItem := splitStructure(line)
		fixed, n := evaluateEmphasis(rest, listItem)
		lines[i] = structure + fixed
		total += n
	}
	return strings.Join(lines, "\n"), total
}
