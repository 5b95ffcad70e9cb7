package mdfix

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/alnah/go-mdfix/internal/pipeline"
)

// Transform pads emphasis spans that contain Japanese punctuation with
// half-width spaces and rewrites parenthesized http(s) URLs into " (url) ".
// Markdown links "[text](url)" are left alone. It never fails.
//
// Line count is usually preserved. A parenthesized URL at the start or end
// of a line absorbs the surrounding line breaks, joining the lines around it.
func Transform(markdown string) string {
	return pipeline.Transform(markdown)
}

// LineChange describes one changed region between two documents. Most
// changes cover a single line on each side; a region where lines were
// joined or split lists every line involved.
type LineChange struct {
	Line   int      // 1-based line number of the region's first line in before
	Column int      // 0-based rune offset of the first difference on that line
	Before []string // lines removed from before; empty for a pure insertion
	After  []string // lines that replace them in after; empty for a pure deletion
}

// Diff compares before and after line by line. Unchanged lines are matched
// first, so a change that joins lines does not shift every later line into
// the report. Replaced blocks of equal size are reported one line at a time.
// Frequent lines such as blanks are never treated as junk, so long documents
// pair lines the same way short ones do.
func Diff(before, after string) []LineChange {
	a := strings.Split(before, "\n")
	b := strings.Split(after, "\n")

	var changes []LineChange
	for _, op := range difflib.NewMatcherWithJunk(a, b, false, nil).GetOpCodes() {
		if op.Tag == 'e' {
			continue
		}
		x, y := a[op.I1:op.I2], b[op.J1:op.J2]
		if op.Tag == 'r' && len(x) == len(y) {
			for k := range x {
				changes = append(changes, LineChange{
					Line:   op.I1 + k + 1,
					Column: firstDifference(x[k], y[k]),
					Before: x[k : k+1],
					After:  y[k : k+1],
				})
			}
			continue
		}
		changes = append(changes, LineChange{
			Line:   op.I1 + 1,
			Column: firstDifference(firstLine(x), firstLine(y)),
			Before: nonEmpty(x),
			After:  nonEmpty(y),
		})
	}
	return changes
}

func firstLine(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}

func nonEmpty(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	return lines
}

func firstDifference(x, y string) int {
	rx, ry := []rune(x), []rune(y)
	n := min(len(rx), len(ry))
	for i := range n {
		if rx[i] != ry[i] {
			return i
		}
	}
	return n
}
