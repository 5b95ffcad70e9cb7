// Package report prints the line-level changes found by mdfix check.
//
// Each changed region is shown before and after the fix, followed by a caret
// under the first differing column. Columns are measured in terminal cells,
// so the caret stays aligned under full-width Japanese text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/alnah/go-mdfix"
)

// Printer writes check reports to w.
type Printer struct {
	w       io.Writer
	cond    *runewidth.Condition
	path    *color.Color
	removed *color.Color
	added   *color.Color
	caret   *color.Color
}

// New creates a Printer. Colour is written only when useColor is true,
// independent of what the writer is attached to.
func New(w io.Writer, useColor bool) *Printer {
	// Ambiguous-width characters (curly quotes, ※) count as one cell,
	// matching most terminals outside a CJK locale.
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false

	p := &Printer{
		w:       w,
		cond:    cond,
		path:    color.New(color.Bold),
		removed: color.New(color.FgRed),
		added:   color.New(color.FgGreen),
		caret:   color.New(color.FgYellow, color.Bold),
	}
	for _, c := range []*color.Color{p.path, p.removed, p.added, p.caret} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// File prints every change of one file. Nothing is printed for no changes.
// A region spanning several lines prints each of them; the caret sits under
// the first line of the fixed text.
func (p *Printer) File(path string, changes []mdfix.LineChange) {
	for _, c := range changes {
		p.path.Fprintf(p.w, "%s:%d:%d\n", path, c.Line, c.Column+1)
		for _, line := range c.Before {
			p.removed.Fprintf(p.w, "  - %s\n", visible(line))
		}
		for _, line := range c.After {
			p.added.Fprintf(p.w, "  + %s\n", visible(line))
		}
		anchor := c.After
		if len(anchor) == 0 {
			anchor = c.Before
		}
		if len(anchor) > 0 {
			p.caret.Fprintf(p.w, "    %s^\n", p.padding(anchor[0], c.Column))
		}
	}
}

// Summary prints the totals line.
func (p *Printer) Summary(checked, needFix int) {
	if needFix == 0 {
		fmt.Fprintf(p.w, "%d file(s) checked, all normalized\n", checked)
		return
	}
	fmt.Fprintf(p.w, "%d of %d file(s) need fixing\n", needFix, checked)
}

// padding returns the whitespace that moves the caret under the rune at
// column. Tabs are copied so the caret lines up with tabbed indentation.
func (p *Printer) padding(line string, column int) string {
	var b strings.Builder
	for i, r := range []rune(visible(line)) {
		if i >= column {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", p.cond.RuneWidth(r)))
	}
	return b.String()
}

// visible shows a trailing carriage return, which would otherwise move the
// cursor back to column zero.
func visible(line string) string {
	if s, ok := strings.CutSuffix(line, "\r"); ok {
		return s + `\r`
	}
	return line
}
