package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-mdfix"
)

func TestPrinter_File(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		changes []mdfix.LineChange
		want    string
	}{
		{
			name: "caret under full-width text",
			changes: []mdfix.LineChange{
				{Line: 3, Column: 3, Before: []string{"これは**「重要」**です"}, After: []string{"これは **「重要」** です"}},
			},
			want: "doc.md:3:4\n" +
				"  - これは**「重要」**です\n" +
				"  + これは **「重要」** です\n" +
				"          ^\n",
		},
		{
			name: "caret at line start",
			changes: []mdfix.LineChange{
				{Line: 1, Column: 0, Before: []string{"**「A」**"}, After: []string{" **「A」** "}},
			},
			want: "doc.md:1:1\n" +
				"  - **「A」**\n" +
				"  +  **「A」** \n" +
				"    ^\n",
		},
		{
			name: "tabs copied into padding",
			changes: []mdfix.LineChange{
				{Line: 2, Column: 2, Before: []string{"\tx(https://a.b)"}, After: []string{"\tx (https://a.b) "}},
			},
			want: "doc.md:2:3\n" +
				"  - \tx(https://a.b)\n" +
				"  + \tx (https://a.b) \n" +
				"    \t ^\n",
		},
		{
			name: "joined lines listed in full",
			changes: []mdfix.LineChange{{
				Line:   4,
				Column: 2,
				Before: []string{"参照(https://a.com)", "次"},
				After:  []string{"参照 (https://a.com) 次"},
			}},
			want: "doc.md:4:3\n" +
				"  - 参照(https://a.com)\n" +
				"  - 次\n" +
				"  + 参照 (https://a.com) 次\n" +
				"        ^\n",
		},
		{
			name:    "deleted line has no added side",
			changes: []mdfix.LineChange{{Line: 2, Column: 0, Before: []string{"消える"}}},
			want: "doc.md:2:1\n" +
				"  - 消える\n" +
				"    ^\n",
		},
		{
			name:    "no changes prints nothing",
			changes: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			New(&buf, false).File("doc.md", tt.changes)
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("File() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrinter_Color(t *testing.T) {
	t.Parallel()

	changes := []mdfix.LineChange{{Line: 1, Before: []string{"a"}, After: []string{"b"}}}

	var plain, colored bytes.Buffer
	New(&plain, false).File("x.md", changes)
	New(&colored, true).File("x.md", changes)

	if strings.Contains(plain.String(), "\x1b[") {
		t.Error("plain output contains escape sequences")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Error("colored output has no escape sequences")
	}
}

func TestPrinter_Summary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		checked, needFix int
		want             string
	}{
		{3, 0, "3 file(s) checked, all normalized\n"},
		{3, 2, "2 of 3 file(s) need fixing\n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		New(&buf, false).Summary(tt.checked, tt.needFix)
		if buf.String() != tt.want {
			t.Errorf("Summary(%d, %d) = %q, want %q", tt.checked, tt.needFix, buf.String(), tt.want)
		}
	}
}

func TestVisible(t *testing.T) {
	t.Parallel()

	if got := visible("行\r"); got != `行\r` {
		t.Errorf("visible() = %q", got)
	}
	if got := visible("行"); got != "行" {
		t.Errorf("visible() = %q", got)
	}
}
