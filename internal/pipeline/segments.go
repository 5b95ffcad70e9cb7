package pipeline

import (
	"regexp"
	"strings"

	"github.com/alnah/go-mdfix/internal/yamlutil"
)

// Fenced code block delimiter: up to three spaces, then ``` or ~~~ or longer.
var fenceLine = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})")

// segment is a run of whole lines that is either fixed or copied verbatim.
type segment struct {
	text      string
	protected bool
}

// splitSegments groups lines into alternating prose and protected runs.
// Joining the segment texts with "\n" reproduces the input exactly.
func splitSegments(content string, opts Options) []segment {
	lines := strings.Split(content, "\n")

	var segments []segment
	var run []string
	runProtected := false

	flush := func() {
		if len(run) > 0 {
			segments = append(segments, segment{text: strings.Join(run, "\n"), protected: runProtected})
			run = nil
		}
	}
	emit := func(line string, protected bool) {
		if protected != runProtected {
			flush()
			runProtected = protected
		}
		run = append(run, line)
	}

	start := 0
	if opts.SkipFrontmatter {
		if end := frontmatterEnd(lines); end > 0 {
			for _, line := range lines[:end+1] {
				emit(line, true)
			}
			start = end + 1
		}
	}

	fence := ""
	for _, line := range lines[start:] {
		if !opts.ProtectCode {
			emit(line, false)
			continue
		}

		// Track fenced code blocks. A fence closes only with its own
		// character, at least as long, and nothing but blanks after it.
		if m := fenceLine.FindStringSubmatch(line); m != nil {
			switch {
			case fence == "":
				fence = m[1]
				emit(line, true)
				continue
			case m[1][0] == fence[0] && len(m[1]) >= len(fence) && isBlank(line[len(m[0]):]):
				fence = ""
				emit(line, true)
				continue
			}
		}
		emit(line, fence != "")
	}
	flush()

	return segments
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// frontmatterEnd returns the index of the line closing a leading YAML
// frontmatter block, or -1 when the document has none. The block body must
// parse as YAML; anything else is treated as a thematic break.
func frontmatterEnd(lines []string) int {
	if len(lines) < 2 || strings.TrimRight(lines[0], "\r") != "---" {
		return -1
	}
	for i := 1; i < len(lines); i++ {
		switch strings.TrimRight(lines[i], "\r") {
		case "---", "...":
			if !yamlutil.Valid([]byte(strings.Join(lines[1:i], "\n"))) {
				return -1
			}
			return i
		}
	}
	return -1
}
