package extract

import (
	"strings"

	"github.com/leapstack-labs/locklint/pkg/lint"
)

// Markdown extracts fragments from fenced code blocks and inline backtick
// spans. Fenced blocks yield one fragment per non-blank line regardless of
// the fence's language tag; prose outside fences contributes its inline
// `code` spans. Lines and spans that contain documentation placeholders
// such as <package> or <version> are skipped.
func Markdown(path, content string) []lint.Fragment {
	var frags []lint.Fragment

	inFence := false
	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}

		if inFence {
			if trimmed == "" || strings.HasPrefix(trimmed, "#") || isPlaceholder(trimmed) {
				continue
			}
			frags = append(frags, lint.Fragment{Path: path, Line: i + 1, Raw: trimmed})
			continue
		}

		for _, span := range inlineSpans(line) {
			if isPlaceholder(span) {
				continue
			}
			frags = append(frags, lint.Fragment{Path: path, Line: i + 1, Raw: span})
		}
	}
	return frags
}

// inlineSpans returns the contents of single-backtick spans on one line of
// prose. An unpaired backtick leaves the rest of the line untouched.
func inlineSpans(line string) []string {
	var spans []string
	for {
		open := strings.IndexByte(line, '`')
		if open < 0 {
			return spans
		}
		rest := line[open+1:]
		end := strings.IndexByte(rest, '`')
		if end < 0 {
			return spans
		}
		if span := strings.TrimSpace(rest[:end]); span != "" {
			spans = append(spans, span)
		}
		line = rest[end+1:]
	}
}

// isPlaceholder reports whether a code span is a documentation template
// rather than a runnable command, e.g. `npm install <package>@<version>`.
func isPlaceholder(span string) bool {
	return strings.Contains(span, "<") && strings.Contains(span, ">")
}
