package extract

import (
	"strings"

	"github.com/leapstack-labs/locklint/pkg/lint"
)

// Dockerfile extracts the body of every RUN instruction. Continuation lines
// ending in a backslash are joined into one fragment, reported at the line
// of the RUN keyword.
func Dockerfile(path, content string) []lint.Fragment {
	var frags []lint.Fragment

	lines := strings.Split(content, "\n")
	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if len(trimmed) < 4 || !strings.EqualFold(trimmed[:4], "RUN ") {
			continue
		}

		start := i + 1
		body := strings.TrimSpace(trimmed[4:])
		for strings.HasSuffix(body, "\\") && i+1 < len(lines) {
			i++
			body = strings.TrimSpace(strings.TrimSuffix(body, "\\"))
			next := strings.TrimSpace(lines[i])
			if next != "" {
				body += " " + next
			}
		}
		body = strings.TrimSpace(strings.TrimSuffix(body, "\\"))
		if body == "" {
			continue
		}

		frags = append(frags, lint.Fragment{Path: path, Line: start, Raw: body})
	}
	return frags
}
