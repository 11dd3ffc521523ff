package extract

import (
	"strings"

	"github.com/leapstack-labs/locklint/pkg/lint"
)

// Shell extracts every non-blank, non-comment line of a shell script as a
// fragment. Only whole-line comments are recognized; the tokenizer handles
// anything trickier.
func Shell(path, content string) []lint.Fragment {
	var frags []lint.Fragment

	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		frags = append(frags, lint.Fragment{Path: path, Line: i + 1, Raw: trimmed})
	}
	return frags
}
