package extract

import (
	"strings"

	"github.com/leapstack-labs/locklint/pkg/lint"
)

// Workflow extracts the scalar values of run keys in a CI workflow file.
// Inline scalars (`run: npm ci`) yield one fragment; block scalars
// (`run: |` followed by indented lines) yield one fragment per line of the
// block. This is deliberately not a YAML parser: run steps are recognized
// by line shape, which survives files a strict parser would reject.
func Workflow(path, content string) []lint.Fragment {
	var frags []lint.Fragment

	lines := strings.Split(content, "\n")
	for i := 0; i < len(lines); i++ {
		indent, rest := splitIndent(lines[i])
		rest = strings.TrimPrefix(rest, "- ")
		if !strings.HasPrefix(rest, "run:") {
			continue
		}

		value := strings.TrimSpace(rest[len("run:"):])
		if value == "" {
			continue
		}

		if isBlockScalarHeader(value) {
			for i+1 < len(lines) {
				next := lines[i+1]
				nextIndent, body := splitIndent(next)
				if strings.TrimSpace(next) == "" {
					i++
					continue
				}
				if nextIndent <= indent {
					break
				}
				i++
				if body = strings.TrimSpace(body); body != "" && !strings.HasPrefix(body, "#") {
					frags = append(frags, lint.Fragment{Path: path, Line: i + 1, Raw: body})
				}
			}
			continue
		}

		frags = append(frags, lint.Fragment{Path: path, Line: i + 1, Raw: unquoteScalar(value)})
	}
	return frags
}

func splitIndent(line string) (int, string) {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return i, line[i:]
		}
	}
	return len(line), ""
}

// isBlockScalarHeader matches the literal and folded block indicators with
// their optional chomping suffix: |, |-, |+, >, >-, >+.
func isBlockScalarHeader(value string) bool {
	if value == "" {
		return false
	}
	if value[0] != '|' && value[0] != '>' {
		return false
	}
	suffix := value[1:]
	return suffix == "" || suffix == "-" || suffix == "+"
}

func unquoteScalar(value string) string {
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
