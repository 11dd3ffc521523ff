package extract

import (
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/locklint/pkg/lint"
)

// Format identifies the host file format an extractor understands.
type Format int

const (
	FormatUnknown Format = iota
	FormatDockerfile
	FormatMarkdown
	FormatShell
	FormatWorkflow
)

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatDockerfile:
		return "dockerfile"
	case FormatMarkdown:
		return "markdown"
	case FormatShell:
		return "shell"
	case FormatWorkflow:
		return "workflow"
	default:
		return "unknown"
	}
}

// Detect chooses the extractor format from the file path alone. Extension
// matches win over the Dockerfile name prefix, so "Dockerfile.md" is
// Markdown. Workflow detection requires the file to live under
// .github/workflows; a stray *.yml elsewhere is not scanned.
func Detect(path string) Format {
	base := filepath.Base(path)
	lower := strings.ToLower(base)

	switch {
	case strings.HasSuffix(lower, ".dockerfile"):
		return FormatDockerfile
	case strings.HasSuffix(lower, ".md"):
		return FormatMarkdown
	case strings.HasSuffix(lower, ".sh"):
		return FormatShell
	case strings.HasSuffix(lower, ".yml"), strings.HasSuffix(lower, ".yaml"):
		dir := filepath.ToSlash(filepath.Dir(path))
		if strings.HasSuffix(dir, ".github/workflows") {
			return FormatWorkflow
		}
		return FormatUnknown
	case strings.HasPrefix(lower, "dockerfile"):
		return FormatDockerfile
	}
	return FormatUnknown
}

// Fragments extracts candidate command fragments from content using the
// extractor for the path's detected format. Unknown formats yield nothing.
func Fragments(path, content string) []lint.Fragment {
	switch Detect(path) {
	case FormatDockerfile:
		return Dockerfile(path, content)
	case FormatMarkdown:
		return Markdown(path, content)
	case FormatShell:
		return Shell(path, content)
	case FormatWorkflow:
		return Workflow(path, content)
	default:
		return nil
	}
}
