package scan

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/locklint/pkg/extract"
	"github.com/leapstack-labs/locklint/pkg/lint"
	"github.com/leapstack-labs/locklint/pkg/shell"
)

// File is one candidate file with its content already read into memory.
type File struct {
	Path    string
	Content string
}

// Scanner drives extraction, tokenization and classification. A scanner is
// stateless between calls and safe for concurrent use.
type Scanner struct {
	tokenizer  *shell.Tokenizer
	classifier *lint.Classifier
}

// NewScanner creates a scanner using the registered rule table and the
// given configuration. A nil config enables every rule.
func NewScanner(cfg *lint.Config) *Scanner {
	return &Scanner{
		tokenizer:  shell.NewTokenizer(lint.Managers()...),
		classifier: lint.NewClassifier(cfg),
	}
}

// ScanFile returns the violations found in one file, in line order.
func (s *Scanner) ScanFile(path, content string) []lint.Violation {
	var violations []lint.Violation

	for _, frag := range extract.Fragments(path, content) {
		for _, tokens := range s.tokenizer.Split(frag.Raw) {
			verdict := s.classifier.Classify(tokens)
			if verdict.Kind != lint.VerdictViolation {
				continue
			}
			violations = append(violations, lint.Violation{
				Path:    frag.Path,
				Line:    frag.Line,
				Raw:     frag.Raw,
				RuleID:  verdict.RuleID,
				Message: verdict.Message,
			})
		}
	}
	return violations
}

// Scan processes the given files and aggregates their violations into a
// report. With jobs > 1 files are scanned concurrently; results are merged
// back in input order, so the report is identical to a serial run.
func (s *Scanner) Scan(ctx context.Context, files []File, jobs int) (*Report, error) {
	report := &Report{FilesScanned: len(files)}

	if jobs < 1 {
		jobs = 1
	}
	if jobs == 1 {
		for _, f := range files {
			if v := s.ScanFile(f.Path, f.Content); len(v) > 0 {
				report.Files = append(report.Files, FileResult{Path: f.Path, Violations: v})
			}
		}
		return report, nil
	}

	results := make([][]lint.Violation, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.ScanFile(f.Path, f.Content)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, f := range files {
		if len(results[i]) > 0 {
			report.Files = append(report.Files, FileResult{Path: f.Path, Violations: results[i]})
		}
	}
	return report, nil
}
