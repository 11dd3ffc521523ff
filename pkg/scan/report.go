package scan

import "github.com/leapstack-labs/locklint/pkg/lint"

// FileResult groups the violations found in one file, in line order.
type FileResult struct {
	Path       string           `json:"path"`
	Violations []lint.Violation `json:"violations"`
}

// Report is the terminal artifact of a scan. Files holds only the files
// that produced violations, in discovery order, so that repeated scans of
// identical input render identically.
type Report struct {
	FilesScanned int          `json:"files_scanned"`
	Files        []FileResult `json:"files"`
}

// TotalViolations counts violations across all files.
func (r *Report) TotalViolations() int {
	total := 0
	for _, f := range r.Files {
		total += len(f.Violations)
	}
	return total
}

// FilesWithViolations counts the files that produced at least one violation.
func (r *Report) FilesWithViolations() int {
	return len(r.Files)
}

// Success reports whether the scan found no violations. The CLI maps this
// to the process exit code.
func (r *Report) Success() bool {
	return len(r.Files) == 0
}
