package lint

import "strings"

// Fragment is a candidate command string extracted from a host file, tagged
// with its origin location. Fragments are immutable once produced.
type Fragment struct {
	Path string // file the fragment was extracted from
	Line int    // 1-based line number of the fragment
	Raw  string // the raw command text
}

// Violation is a classified non-compliant package-manager invocation. Every
// violation traces back to exactly one extracted fragment.
type Violation struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Raw     string `json:"raw"`
	RuleID  string `json:"rule_id"`
	Message string `json:"message"`
}

// VerdictKind is the outcome of classifying one command.
type VerdictKind int

const (
	// VerdictNotApplicable means the command is not covered by the rule
	// table: not a known package manager, or a subcommand with no rule.
	VerdictNotApplicable VerdictKind = iota
	// VerdictCompliant means the invocation satisfies its rule.
	VerdictCompliant
	// VerdictViolation means the invocation fails its rule.
	VerdictViolation
)

// String returns a human-readable name for the verdict kind.
func (k VerdictKind) String() string {
	switch k {
	case VerdictCompliant:
		return "compliant"
	case VerdictViolation:
		return "violation"
	default:
		return "not-applicable"
	}
}

// Verdict is the result of classifying one tokenized command.
type Verdict struct {
	Kind    VerdictKind
	RuleID  string // set for Compliant and Violation verdicts
	Message string // remediation message, set for Violation verdicts
}

// Invocation is one tokenized package-manager command as seen by a rule's
// check function. Tokens holds the full sequence starting at the manager
// name; Args holds everything after the matched subcommand.
type Invocation struct {
	Tokens []string
	Args   []string
	Strict bool // require version specifiers to parse as semver
}

// HasFlag reports whether any of the given flags appears in the arguments.
func (inv Invocation) HasFlag(names ...string) bool {
	for _, arg := range inv.Args {
		for _, name := range names {
			if arg == name {
				return true
			}
		}
	}
	return false
}

// Packages returns the non-flag arguments of the invocation, i.e. the
// package names the command installs.
func (inv Invocation) Packages() []string {
	var pkgs []string
	for _, arg := range inv.Args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		pkgs = append(pkgs, arg)
	}
	return pkgs
}
