package lint

// Problem is a single finding produced by a rule's check function. A nil or
// empty result means the invocation is compliant.
type Problem struct {
	Message string
}

// CheckFunc evaluates one tokenized invocation. Rules are stateless: all
// context arrives through the Invocation parameter.
type CheckFunc func(inv Invocation) []Problem

// RuleDef is a data-driven rule definition: a (manager, subcommand) key plus
// a pure check predicate. Each entry of the compliance table is one RuleDef.
type RuleDef struct {
	ID          string    // unique identifier, e.g. "NPM001"
	Manager     string    // package manager name, e.g. "npm"
	Subcommand  string    // canonical subcommand, e.g. "install"
	Aliases     []string  // subcommand aliases, e.g. "i" for "install"
	Bare        bool      // rule also matches the manager with no subcommand
	Description string    // human-readable description
	Check       CheckFunc // the check function

	// Documentation fields for richer rule documentation.
	Rationale   string // why this rule exists, what problems it prevents
	BadExample  string // command showing the anti-pattern
	GoodExample string // command showing the correct pattern
	Fix         string // how to fix violations
}

// RuleInfo provides metadata about a rule for documentation and tooling.
type RuleInfo struct {
	ID          string   `json:"id"`
	Manager     string   `json:"manager"`
	Subcommand  string   `json:"subcommand"`
	Aliases     []string `json:"aliases,omitempty"`
	Description string   `json:"description"`
	Rationale   string   `json:"rationale,omitempty"`
	BadExample  string   `json:"bad_example,omitempty"`
	GoodExample string   `json:"good_example,omitempty"`
	Fix         string   `json:"fix,omitempty"`
}

// Info extracts presentation metadata from a rule definition.
func (r RuleDef) Info() RuleInfo {
	return RuleInfo{
		ID:          r.ID,
		Manager:     r.Manager,
		Subcommand:  r.Subcommand,
		Aliases:     r.Aliases,
		Description: r.Description,
		Rationale:   r.Rationale,
		BadExample:  r.BadExample,
		GoodExample: r.GoodExample,
		Fix:         r.Fix,
	}
}
