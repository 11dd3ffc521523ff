package lint

// Classifier evaluates tokenized commands against the registered rule table.
type Classifier struct {
	cfg *Config
}

// NewClassifier creates a classifier using the given configuration. A nil
// config enables every rule with non-strict pin checking.
func NewClassifier(cfg *Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// Classify evaluates one token sequence. The first token must name a known
// package manager and the second its subcommand; anything else is
// NotApplicable. A matched rule's check function decides between Compliant
// and Violation.
func (c *Classifier) Classify(tokens []string) Verdict {
	if len(tokens) == 0 {
		return Verdict{Kind: VerdictNotApplicable}
	}

	manager := tokens[0]
	rest := tokens[1:]

	// `yarn global add` behaves like `yarn add` for pinning purposes.
	if manager == "yarn" && len(rest) > 0 && rest[0] == "global" {
		rest = rest[1:]
	}

	// A flag directly after the manager means the bare form with options,
	// e.g. `yarn --immutable`.
	subcommand := ""
	if len(rest) > 0 && rest[0] != "" && rest[0][0] != '-' {
		subcommand = rest[0]
	}

	rule, ok := Lookup(manager, subcommand)
	if !ok {
		return Verdict{Kind: VerdictNotApplicable}
	}
	if c.cfg.IsDisabled(rule.ID) {
		return Verdict{Kind: VerdictNotApplicable}
	}

	args := rest
	if subcommand != "" && len(rest) > 0 {
		args = rest[1:]
	}

	inv := Invocation{
		Tokens: tokens,
		Args:   args,
		Strict: c.cfg != nil && c.cfg.Strict,
	}
	problems := rule.Check(inv)
	if len(problems) == 0 {
		return Verdict{Kind: VerdictCompliant, RuleID: rule.ID}
	}
	return Verdict{
		Kind:    VerdictViolation,
		RuleID:  rule.ID,
		Message: problems[0].Message,
	}
}
