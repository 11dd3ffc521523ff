// Package lint provides the rule table and command classifier for detecting
// unpinned or non-reproducible JavaScript package-manager invocations.
//
// # Architecture
//
// The package follows a data-driven design:
//
//  1. Root package (pkg/lint/): shared types, the rule registry, and the
//     classifier that evaluates tokenized commands against registered rules.
//  2. Rules (pkg/lint/rules/): one file per package manager, each declaring
//     RuleDef records registered via init().
//
// # Rule Registration
//
// Rules are registered automatically when their package is imported:
//
//	import _ "github.com/leapstack-labs/locklint/pkg/lint/rules"
//
// # Classification
//
// A Classifier consumes one token sequence per shell-level command (see
// pkg/shell) and produces a Verdict: Compliant, Violation with a remediation
// message, or NotApplicable for commands the rule table does not cover.
//
//	cfg := lint.NewConfig()
//	c := lint.NewClassifier(cfg)
//	v := c.Classify([]string{"npm", "install"})
//	// v.Kind == lint.VerdictViolation
//
// Rules are static, pure data records: a (manager, subcommand) key plus a
// check predicate over the invocation's arguments. The registry is populated
// once at startup and is read-only afterwards.
package lint
