package rules

import "github.com/leapstack-labs/locklint/pkg/lint"

// requireFlag builds a check that passes iff one of the given flags is
// present on the invocation.
func requireFlag(message string, flags ...string) lint.CheckFunc {
	return func(inv lint.Invocation) []lint.Problem {
		if inv.HasFlag(flags...) {
			return nil
		}
		return []lint.Problem{{Message: message}}
	}
}

// requirePinned builds a check that passes iff the invocation names at least
// one package and every named package carries a version specifier.
func requirePinned(message string) lint.CheckFunc {
	return func(inv lint.Invocation) []lint.Problem {
		pkgs := inv.Packages()
		if len(pkgs) == 0 {
			return []lint.Problem{{Message: message}}
		}
		for _, pkg := range pkgs {
			if !lint.IsPinned(pkg, inv.Strict) {
				return []lint.Problem{{Message: message}}
			}
		}
		return nil
	}
}
