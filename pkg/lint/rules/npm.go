package rules

import "github.com/leapstack-labs/locklint/pkg/lint"

func init() {
	lint.Register(NpmInstall)
	lint.Register(NpmCI)
}

// NpmInstall flags `npm install` invocations that do not pin what they
// install: a bare install should be `npm ci`, and a package install needs an
// explicit version on every package.
var NpmInstall = lint.RuleDef{
	ID:          "NPM001",
	Manager:     "npm",
	Subcommand:  "install",
	Aliases:     []string{"i"},
	Description: "npm installs must use 'npm ci' or pin package versions.",
	Check:       checkNpmInstall,

	Rationale: `A bare 'npm install' re-resolves dependency ranges and can silently
update package-lock.json, so two runs of the same build may produce different
dependency trees. 'npm ci' installs exactly what the lockfile records, and
explicit versions keep ad-hoc installs reproducible.`,

	BadExample: `npm install
npm i eslint`,

	GoodExample: `npm ci
npm i eslint@8.50.0`,

	Fix: "Use 'npm ci' for lockfile-based installs, or append @<version> to each package.",
}

// NpmCI accepts `npm ci` unconditionally; it installs exactly what the
// lockfile records.
var NpmCI = lint.RuleDef{
	ID:          "NPM002",
	Manager:     "npm",
	Subcommand:  "ci",
	Description: "'npm ci' performs a clean, lockfile-exact install.",
	Check:       func(lint.Invocation) []lint.Problem { return nil },

	Rationale: `'npm ci' deletes node_modules and installs from package-lock.json
verbatim, failing if the lockfile and manifest disagree. It is the reproducible
install path for npm.`,

	GoodExample: "npm ci",
}

func checkNpmInstall(inv lint.Invocation) []lint.Problem {
	pkgs := inv.Packages()
	if len(pkgs) == 0 {
		return []lint.Problem{{
			Message: "Use 'npm ci' instead of 'npm install' for lockfile-based installations",
		}}
	}
	for _, pkg := range pkgs {
		if !lint.IsPinned(pkg, inv.Strict) {
			return []lint.Problem{{
				Message: "Specify an exact version for 'npm install <pkg>'",
			}}
		}
	}
	return nil
}
