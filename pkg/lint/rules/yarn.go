package rules

import "github.com/leapstack-labs/locklint/pkg/lint"

func init() {
	lint.Register(YarnInstall)
	lint.Register(YarnAdd)
}

// YarnInstall requires --frozen-lockfile (classic) or --immutable (berry).
// A bare `yarn` with no subcommand is an implicit install and is matched by
// the same rule.
var YarnInstall = lint.RuleDef{
	ID:          "YARN001",
	Manager:     "yarn",
	Subcommand:  "install",
	Bare:        true,
	Description: "'yarn install' must pass --frozen-lockfile or --immutable.",
	Check:       requireFlag("Use 'yarn install --frozen-lockfile' or '--immutable'", "--frozen-lockfile", "--immutable"),

	Rationale: `'yarn install' rewrites yarn.lock when it disagrees with
package.json. Yarn classic's --frozen-lockfile and yarn berry's --immutable
both fail the install instead, which is what CI wants.`,

	BadExample: `yarn
yarn install`,

	GoodExample: `yarn install --frozen-lockfile
yarn install --immutable`,

	Fix: "Add --frozen-lockfile (yarn classic) or --immutable (yarn berry).",
}

// YarnAdd requires an explicit version on every added package. `yarn global
// add` is treated the same as `yarn add`.
var YarnAdd = lint.RuleDef{
	ID:          "YARN002",
	Manager:     "yarn",
	Subcommand:  "add",
	Description: "'yarn add' must pin package versions.",
	Check:       requirePinned("Specify an exact version for 'yarn add <pkg>'"),

	Rationale: `'yarn add <pkg>' without a version resolves against the registry at
run time, so repeated runs drift apart.`,

	BadExample:  "yarn add @babel/core",
	GoodExample: "yarn add @babel/core@7.22.0",
	Fix:         "Append @<version> to each package argument.",
}
