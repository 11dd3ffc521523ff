package rules

import "github.com/leapstack-labs/locklint/pkg/lint"

func init() {
	lint.Register(PnpmInstall)
	lint.Register(PnpmAdd)
}

// PnpmInstall requires --frozen-lockfile so the install fails instead of
// rewriting pnpm-lock.yaml when it drifts from the manifest.
var PnpmInstall = lint.RuleDef{
	ID:          "PNPM001",
	Manager:     "pnpm",
	Subcommand:  "install",
	Description: "'pnpm install' must pass --frozen-lockfile.",
	Check:       requireFlag("Use 'pnpm install --frozen-lockfile' to respect lockfile", "--frozen-lockfile"),

	Rationale: `Without --frozen-lockfile, 'pnpm install' updates the lockfile when
it disagrees with package.json, which makes CI installs depend on registry
state at run time. The flag turns drift into a hard failure instead.`,

	BadExample:  "pnpm install",
	GoodExample: "pnpm install --frozen-lockfile",
	Fix:         "Add --frozen-lockfile to the install command.",
}

// PnpmAdd requires an explicit version on every added package.
var PnpmAdd = lint.RuleDef{
	ID:          "PNPM002",
	Manager:     "pnpm",
	Subcommand:  "add",
	Description: "'pnpm add' must pin package versions.",
	Check:       requirePinned("Specify an exact version for 'pnpm add <pkg>'"),

	Rationale: `'pnpm add <pkg>' without a version resolves to whatever the registry
currently tags as latest, so the same command produces different dependency
trees over time.`,

	BadExample:  "pnpm add lodash",
	GoodExample: "pnpm add lodash@4.17.21",
	Fix:         "Append @<version> to each package argument.",
}
