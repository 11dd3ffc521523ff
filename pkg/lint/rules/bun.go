package rules

import "github.com/leapstack-labs/locklint/pkg/lint"

func init() {
	lint.Register(BunInstall)
	lint.Register(BunAdd)
}

// BunInstall requires --frozen-lockfile so bun.lockb is never rewritten by
// an install.
var BunInstall = lint.RuleDef{
	ID:          "BUN001",
	Manager:     "bun",
	Subcommand:  "install",
	Description: "'bun install' must pass --frozen-lockfile.",
	Check:       requireFlag("Use 'bun install --frozen-lockfile'", "--frozen-lockfile"),

	Rationale: `'bun install' updates the lockfile on drift like the other
managers; --frozen-lockfile makes drift a hard failure.`,

	BadExample:  "bun install",
	GoodExample: "bun install --frozen-lockfile",
	Fix:         "Add --frozen-lockfile to the install command.",
}

// BunAdd requires an explicit version on every added package.
var BunAdd = lint.RuleDef{
	ID:          "BUN002",
	Manager:     "bun",
	Subcommand:  "add",
	Description: "'bun add' must pin package versions.",
	Check:       requirePinned("Specify an exact version for 'bun add <pkg>'"),

	Rationale: `'bun add <pkg>' without a version resolves to the registry's
current latest tag.`,

	BadExample:  "bun add react",
	GoodExample: "bun add react@18.2.0",
	Fix:         "Append @<version> to each package argument.",
}
