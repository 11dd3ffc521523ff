package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/locklint/pkg/lint"
	_ "github.com/leapstack-labs/locklint/pkg/lint/rules" // register rules
)

// classify tokenizes a command on whitespace and classifies it. Quoting is
// covered by the shell package tests; rule tests only need simple commands.
func classify(t *testing.T, cfg *lint.Config, command string) lint.Verdict {
	t.Helper()
	return lint.NewClassifier(cfg).Classify(strings.Fields(command))
}

func TestClassify_Table(t *testing.T) {
	tests := []struct {
		command string
		want    lint.VerdictKind
		message string
	}{
		// npm
		{command: "npm ci", want: lint.VerdictCompliant},
		{command: "npm install", want: lint.VerdictViolation, message: "npm ci"},
		{command: "npm i", want: lint.VerdictViolation, message: "npm ci"},
		{command: "npm install --save-dev", want: lint.VerdictViolation, message: "npm ci"},
		{command: "npm i eslint", want: lint.VerdictViolation, message: "exact version"},
		{command: "npm i eslint@8.50.0", want: lint.VerdictCompliant},
		{command: "npm i -D eslint", want: lint.VerdictViolation, message: "exact version"},
		{command: "npm i -D eslint@8.50.0", want: lint.VerdictCompliant},
		{command: "npm install --save-dev typescript", want: lint.VerdictViolation, message: "exact version"},
		{command: "npm install --save-dev typescript@5.0.0", want: lint.VerdictCompliant},
		{command: "npm install @types/node", want: lint.VerdictViolation, message: "exact version"},
		{command: "npm install @types/node@18.0.0", want: lint.VerdictCompliant},
		{command: "npm run build", want: lint.VerdictNotApplicable},
		{command: "npm test", want: lint.VerdictNotApplicable},

		// pnpm
		{command: "pnpm install", want: lint.VerdictViolation, message: "frozen-lockfile"},
		{command: "pnpm install --frozen-lockfile", want: lint.VerdictCompliant},
		{command: "pnpm add vitest", want: lint.VerdictViolation, message: "exact version"},
		{command: "pnpm add vitest@1.0.0", want: lint.VerdictCompliant},
		{command: "pnpm add -D vitest@1.0.0", want: lint.VerdictCompliant},
		{command: "pnpm add @types/react", want: lint.VerdictViolation, message: "exact version"},
		{command: "pnpm add @types/react@18.0.0", want: lint.VerdictCompliant},
		{command: "pnpm run lint", want: lint.VerdictNotApplicable},

		// yarn
		{command: "yarn", want: lint.VerdictViolation, message: "frozen-lockfile"},
		{command: "yarn install", want: lint.VerdictViolation, message: "frozen-lockfile"},
		{command: "yarn install --frozen-lockfile", want: lint.VerdictCompliant},
		{command: "yarn install --immutable", want: lint.VerdictCompliant},
		{command: "yarn --immutable", want: lint.VerdictCompliant},
		{command: "yarn add jest", want: lint.VerdictViolation, message: "exact version"},
		{command: "yarn add jest@29.0.0", want: lint.VerdictCompliant},
		{command: "yarn global add typescript", want: lint.VerdictViolation, message: "exact version"},
		{command: "yarn global add typescript@5.0.0", want: lint.VerdictCompliant},
		{command: "yarn add @babel/core", want: lint.VerdictViolation, message: "exact version"},
		{command: "yarn add @babel/core@7.22.0", want: lint.VerdictCompliant},
		{command: "yarn build", want: lint.VerdictNotApplicable},

		// bun
		{command: "bun install", want: lint.VerdictViolation, message: "frozen-lockfile"},
		{command: "bun install --frozen-lockfile", want: lint.VerdictCompliant},
		{command: "bun add prettier", want: lint.VerdictViolation, message: "exact version"},
		{command: "bun add prettier@3.0.0", want: lint.VerdictCompliant},
		{command: "bun add @hono/hono", want: lint.VerdictViolation, message: "exact version"},
		{command: "bun add @hono/hono@4.0.0", want: lint.VerdictCompliant},
		{command: "bun run dev", want: lint.VerdictNotApplicable},

		// not our managers
		{command: "cargo install ripgrep", want: lint.VerdictNotApplicable},
		{command: "pip install requests", want: lint.VerdictNotApplicable},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			got := classify(t, lint.NewConfig(), tt.command)
			assert.Equal(t, tt.want, got.Kind, "verdict for %q", tt.command)
			if tt.message != "" {
				assert.Contains(t, got.Message, tt.message)
			}
			if tt.want == lint.VerdictViolation {
				assert.NotEmpty(t, got.RuleID)
			}
		})
	}
}

func TestClassify_MultiplePackages(t *testing.T) {
	cfg := lint.NewConfig()

	// One unpinned package poisons the whole invocation.
	got := classify(t, cfg, "npm i eslint@8.50.0 prettier")
	assert.Equal(t, lint.VerdictViolation, got.Kind)

	got = classify(t, cfg, "npm i eslint@8.50.0 prettier@3.0.0")
	assert.Equal(t, lint.VerdictCompliant, got.Kind)

	got = classify(t, cfg, "yarn add left-pad@1.3.0 lodash underscore@1.13.6")
	assert.Equal(t, lint.VerdictViolation, got.Kind)
}

func TestClassify_StrictMode(t *testing.T) {
	cfg := lint.NewConfig()
	cfg.Strict = true

	got := classify(t, cfg, "npm i eslint@latest")
	assert.Equal(t, lint.VerdictViolation, got.Kind)

	got = classify(t, cfg, "npm i eslint@8.50.0")
	assert.Equal(t, lint.VerdictCompliant, got.Kind)

	got = classify(t, cfg, "pnpm add vitest@^1.2")
	assert.Equal(t, lint.VerdictCompliant, got.Kind)
}

func TestClassify_DisabledRule(t *testing.T) {
	cfg := lint.NewConfig()
	cfg.Disable("NPM001")

	got := classify(t, cfg, "npm install")
	assert.Equal(t, lint.VerdictNotApplicable, got.Kind)

	// Other rules remain active.
	got = classify(t, cfg, "pnpm install")
	assert.Equal(t, lint.VerdictViolation, got.Kind)
}

func TestClassify_EmptyAndUnknown(t *testing.T) {
	c := lint.NewClassifier(lint.NewConfig())

	assert.Equal(t, lint.VerdictNotApplicable, c.Classify(nil).Kind)
	assert.Equal(t, lint.VerdictNotApplicable, c.Classify([]string{}).Kind)
	assert.Equal(t, lint.VerdictNotApplicable, c.Classify([]string{"make"}).Kind)
}

func TestRegistry_Managers(t *testing.T) {
	assert.Equal(t, []string{"bun", "npm", "pnpm", "yarn"}, lint.Managers())
}

func TestRegistry_Lookup(t *testing.T) {
	rule, ok := lint.Lookup("npm", "i")
	require.True(t, ok)
	assert.Equal(t, "NPM001", rule.ID)

	rule, ok = lint.Lookup("yarn", "")
	require.True(t, ok)
	assert.Equal(t, "YARN001", rule.ID)

	_, ok = lint.Lookup("npm", "")
	assert.False(t, ok)

	_, ok = lint.Lookup("deno", "install")
	assert.False(t, ok)
}

func TestAllRules_StableOrderAndDocs(t *testing.T) {
	rules := lint.AllRules()
	require.NotEmpty(t, rules)

	// Every rule carries documentation for the rules command.
	for _, r := range rules {
		assert.NotEmpty(t, r.ID)
		assert.NotEmpty(t, r.Description, "rule %s", r.ID)
		assert.NotNil(t, r.Check, "rule %s", r.ID)
	}

	// Sorted by manager, then ID.
	for i := 1; i < len(rules); i++ {
		prev, cur := rules[i-1], rules[i]
		ok := prev.Manager < cur.Manager ||
			(prev.Manager == cur.Manager && prev.ID < cur.ID)
		assert.True(t, ok, "rules out of order: %s before %s", prev.ID, cur.ID)
	}
}
