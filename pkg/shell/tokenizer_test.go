package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/locklint/pkg/shell"
)

func newTokenizer() *shell.Tokenizer {
	return shell.NewTokenizer("npm", "pnpm", "yarn", "bun")
}

func TestSplit_SingleCommand(t *testing.T) {
	tok := newTokenizer()

	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain invocation",
			line: "npm install",
			want: []string{"npm", "install"},
		},
		{
			name: "quoted argument with space",
			line: `npm install "some pkg@1.0.0"`,
			want: []string{"npm", "install", "some pkg@1.0.0"},
		},
		{
			name: "single quotes",
			line: `yarn add 'left pad@1.3.0'`,
			want: []string{"yarn", "add", "left pad@1.3.0"},
		},
		{
			name: "escaped quote inside double quotes",
			line: `npm install "we\"ird@1.0.0"`,
			want: []string{"npm", "install", `we"ird@1.0.0`},
		},
		{
			name: "env assignment prefix skipped",
			line: "NODE_ENV=production npm ci",
			want: []string{"npm", "ci"},
		},
		{
			name: "sudo prefix skipped",
			line: "sudo npm ci",
			want: []string{"npm", "ci"},
		},
		{
			name: "multiple prefixes skipped",
			line: "CI=true sudo -E pnpm install --frozen-lockfile",
			want: []string{"pnpm", "install", "--frozen-lockfile"},
		},
		{
			name: "extra whitespace collapsed",
			line: "  bun   add   react@18.2.0  ",
			want: []string{"bun", "add", "react@18.2.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Split(tt.line)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestSplit_CompoundCommands(t *testing.T) {
	tok := newTokenizer()

	t.Run("and separator", func(t *testing.T) {
		got := tok.Split("pnpm add foo && yarn add bar@1.0.0")
		require.Len(t, got, 2)
		assert.Equal(t, []string{"pnpm", "add", "foo"}, got[0])
		assert.Equal(t, []string{"yarn", "add", "bar@1.0.0"}, got[1])
	})

	t.Run("semicolon separator", func(t *testing.T) {
		got := tok.Split("npm ci; npm run build")
		require.Len(t, got, 2)
		assert.Equal(t, []string{"npm", "ci"}, got[0])
		assert.Equal(t, []string{"npm", "run", "build"}, got[1])
	})

	t.Run("pipe separator", func(t *testing.T) {
		got := tok.Split("yarn install | tee install.log")
		require.Len(t, got, 1)
		assert.Equal(t, []string{"yarn", "install"}, got[0])
	})

	t.Run("separator inside quotes is inert", func(t *testing.T) {
		got := tok.Split(`npm install "a && b"`)
		require.Len(t, got, 1)
		assert.Equal(t, []string{"npm", "install", "a && b"}, got[0])
	})

	t.Run("unrelated halves are dropped", func(t *testing.T) {
		got := tok.Split("apt-get update && apt-get install -y curl")
		assert.Empty(t, got)
	})
}

func TestSplit_NoMatch(t *testing.T) {
	tok := newTokenizer()

	for _, line := range []string{
		"",
		"   ",
		"make build",
		`echo "npm install"`, // quoted, so never a command token
		"npminstall",         // not a word match
	} {
		assert.Empty(t, tok.Split(line), "line %q", line)
	}
}

func TestSplit_MalformedQuoting(t *testing.T) {
	tok := newTokenizer()

	t.Run("unterminated double quote", func(t *testing.T) {
		got := tok.Split(`npm install "eslint@8.50.0`)
		require.Len(t, got, 1)
		assert.Equal(t, []string{"npm", "install", "eslint@8.50.0"}, got[0])
	})

	t.Run("unterminated single quote swallows separator", func(t *testing.T) {
		got := tok.Split("npm install 'foo && yarn add bar")
		require.Len(t, got, 1)
		assert.Equal(t, []string{"npm", "install", "foo && yarn add bar"}, got[0])
	})

	t.Run("trailing backslash", func(t *testing.T) {
		got := tok.Split(`npm ci \`)
		require.Len(t, got, 1)
		assert.Equal(t, []string{"npm", "ci", `\`}, got[0])
	})
}

func TestSplit_ManagerMidLine(t *testing.T) {
	tok := newTokenizer()

	// The tokenizer scans forward until it finds a recognized name, so a
	// manager buried behind an unrelated wrapper is still picked up.
	got := tok.Split("docker run --rm node:20 npm install")
	require.Len(t, got, 1)
	assert.Equal(t, []string{"npm", "install"}, got[0])
}
