package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/locklint/internal/cli/output"
)

func TestEffectiveMode(t *testing.T) {
	var buf bytes.Buffer

	// A buffer is not a terminal, so auto resolves to markdown.
	r := output.NewRenderer(&buf, &buf, output.ModeAuto)
	assert.Equal(t, output.ModeMarkdown, r.EffectiveMode())

	r = output.NewRenderer(&buf, &buf, output.ModeText)
	assert.Equal(t, output.ModeText, r.EffectiveMode())

	r = output.NewRenderer(&buf, &buf, output.ModeJSON)
	assert.Equal(t, output.ModeJSON, r.EffectiveMode())

	r = output.NewRenderer(&buf, &buf, output.Mode("bogus"))
	assert.Equal(t, output.ModeMarkdown, r.EffectiveMode(), "unknown mode falls back to auto")
}

func TestRenderer_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	r := output.NewRenderer(&buf, &buf, output.ModeText)

	r.Success("all clean")
	r.Failure("found problems")

	assert.Equal(t, "✓ all clean\n✗ found problems\n", buf.String())
}

func TestRenderer_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := output.NewRenderer(&buf, &buf, output.ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"violations": 3}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 3, decoded["violations"])
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "## Summary", output.FormatHeader(2, "Summary"))
	assert.Equal(t, "- **Files**: 4", output.FormatKeyValue("Files", "4"))
}
