package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetKnownPrompts(t *testing.T) {
	tests := []struct {
		key      string
		contains string
	}{
		{key: "system", contains: "expert content curator"},
		{key: "synthesis", contains: "REQUIREMENTS:"},
		{key: "revision", contains: "Editor feedback:"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			prompt, err := Get("digest.json", tt.key)
			require.NoError(t, err)
			assert.Contains(t, prompt, tt.contains)
		})
	}
}

func TestGetMissingKey(t *testing.T) {
	_, err := Get("digest.json", "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestGetMissingFile(t *testing.T) {
	_, err := Get("missing.json", "system")
	assert.Error(t, err)
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("digest.json", "nonexistent")
	})
}

func TestFormat(t *testing.T) {
	template := "Digest of {{.LinkCount}} links:\n{{.LinksData}}"
	out := Format(template, map[string]string{
		"LinkCount": "3",
		"LinksData": "the blocks",
	})
	assert.Equal(t, "Digest of 3 links:\nthe blocks", out)
}

func TestFormatLeavesUnknownPlaceholders(t *testing.T) {
	out := Format("{{.Known}} and {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "x and {{.Unknown}}", out)
}
