package digest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alx/weekly-news/internal/types"
)

// fakeClient records every completion call and returns a canned response.
type fakeClient struct {
	prompts  []string
	temps    []float64
	response string
	err      error
}

func (f *fakeClient) Complete(_ context.Context, prompt string, temperature float64) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.temps = append(f.temps, temperature)
	return f.response, f.err
}

func sampleLinks() []types.Link {
	return []types.Link{
		{
			ID:          1,
			URL:         "https://go.dev/blog/loopvar",
			Title:       "Loop Variable Semantics",
			Description: "The 1.22 change explained",
			CreatedAt:   "2025-03-12T09:00:00Z",
			Tags:        []string{"go", "language"},
		},
		{
			ID:        2,
			URL:       "https://example.com/post",
			Title:     "Untagged Post",
			CreatedAt: "2025-03-13T18:30:00Z",
		},
	}
}

func TestComposeBuildsSynthesisPrompt(t *testing.T) {
	client := &fakeClient{response: "the digest"}
	composer := NewComposer(client)

	out, err := composer.Compose(context.Background(), sampleLinks())
	require.NoError(t, err)
	assert.Equal(t, "the digest", out)

	require.Len(t, client.prompts, 1)
	prompt := client.prompts[0]

	// Link count and each serialized block appear verbatim.
	assert.Contains(t, prompt, "these 2 links")
	assert.Contains(t, prompt, "**Loop Variable Semantics**\nURL: https://go.dev/blog/loopvar\nDescription: The 1.22 change explained\nTags: go, language\nDate: 2025-03-12T09:00:00Z\n---\n")
	assert.Contains(t, prompt, "**Untagged Post**\nURL: https://example.com/post\nDescription: \nTags: \nDate: 2025-03-13T18:30:00Z\n---\n")

	// The numbered requirements and fixed footer links are present.
	assert.Contains(t, prompt, "9. DO NOT create links not available in LINKS_DATA")
	assert.Contains(t, prompt, "Suggest relevant tags for the post")
	assert.Contains(t, prompt, "shared.girard-davila.net")
	assert.Contains(t, prompt, "github.com/alx/weekly_news")

	require.Len(t, client.temps, 1)
	assert.InDelta(t, 0.7, client.temps[0], 1e-9)
}

func TestComposePassesThroughClientErrors(t *testing.T) {
	client := &fakeClient{err: assert.AnError}
	composer := NewComposer(client)

	out, err := composer.Compose(context.Background(), sampleLinks())
	assert.Empty(t, out)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestReviseApprovedSkipsRemoteCall(t *testing.T) {
	client := &fakeClient{response: "should never be returned"}
	composer := NewComposer(client)

	out, err := composer.Revise(context.Background(), "original draft", FeedbackApproved)
	require.NoError(t, err)
	assert.Equal(t, "original draft", out)
	assert.Empty(t, client.prompts, "approval must not trigger a completion call")
}

func TestReviseWithFeedback(t *testing.T) {
	client := &fakeClient{response: "polished draft"}
	composer := NewComposer(client)

	out, err := composer.Revise(context.Background(), "original draft", "make it shorter")
	require.NoError(t, err)
	assert.Equal(t, "polished draft", out)

	require.Len(t, client.prompts, 1)
	prompt := client.prompts[0]
	assert.Contains(t, prompt, "original draft")
	assert.Contains(t, prompt, "make it shorter")
	assert.Contains(t, prompt, "Return the polished version.")

	assert.InDelta(t, 0.5, client.temps[0], 1e-9)
}

func TestReviseNeverFallsBackToOriginal(t *testing.T) {
	// A failed revision yields the client's (empty) result, not the draft.
	client := &fakeClient{response: "", err: assert.AnError}
	composer := NewComposer(client)

	out, err := composer.Revise(context.Background(), "original draft", "make it shorter")
	assert.Empty(t, out)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Len(t, client.prompts, 1)
}
