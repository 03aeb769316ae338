// Package digest turns a week's worth of links into publishable prose.
package digest

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alx/weekly-news/internal/llm"
	"github.com/alx/weekly-news/internal/prompts"
	"github.com/alx/weekly-news/internal/types"
)

// FeedbackApproved is the reviewer response meaning "no revision requested".
// Revise treats it as a no-op and skips the second completion call.
const FeedbackApproved = "Content approved as-is"

// Sampling temperatures for the two passes. The revision pass runs cooler so
// it stays close to the draft it is amending.
const (
	composeTemperature = 0.7
	reviseTemperature  = 0.5
)

// Composer builds prompts from link records and delegates to a completion
// client. It is stateless apart from the client.
type Composer struct {
	client llm.Client
}

// NewComposer returns a Composer backed by the given completion client.
func NewComposer(client llm.Client) *Composer {
	return &Composer{client: client}
}

// Compose generates the first-pass digest from the given links. The result is
// the completion client's output, unmodified; errors pass through untouched.
func (c *Composer) Compose(ctx context.Context, links []types.Link) (string, error) {
	prompt := prompts.Format(prompts.MustGet("digest.json", "synthesis"), map[string]string{
		"LinkCount": strconv.Itoa(len(links)),
		"LinksData": formatLinks(links),
	})
	return c.client.Complete(ctx, prompt, composeTemperature)
}

// Revise applies reviewer feedback to an existing draft. Approved-as-is
// feedback short-circuits without a remote call. Otherwise the result is the
// completion client's output, never the original draft.
func (c *Composer) Revise(ctx context.Context, content, feedback string) (string, error) {
	if feedback == FeedbackApproved {
		return content, nil
	}

	prompt := prompts.Format(prompts.MustGet("digest.json", "revision"), map[string]string{
		"Content":  content,
		"Feedback": feedback,
	})
	return c.client.Complete(ctx, prompt, reviseTemperature)
}

// formatLinks serializes each link into the fixed block layout the synthesis
// prompt expects, blocks separated by a horizontal rule.
func formatLinks(links []types.Link) string {
	var sb strings.Builder
	for _, link := range links {
		sb.WriteString(fmt.Sprintf("**%s**\n", link.Title))
		sb.WriteString(fmt.Sprintf("URL: %s\n", link.URL))
		sb.WriteString(fmt.Sprintf("Description: %s\n", link.Description))
		sb.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(link.Tags, ", ")))
		sb.WriteString(fmt.Sprintf("Date: %s\n---\n", link.CreatedAt))
	}
	return sb.String()
}
