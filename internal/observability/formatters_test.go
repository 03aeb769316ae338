package observability

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alx/weekly-news/internal/types"
)

func makeLinks(n int) []types.Link {
	links := make([]types.Link, n)
	for i := range links {
		links[i] = types.Link{
			Title: fmt.Sprintf("Link %d", i+1),
			URL:   fmt.Sprintf("https://example.com/%d", i+1),
			Tags:  []string{"go"},
		}
	}
	return links
}

func TestPrintLinks(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out).PrintLinks(makeLinks(3))

	got := out.String()
	assert.Contains(t, got, "Links This Week (3)")
	assert.Contains(t, got, "Link 1")
	assert.Contains(t, got, "Link 3")
	assert.NotContains(t, got, "more")
}

func TestPrintLinksTruncatesLongLists(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out).PrintLinks(makeLinks(8))

	got := out.String()
	assert.Contains(t, got, "Links This Week (8)")
	assert.Contains(t, got, "... and 3 more")
	assert.NotContains(t, got, "Link 6")
}

func TestPrintLinksEmptyIsSilent(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out).PrintLinks(nil)
	assert.Empty(t, out.String())
}

func TestPrintDigestPreviewTruncates(t *testing.T) {
	var out bytes.Buffer
	long := ""
	for i := 0; i < 30; i++ {
		long += fmt.Sprintf("line %d\n", i)
	}
	NewPrinter(&out).PrintDigestPreview(long)

	got := out.String()
	assert.Contains(t, got, "Digest Preview")
	assert.Contains(t, got, "line 0")
	assert.Contains(t, got, "...")
	assert.NotContains(t, got, "line 29")
}
