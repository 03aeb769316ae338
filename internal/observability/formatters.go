// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/alx/weekly-news/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintLinks outputs a human-readable summary of the fetched links.
func (p *Printer) PrintLinks(links []types.Link) {
	if len(links) == 0 {
		return
	}

	var sb strings.Builder

	count := min(len(links), maxItemsToShow)
	for i := 0; i < count; i++ {
		link := links[i]
		sb.WriteString(fmt.Sprintf("• %s\n", link.Title))
		sb.WriteString(fmt.Sprintf("  %s\n", link.URL))
		if len(link.Tags) > 0 {
			sb.WriteString(fmt.Sprintf("  [%s]\n", strings.Join(link.Tags, ", ")))
		}
	}
	if len(links) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(links)-maxItemsToShow))
	}

	p.printBox(fmt.Sprintf("Links This Week (%d)", len(links)), strings.TrimRight(sb.String(), "\n"))
}

// PrintDigestPreview outputs the opening of the generated digest, truncated.
func (p *Printer) PrintDigestPreview(digest string) {
	lines := strings.Split(digest, "\n")
	if len(lines) > maxItemsToShow*2 {
		lines = append(lines[:maxItemsToShow*2], "...")
	}
	p.printBox("Digest Preview", strings.Join(lines, "\n"))
}
