// Package pipeline provides the high-level orchestration for a digest run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/alx/weekly-news/internal/logger"
	"github.com/alx/weekly-news/internal/observability"
	"github.com/alx/weekly-news/internal/review"
	"github.com/alx/weekly-news/internal/types"
)

// Source yields the candidate links for a collection.
type Source interface {
	FetchRecent(ctx context.Context, listID int) ([]types.Link, error)
}

// Composer drafts and revises digest prose.
type Composer interface {
	Compose(ctx context.Context, links []types.Link) (string, error)
	Revise(ctx context.Context, content, feedback string) (string, error)
}

// Publisher persists the finished digest and returns the written path.
type Publisher interface {
	Publish(digestText string, linkCount int) (string, error)
}

// Options wires the pipeline's collaborators together for one run.
type Options struct {
	ListID   int
	Source   Source
	Composer Composer
	Reviewer review.Reviewer
	Writer   Publisher
	Log      logger.Logger

	// Out receives the stage progress lines; defaults to os.Stdout.
	Out io.Writer
	// Verbose enables the formatted link and digest previews.
	Verbose bool
}

// Run executes the full sequence: fetch, compose, review, revise, publish.
//
// A failed or empty fetch, draft, or revision stops the run with a printed
// notice and a nil error; the distinction between "service failed" and
// "nothing new" is preserved in the log output. Only filesystem and
// reviewer errors propagate.
func Run(ctx context.Context, opts Options) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	log := opts.Log.With(logger.String("run_id", uuid.NewString()))
	printer := observability.NewPrinter(out)

	fmt.Fprintf(out, "Fetching weekly links from list %d...\n", opts.ListID)
	links, err := opts.Source.FetchRecent(ctx, opts.ListID)
	if err != nil {
		log.Error("link fetch failed", logger.Error(err))
		links = nil
	}
	if len(links) == 0 {
		fmt.Fprintln(out, "No links found for this week")
		return nil
	}
	fmt.Fprintf(out, "Found %d links from this week\n", len(links))
	if opts.Verbose {
		printer.PrintLinks(links)
	}

	fmt.Fprintln(out, "Structuring content with AI...")
	draft, err := opts.Composer.Compose(ctx, links)
	if err != nil {
		log.Error("digest generation failed", logger.Error(err))
	}
	if strings.TrimSpace(draft) == "" {
		fmt.Fprintln(out, "Failed to generate structured content")
		return nil
	}
	if opts.Verbose {
		printer.PrintDigestPreview(draft)
	}

	fmt.Fprintln(out, "Starting editor review...")
	feedback, err := opts.Reviewer.CaptureFeedback(ctx, draft)
	if err != nil {
		return fmt.Errorf("editor review failed: %w", err)
	}

	fmt.Fprintln(out, "Polishing content...")
	final, err := opts.Composer.Revise(ctx, draft, feedback)
	if err != nil {
		log.Error("digest revision failed", logger.Error(err))
	}
	if strings.TrimSpace(final) == "" {
		fmt.Fprintln(out, "Failed to polish content")
		return nil
	}

	fmt.Fprintln(out, "Generating Hugo markdown file...")
	path, err := opts.Writer.Publish(final, len(links))
	if err != nil {
		log.Error("content write failed", logger.Error(err))
		return err
	}

	fmt.Fprintf(out, "Complete! Content ready at: %s\n", path)
	return nil
}
