// Package review implements the editor gate between draft and revision.
package review

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alx/weekly-news/internal/digest"
)

// Reviewer collects free-text feedback on a draft. Implementations must
// return digest.FeedbackApproved when no change is requested.
type Reviewer interface {
	CaptureFeedback(ctx context.Context, content string) (string, error)
}

// TerminalReviewer shows the draft on out and blocks for one line on in.
// Cancelling the context releases the pipeline with an implicit approval.
type TerminalReviewer struct {
	in  io.Reader
	out io.Writer
}

// NewTerminalReviewer builds a reviewer reading from in and writing to out,
// typically os.Stdin and os.Stdout.
func NewTerminalReviewer(in io.Reader, out io.Writer) *TerminalReviewer {
	return &TerminalReviewer{in: in, out: out}
}

// CaptureFeedback displays the draft and waits for the editor's verdict.
// A blank line means approval.
func (r *TerminalReviewer) CaptureFeedback(ctx context.Context, content string) (string, error) {
	fmt.Fprintf(r.out, "\n%s\n", strings.Repeat("=", 80))
	fmt.Fprintln(r.out, "EDITOR REVIEW PHASE")
	fmt.Fprintln(r.out, strings.Repeat("=", 80))
	fmt.Fprintln(r.out, "\nGenerated content:")
	fmt.Fprintln(r.out, strings.Repeat("-", 40))
	fmt.Fprintln(r.out, content)
	fmt.Fprintln(r.out, strings.Repeat("-", 40))
	fmt.Fprint(r.out, "\nEditor feedback (press Enter for no changes, or provide feedback): ")

	type readResult struct {
		line string
		err  error
	}

	// The read cannot be interrupted, so it runs in its own goroutine and
	// the goroutine is abandoned if the context ends first.
	results := make(chan readResult, 1)
	go func() {
		line, err := bufio.NewReader(r.in).ReadString('\n')
		results <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(r.out)
		return digest.FeedbackApproved, nil
	case res := <-results:
		if res.err != nil && res.err != io.EOF {
			return "", fmt.Errorf("review: read feedback: %w", res.err)
		}
		feedback := strings.TrimSpace(res.line)
		if feedback == "" {
			return digest.FeedbackApproved, nil
		}
		return feedback, nil
	}
}

// AutoApprove is the non-interactive reviewer: it accepts every draft.
type AutoApprove struct{}

// CaptureFeedback always returns the approval sentinel.
func (AutoApprove) CaptureFeedback(_ context.Context, _ string) (string, error) {
	return digest.FeedbackApproved, nil
}
