// Package linkace provides a read-only client for the LinkAce bookmark API.
package linkace

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/alx/weekly-news/internal/logger"
	"github.com/alx/weekly-news/internal/types"
)

const (
	// pageSize caps how many links a single fetch may hand to the digest
	// prompt. Exactly one page is requested per run.
	pageSize = 100

	// recencyWindow is the trailing window a link must fall into.
	recencyWindow = 7 * 24 * time.Hour

	maxErrorBody = 200
)

// APIError is returned when the service answers with a non-success status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("linkace: HTTP %d: %s", e.StatusCode, e.Body)
}

// Client talks to a LinkAce instance.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     logger.Logger

	// now is swapped out in tests to pin the recency window.
	now func() time.Time
}

// NewClient builds a Client for the given instance. timeout bounds every
// request; pass config.DefaultHTTPTimeout unless the operator overrode it.
func NewClient(baseURL, apiKey string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		log:     log,
		now:     time.Now,
	}
}

type tagPayload struct {
	Name string `json:"name"`
}

type linkPayload struct {
	ID          int          `json:"id"`
	URL         string       `json:"url"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	CreatedAt   string       `json:"created_at"`
	Tags        []tagPayload `json:"tags"`
}

type listLinksResponse struct {
	Data []linkPayload `json:"data"`
}

// FetchRecent returns the links of the given list created within the last
// seven days, newest first. Future-dated records are kept as-is.
// Transport failures and non-2xx statuses surface as errors; the caller
// decides whether that is fatal.
func (c *Client) FetchRecent(ctx context.Context, listID int) ([]types.Link, error) {
	cutoff := c.now().UTC().Add(-recencyWindow)

	endpoint := fmt.Sprintf("%s/api/v2/lists/%d/links", c.baseURL, listID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("linkace: build request: %w", err)
	}

	q := url.Values{}
	q.Set("per_page", strconv.Itoa(pageSize))
	q.Set("order_by", "created_at")
	q.Set("order_dir", "desc")
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("linkace: list links: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var decoded listLinksResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("linkace: decode response: %w", err)
	}

	links := make([]types.Link, 0, len(decoded.Data))
	for _, p := range decoded.Data {
		created, err := time.Parse(time.RFC3339, p.CreatedAt)
		if err != nil {
			c.log.Warn("skipping link with unparseable created_at",
				logger.Int("id", p.ID), logger.String("created_at", p.CreatedAt))
			continue
		}
		if created.UTC().Before(cutoff) {
			continue
		}

		tags := make([]string, 0, len(p.Tags))
		for _, t := range p.Tags {
			tags = append(tags, t.Name)
		}

		links = append(links, types.Link{
			ID:          p.ID,
			URL:         p.URL,
			Title:       p.Title,
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
			Tags:        tags,
		})
	}

	c.log.Info("fetched links from list",
		logger.Int("list_id", listID), logger.Int("count", len(links)))

	return links, nil
}
