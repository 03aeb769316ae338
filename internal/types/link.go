// Package types defines the value types passed between pipeline stages.
package types

// Link is a single bookmark record as surfaced by the link service.
// It is created once by the linkace client and consumed read-only downstream.
type Link struct {
	ID          int
	URL         string
	Title       string
	Description string
	// CreatedAt is the service's ISO-8601 creation timestamp, kept verbatim
	// so the digest prompt can show it exactly as stored.
	CreatedAt string
	// Tags preserves the service's ordering; duplicates are not removed.
	Tags []string
}
