// Package hugo renders the finished digest as a Hugo content file with YAML
// front matter.
package hugo

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alx/weekly-news/internal/logger"
)

const (
	defaultDescription = "Weekly curated links and insights from my reading list"

	attribution = "*This digest was automatically generated from my [LinkAce](https://linkace.org) bookmark collection and curated with AI assistance.*"
)

var (
	defaultCategories = []string{"Weekly Digest", "Curated Links"}

	// defaultTags is the fallback when no usable tag suggestion can be
	// extracted from the digest text.
	defaultTags = []string{"weekly-digest", "curated-links", "reading-list"}
)

// FrontMatter is the structured header block Hugo reads from the top of a
// content file.
type FrontMatter struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Draft       bool     `yaml:"draft"`
	Description string   `yaml:"description"`
	Categories  []string `yaml:"categories"`
	Tags        []string `yaml:"tags"`
	Author      string   `yaml:"author"`
}

// Writer persists digests under a content directory.
type Writer struct {
	dir    string
	prefix string
	author string
	log    logger.Logger

	// now is swapped out in tests to pin filename and front-matter dates.
	now func() time.Time
}

// NewWriter builds a Writer targeting dir with the given filename prefix and
// front-matter author.
func NewWriter(dir, prefix, author string, log logger.Logger) *Writer {
	return &Writer{
		dir:    dir,
		prefix: prefix,
		author: author,
		log:    log,
		now:    time.Now,
	}
}

// Publish wraps the digest in front matter plus framing copy and writes it to
// <dir>/<YYYY-MM-DD>-<prefix>.md, creating the directory if needed. A file of
// the same name from an earlier run the same day is overwritten. Returns the
// written path.
func (w *Writer) Publish(digestText string, linkCount int) (string, error) {
	now := w.now()

	fm := FrontMatter{
		Title:       fmt.Sprintf("Weekly Links Digest - Week of %s", now.Format("January 2, 2006")),
		Date:        now.Format("2006-01-02T15:04:05-0700"),
		Draft:       false,
		Description: defaultDescription,
		Categories:  defaultCategories,
		Tags:        SuggestedTags(digestText),
		Author:      w.author,
	}

	header, err := yaml.Marshal(&fm)
	if err != nil {
		return "", fmt.Errorf("hugo: marshal front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(header)
	buf.WriteString("---\n\n")
	fmt.Fprintf(&buf, "*This week I discovered %d interesting links. Here's what caught my attention:*\n\n", linkCount)
	buf.WriteString(digestText)
	buf.WriteString("\n\n---\n")
	buf.WriteString(attribution)
	buf.WriteString("\n")

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("hugo: create content directory: %w", err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("%s-%s.md", now.Format("2006-01-02"), w.prefix))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("hugo: write content file: %w", err)
	}

	w.log.Info("content file written", logger.String("path", path))
	return path, nil
}

// SuggestedTags scans the digest for a tag line emitted by the generator
// ("Suggested tags: a, b, c" or "Tags: a, b"). Extraction is best effort:
// anything unparseable falls back to the fixed defaults.
func SuggestedTags(digestText string) []string {
	for _, line := range strings.Split(digestText, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "*#- "))
		lower := strings.ToLower(line)

		var raw string
		switch {
		case strings.HasPrefix(lower, "suggested tags:"):
			raw = line[len("suggested tags:"):]
		case strings.HasPrefix(lower, "tags:"):
			raw = line[len("tags:"):]
		default:
			continue
		}

		tags := parseTagList(raw)
		if len(tags) > 0 {
			return tags
		}
	}
	return defaultTags
}

// parseTagList normalizes a comma-separated tag suggestion into slugs.
func parseTagList(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		tag := strings.Trim(part, "`*# \t")
		tag = strings.ToLower(strings.ReplaceAll(tag, " ", "-"))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
