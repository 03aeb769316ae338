// Package config provides environment-based configuration for the CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults for the optional configuration keys.
const (
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	DefaultListID            = 1
	DefaultContentPath       = "./content/posts"
	DefaultFilenamePrefix    = "weekly-links"
	DefaultEditorName        = "Editor"
	DefaultHTTPTimeout       = 30 * time.Second
)

// Config holds everything the pipeline needs, read once at startup.
// CLI flags may override individual fields after loading.
type Config struct {
	// LinkAce (bookmark service)
	LinkAceBaseURL string `validate:"required,url"`
	LinkAceAPIKey  string `validate:"required"`

	// OpenRouter (completion service)
	OpenRouterBaseURL string `validate:"required,url"`
	OpenRouterAPIKey  string `validate:"required"`
	OpenRouterModel   string `validate:"required"`

	// Pipeline
	ListID      int           `validate:"gt=0"`
	ContentPath string        `validate:"required"`
	Prefix      string        `validate:"required"`
	EditorName  string        `validate:"required"`
	HTTPTimeout time.Duration `validate:"gt=0"`
}

// FromEnv reads the recognized environment variables, applying defaults for
// the optional ones. Call Validate afterwards, once flag overrides are in.
func FromEnv() (*Config, error) {
	cfg := &Config{
		LinkAceBaseURL:    strings.TrimRight(os.Getenv("LINKACE_BASE_URL"), "/"),
		LinkAceAPIKey:     os.Getenv("LINKACE_API_KEY"),
		OpenRouterBaseURL: strings.TrimRight(envOr("OPENROUTER_BASE_URL", DefaultOpenRouterBaseURL), "/"),
		OpenRouterAPIKey:  os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterModel:   os.Getenv("OPENROUTER_MODEL"),
		ContentPath:       envOr("HUGO_CONTENT_PATH", DefaultContentPath),
		Prefix:            envOr("OUTPUT_FILENAME_PREFIX", DefaultFilenamePrefix),
		EditorName:        envOr("EDITOR_NAME", DefaultEditorName),
		ListID:            DefaultListID,
		HTTPTimeout:       DefaultHTTPTimeout,
	}

	if raw := os.Getenv("TARGET_LIST_ID"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TARGET_LIST_ID %q: %w", raw, err)
		}
		cfg.ListID = id
	}

	if raw := os.Getenv("HTTP_TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS %q: %w", raw, err)
		}
		cfg.HTTPTimeout = time.Duration(secs) * time.Second
	}

	return cfg, nil
}

// Validate checks required keys and value ranges.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		problems := make([]string, 0, len(errs))
		for _, fe := range errs {
			problems = append(problems, fmt.Sprintf("%s (%s)", envKeyFor(fe.Field()), fe.Tag()))
		}
		return fmt.Errorf("config error: %s", strings.Join(problems, ", "))
	}
	return nil
}

// envKeyFor maps a struct field back to its environment variable, so
// validation failures point at the key the operator has to fix.
func envKeyFor(field string) string {
	switch field {
	case "LinkAceBaseURL":
		return "LINKACE_BASE_URL"
	case "LinkAceAPIKey":
		return "LINKACE_API_KEY"
	case "OpenRouterBaseURL":
		return "OPENROUTER_BASE_URL"
	case "OpenRouterAPIKey":
		return "OPENROUTER_API_KEY"
	case "OpenRouterModel":
		return "OPENROUTER_MODEL"
	case "ListID":
		return "TARGET_LIST_ID"
	case "ContentPath":
		return "HUGO_CONTENT_PATH"
	case "Prefix":
		return "OUTPUT_FILENAME_PREFIX"
	case "EditorName":
		return "EDITOR_NAME"
	case "HTTPTimeout":
		return "HTTP_TIMEOUT_SECONDS"
	default:
		return field
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
