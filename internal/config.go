// Package internal holds the shared configuration for the content-maintenance tools.
package internal

import (
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Extractor modes.
const (
	ExtractorRegex = "regex"
	ExtractorAST   = "ast"
)

// Config represents the suite configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Content ContentConfig     `yaml:"content"`
	Links   LinksConfig       `yaml:"links"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Content.Validate(); err != nil {
		return err
	}
	return c.Links.Validate()
}

// ApplicationConfig holds tool-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// ContentConfig describes the content tree the tools operate on.
type ContentConfig struct {
	// Root is the directory scanned for markdown posts.
	Root string `yaml:"root"`
	// ImageExtensions lists the file extensions (without dot) treated as
	// images when scanning a post's asset directory. Matching is
	// case-insensitive. Files with any other extension are never touched.
	ImageExtensions []string `yaml:"image_extensions"`
	// Extractor selects how image references are pulled out of markdown:
	// "regex" (default) or "ast".
	Extractor string `yaml:"extractor"`
}

// Validate validates the content configuration.
func (c *ContentConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.ImageExtensions, validation.Required),
		validation.Field(&c.Extractor, validation.Required, validation.In(ExtractorRegex, ExtractorAST)),
	)
}

// LinksConfig holds link-validator settings.
type LinksConfig struct {
	Timeout     time.Duration `yaml:"timeout"`
	Concurrency int           `yaml:"concurrency"`
	UserAgent   string        `yaml:"user_agent"`
	// Domain restricts validation to links on this host. Empty checks
	// every http(s) link.
	Domain string `yaml:"domain"`
}

// Validate validates the link-validator configuration.
func (c *LinksConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Timeout, validation.Required),
		validation.Field(&c.Concurrency, validation.Required, validation.Min(1), validation.Max(64)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Content: ContentConfig{
			Root:            "content/posts",
			ImageExtensions: []string{"png", "jpg", "jpeg", "gif", "svg", "webp", "avif"},
			Extractor:       ExtractorRegex,
		},
		Links: LinksConfig{
			Timeout:     10 * time.Second,
			Concurrency: 8,
			UserAgent:   "postkeep-link-validator/1.0",
		},
	}
}
