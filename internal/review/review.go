// Package review builds the post review-tracking table from frontmatter.
package review

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/sorenh/postkeep/internal/content"
)

// Entry is one post's row in the review table.
type Entry struct {
	Path       string
	Title      string
	Date       time.Time
	LastReview string
	Status     string
}

type reviewEnvelope struct {
	Title      string    `yaml:"title"`
	Date       time.Time `yaml:"date"`
	LastReview string    `yaml:"last_review"`
	Status     string    `yaml:"status"`
	Draft      bool      `yaml:"draft"`
}

// Collect scans every post under root and returns review entries sorted by
// publication date, oldest first, with path as tiebreaker. Drafts are
// excluded. A post whose frontmatter cannot be read is logged and skipped.
func Collect(root string, logger *slog.Logger) ([]Entry, error) {
	posts, err := content.Discover(root, logger)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, post := range posts {
		data, err := content.Read(post)
		if err != nil {
			logger.Warn("review: post skipped",
				slog.String("path", post.Path),
				slog.String("error", err.Error()))
			continue
		}

		var env reviewEnvelope
		if _, err := frontmatter.Parse(bytes.NewReader(data), &env); err != nil {
			logger.Warn("review: bad frontmatter",
				slog.String("path", post.Path),
				slog.String("error", err.Error()))
			continue
		}
		if env.Draft {
			continue
		}

		title := env.Title
		if title == "" {
			title = post.Path
		}
		entries = append(entries, Entry{
			Path:       post.Path,
			Title:      title,
			Date:       env.Date,
			LastReview: env.LastReview,
			Status:     env.Status,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

// RenderTable writes the entries as a markdown table.
func RenderTable(w io.Writer, entries []Entry) {
	fmt.Fprintln(w, "| Post | Published | Last review | Status |")
	fmt.Fprintln(w, "| --- | --- | --- | --- |")
	for _, e := range entries {
		fmt.Fprintf(w, "| [%s](%s) | %s | %s | %s |\n",
			e.Title, e.Path, formatDate(e.Date), orDash(e.LastReview), orDash(e.Status))
	}
	fmt.Fprintf(w, "\n%d posts tracked.\n", len(entries))
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
