// Package content discovers markdown posts and knows the tree's path conventions.
package content

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Post is a discovered markdown file.
type Post struct {
	// Path is the post's path relative to the content root.
	Path string
	// AbsPath is the absolute path on disk.
	AbsPath string
}

// Discover walks root and returns every .md file beneath it, in walk order.
// A missing or unreadable root is a hard error; the caller has nothing to
// work on without it. An unreadable entry further down is not: it is logged
// and skipped so the rest of the batch still gets processed.
func Discover(root string, logger *slog.Logger) ([]Post, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("content: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("content: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content: root is not a directory: %s", abs)
	}

	var posts []Post
	err = filepath.WalkDir(abs, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if p == abs {
				return walkErr
			}
			logger.Warn("discover: entry skipped",
				slog.String("path", p),
				slog.String("error", walkErr.Error()))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		rel, _ := filepath.Rel(abs, p)
		posts = append(posts, Post{Path: rel, AbsPath: p})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("content: discover: %w", err)
	}
	return posts, nil
}

// AssetDir returns the conventional asset directory for a markdown file: the
// sibling directory named after the file's stem. For
// content/posts/2024-01-02-slug.md that is content/posts/2024-01-02-slug.
// The convention is load-bearing: images for a post live only there.
func AssetDir(markdownPath string) string {
	stem := strings.TrimSuffix(filepath.Base(markdownPath), filepath.Ext(markdownPath))
	return filepath.Join(filepath.Dir(markdownPath), stem)
}

// Read returns the raw bytes of a post.
func Read(p Post) ([]byte, error) {
	data, err := os.ReadFile(p.AbsPath)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", p.Path, err)
	}
	return data, nil
}
