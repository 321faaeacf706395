// Package assets scans a post's asset directory for image files.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExtensionSet is the set of file extensions recognized as images, keyed by
// lower-case extension without the leading dot.
type ExtensionSet map[string]struct{}

// NewExtensionSet builds an ExtensionSet from a list of extensions. Leading
// dots are stripped and matching is case-insensitive.
func NewExtensionSet(exts []string) ExtensionSet {
	set := make(ExtensionSet, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" {
			set[e] = struct{}{}
		}
	}
	return set
}

// Contains reports whether filename has a recognized image extension.
func (s ExtensionSet) Contains(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	_, ok := s[ext]
	return ok
}

// ScanDir lists the image files directly inside dir (non-recursive) and
// returns their basenames. A directory that does not exist yields an empty
// set: posts without images simply have no asset directory. Any other
// filesystem error is returned so the caller can isolate the failure to
// this post.
func ScanDir(dir string, exts ExtensionSet) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("assets: scan %s: %w", dir, err)
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if exts.Contains(e.Name()) {
			out = append(out, e.Name())
		}
	}
	return out, nil
}
