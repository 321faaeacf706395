// Package testutil provides shared test helpers for building content-tree fixtures.
package testutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// ContentRoot creates a temporary content root directory.
func ContentRoot(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

// WritePost writes a markdown post at relPath under root, creating parent
// directories as needed.
func WritePost(t *testing.T, root, relPath, content string) string {
	t.Helper()
	abs := filepath.Join(root, relPath)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return abs
}

// WriteAsset writes an empty asset file named name inside the asset
// directory relDir under root.
func WriteAsset(t *testing.T, root, relDir, name string) string {
	t.Helper()
	dir := filepath.Join(root, relDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	abs := filepath.Join(dir, name)
	if err := os.WriteFile(abs, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return abs
}

// Logger returns a slog.Logger that discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
