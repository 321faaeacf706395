// Package remove deletes unused images from asset directories.
package remove

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sorenh/postkeep/internal/reconcile"
)

// Stats counts what a removal pass actually did. Failed deletions are never
// counted as removed.
type Stats struct {
	Removed     int
	Failed      int
	DirsRemoved int
}

// Run deletes every file in every result's Unused set, then removes each
// asset directory that ends up empty. The Unused set is the only thing that
// drives a deletion: Missing is advisory, and files without a recognized
// image extension were never scanned in the first place.
//
// With dryRun set, Run prints the identical plan and touches nothing.
// A failed deletion is logged and skipped; the rest of the pass continues.
func Run(w io.Writer, results []reconcile.Result, dryRun bool, logger *slog.Logger) Stats {
	var stats Stats

	for _, r := range results {
		if len(r.Unused) == 0 {
			continue
		}

		for _, name := range r.Unused {
			target := filepath.Join(r.AssetDir, name)
			if dryRun {
				fmt.Fprintf(w, "would remove %s\n", target)
				stats.Removed++
				continue
			}
			if err := os.Remove(target); err != nil {
				logger.Warn("remove: delete failed",
					slog.String("path", target),
					slog.String("error", err.Error()))
				stats.Failed++
				continue
			}
			fmt.Fprintf(w, "removed %s\n", target)
			stats.Removed++
		}

		if dryRun {
			if dirWouldBeEmpty(r.AssetDir, r.Unused, logger) {
				fmt.Fprintf(w, "would remove empty directory %s\n", r.AssetDir)
				stats.DirsRemoved++
			}
			continue
		}
		if removeDirIfEmpty(r.AssetDir, logger) {
			fmt.Fprintf(w, "removed empty directory %s\n", r.AssetDir)
			stats.DirsRemoved++
		}
	}

	if dryRun {
		fmt.Fprintf(w, "%d unused images found; dry run, no files will be deleted.\n", stats.Removed)
	} else {
		fmt.Fprintf(w, "%d images removed, %d failed, %d directories removed.\n",
			stats.Removed, stats.Failed, stats.DirsRemoved)
	}
	return stats
}

// dirWouldBeEmpty predicts whether deleting the unused files would leave dir
// empty, so a dry run prints the same directory-removal plan the live pass
// would perform.
func dirWouldBeEmpty(dir string, unused []string, logger *slog.Logger) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("remove: read dir failed",
			slog.String("path", dir),
			slog.String("error", err.Error()))
		return false
	}
	doomed := make(map[string]struct{}, len(unused))
	for _, name := range unused {
		doomed[name] = struct{}{}
	}
	for _, e := range entries {
		if _, ok := doomed[e.Name()]; !ok {
			return false
		}
	}
	return true
}

// removeDirIfEmpty removes dir when it contains no entries at all. Stray
// non-image files keep the directory alive; they are outside this tool's
// deletion scope.
func removeDirIfEmpty(dir string, logger *slog.Logger) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("remove: read dir failed",
			slog.String("path", dir),
			slog.String("error", err.Error()))
		return false
	}
	if len(entries) > 0 {
		return false
	}
	if err := os.Remove(dir); err != nil {
		logger.Warn("remove: delete dir failed",
			slog.String("path", dir),
			slog.String("error", err.Error()))
		return false
	}
	return true
}
