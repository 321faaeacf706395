// Package reconcile cross-references each post's image references against
// the images actually present in its asset directory.
package reconcile

import (
	"log/slog"
	"sort"

	"github.com/sorenh/postkeep/internal/assets"
	"github.com/sorenh/postkeep/internal/content"
	"github.com/sorenh/postkeep/internal/extract"
)

// Result holds the reconciliation outcome for one post.
type Result struct {
	Post     content.Post
	AssetDir string

	// Referenced is the set of image basenames the post's text references.
	Referenced []string
	// Actual is the set of image basenames present in the asset directory.
	Actual []string
	// Unused is Actual minus Referenced: on disk, never referenced.
	Unused []string
	// Missing is Referenced minus Actual: referenced, not on disk.
	// Report-only; nothing ever mutates the filesystem based on it.
	Missing []string
}

// Clean reports whether the post has neither unused nor missing images.
func (r Result) Clean() bool {
	return len(r.Unused) == 0 && len(r.Missing) == 0
}

// Diff computes both set differences. Results are sorted so output is stable
// regardless of extraction or directory order.
func Diff(referenced, actual []string) (unused, missing []string) {
	refSet := toSet(referenced)
	actSet := toSet(actual)

	for name := range actSet {
		if _, ok := refSet[name]; !ok {
			unused = append(unused, name)
		}
	}
	for name := range refSet {
		if _, ok := actSet[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(unused)
	sort.Strings(missing)
	return unused, missing
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// Scan discovers every post under root and reconciles each one:
// read, extract references, scan the asset directory, diff. A failure on one
// post is logged and skipped; the rest of the batch still completes. Only a
// missing or unreadable root fails the whole scan.
func Scan(root string, exts assets.ExtensionSet, matchers []extract.Matcher, logger *slog.Logger) ([]Result, error) {
	posts, err := content.Discover(root, logger)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(posts))
	for _, post := range posts {
		res, err := reconcilePost(post, exts, matchers)
		if err != nil {
			logger.Warn("scan: post skipped",
				slog.String("path", post.Path),
				slog.String("error", err.Error()))
			continue
		}
		results = append(results, res)
	}
	return results, nil
}

// reconcilePost runs the per-post pipeline. Every run works from the current
// disk and markdown state; nothing is cached between invocations, so a
// later removal pass can trust the Unused set it is handed.
func reconcilePost(post content.Post, exts assets.ExtensionSet, matchers []extract.Matcher) (Result, error) {
	data, err := content.Read(post)
	if err != nil {
		return Result{}, err
	}

	referenced := extract.Referenced(string(data), matchers...)

	assetDir := content.AssetDir(post.AbsPath)
	actual, err := assets.ScanDir(assetDir, exts)
	if err != nil {
		return Result{}, err
	}

	unused, missing := Diff(referenced, actual)
	return Result{
		Post:       post,
		AssetDir:   assetDir,
		Referenced: referenced,
		Actual:     actual,
		Unused:     unused,
		Missing:    missing,
	}, nil
}
