// Package report renders reconciliation results for humans.
package report

import (
	"fmt"
	"io"

	"github.com/sorenh/postkeep/internal/reconcile"
)

// Summary aggregates a batch of results.
type Summary struct {
	Posts   int
	Unused  int
	Missing int
}

// Render prints per-post unused/missing lists followed by aggregate totals.
// Posts that reconcile cleanly are omitted. Render only formats what the
// reconciler computed; it derives nothing itself.
func Render(w io.Writer, results []reconcile.Result) Summary {
	s := Summary{Posts: len(results)}

	for _, r := range results {
		s.Unused += len(r.Unused)
		s.Missing += len(r.Missing)
		if r.Clean() {
			continue
		}
		fmt.Fprintf(w, "%s\n", r.Post.Path)
		for _, name := range r.Unused {
			fmt.Fprintf(w, "  unused:  %s\n", name)
		}
		for _, name := range r.Missing {
			fmt.Fprintf(w, "  missing: %s\n", name)
		}
	}

	if s.Unused == 0 && s.Missing == 0 {
		fmt.Fprintf(w, "All images accounted for across %d posts.\n", s.Posts)
		return s
	}
	fmt.Fprintf(w, "%d unused, %d missing across %d posts.\n", s.Unused, s.Missing, s.Posts)
	return s
}
