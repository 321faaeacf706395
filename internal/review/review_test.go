package review

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sorenh/postkeep/internal/testutil"
)

func TestCollect_SortedByDate(t *testing.T) {
	root := testutil.ContentRoot(t)
	testutil.WritePost(t, root, "b-newer.md",
		"---\ntitle: Newer\ndate: 2024-06-01\n---\nBody\n")
	testutil.WritePost(t, root, "a-older.md",
		"---\ntitle: Older\ndate: 2023-01-15\nlast_review: 2024-02-01\nstatus: reviewed\n---\nBody\n")

	entries, err := Collect(root, testutil.Logger())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Title != "Older" || entries[1].Title != "Newer" {
		t.Errorf("order = [%s, %s], want oldest first", entries[0].Title, entries[1].Title)
	}
	if entries[0].LastReview != "2024-02-01" || entries[0].Status != "reviewed" {
		t.Errorf("entry = %+v", entries[0])
	}
}

func TestCollect_SkipsDrafts(t *testing.T) {
	root := testutil.ContentRoot(t)
	testutil.WritePost(t, root, "draft.md",
		"---\ntitle: WIP\ndate: 2024-01-01\ndraft: true\n---\nBody\n")
	testutil.WritePost(t, root, "live.md",
		"---\ntitle: Live\ndate: 2024-01-02\n---\nBody\n")

	entries, err := Collect(root, testutil.Logger())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "Live" {
		t.Errorf("entries = %+v, want only the live post", entries)
	}
}

func TestCollect_TitleFallsBackToPath(t *testing.T) {
	root := testutil.ContentRoot(t)
	testutil.WritePost(t, root, "untitled.md", "Plain body, no frontmatter.\n")

	entries, err := Collect(root, testutil.Logger())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "untitled.md" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestRenderTable(t *testing.T) {
	var out bytes.Buffer
	RenderTable(&out, []Entry{
		{Path: "a.md", Title: "Post A", Status: "reviewed", LastReview: "2024-02-01"},
	})
	text := out.String()
	for _, want := range []string{
		"| Post | Published | Last review | Status |",
		"[Post A](a.md)",
		"reviewed",
		"1 posts tracked.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}
