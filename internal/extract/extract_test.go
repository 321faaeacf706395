package extract

import (
	"testing"
)

func contains(set []string, name string) bool {
	for _, s := range set {
		if s == name {
			return true
		}
	}
	return false
}

func count(set []string, name string) int {
	n := 0
	for _, s := range set {
		if s == name {
			n++
		}
	}
	return n
}

func TestReferenced_DedupAcrossSyntaxes(t *testing.T) {
	text := "![a](./x.png) and later <img src=\"x.png\">"
	refs := Referenced(text, RegexMatchers()...)
	if got := count(refs, "x.png"); got != 1 {
		t.Errorf("x.png counted %d times, want 1", got)
	}
}

func TestReferenced_MarkdownRelativePrefix(t *testing.T) {
	refs := Referenced("![diagram](./2024-01-02-post/diagram.png)", RegexMatchers()...)
	if !contains(refs, "diagram.png") {
		t.Errorf("refs = %v, want diagram.png", refs)
	}
}

func TestReferenced_MarkdownNoPrefix(t *testing.T) {
	refs := Referenced("![photo](photo.jpg)", RegexMatchers()...)
	if !contains(refs, "photo.jpg") {
		t.Errorf("refs = %v, want photo.jpg", refs)
	}
}

func TestReferenced_HTMLSrcDoubleQuoted(t *testing.T) {
	refs := Referenced(`<img src="assets/chart.svg" alt="chart">`, RegexMatchers()...)
	if !contains(refs, "chart.svg") {
		t.Errorf("refs = %v, want chart.svg", refs)
	}
}

func TestReferenced_HTMLSrcSingleQuoted(t *testing.T) {
	refs := Referenced("<img src='pic.webp'>", RegexMatchers()...)
	if !contains(refs, "pic.webp") {
		t.Errorf("refs = %v, want pic.webp", refs)
	}
}

func TestReferenced_BasenameOnly(t *testing.T) {
	refs := Referenced("![a](../assets/deep/x.png)", RegexMatchers()...)
	if !contains(refs, "x.png") {
		t.Errorf("refs = %v, want x.png", refs)
	}
	if contains(refs, "../assets/deep/x.png") {
		t.Error("directory components should be discarded")
	}
}

func TestReferenced_MalformedMarkdown(t *testing.T) {
	inputs := []string{
		"",
		"![unclosed](",
		"<img src=>",
		"](weird[!",
		"![](  )",
	}
	for _, in := range inputs {
		refs := Referenced(in, RegexMatchers()...)
		if len(refs) != 0 {
			t.Errorf("Referenced(%q) = %v, want empty", in, refs)
		}
	}
}

func TestReferenced_TitleAfterPath(t *testing.T) {
	refs := Referenced(`![a](./x.png "caption")`, RegexMatchers()...)
	if !contains(refs, "x.png") {
		t.Errorf("refs = %v, want x.png", refs)
	}
}

func TestBasename(t *testing.T) {
	cases := map[string]string{
		"./x.png":         "x.png",
		"../assets/y.jpg": "y.jpg",
		"z.gif":           "z.gif",
		"a/b/c.svg":       "c.svg",
		"":                "",
		".":               "",
		"/":               "",
	}
	for in, want := range cases {
		if got := Basename(in); got != want {
			t.Errorf("Basename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestForMode(t *testing.T) {
	if got := len(ForMode("regex")); got != 5 {
		t.Errorf("regex mode matcher count = %d, want 5", got)
	}
	if got := len(ForMode("ast")); got != 2 {
		t.Errorf("ast mode matcher count = %d, want 2", got)
	}
}
