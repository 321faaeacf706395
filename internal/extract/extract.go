// Package extract pulls referenced image filenames out of markdown text.
//
// Extraction is heuristic, not a full markdown parse: a post references an
// image if any matcher finds a path-like string for it. Matchers are plain
// functions so alternative strategies (see the goldmark-based one in ast.go)
// can be swapped in without touching the reconciler.
package extract

import (
	"path"
	"regexp"
	"strings"
)

// Matcher scans markdown text and returns zero or more path-like strings.
// Matchers are applied independently over the whole text; overlapping results
// are expected and deduplicated by Referenced. A matcher must tolerate
// arbitrary malformed input and never fail.
type Matcher func(text string) []string

var (
	mdImageRelRe = regexp.MustCompile(`!\[[^\]]*\]\(\./([^)\s]+)`)
	mdImageRe    = regexp.MustCompile(`!\[[^\]]*\]\(([^)\s]+)`)
	srcDoubleRe  = regexp.MustCompile(`src="([^"]+)"`)
	srcSingleRe  = regexp.MustCompile(`src='([^']+)'`)
)

// regexMatcher adapts a single-capture-group pattern into a Matcher.
func regexMatcher(re *regexp.Regexp) Matcher {
	return func(text string) []string {
		matches := re.FindAllStringSubmatch(text, -1)
		out := make([]string, 0, len(matches))
		for _, m := range matches {
			out = append(out, m[1])
		}
		return out
	}
}

// RegexMatchers returns the default matcher list: markdown image syntax with
// and without a ./ prefix, and double- and single-quoted HTML src attributes.
func RegexMatchers() []Matcher {
	return []Matcher{
		regexMatcher(mdImageRelRe),
		regexMatcher(mdImageRe),
		regexMatcher(srcDoubleRe),
		regexMatcher(srcSingleRe),
	}
}

// ForMode returns the matcher list for an extractor mode: "ast" selects the
// goldmark-based matcher, anything else the regex set. Frontmatter cover
// images are included in both modes.
func ForMode(mode string) []Matcher {
	if mode == "ast" {
		return []Matcher{ASTImages, FrontmatterImages}
	}
	return append(RegexMatchers(), FrontmatterImages)
}

// Referenced applies every matcher to text and returns the deduplicated set
// of referenced basenames, in first-seen order. Directory components of a
// reference are discarded before comparison, so ../assets/x.png and ./x.png
// both yield x.png.
func Referenced(text string, matchers ...Matcher) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, match := range matchers {
		for _, p := range match(text) {
			name := Basename(p)
			if name == "" {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}

// Basename returns the final path segment of a reference. References use
// forward slashes regardless of platform, so this is path.Base, with the
// degenerate cases ("", ".", "/") mapped to an empty string.
func Basename(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	name := path.Base(ref)
	if name == "." || name == "/" {
		return ""
	}
	return name
}
