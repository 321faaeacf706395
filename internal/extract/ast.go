package extract

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// ASTImages is a Matcher backed by a real markdown parse instead of the
// regex heuristics. It walks the goldmark AST collecting image destinations,
// and runs the src matchers over raw HTML nodes since goldmark leaves
// embedded HTML unparsed. It catches forms the regexes miss, such as
// reference-style and multi-line image syntax.
func ASTImages(input string) []string {
	source := []byte(input)
	engine := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := engine.Parser().Parse(text.NewReader(source))

	var out []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Image:
			if len(node.Destination) > 0 {
				out = append(out, string(node.Destination))
			}
		case *ast.HTMLBlock:
			out = append(out, srcAttrs(rawLines(node, source))...)
		case *ast.RawHTML:
			var raw []byte
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				raw = append(raw, seg.Value(source)...)
			}
			out = append(out, srcAttrs(string(raw))...)
		}
		return ast.WalkContinue, nil
	})
	return out
}

// rawLines reassembles the source text covered by a block node.
func rawLines(n ast.Node, source []byte) string {
	var raw []byte
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		raw = append(raw, seg.Value(source)...)
	}
	return string(raw)
}

// srcAttrs extracts src attribute values from an HTML fragment.
func srcAttrs(html string) []string {
	var out []string
	for _, m := range srcDoubleRe.FindAllStringSubmatch(html, -1) {
		out = append(out, m[1])
	}
	for _, m := range srcSingleRe.FindAllStringSubmatch(html, -1) {
		out = append(out, m[1])
	}
	return out
}
