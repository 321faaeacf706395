package extract

import "testing"

func TestASTImages_InlineImage(t *testing.T) {
	refs := Referenced("Some text ![alt](./post/x.png) more text", ASTImages)
	if !contains(refs, "x.png") {
		t.Errorf("refs = %v, want x.png", refs)
	}
}

func TestASTImages_ReferenceStyle(t *testing.T) {
	// Reference-style definitions are invisible to the regex matchers but a
	// real parse resolves them.
	text := "![alt][img]\n\n[img]: ./post/ref.png\n"
	refs := Referenced(text, ASTImages)
	if !contains(refs, "ref.png") {
		t.Errorf("refs = %v, want ref.png", refs)
	}
}

func TestASTImages_HTMLBlock(t *testing.T) {
	text := "# Title\n\n<figure>\n<img src=\"block.png\">\n</figure>\n"
	refs := Referenced(text, ASTImages)
	if !contains(refs, "block.png") {
		t.Errorf("refs = %v, want block.png", refs)
	}
}

func TestASTImages_InlineRawHTML(t *testing.T) {
	refs := Referenced("text with <img src='inline.gif'> embedded", ASTImages)
	if !contains(refs, "inline.gif") {
		t.Errorf("refs = %v, want inline.gif", refs)
	}
}

func TestASTImages_AgreesWithRegexOnPlainPosts(t *testing.T) {
	text := "![a](./d/one.png)\n\n<img src=\"two.jpg\">\n"
	fromRegex := Referenced(text, RegexMatchers()...)
	fromAST := Referenced(text, ASTImages)
	for _, name := range fromRegex {
		if !contains(fromAST, name) {
			t.Errorf("AST extractor missed %s (regex found %v, ast found %v)", name, fromRegex, fromAST)
		}
	}
}
