package extract

import (
	"bytes"

	"github.com/adrg/frontmatter"
)

// coverEnvelope captures the frontmatter fields that can declare a post's
// cover image. Both the flat Hugo form (image: ...) and the nested one
// (cover: {image: ...}) are in use across the content tree.
type coverEnvelope struct {
	Image string `yaml:"image"`
	Cover struct {
		Image string `yaml:"image"`
	} `yaml:"cover"`
}

// FrontmatterImages returns image paths declared in a post's YAML
// frontmatter. Missing or malformed frontmatter contributes nothing.
func FrontmatterImages(text string) []string {
	var env coverEnvelope
	if _, err := frontmatter.Parse(bytes.NewReader([]byte(text)), &env); err != nil {
		return nil
	}
	var out []string
	if env.Image != "" {
		out = append(out, env.Image)
	}
	if env.Cover.Image != "" {
		out = append(out, env.Cover.Image)
	}
	return out
}
