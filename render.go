package tasklists

import (
	"bytes"
	"fmt"
	"io"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Options []Option
}

// Render converts Markdown to HTML with task list support. A YAML or
// TOML front matter block at the top of the input is skipped before
// rendering.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	if err := ValidateInput(src); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	md := newEngine(req.Options...)
	if err := md.Convert(stripFrontMatter(src), req.Writer); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// newEngine builds the goldmark pipeline used by Render. The GFM
// bundle is not installed as a whole: it carries its own task list
// syntax that would consume the markers before the transformer runs.
func newEngine(opts ...Option) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.Linkify,
			New(opts...),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
}

// stripFrontMatter drops a leading YAML or TOML front matter block.
// Malformed front matter stays in place and renders as regular text.
func stripFrontMatter(src []byte) []byte {
	var meta struct{}
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return src
	}
	return body
}
