package tasklists

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// taskLists is the goldmark extension. It carries an immutable copy
// of its configuration, so separate instances with different options
// can serve separate goldmark.Markdown values at the same time.
type taskLists struct {
	cfg Config
}

// New returns a goldmark extension that turns [ ], [x] and [X]
// markers at the start of bulleted list items into checkboxes.
func New(opts ...Option) goldmark.Extender {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &taskLists{cfg: cfg}
}

// Extension is the extension with default settings.
var Extension = New()

// Extend implements goldmark.Extender.
func (e *taskLists) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&transformer{cfg: e.cfg}, 500),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(newHTMLRenderer(e.cfg), 500),
	))
}
