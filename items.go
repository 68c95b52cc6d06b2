package tasklists

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Item is a task item found in a Markdown document.
type Item struct {
	// Checked reports whether the marker was [x] or [X].
	Checked bool
	// Text is the flattened item text with the marker removed.
	Text string
	// Level is the list nesting depth of the item, starting at 1 for
	// top level items.
	Level int
}

// Items collects the task items of a Markdown document in document
// order. Front matter is skipped the same way Render skips it. Items
// recognizes markers under the same rules as the extension, so a
// document renders and extracts consistently.
func Items(source []byte) ([]Item, error) {
	if err := ValidateInput(source); err != nil {
		return nil, fmt.Errorf("items: %w", err)
	}
	body := stripFrontMatter(source)
	p := parser.NewParser(
		parser.WithBlockParsers(parser.DefaultBlockParsers()...),
		parser.WithInlineParsers(parser.DefaultInlineParsers()...),
		parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
	)
	doc := p.Parse(text.NewReader(body))
	var items []Item
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		item, ok := n.(*ast.ListItem)
		if !ok {
			return ast.WalkContinue, nil
		}
		list, ok := item.Parent().(*ast.List)
		if !ok || list.IsOrdered() {
			return ast.WalkContinue, nil
		}
		block := item.FirstChild()
		if block == nil {
			return ast.WalkContinue, nil
		}
		switch block.(type) {
		case *ast.TextBlock, *ast.Paragraph:
		default:
			return ast.WalkContinue, nil
		}
		checked, ok := matchMarker(block, body)
		if !ok {
			return ast.WalkContinue, nil
		}
		stripMarker(block)
		items = append(items, Item{
			Checked: checked,
			Text:    strings.TrimSpace(nodeText(block, body)),
			Level:   listDepth(item),
		})
		return ast.WalkContinue, nil
	})
	return items, nil
}

// nodeText flattens the inline text of a node. Line breaks inside the
// node become single spaces.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		case *ast.AutoLink:
			sb.Write(t.URL(source))
		default:
			sb.WriteString(nodeText(c, source))
		}
	}
	return sb.String()
}

// listDepth counts how many lists enclose the item.
func listDepth(item ast.Node) int {
	depth := 0
	for n := item.Parent(); n != nil; n = n.Parent() {
		if _, ok := n.(*ast.List); ok {
			depth++
		}
	}
	return depth
}
