package tasklists

import (
	"bytes"
	"strconv"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// transformer rewrites task markers in bulleted list items into
// checkbox nodes after inline parsing. It holds no mutable state so a
// single instance is safe for concurrent parses.
type transformer struct {
	cfg Config
}

// Transform implements parser.ASTTransformer.
func (t *transformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()
	seq := 0
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
		checked, ok := matchMarker(block, source)
		if !ok {
			return ast.WalkContinue, nil
		}
		stripMarker(block)
		seq++
		t.decorate(block, item, list, checked, seq)
		return ast.WalkContinue, nil
	})
}

// matchMarker reports whether the block opens with a task marker and
// whether that marker is checked. Inline parsing may have split the
// marker across several text nodes, so the first four bytes are
// collected before testing. A line break inside the marker span means
// the bytes did not come from one source line and can never match.
func matchMarker(block ast.Node, source []byte) (bool, bool) {
	var prefix [4]byte
	n := 0
	for c := block.FirstChild(); c != nil && n < len(prefix); c = c.NextSibling() {
		txt, ok := c.(*ast.Text)
		if !ok {
			return false, false
		}
		for _, b := range txt.Segment.Value(source) {
			if n == len(prefix) {
				break
			}
			prefix[n] = b
			n++
		}
		if n < len(prefix) && (txt.SoftLineBreak() || txt.HardLineBreak()) {
			return false, false
		}
	}
	if n < len(prefix) {
		return false, false
	}
	if prefix[0] != '[' || prefix[2] != ']' || prefix[3] != ' ' {
		return false, false
	}
	switch prefix[1] {
	case ' ':
		return false, true
	case 'x', 'X':
		return true, true
	}
	return false, false
}

// stripMarker drops the four marker bytes from the leading text nodes
// of the block. Nodes fully consumed by the marker are removed, a
// partially consumed node keeps its tail.
func stripMarker(block ast.Node) {
	remaining := 4
	c := block.FirstChild()
	for c != nil && remaining > 0 {
		txt := c.(*ast.Text)
		next := c.NextSibling()
		if l := txt.Segment.Len(); l <= remaining {
			remaining -= l
			block.RemoveChild(block, c)
		} else {
			txt.Segment = txt.Segment.WithStart(txt.Segment.Start + remaining)
			remaining = 0
		}
		c = next
	}
}

// decorate injects the checkbox node, wraps the remaining text in a
// label when configured, and pushes classes up to the surrounding item
// and list. Tiptap mode inserts no nodes at all: the item and list are
// marked with data attributes and the stripped text stands alone.
func (t *transformer) decorate(block, item, list ast.Node, checked bool, seq int) {
	if t.cfg.TiptapCompatible {
		setAttr(item, "data-checked", strconv.FormatBool(checked))
		setAttr(item, "data-type", "taskItem")
		setAttr(list, "data-type", "taskList")
		return
	}
	var id string
	if t.cfg.Label {
		id = "task-item-" + strconv.Itoa(seq)
	}
	box := NewCheckBox(checked, id)
	switch {
	case !t.cfg.Label:
		prependInline(block, box)
	case t.cfg.LabelAfter:
		label := NewLabel(id)
		for c := block.FirstChild(); c != nil; c = block.FirstChild() {
			label.AppendChild(label, c)
		}
		block.AppendChild(block, box)
		block.AppendChild(block, label)
	default:
		label := NewLabel(id)
		label.AppendChild(label, box)
		for c := block.FirstChild(); c != nil; c = block.FirstChild() {
			label.AppendChild(label, c)
		}
		block.AppendChild(block, label)
	}
	joinClass(item, t.cfg.ItemClass)
	joinClass(list, t.cfg.ListClass)
}

func prependInline(block, n ast.Node) {
	if first := block.FirstChild(); first != nil {
		block.InsertBefore(block, first, n)
		return
	}
	block.AppendChild(block, n)
}

func setAttr(n ast.Node, name, value string) {
	n.SetAttributeString(name, []byte(value))
}

// joinClass appends class to the node's class attribute. Appending is
// idempotent: a class token already present is not added again, so
// shared containers can be decorated once per item.
func joinClass(n ast.Node, class string) {
	if class == "" {
		return
	}
	v, ok := n.AttributeString("class")
	if !ok {
		n.SetAttributeString("class", []byte(class))
		return
	}
	var existing []byte
	switch typed := v.(type) {
	case []byte:
		existing = typed
	case string:
		existing = []byte(typed)
	default:
		n.SetAttributeString("class", []byte(class))
		return
	}
	if hasClassToken(existing, class) {
		return
	}
	joined := make([]byte, 0, len(existing)+1+len(class))
	joined = append(joined, existing...)
	joined = append(joined, ' ')
	joined = append(joined, class...)
	n.SetAttributeString("class", joined)
}

func hasClassToken(attr []byte, class string) bool {
	for _, tok := range bytes.Fields(attr) {
		if string(tok) == class {
			return true
		}
	}
	return false
}
