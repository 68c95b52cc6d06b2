package tasklists

import (
	"strconv"

	"github.com/yuin/goldmark/ast"
)

// CheckBox is an inline node standing in for a task marker that was
// stripped from the item text.
type CheckBox struct {
	ast.BaseInline
	// Checked reports whether the marker was [x] or [X].
	Checked bool
	// ID is the value of the id attribute bound to a label, or empty
	// when labels are disabled.
	ID string
}

// KindCheckBox is the node kind of CheckBox.
var KindCheckBox = ast.NewNodeKind("TaskListCheckBox")

// Kind implements ast.Node.Kind.
func (n *CheckBox) Kind() ast.NodeKind {
	return KindCheckBox
}

// Dump implements ast.Node.Dump.
func (n *CheckBox) Dump(source []byte, level int) {
	m := map[string]string{
		"Checked": strconv.FormatBool(n.Checked),
		"ID":      n.ID,
	}
	ast.DumpHelper(n, source, level, m, nil)
}

// NewCheckBox returns a new CheckBox node.
func NewCheckBox(checked bool, id string) *CheckBox {
	return &CheckBox{Checked: checked, ID: id}
}

// Label is an inline node wrapping the text of a task item in a
// <label> bound to its checkbox.
type Label struct {
	ast.BaseInline
	// For is the id of the checkbox the label is bound to.
	For string
}

// KindLabel is the node kind of Label.
var KindLabel = ast.NewNodeKind("TaskListLabel")

// Kind implements ast.Node.Kind.
func (n *Label) Kind() ast.NodeKind {
	return KindLabel
}

// Dump implements ast.Node.Dump.
func (n *Label) Dump(source []byte, level int) {
	m := map[string]string{
		"For": n.For,
	}
	ast.DumpHelper(n, source, level, m, nil)
}

// NewLabel returns a new Label node.
func NewLabel(forID string) *Label {
	return &Label{For: forID}
}
