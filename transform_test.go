package tasklists

import (
	"testing"

	"github.com/yuin/goldmark/ast"
)

func classAttr(t *testing.T, n ast.Node) string {
	t.Helper()
	v, ok := n.AttributeString("class")
	if !ok {
		t.Fatalf("class attribute missing")
	}
	b, ok := v.([]byte)
	if !ok {
		t.Fatalf("class attribute is %T, want []byte", v)
	}
	return string(b)
}

func TestJoinClassAppendsWithoutDuplicates(t *testing.T) {
	n := ast.NewParagraph()
	joinClass(n, "alpha")
	joinClass(n, "alpha")
	joinClass(n, "beta")
	joinClass(n, "alpha")
	if got := classAttr(t, n); got != "alpha beta" {
		t.Fatalf("joined class mismatch: %q", got)
	}
}

func TestJoinClassKeepsExistingValue(t *testing.T) {
	n := ast.NewParagraph()
	n.SetAttributeString("class", []byte("existing"))
	joinClass(n, "added")
	if got := classAttr(t, n); got != "existing added" {
		t.Fatalf("joined class mismatch: %q", got)
	}
}

func TestJoinClassHandlesStringValue(t *testing.T) {
	n := ast.NewParagraph()
	n.SetAttributeString("class", "stringly")
	joinClass(n, "added")
	if got := classAttr(t, n); got != "stringly added" {
		t.Fatalf("joined class mismatch: %q", got)
	}
}

func TestJoinClassEmptyClassIsNoop(t *testing.T) {
	n := ast.NewParagraph()
	joinClass(n, "")
	if _, ok := n.AttributeString("class"); ok {
		t.Fatalf("empty class should not create an attribute")
	}
}
