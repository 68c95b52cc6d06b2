package tasklists

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// htmlRenderer writes checkbox and label nodes as HTML elements.
type htmlRenderer struct {
	cfg Config
}

func newHTMLRenderer(cfg Config) renderer.NodeRenderer {
	return &htmlRenderer{cfg: cfg}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *htmlRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindCheckBox, r.renderCheckBox)
	reg.Register(KindLabel, r.renderLabel)
}

func (r *htmlRenderer) renderCheckBox(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*CheckBox)
	_, _ = w.WriteString("<input")
	if r.cfg.CheckboxClass != "" {
		writeAttr(w, "class", r.cfg.CheckboxClass)
	}
	if n.Checked {
		_, _ = w.WriteString(` checked=""`)
	}
	if !r.cfg.Enabled {
		_, _ = w.WriteString(` disabled=""`)
	}
	if n.ID != "" {
		writeAttr(w, "id", n.ID)
	}
	_, _ = w.WriteString(` type="checkbox"> `)
	return ast.WalkContinue, nil
}

func (r *htmlRenderer) renderLabel(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</label>")
		return ast.WalkContinue, nil
	}
	n := node.(*Label)
	_, _ = w.WriteString("<label")
	if r.cfg.LabelClass != "" {
		writeAttr(w, "class", r.cfg.LabelClass)
	}
	if n.For != "" {
		writeAttr(w, "for", n.For)
	}
	_ = w.WriteByte('>')
	return ast.WalkContinue, nil
}

func writeAttr(w util.BufWriter, name, value string) {
	_ = w.WriteByte(' ')
	_, _ = w.WriteString(name)
	_, _ = w.WriteString(`="`)
	_, _ = w.Write(util.EscapeHTML([]byte(value)))
	_ = w.WriteByte('"')
}
