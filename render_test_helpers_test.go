package tasklists

import (
	"bytes"
	"testing"

	"github.com/yuin/goldmark"
)

func renderHTML(t *testing.T, src []byte, opts ...Option) string {
	t.Helper()
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader:  bytes.NewReader(src),
		Writer:  &out,
		Options: opts,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out.String()
}

func convertHTML(t *testing.T, md goldmark.Markdown, src []byte) string {
	t.Helper()
	var out bytes.Buffer
	if err := md.Convert(src, &out); err != nil {
		t.Fatalf("convert: %v", err)
	}
	return out.String()
}
