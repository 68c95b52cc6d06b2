package tasklists

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestValidateInputAcceptsMarkdown(t *testing.T) {
	if err := ValidateInput([]byte("- [ ] fine\n")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := ValidateInput(data); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateInputRejectsBinary(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputRejectsControlHeavyInput(t *testing.T) {
	data := []byte(strings.Repeat("a", 90) + strings.Repeat("\x01", 10))
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestRenderRejectsBinaryInput(t *testing.T) {
	err := Render(RenderRequest{
		Reader: bytes.NewReader([]byte{0x00, 0x01, 0x02}),
		Writer: io.Discard,
	})
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestRenderRequiresReaderAndWriter(t *testing.T) {
	if err := Render(RenderRequest{Writer: io.Discard}); err == nil {
		t.Fatalf("expected error for nil reader")
	}
	if err := Render(RenderRequest{Reader: strings.NewReader("x")}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
}
