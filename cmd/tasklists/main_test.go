package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/tasklists"
)

func TestOpenInputFileAndURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.md")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	reader, closer, err := openInputs([]string{path})
	if err != nil {
		t.Fatalf("openInputs file: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ := io.ReadAll(reader)
	if string(buf) != "hello" {
		t.Fatalf("unexpected file content: %q", string(buf))
	}

	fileURL := "file://" + path
	reader, closer, err = openInputs([]string{fileURL})
	if err != nil {
		t.Fatalf("openInputs file URL: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ = io.ReadAll(reader)
	if string(buf) != "hello" {
		t.Fatalf("unexpected file URL content: %q", string(buf))
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("remote"))
	}))
	defer srv.Close()
	reader, closer, err = openInputs([]string{srv.URL})
	if err != nil {
		t.Fatalf("openInputs http: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ = io.ReadAll(reader)
	if string(buf) != "remote" {
		t.Fatalf("unexpected http content: %q", string(buf))
	}
}

func TestOpenInputsConcatenates(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.md")
	second := filepath.Join(dir, "b.md")
	if err := os.WriteFile(first, []byte("- [ ] one\n"), 0o644); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if err := os.WriteFile(second, []byte("- [x] two\n"), 0o644); err != nil {
		t.Fatalf("write second: %v", err)
	}
	reader, closer, err := openInputs([]string{first, second})
	if err != nil {
		t.Fatalf("openInputs concat: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ := io.ReadAll(reader)
	if string(buf) != "- [ ] one\n- [x] two\n" {
		t.Fatalf("unexpected concatenated content: %q", string(buf))
	}
}

func TestLoadConfigFilePartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasklists.toml")
	content := "tiptap = true\nitem_class = \"todo-item\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg := tasklists.DefaultConfig()
	if err := loadConfigFile(path, &cfg); err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if !cfg.TiptapCompatible {
		t.Fatalf("expected tiptap to be set from file")
	}
	if cfg.ItemClass != "todo-item" {
		t.Fatalf("unexpected item class: %q", cfg.ItemClass)
	}
	if !cfg.Label {
		t.Fatalf("expected label default to survive partial config")
	}
	if cfg.ListClass != tasklists.DefaultConfig().ListClass {
		t.Fatalf("expected list class default to survive, got %q", cfg.ListClass)
	}
}

func TestLoadConfigFileRejectsBadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(path, []byte("tiptap = maybe\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg := tasklists.DefaultConfig()
	if err := loadConfigFile(path, &cfg); err == nil {
		t.Fatalf("expected decode error for invalid value")
	}
}

func TestConfigOptionsReachRenderer(t *testing.T) {
	cfg := tasklists.DefaultConfig()
	cfg.TiptapCompatible = true
	var out strings.Builder
	err := tasklists.Render(tasklists.RenderRequest{
		Reader:  strings.NewReader("- [x] ship it\n"),
		Writer:  &out,
		Options: configOptions(cfg),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), `data-type="taskList"`) {
		t.Fatalf("expected tiptap attributes in output:\n%s", out.String())
	}
}

func TestWriteChecklistWrapsAndIndents(t *testing.T) {
	items := []tasklists.Item{
		{Checked: true, Text: "buy milk", Level: 1},
		{Checked: false, Text: "write the quarterly report draft", Level: 2},
	}
	var out strings.Builder
	if err := writeChecklist(&out, items, 24); err != nil {
		t.Fatalf("writeChecklist: %v", err)
	}
	want := strings.Join([]string{
		"[x] buy milk",
		"  [ ] write the",
		"      quarterly report",
		"      draft",
	}, "\n") + "\n"
	if out.String() != want {
		t.Fatalf("unexpected checklist:\n---want---\n%s\n---got---\n%s", want, out.String())
	}
}

func TestWriteChecklistZeroWidthDisablesWrapping(t *testing.T) {
	items := []tasklists.Item{
		{Checked: false, Text: "a rather long line that stays on one row", Level: 1},
	}
	var out strings.Builder
	if err := writeChecklist(&out, items, 0); err != nil {
		t.Fatalf("writeChecklist: %v", err)
	}
	if out.String() != "[ ] a rather long line that stays on one row\n" {
		t.Fatalf("unexpected checklist: %q", out.String())
	}
}
