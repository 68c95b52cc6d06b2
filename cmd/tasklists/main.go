package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/tasklists"
	"pkt.systems/version"
)

const defaultWidth = 80

func init() {
	version.SetDefaultModule("pkt.systems/tasklists")
}

func main() {
	var (
		outPath       string
		configPath    string
		listMode      bool
		showVersion   bool
		widthFlag     int
		enabled       bool
		label         bool
		labelAfter    bool
		tiptap        bool
		listClass     string
		itemClass     string
		checkboxClass string
		labelClass    string
	)

	defaults := tasklists.DefaultConfig()
	flags := pflag.NewFlagSet("tasklists", pflag.ExitOnError)
	flags.BoolVarP(&showVersion, "version", "V", false, "Print version and exit")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVarP(&configPath, "config", "c", "", "TOML config file (default: tasklists.toml or .tasklists.toml if present)")
	flags.BoolVarP(&listMode, "list", "l", false, "Print the checklist as plain text instead of HTML")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Checklist wrap width (0 uses terminal width if available)")
	flags.BoolVar(&enabled, "enabled", defaults.Enabled, "Render checkboxes enabled instead of disabled")
	flags.BoolVar(&label, "label", defaults.Label, "Wrap item text in a label element")
	flags.BoolVar(&labelAfter, "label-after", defaults.LabelAfter, "Place the label after the checkbox")
	flags.BoolVar(&tiptap, "tiptap", defaults.TiptapCompatible, "Emit tiptap data attributes instead of classes")
	flags.StringVar(&listClass, "list-class", defaults.ListClass, "Class for task list containers")
	flags.StringVar(&itemClass, "item-class", defaults.ItemClass, "Class for task list items")
	flags.StringVar(&checkboxClass, "checkbox-class", defaults.CheckboxClass, "Class for checkbox elements")
	flags.StringVar(&labelClass, "label-class", defaults.LabelClass, "Class for label elements")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: tasklists [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}

	cfg := tasklists.DefaultConfig()
	if path := findConfigFile(configPath); path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "load config %s: %v\n", path, err)
			os.Exit(2)
		}
	}
	if flags.Changed("enabled") {
		cfg.Enabled = enabled
	}
	if flags.Changed("label") {
		cfg.Label = label
	}
	if flags.Changed("label-after") {
		cfg.LabelAfter = labelAfter
	}
	if flags.Changed("tiptap") {
		cfg.TiptapCompatible = tiptap
	}
	if flags.Changed("list-class") {
		cfg.ListClass = listClass
	}
	if flags.Changed("item-class") {
		cfg.ItemClass = itemClass
	}
	if flags.Changed("checkbox-class") {
		cfg.CheckboxClass = checkboxClass
	}
	if flags.Changed("label-class") {
		cfg.LabelClass = labelClass
	}

	args := flags.Args()
	reader, closer, err := openInputs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	if listMode {
		src, err := io.ReadAll(reader)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read input: %v\n", err)
			os.Exit(1)
		}
		items, err := tasklists.Items(src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "collect items: %v\n", err)
			os.Exit(1)
		}
		if err := writeChecklist(writer, items, resolveWidth(widthFlag)); err != nil {
			fmt.Fprintf(os.Stderr, "write checklist: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := tasklists.Render(tasklists.RenderRequest{
		Reader:  reader,
		Writer:  writer,
		Options: configOptions(cfg),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}

// writeChecklist prints items as an indented text checklist, wrapping
// long item text and aligning continuation lines under the first.
func writeChecklist(w io.Writer, items []tasklists.Item, width int) error {
	for _, item := range items {
		marker := "[ ]"
		if item.Checked {
			marker = "[x]"
		}
		prefix := strings.Repeat("  ", item.Level-1) + marker + " "
		avail := width - len(prefix)
		if width <= 0 || avail < 8 {
			if _, err := fmt.Fprintln(w, prefix+item.Text); err != nil {
				return err
			}
			continue
		}
		wrapped := wordwrap.String(item.Text, avail)
		first, rest, more := strings.Cut(wrapped, "\n")
		if _, err := fmt.Fprintln(w, prefix+first); err != nil {
			return err
		}
		if more {
			if _, err := fmt.Fprintln(w, indent.String(rest, uint(len(prefix)))); err != nil {
				return err
			}
		}
	}
	return nil
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconvAtoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	return &multiInputReader{sources: sources}, nil, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	clean := normalizePath(path)
	f, err := os.Open(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func strconvAtoi(value string) (int, error) {
	var n int
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return 0, fmt.Errorf("invalid int")
		}
		n = n*10 + int(value[i]-'0')
	}
	return n, nil
}
