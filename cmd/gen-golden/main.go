package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/tasklists"
)

func main() {
	variants := []string{"default", "enabled", "no-label", "label-after", "tiptap"}
	root := "testdata"
	var paths []string
	variantsByBase := map[string][]string{}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".md") {
			paths = append(paths, path)
			return nil
		}
		if strings.HasSuffix(path, ".golden") {
			if base, variant, ok := parseGoldenVariant(root, path); ok {
				variantsByBase[base] = append(variantsByBase[base], variant)
			}
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no markdown files found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		base := strings.TrimSuffix(rel, ".md")
		base = strings.ReplaceAll(filepath.ToSlash(base), "/", "__")
		useVariants := variantsByBase[base]
		if len(useVariants) == 0 {
			useVariants = variants
		}
		for _, variant := range useVariants {
			opts, ok := optionsForVariant(variant)
			if !ok {
				fatalf("unknown golden variant %q for %s", variant, path)
			}
			var out bytes.Buffer
			err := tasklists.Render(tasklists.RenderRequest{
				Reader:  bytes.NewReader(src),
				Writer:  &out,
				Options: opts,
			})
			if err != nil {
				fatalf("render %s variant %s: %v", path, variant, err)
			}
			goldenPath := goldenRenderPath(root, path, variant)
			if err := os.WriteFile(goldenPath, out.Bytes(), 0o644); err != nil {
				fatalf("write %s: %v", goldenPath, err)
			}
			fmt.Fprintf(os.Stdout, "wrote %s\n", goldenPath)
		}
	}
}

// optionsForVariant mirrors the variant table in the package golden
// test so regenerated files stay comparable.
func optionsForVariant(variant string) ([]tasklists.Option, bool) {
	switch variant {
	case "default":
		return nil, true
	case "enabled":
		return []tasklists.Option{tasklists.WithEnabled(true)}, true
	case "no-label":
		return []tasklists.Option{tasklists.WithLabel(false)}, true
	case "label-after":
		return []tasklists.Option{tasklists.WithLabelAfter(true)}, true
	case "tiptap":
		return []tasklists.Option{tasklists.WithTiptapCompatible(true)}, true
	}
	return nil, false
}

func goldenRenderPath(root string, mdPath string, variant string) string {
	rel, err := filepath.Rel(root, mdPath)
	if err != nil {
		rel = mdPath
	}
	name := strings.TrimSuffix(rel, ".md")
	name = strings.ReplaceAll(filepath.ToSlash(name), "/", "__")
	return filepath.Join(root, fmt.Sprintf("%s.%s.golden", name, variant))
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func parseGoldenVariant(root, goldenPath string) (string, string, bool) {
	rel, err := filepath.Rel(root, goldenPath)
	if err != nil {
		return "", "", false
	}
	rel = filepath.ToSlash(rel)
	if !strings.HasSuffix(rel, ".golden") {
		return "", "", false
	}
	name := strings.TrimSuffix(rel, ".golden")
	idx := strings.LastIndex(name, ".")
	if idx == -1 {
		return "", "", false
	}
	variant := name[idx+1:]
	if variant == "" {
		return "", "", false
	}
	base := name[:idx]
	return base, variant, true
}
