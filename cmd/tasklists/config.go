package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"pkt.systems/tasklists"
)

// fileConfig mirrors the renderer options with TOML key names. It is
// initialized from the current config before decoding, so keys absent
// from the file keep their defaults.
type fileConfig struct {
	Enabled       bool   `toml:"enabled"`
	Label         bool   `toml:"label"`
	LabelAfter    bool   `toml:"label_after"`
	Tiptap        bool   `toml:"tiptap"`
	ListClass     string `toml:"list_class"`
	ItemClass     string `toml:"item_class"`
	CheckboxClass string `toml:"checkbox_class"`
	LabelClass    string `toml:"label_class"`
}

// findConfigFile returns the explicit path if given, otherwise probes
// the working directory for a project config file.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return normalizePath(explicit)
	}
	for _, name := range []string{"tasklists.toml", ".tasklists.toml"} {
		info, err := os.Stat(name)
		if err == nil && !info.IsDir() {
			return name
		}
	}
	return ""
}

func loadConfigFile(path string, cfg *tasklists.Config) error {
	mirror := fileConfig{
		Enabled:       cfg.Enabled,
		Label:         cfg.Label,
		LabelAfter:    cfg.LabelAfter,
		Tiptap:        cfg.TiptapCompatible,
		ListClass:     cfg.ListClass,
		ItemClass:     cfg.ItemClass,
		CheckboxClass: cfg.CheckboxClass,
		LabelClass:    cfg.LabelClass,
	}
	if _, err := toml.DecodeFile(path, &mirror); err != nil {
		return err
	}
	cfg.Enabled = mirror.Enabled
	cfg.Label = mirror.Label
	cfg.LabelAfter = mirror.LabelAfter
	cfg.TiptapCompatible = mirror.Tiptap
	cfg.ListClass = mirror.ListClass
	cfg.ItemClass = mirror.ItemClass
	cfg.CheckboxClass = mirror.CheckboxClass
	cfg.LabelClass = mirror.LabelClass
	return nil
}

func configOptions(cfg tasklists.Config) []tasklists.Option {
	return []tasklists.Option{
		tasklists.WithEnabled(cfg.Enabled),
		tasklists.WithLabel(cfg.Label),
		tasklists.WithLabelAfter(cfg.LabelAfter),
		tasklists.WithTiptapCompatible(cfg.TiptapCompatible),
		tasklists.WithListClass(cfg.ListClass),
		tasklists.WithItemClass(cfg.ItemClass),
		tasklists.WithCheckboxClass(cfg.CheckboxClass),
		tasklists.WithLabelClass(cfg.LabelClass),
	}
}
