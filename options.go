package tasklists

// Config holds the rendering settings for task list items.
type Config struct {
	// Enabled renders checkboxes without the disabled attribute so
	// they can be toggled in the browser.
	Enabled bool
	// Label wraps the item text in a <label> bound to its checkbox.
	Label bool
	// LabelAfter places the label element after the checkbox instead
	// of wrapping the checkbox inside it. Only meaningful when Label
	// is set.
	LabelAfter bool
	// ListClass is added to every <ul> that contains at least one
	// task item.
	ListClass string
	// ItemClass is added to every <li> holding a task item.
	ItemClass string
	// CheckboxClass is set on the <input> element.
	CheckboxClass string
	// LabelClass is set on the <label> element.
	LabelClass string
	// TiptapCompatible replaces the checkbox markup with the data
	// attributes the tiptap editor expects. No input elements,
	// labels, classes or ids are emitted in this mode.
	TiptapCompatible bool
}

// DefaultConfig returns a baseline configuration.
func DefaultConfig() Config {
	return Config{
		Label:         true,
		ListClass:     "contains-task-list",
		ItemClass:     "task-list-item",
		CheckboxClass: "task-list-item-checkbox",
		LabelClass:    "task-list-item-label",
	}
}

// Option configures task list rendering.
type Option func(*Config)

// WithEnabled renders checkboxes interactive instead of disabled.
func WithEnabled(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Enabled = enabled
	}
}

// WithLabel enables or disables wrapping item text in a <label>.
func WithLabel(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Label = enabled
	}
}

// WithLabelAfter places the label after the checkbox element.
func WithLabelAfter(enabled bool) Option {
	return func(cfg *Config) {
		cfg.LabelAfter = enabled
	}
}

// WithListClass sets the class added to task list containers.
func WithListClass(class string) Option {
	return func(cfg *Config) {
		cfg.ListClass = class
	}
}

// WithItemClass sets the class added to task list items.
func WithItemClass(class string) Option {
	return func(cfg *Config) {
		cfg.ItemClass = class
	}
}

// WithCheckboxClass sets the class on the checkbox element.
func WithCheckboxClass(class string) Option {
	return func(cfg *Config) {
		cfg.CheckboxClass = class
	}
}

// WithLabelClass sets the class on the label element.
func WithLabelClass(class string) Option {
	return func(cfg *Config) {
		cfg.LabelClass = class
	}
}

// WithTiptapCompatible switches output to tiptap data attributes.
func WithTiptapCompatible(enabled bool) Option {
	return func(cfg *Config) {
		cfg.TiptapCompatible = enabled
	}
}
