// Package tasklists renders GitHub style task lists with goldmark.
//
// The extension turns [ ], [x] and [X] markers at the start of
// bulleted list items into checkbox inputs, tags the surrounding
// <li> and <ul> with configurable classes, and can wrap item text in
// a <label> bound to the checkbox. A tiptap compatible mode emits no
// input elements at all: items and lists carry the data attributes
// that editor expects instead. Markers in ordered lists or anywhere
// but the start of an item stay plain text.
//
// Core properties:
//   - Marker detection after inline parsing, so links and code spans
//     at the start of an item never match
//   - Classes joined on shared containers without duplication
//   - Deterministic label ids (task-item-1, task-item-2, ...) scoped
//     to a single conversion
//   - Immutable per-instance configuration, safe for concurrent use
//
// Example:
//
//	md := goldmark.New(goldmark.WithExtensions(tasklists.Extension))
//	err := md.Convert([]byte("- [x] write docs\n- [ ] ship\n"), os.Stdout)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Install tasklists instead of goldmark's extension.TaskList (or the
// GFM bundle that contains it): whichever task list syntax runs first
// consumes the markers.
//
// Render offers a ready made pipeline with front matter skipping, and
// Items extracts the checklist of a document without rendering.
package tasklists
