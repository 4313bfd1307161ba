package checklist

import (
	"context"
	"fmt"
)

// Kind tells a checkbox segment apart from a prose segment.
type Kind string

const (
	KindCheckbox Kind = "checkbox"
	KindProse    Kind = "prose"
)

// Segment is one classified unit of a document.
type Segment struct {
	Kind        Kind
	Line        int    // Index of the first line of the segment
	Raw         string // Source text, line breaks preserved
	Depth       int    // Checkbox only: length of leading whitespace
	Label       string // Checkbox only: trimmed label text
	Checked     bool   // Checkbox only: true if [x]
	Text        string // Prose only: text handed to the prose transformer
	Placeholder bool   // Prose only: emitted for an empty document
}

// Key returns the identity of a checkbox segment.
func (s Segment) Key() Key {
	return Key{Depth: s.Depth, Label: s.Label}
}

// Key identifies a checkbox across renders.
// Two items with the same depth and label share a key.
type Key struct {
	Depth int
	Label string
}

func (k Key) String() string {
	return fmt.Sprintf("%d:%s", k.Depth, k.Label)
}

// Stats represents checklist progress
type Stats struct {
	Total     int     // Total checkboxes
	Completed int     // Checked checkboxes
	Pending   int     // Unchecked checkboxes
	Progress  float64 // Completion percentage (0-100)
}

// ToggleFunc is notified after a checkbox changes state.
type ToggleFunc func(label string, checked bool)

// LinkFunc decides whether the default navigation for url should proceed.
type LinkFunc func(url string) bool

// Prose is the output of a ProseTransformer.
type Prose struct {
	Body  string
	Links []string
}

// ProseTransformer turns a block of markdown into a view.
type ProseTransformer interface {
	Transform(ctx context.Context, markdown string) (Prose, error)
}

// Options configures a Renderer.
type Options struct {
	Interactive bool
	OnLinkPress LinkFunc
}

// DefaultOptions returns interactive rendering with external link opening.
func DefaultOptions() Options {
	return Options{Interactive: true}
}

// Block is one rendered row of a Tree.
type Block struct {
	Kind          Kind
	Line          int
	Key           Key    // Checkbox only
	Label         string // Checkbox only
	Depth         int    // Checkbox only
	Indent        int    // Checkbox only: display offset
	Checked       bool   // Checkbox only
	Strikethrough bool   // Checkbox only
	Disabled      bool   // Checkbox only
	Source        string // Prose only: markdown source
	Body          string // Prose only: transformed view
	Links         []string
	Placeholder   bool
}

// Tree is a fully rendered document.
type Tree struct {
	Blocks []Block
	Stats  Stats
}
