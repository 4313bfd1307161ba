package checklist

import (
	"context"
	"fmt"
)

const (
	BaseIndent = 16 // Display offset of a top-level checkbox row
	IndentStep = 8  // Extra offset per character of leading whitespace
)

// Renderer turns a document into a Tree and routes user interaction
// back into its Store.
type Renderer struct {
	store       *Store
	transformer ProseTransformer
	opts        Options

	doc      string
	segments []Segment
}

// NewRenderer creates a renderer around an existing store.
// A nil transformer renders prose blocks as their markdown source.
func NewRenderer(store *Store, transformer ProseTransformer, opts Options) *Renderer {
	if store == nil {
		store = NewStore(nil)
	}
	return &Renderer{
		store:       store,
		transformer: transformer,
		opts:        opts,
		segments:    Classify(""),
	}
}

// Load replaces the document, reclassifies it and reseeds the store.
func (r *Renderer) Load(doc string) {
	r.doc = doc
	r.segments = Classify(doc)
	r.store.Initialize(doc)
}

// Document returns the currently loaded document.
func (r *Renderer) Document() string {
	return r.doc
}

// Segments returns the classified segments of the current document.
func (r *Renderer) Segments() []Segment {
	return r.segments
}

// Store returns the store backing this renderer.
func (r *Renderer) Store() *Store {
	return r.store
}

// Interactive reports whether toggling is permitted.
func (r *Renderer) Interactive() bool {
	return r.opts.Interactive
}

// Render builds the full tree from the current segments and store state.
func (r *Renderer) Render(ctx context.Context) (Tree, error) {
	blocks := make([]Block, 0, len(r.segments))

	for _, seg := range r.segments {
		switch seg.Kind {
		case KindCheckbox:
			key := seg.Key()
			checked := r.store.IsChecked(key)
			blocks = append(blocks, Block{
				Kind:          KindCheckbox,
				Line:          seg.Line,
				Key:           key,
				Label:         seg.Label,
				Depth:         seg.Depth,
				Indent:        BaseIndent + seg.Depth*IndentStep,
				Checked:       checked,
				Strikethrough: checked,
				Disabled:      !r.opts.Interactive,
			})

		case KindProse:
			block := Block{
				Kind:        KindProse,
				Line:        seg.Line,
				Source:      seg.Text,
				Body:        seg.Text,
				Placeholder: seg.Placeholder,
			}
			if r.transformer != nil && !seg.Placeholder {
				prose, err := r.transformer.Transform(ctx, seg.Text)
				if err != nil {
					return Tree{}, fmt.Errorf("transform prose at line %d: %w", seg.Line, err)
				}
				block.Body = prose.Body
				block.Links = prose.Links
			}
			blocks = append(blocks, block)
		}
	}

	return Tree{Blocks: blocks, Stats: r.store.Stats()}, nil
}

// Toggle flips a checkbox. Read-only renderers reject every toggle.
func (r *Renderer) Toggle(key Key) (bool, error) {
	if !r.opts.Interactive {
		return r.store.IsChecked(key), ErrReadOnly
	}
	return r.store.Toggle(key)
}

// PressLink reports whether the default navigation for url should proceed.
func (r *Renderer) PressLink(url string) bool {
	if r.opts.OnLinkPress == nil {
		return true
	}
	return r.opts.OnLinkPress(url)
}
