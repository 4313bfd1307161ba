package mdview

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"tesla-buddy/internal/checklist"
)

// HTML renders markdown blocks to HTML and collects their link targets.
type HTML struct {
	md goldmark.Markdown
}

// NewHTML creates a goldmark-backed prose transformer. Task list syntax
// is left as plain list text; only classified checkboxes are interactive.
func NewHTML() *HTML {
	return &HTML{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Strikethrough,
				extension.Linkify,
			),
		),
	}
}

// Transform implements checklist.ProseTransformer.
func (h *HTML) Transform(ctx context.Context, markdown string) (checklist.Prose, error) {
	if err := ctx.Err(); err != nil {
		return checklist.Prose{}, err
	}

	src := []byte(markdown)
	doc := h.md.Parser().Parse(text.NewReader(src))

	links, err := collectLinks(doc, src)
	if err != nil {
		return checklist.Prose{}, err
	}

	var buf bytes.Buffer
	if err := h.md.Renderer().Render(&buf, src, doc); err != nil {
		return checklist.Prose{}, fmt.Errorf("render markdown: %w", err)
	}

	return checklist.Prose{Body: buf.String(), Links: links}, nil
}

func collectLinks(doc ast.Node, src []byte) ([]string, error) {
	var links []string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			links = append(links, string(node.Destination))
		case *ast.AutoLink:
			links = append(links, string(node.URL(src)))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk markdown: %w", err)
	}
	return links, nil
}
