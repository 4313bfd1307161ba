package tui

import (
	"context"
	"regexp"
	"strings"

	"tesla-buddy/internal/checklist"
	"tesla-buddy/pkg/mdview"
)

const minWidth = 30

var (
	inlineLink = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
	boldText   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
)

// Terminal renders prose markdown as styled terminal lines.
type Terminal struct {
	styles Styles
	width  int
}

// NewTerminal creates a terminal transformer for theme wrapping at width.
func NewTerminal(theme mdview.Theme, width int) *Terminal {
	t := &Terminal{styles: NewStyles(theme)}
	t.SetWidth(width)
	return t
}

// SetTheme swaps the palette used for subsequent renders.
func (t *Terminal) SetTheme(theme mdview.Theme) {
	t.styles = NewStyles(theme)
}

// SetWidth sets the wrap width.
func (t *Terminal) SetWidth(width int) {
	if width < minWidth {
		width = minWidth
	}
	t.width = width
}

// Styles returns the active styles.
func (t *Terminal) Styles() Styles {
	return t.styles
}

// Transform implements checklist.ProseTransformer.
func (t *Terminal) Transform(ctx context.Context, markdown string) (checklist.Prose, error) {
	var (
		out   []string
		links []string
	)
	textW := t.width - 4

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		for _, m := range inlineLink.FindAllStringSubmatch(trimmed, -1) {
			links = append(links, m[2])
		}

		switch {
		case trimmed == "":
			if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}

		case strings.HasPrefix(trimmed, "#"):
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			title := strings.TrimSpace(trimmed[level:])
			style := t.styles.Subhead
			if level == 1 {
				style = t.styles.Title
			} else if level == 2 {
				style = t.styles.Heading
			}
			for _, wl := range wordWrap(t.inline(title), textW) {
				out = append(out, style.Render(wl))
			}

		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			indent := strings.Repeat(" ", len(line)-len(strings.TrimLeft(line, " \t")))
			wrapped := wordWrap(t.inline(trimmed[2:]), textW-len(indent)-2)
			out = append(out, indent+t.styles.Muted.Render("•")+" "+t.styles.Text.Render(wrapped[0]))
			for _, wl := range wrapped[1:] {
				out = append(out, indent+"  "+t.styles.Text.Render(wl))
			}

		case strings.HasPrefix(trimmed, ">"):
			quote := strings.TrimSpace(strings.TrimPrefix(trimmed, ">"))
			for _, wl := range wordWrap(t.inline(quote), textW-2) {
				out = append(out, t.styles.Muted.Render("│ "+wl))
			}

		default:
			for _, wl := range wordWrap(t.inline(trimmed), textW) {
				out = append(out, t.styles.Text.Render(wl))
			}
		}
	}

	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}

	return checklist.Prose{Body: strings.Join(out, "\n"), Links: links}, nil
}

// inline strips inline markdown down to readable text.
func (t *Terminal) inline(s string) string {
	s = inlineLink.ReplaceAllString(s, "$1 <$2>")
	s = boldText.ReplaceAllString(s, "$1")
	return strings.ReplaceAll(s, "`", "")
}

func wordWrap(text string, width int) []string {
	if width < 10 {
		width = 10
	}
	if len(text) <= width {
		return []string{text}
	}
	words := strings.Fields(text)
	var lines []string
	current := ""
	for _, word := range words {
		if current == "" {
			current = word
		} else if len(current)+1+len(word) <= width {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
