package mdview

import "strings"

// Theme selects the palette used for rendered output.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Palette holds the colors of a theme.
type Palette struct {
	Background string
	Text       string
	Link       string
	Muted      string
}

var palettes = map[Theme]Palette{
	ThemeLight: {Background: "#FFFFFF", Text: "#000000", Link: "#1D3D47", Muted: "#808080"},
	ThemeDark:  {Background: "#151718", Text: "#FFFFFF", Link: "#A1CEDC", Muted: "#9BA1A6"},
}

// ParseTheme parses a theme name, falling back to def when unknown.
func ParseTheme(s string, def Theme) Theme {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight
	case ThemeDark:
		return ThemeDark
	default:
		return def
	}
}

// Palette returns the colors of t.
func (t Theme) Palette() Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[ThemeLight]
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
