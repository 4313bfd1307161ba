package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"tesla-buddy/internal/checklist"
	"tesla-buddy/pkg/mdview"
)

// LoadFunc fetches the current document.
type LoadFunc func(ctx context.Context) string

// Model is the bubbletea model of the interactive checklist.
type Model struct {
	renderer *checklist.Renderer
	terminal *Terminal
	load     LoadFunc
	theme    mdview.Theme

	tree    checklist.Tree
	keys    []checklist.Key
	cursor  int
	loading bool
	status  string
	err     error
	width   int
	height  int
}

type docLoadedMsg struct{ doc string }

// NewModel creates a model. The renderer must use terminal as its
// prose transformer so theme and width changes take effect.
func NewModel(renderer *checklist.Renderer, terminal *Terminal, theme mdview.Theme, load LoadFunc) Model {
	return Model{
		renderer: renderer,
		terminal: terminal,
		load:     load,
		theme:    theme,
		loading:  true,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.fetch()
}

func (m Model) fetch() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		return docLoadedMsg{doc: load(context.Background())}
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.terminal.SetWidth(msg.Width)
		return m.refresh(), nil

	case docLoadedMsg:
		m.loading = false
		m.renderer.Load(msg.doc)
		m.cursor = 0
		m.status = "Loaded"
		return m.refresh(), nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.keys)-1 {
			m.cursor++
		}

	case " ", "enter":
		if m.loading || len(m.keys) == 0 {
			return m, nil
		}
		key := m.keys[m.cursor]
		checked, err := m.renderer.Toggle(key)
		switch {
		case errors.Is(err, checklist.ErrReadOnly):
			m.status = "Read-only checklist"
		case err != nil:
			m.status = err.Error()
		case checked:
			m.status = "Checked " + key.Label
		default:
			m.status = "Unchecked " + key.Label
		}
		return m.refresh(), nil

	case "r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status = "Reloading..."
		return m, m.fetch()

	case "t":
		m.theme = m.theme.Toggle()
		m.terminal.SetTheme(m.theme)
		return m.refresh(), nil
	}

	return m, nil
}

// refresh re-renders the tree from the renderer's current state.
func (m Model) refresh() Model {
	tree, err := m.renderer.Render(context.Background())
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.tree = tree

	m.keys = m.keys[:0:0]
	for _, block := range tree.Blocks {
		if block.Kind == checklist.KindCheckbox {
			m.keys = append(m.keys, block.Key)
		}
	}
	if m.cursor >= len(m.keys) {
		m.cursor = max(len(m.keys)-1, 0)
	}
	return m
}

// View implements tea.Model
func (m Model) View() string {
	styles := m.terminal.Styles()

	if m.loading && len(m.tree.Blocks) == 0 {
		return styles.Muted.Render("Loading checklist...") + "\n"
	}
	if m.err != nil {
		return styles.Error.Render("Error: "+m.err.Error()) + "\n"
	}

	body := RenderTree(m.tree, styles, m.cursor)
	footer := RenderProgress(m.tree.Stats, styles)
	if m.status != "" {
		footer += "  " + styles.Muted.Render(m.status)
	}
	help := styles.Help.Render("↑/↓ move • space toggle • r reload • t theme • q quit")

	return body + "\n" + footer + "\n" + help + "\n"
}

// Tree returns the last rendered tree.
func (m Model) Tree() checklist.Tree {
	return m.tree
}

// Cursor returns the index of the focused checkbox.
func (m Model) Cursor() int {
	return m.cursor
}
