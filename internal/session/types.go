package session

import (
	"sync"
	"time"

	"tesla-buddy/internal/checklist"
)

// --- Session Domain Model ---

// Session is one live checklist: a loaded document, its renderer and
// the checked state the user has built up since the last load.
// Callers must hold the lock while touching Renderer.
type Session struct {
	sync.Mutex

	ID          string
	Source      string // URL or file path; empty for inline content
	Content     string // Inline content, used when Source is empty
	Interactive bool
	OpenedAt    time.Time
	ReloadedAt  time.Time
	Renderer    *checklist.Renderer
}

// Info is a lock-free snapshot of a Session's metadata.
type Info struct {
	ID          string
	Source      string
	Interactive bool
	OpenedAt    time.Time
	ReloadedAt  time.Time
}

// Info snapshots the session metadata.
func (s *Session) Info() Info {
	return Info{
		ID:          s.ID,
		Source:      s.Source,
		Interactive: s.Interactive,
		OpenedAt:    s.OpenedAt,
		ReloadedAt:  s.ReloadedAt,
	}
}

// View is a session together with its freshly rendered tree.
type View struct {
	Info Info
	Tree checklist.Tree
}

// --- UseCase Inputs ---

type OpenInput struct {
	SourceURL   string
	Content     string
	Interactive *bool
}

type ToggleInput struct {
	ID    string
	Depth int
	Label string
}

type PressLinkInput struct {
	ID  string
	URL string
}

// --- UseCase Outputs ---

type OpenOutput struct {
	View View
}

type DetailOutput struct {
	View View
}

type ToggleOutput struct {
	Key     checklist.Key
	Checked bool
	View    View
}

type PressLinkOutput struct {
	URL     string
	Proceed bool
}
