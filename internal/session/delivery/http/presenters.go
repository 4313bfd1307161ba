package http

import (
	"tesla-buddy/internal/checklist"
	"tesla-buddy/internal/session"
	"tesla-buddy/pkg/response"
)

// --- Request DTOs ---

type openReq struct {
	SourceURL   string `json:"source_url"  binding:"omitempty,url"`
	Content     string `json:"content"     binding:"max=1048576"`
	Interactive *bool  `json:"interactive"`
}

func (r openReq) validate() error { return nil }

func (r openReq) toInput() session.OpenInput {
	return session.OpenInput{
		SourceURL:   r.SourceURL,
		Content:     r.Content,
		Interactive: r.Interactive,
	}
}

// ---

type toggleReq struct {
	ID    string `json:"-"` // populated from URI param
	Depth int    `json:"depth" binding:"min=0"`
	Label string `json:"label" binding:"required,max=1000"`
}

func (r toggleReq) validate() error { return nil }

func (r toggleReq) toInput() session.ToggleInput {
	return session.ToggleInput{
		ID:    r.ID,
		Depth: r.Depth,
		Label: r.Label,
	}
}

// ---

type linkReq struct {
	ID  string `json:"-"` // populated from URI param
	URL string `json:"url" binding:"required,max=2048"`
}

func (r linkReq) validate() error { return nil }

func (r linkReq) toInput() session.PressLinkInput {
	return session.PressLinkInput{ID: r.ID, URL: r.URL}
}

// ---

type viewReq struct {
	Theme string `form:"theme" binding:"omitempty,oneof=light dark"`
}

// --- Response DTOs ---

type sessionResp struct {
	ID          string            `json:"id"`
	Source      string            `json:"source,omitempty"`
	Interactive bool              `json:"interactive"`
	OpenedAt    response.DateTime `json:"opened_at"`
	ReloadedAt  response.DateTime `json:"reloaded_at"`
}

type blockResp struct {
	Kind          string   `json:"kind"`
	Line          int      `json:"line"`
	Key           string   `json:"key,omitempty"`
	Label         string   `json:"label,omitempty"`
	Depth         int      `json:"depth"`
	Indent        int      `json:"indent,omitempty"`
	Checked       bool     `json:"checked"`
	Strikethrough bool     `json:"strikethrough"`
	Disabled      bool     `json:"disabled"`
	Markdown      string   `json:"markdown,omitempty"`
	HTML          string   `json:"html,omitempty"`
	Links         []string `json:"links,omitempty"`
	Placeholder   bool     `json:"placeholder,omitempty"`
}

type statsResp struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Progress  float64 `json:"progress"`
}

type viewResp struct {
	Session sessionResp `json:"session"`
	Blocks  []blockResp `json:"blocks"`
	Stats   statsResp   `json:"stats"`
}

func newSessionResp(info session.Info) sessionResp {
	return sessionResp{
		ID:          info.ID,
		Source:      info.Source,
		Interactive: info.Interactive,
		OpenedAt:    response.DateTime(info.OpenedAt),
		ReloadedAt:  response.DateTime(info.ReloadedAt),
	}
}

func newBlockResp(b checklist.Block) blockResp {
	resp := blockResp{
		Kind:        string(b.Kind),
		Line:        b.Line,
		Placeholder: b.Placeholder,
	}
	if b.Kind == checklist.KindCheckbox {
		resp.Key = b.Key.String()
		resp.Label = b.Label
		resp.Depth = b.Depth
		resp.Indent = b.Indent
		resp.Checked = b.Checked
		resp.Strikethrough = b.Strikethrough
		resp.Disabled = b.Disabled
		return resp
	}
	resp.Markdown = b.Source
	resp.HTML = b.Body
	resp.Links = b.Links
	return resp
}

func newViewResp(v session.View) viewResp {
	blocks := make([]blockResp, len(v.Tree.Blocks))
	for i, b := range v.Tree.Blocks {
		blocks[i] = newBlockResp(b)
	}
	return viewResp{
		Session: newSessionResp(v.Info),
		Blocks:  blocks,
		Stats: statsResp{
			Total:     v.Tree.Stats.Total,
			Completed: v.Tree.Stats.Completed,
			Pending:   v.Tree.Stats.Pending,
			Progress:  v.Tree.Stats.Progress,
		},
	}
}

type toggleResp struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Depth   int      `json:"depth"`
	Checked bool     `json:"checked"`
	View    viewResp `json:"view"`
}

func (h *handler) newToggleResp(out session.ToggleOutput) toggleResp {
	return toggleResp{
		Key:     out.Key.String(),
		Label:   out.Key.Label,
		Depth:   out.Key.Depth,
		Checked: out.Checked,
		View:    newViewResp(out.View),
	}
}

type linkResp struct {
	URL     string `json:"url"`
	Proceed bool   `json:"proceed"`
}

func (h *handler) newLinkResp(out session.PressLinkOutput) linkResp {
	return linkResp{URL: out.URL, Proceed: out.Proceed}
}
