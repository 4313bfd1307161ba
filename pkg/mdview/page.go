package mdview

import (
	"fmt"
	"html/template"
	"io"

	"tesla-buddy/internal/checklist"
)

// PageData is the input of RenderPage.
type PageData struct {
	Title     string
	SessionID string
	Theme     Theme
	Tree      checklist.Tree
	ToggleURL string
	LinkURL   string
}

type pageBlock struct {
	checklist.Block
	HTML template.HTML
}

type pageView struct {
	PageData
	Palette Palette
	Blocks  []pageBlock
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { background: {{.Palette.Background}}; color: {{.Palette.Text}}; font-family: sans-serif; font-size: 16px; padding: 16px; }
a { color: {{.Palette.Link}}; }
.checkbox { display: flex; align-items: center; margin: 8px 0; }
.checkbox.done span { text-decoration: line-through; }
.placeholder, .stats { color: {{.Palette.Muted}}; }
</style>
</head>
<body class="theme-{{.Theme}}">
<p class="stats">{{.Tree.Stats.Completed}} / {{.Tree.Stats.Total}} done</p>
{{range .Blocks}}{{if eq .Kind "checkbox"}}<label class="checkbox{{if .Strikethrough}} done{{end}}" style="padding-left: {{.Indent}}px">
<input type="checkbox" data-depth="{{.Depth}}" data-label="{{.Label}}"{{if .Checked}} checked{{end}}{{if .Disabled}} disabled{{end}}>
<span>{{.Label}}</span></label>
{{else if .Placeholder}}<p class="placeholder">{{.Body}}</p>
{{else}}<div class="prose">{{.HTML}}</div>
{{end}}{{end}}
<script>
document.querySelectorAll('.checkbox input').forEach(function (box) {
  box.addEventListener('change', function () {
    fetch({{.ToggleURL}}, {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({depth: Number(box.dataset.depth), label: box.dataset.label})
    }).then(function () { location.reload(); });
  });
});
document.querySelectorAll('.prose a').forEach(function (a) {
  a.addEventListener('click', function (ev) {
    ev.preventDefault();
    fetch({{.LinkURL}}, {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({url: a.getAttribute('href')})
    }).then(function (r) { return r.json(); }).then(function (r) {
      if (r.data && r.data.proceed) { window.open(a.href, '_blank'); }
    });
  });
});
</script>
</body>
</html>
`))

// RenderPage writes a standalone HTML page for a rendered tree.
// Prose bodies must already be HTML produced by the HTML transformer.
func RenderPage(w io.Writer, data PageData) error {
	view := pageView{
		PageData: data,
		Palette:  data.Theme.Palette(),
		Blocks:   make([]pageBlock, 0, len(data.Tree.Blocks)),
	}
	for _, b := range data.Tree.Blocks {
		view.Blocks = append(view.Blocks, pageBlock{
			Block: b,
			HTML:  template.HTML(b.Body), // goldmark output, raw HTML disabled
		})
	}

	if err := pageTmpl.Execute(w, view); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
