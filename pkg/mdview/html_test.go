package mdview_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tesla-buddy/internal/checklist"
	"tesla-buddy/pkg/mdview"
)

func TestHTML_Transform(t *testing.T) {
	h := mdview.NewHTML()

	prose, err := h.Transform(context.Background(), "# Delivery\n\nSee [the guide](https://example.com/guide) or https://tesla.com today")
	require.NoError(t, err)

	assert.Contains(t, prose.Body, "<h1>Delivery</h1>")
	assert.Contains(t, prose.Body, `href="https://example.com/guide"`)
	assert.Equal(t, []string{"https://example.com/guide", "https://tesla.com"}, prose.Links)
}

func TestHTML_TransformDropsRawHTML(t *testing.T) {
	prose, err := mdview.NewHTML().Transform(context.Background(), "<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, prose.Body, "<script>")
}

func TestHTML_MalformedCheckboxesStayText(t *testing.T) {
	doc := "- [X] Upper marker\n* [ ] Star bullet\n-  [ ] Two spaces"

	r := checklist.NewRenderer(nil, mdview.NewHTML(), checklist.DefaultOptions())
	r.Load(doc)
	require.Empty(t, r.Store().Keys())

	tree, err := r.Render(context.Background())
	require.NoError(t, err)
	require.Len(t, tree.Blocks, 1)

	body := tree.Blocks[0].Body
	assert.NotContains(t, body, "<input")
	assert.Contains(t, body, "[X] Upper marker")
	assert.Contains(t, body, "Star bullet")
	assert.Equal(t, 0, tree.Stats.Total)
}

func TestHTML_TransformCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mdview.NewHTML().Transform(ctx, "text")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderPage(t *testing.T) {
	r := checklist.NewRenderer(nil, mdview.NewHTML(), checklist.DefaultOptions())
	r.Load("# Title\n- [ ] A\n  - [x] B\n")
	tree, err := r.Render(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mdview.RenderPage(&buf, mdview.PageData{
		Title:     "Checklist",
		SessionID: "abc",
		Theme:     mdview.ThemeDark,
		Tree:      tree,
		ToggleURL: "/api/v1/checklists/abc/toggle",
		LinkURL:   "/api/v1/checklists/abc/links",
	}))

	page := buf.String()
	assert.Contains(t, page, "<h1>Title</h1>")
	assert.Contains(t, page, `data-label="A"`)
	assert.Contains(t, page, "padding-left: 32px")
	assert.Contains(t, page, "theme-dark")
	assert.Contains(t, page, "#A1CEDC")
	assert.Equal(t, 1, strings.Count(page, "checkbox done"))
}

func TestParseTheme(t *testing.T) {
	assert.Equal(t, mdview.ThemeDark, mdview.ParseTheme(" Dark ", mdview.ThemeLight))
	assert.Equal(t, mdview.ThemeLight, mdview.ParseTheme("light", mdview.ThemeDark))
	assert.Equal(t, mdview.ThemeDark, mdview.ParseTheme("purple", mdview.ThemeDark))
	assert.Equal(t, mdview.ThemeLight, mdview.ThemeDark.Toggle())
	assert.Equal(t, "#FFFFFF", mdview.ThemeDark.Palette().Text)
}
