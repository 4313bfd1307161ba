package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tesla-buddy/internal/checklist"
	"tesla-buddy/internal/session"
	"tesla-buddy/internal/session/repository"
	"tesla-buddy/internal/session/repository/memory"
)

const (
	defaultURL = "https://raw.githubusercontent.com/polymorphic/tesla-model-y-checklist/refs/heads/master/README.md"
	otherURL   = "https://example.com/list.md"
)

func newTestUseCase(t *testing.T, cfg Config) (*implUseCase, *mockSource) {
	t.Helper()

	src := &mockSource{docs: map[string]string{
		defaultURL: "# Model Y\n- [ ] Paint\n  - [x] Panel gaps\n",
		otherURL:   "- [ ] A\n- [ ] B",
	}}
	repo := memory.New(repository.Options{}, &mockLogger{})
	uc := New(repo, src, nil, cfg, &mockLogger{})

	n := 0
	uc.newID = func() string {
		n++
		return fmt.Sprintf("session-%d", n)
	}
	return uc, src
}

func boolPtr(b bool) *bool { return &b }

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("default source", func(t *testing.T) {
		uc, _ := newTestUseCase(t, Config{DefaultSource: defaultURL, Interactive: true})

		out, err := uc.Open(ctx, session.OpenInput{})
		require.NoError(t, err)

		assert.Equal(t, "session-1", out.View.Info.ID)
		assert.Equal(t, defaultURL, out.View.Info.Source)
		assert.True(t, out.View.Info.Interactive)
		require.Len(t, out.View.Tree.Blocks, 3)
		assert.Equal(t, 2, out.View.Tree.Stats.Total)
		assert.Equal(t, 1, out.View.Tree.Stats.Completed)
	})

	t.Run("inline content read-only", func(t *testing.T) {
		uc, src := newTestUseCase(t, Config{Interactive: true})

		out, err := uc.Open(ctx, session.OpenInput{Content: "- [x] Keys", Interactive: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, out.View.Info.Interactive)
		assert.True(t, out.View.Tree.Blocks[0].Disabled)
		assert.Zero(t, src.loads)
	})

	t.Run("source url", func(t *testing.T) {
		uc, _ := newTestUseCase(t, Config{})

		out, err := uc.Open(ctx, session.OpenInput{SourceURL: otherURL})
		require.NoError(t, err)
		assert.Equal(t, 2, out.View.Tree.Stats.Total)
	})

	t.Run("fetch failure renders error document", func(t *testing.T) {
		uc, _ := newTestUseCase(t, Config{})

		out, err := uc.Open(ctx, session.OpenInput{SourceURL: "https://example.com/missing.md"})
		require.NoError(t, err)
		require.Len(t, out.View.Tree.Blocks, 1)
		assert.Equal(t, "# Error loading content", out.View.Tree.Blocks[0].Source)
	})

	t.Run("invalid sources", func(t *testing.T) {
		uc, _ := newTestUseCase(t, Config{})

		for _, in := range []session.OpenInput{
			{},
			{SourceURL: "/etc/passwd"},
			{SourceURL: "file:///etc/passwd"},
			{SourceURL: "https://"},
			{SourceURL: otherURL, Content: "- [ ] A"},
		} {
			_, err := uc.Open(ctx, in)
			assert.ErrorIs(t, err, session.ErrInvalidSource, "%+v", in)
		}
	})
}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, Config{DefaultSource: defaultURL, Interactive: true})

	out, err := uc.Open(ctx, session.OpenInput{})
	require.NoError(t, err)
	id := out.View.Info.ID

	t.Run("flips one item", func(t *testing.T) {
		res, err := uc.Toggle(ctx, session.ToggleInput{ID: id, Depth: 0, Label: "Paint"})
		require.NoError(t, err)
		assert.True(t, res.Checked)
		assert.Equal(t, checklist.Key{Depth: 0, Label: "Paint"}, res.Key)
		assert.Equal(t, 2, res.View.Tree.Stats.Completed)
		assert.True(t, res.View.Tree.Blocks[1].Strikethrough)
		assert.True(t, res.View.Tree.Blocks[2].Checked)
	})

	t.Run("unknown item is discarded", func(t *testing.T) {
		_, err := uc.Toggle(ctx, session.ToggleInput{ID: id, Depth: 4, Label: "Paint"})
		assert.ErrorIs(t, err, session.ErrUnknownItem)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := uc.Toggle(ctx, session.ToggleInput{ID: "nope", Label: "Paint"})
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("read-only session", func(t *testing.T) {
		ro, err := uc.Open(ctx, session.OpenInput{Content: "- [ ] A", Interactive: boolPtr(false)})
		require.NoError(t, err)

		_, err = uc.Toggle(ctx, session.ToggleInput{ID: ro.View.Info.ID, Label: "A"})
		assert.ErrorIs(t, err, session.ErrReadOnly)
	})
}

func TestReload(t *testing.T) {
	ctx := context.Background()
	uc, src := newTestUseCase(t, Config{DefaultSource: defaultURL, Interactive: true})

	out, err := uc.Open(ctx, session.OpenInput{})
	require.NoError(t, err)
	id := out.View.Info.ID

	_, err = uc.Toggle(ctx, session.ToggleInput{ID: id, Label: "Paint"})
	require.NoError(t, err)

	src.docs[defaultURL] = "- [ ] Paint\n- [ ] Charging cable"
	res, err := uc.Reload(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, 2, src.loads)
	assert.Equal(t, 2, res.View.Tree.Stats.Total)
	assert.Zero(t, res.View.Tree.Stats.Completed)

	_, err = uc.Toggle(ctx, session.ToggleInput{ID: id, Depth: 2, Label: "Panel gaps"})
	assert.ErrorIs(t, err, session.ErrUnknownItem)

	_, err = uc.Reload(ctx, "nope")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestDetailAndClose(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, Config{Interactive: true})

	out, err := uc.Open(ctx, session.OpenInput{Content: "# T\n- [ ] A"})
	require.NoError(t, err)
	id := out.View.Info.ID

	detail, err := uc.Detail(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, out.View.Tree, detail.View.Tree)

	require.NoError(t, uc.Close(ctx, id))
	assert.ErrorIs(t, uc.Close(ctx, id), session.ErrSessionNotFound)

	_, err = uc.Detail(ctx, id)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestPressLink(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		allowed []string
		url     string
		proceed bool
	}{
		{name: "no allow-list", url: "https://anything.example", proceed: true},
		{name: "allowed host", allowed: []string{"tesla.com"}, url: "https://tesla.com/support", proceed: true},
		{name: "allowed subdomain", allowed: []string{"tesla.com"}, url: "https://www.tesla.com/", proceed: true},
		{name: "other host", allowed: []string{"tesla.com"}, url: "https://evil-tesla.com/", proceed: false},
		{name: "relative link", allowed: []string{"tesla.com"}, url: "#section", proceed: false},
		{name: "javascript scheme", allowed: []string{"tesla.com"}, url: "javascript:alert(1)", proceed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(t, Config{Interactive: true, AllowedLinkHosts: tt.allowed})
			out, err := uc.Open(ctx, session.OpenInput{Content: "[x](" + tt.url + ")"})
			require.NoError(t, err)

			res, err := uc.PressLink(ctx, session.PressLinkInput{ID: out.View.Info.ID, URL: tt.url})
			require.NoError(t, err)
			assert.Equal(t, tt.proceed, res.Proceed)
			assert.Equal(t, tt.url, res.URL)
		})
	}

	t.Run("unknown session", func(t *testing.T) {
		uc, _ := newTestUseCase(t, Config{})
		_, err := uc.PressLink(ctx, session.PressLinkInput{ID: "nope", URL: "https://tesla.com"})
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}

func TestToggle_ConcurrentRequestsAreSerialized(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, Config{Interactive: true})

	out, err := uc.Open(ctx, session.OpenInput{Content: "- [ ] A"})
	require.NoError(t, err)
	id := out.View.Info.ID

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.Toggle(ctx, session.ToggleInput{ID: id, Label: "A"})
		}()
	}
	wg.Wait()

	detail, err := uc.Detail(ctx, id)
	require.NoError(t, err)
	assert.False(t, detail.View.Tree.Blocks[0].Checked)
}
