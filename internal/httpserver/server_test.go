package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tesla-buddy/internal/middleware"
	"tesla-buddy/internal/session/repository"
	sessionUC "tesla-buddy/internal/session/usecase"
	pkgLog "tesla-buddy/pkg/log"
	"tesla-buddy/pkg/mdsource"
	"tesla-buddy/pkg/mdview"
)

type staticSource struct {
	doc string
}

func (s staticSource) Fetch(ctx context.Context, url string) (string, error) { return s.doc, nil }
func (s staticSource) ReadFile(path string) (string, error)                  { return s.doc, nil }
func (s staticSource) Load(ctx context.Context, location string) string     { return s.doc }

func newTestServer(t *testing.T, source mdsource.Source) *HTTPServer {
	t.Helper()
	return newLimitedTestServer(t, source, 1000, nil)
}

func newLimitedTestServer(t *testing.T, source mdsource.Source, perMin int, trusted []string) *HTTPServer {
	t.Helper()
	srv, err := New(pkgLog.NewNop(), Config{
		Logger:         pkgLog.NewNop(),
		Port:           8080,
		Mode:           gin.TestMode,
		Environment:    "test",
		Middleware:     middleware.Config{RateLimitPerMin: perMin},
		TrustedProxies: trusted,
		Source:      source,
		Transformer: mdview.NewHTML(),
		Checklist: sessionUC.Config{
			DefaultSource: "https://example.com/README.md",
			Interactive:   true,
		},
		Sessions:     repository.Options{MaxSessions: 10, TTL: time.Hour},
		DefaultTheme: mdview.ThemeLight,
	})
	require.NoError(t, err)
	return srv
}

func do(srv *HTTPServer, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

type viewData struct {
	Session struct {
		ID string `json:"id"`
	} `json:"session"`
	Blocks []struct {
		Kind    string `json:"kind"`
		Label   string `json:"label"`
		Checked bool   `json:"checked"`
	} `json:"blocks"`
	Stats struct {
		Completed int `json:"completed"`
	} `json:"stats"`
}

func TestNew_Validate(t *testing.T) {
	_, err := New(pkgLog.NewNop(), Config{Logger: pkgLog.NewNop(), Mode: gin.TestMode, Port: 8080})
	assert.Error(t, err)

	_, err = New(nil, Config{Mode: gin.TestMode, Port: 8080, Source: staticSource{}})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, staticSource{})
	for _, path := range []string{"/health", "/ready", "/live"} {
		w := do(srv, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName)
	}
}

func TestRateLimit_IgnoresSpoofedForwardedFor(t *testing.T) {
	srv := newLimitedTestServer(t, staticSource{}, 10, nil)

	passed := 0
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/checklists/missing", nil)
		req.RemoteAddr = "192.0.2.10:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i+1))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		if w.Code != http.StatusTooManyRequests {
			passed++
		}
	}
	assert.Equal(t, 1, passed)
}

func TestRateLimit_TrustedProxyForwardsClientIP(t *testing.T) {
	srv := newLimitedTestServer(t, staticSource{}, 10, []string{"192.0.2.10"})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/checklists/missing", nil)
		req.RemoteAddr = "192.0.2.10:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i+1))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	}
}

func TestNew_InvalidTrustedProxy(t *testing.T) {
	_, err := New(pkgLog.NewNop(), Config{
		Logger:         pkgLog.NewNop(),
		Port:           8080,
		Mode:           gin.TestMode,
		Source:         staticSource{},
		TrustedProxies: []string{"not-an-ip"},
	})
	assert.Error(t, err)
}

func TestChecklistFlow(t *testing.T) {
	srv := newTestServer(t, staticSource{doc: "# Delivery\n- [ ] Paint\n- [x] Keys\n"})

	w := do(srv, http.MethodPost, "/api/v1/checklists", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var opened struct {
		Data viewData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opened))
	id := opened.Data.Session.ID
	require.NotEmpty(t, id)
	require.Len(t, opened.Data.Blocks, 3)
	assert.Equal(t, 1, opened.Data.Stats.Completed)

	w = do(srv, http.MethodGet, "/ready", nil)
	var ready struct {
		Data struct {
			Sessions int `json:"sessions"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ready))
	assert.Equal(t, 1, ready.Data.Sessions)

	w = do(srv, http.MethodPost, "/api/v1/checklists/"+id+"/toggle", map[string]any{"depth": 0, "label": "Paint"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(srv, http.MethodGet, "/api/v1/checklists/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Data viewData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.True(t, detail.Data.Blocks[1].Checked)
	assert.Equal(t, 2, detail.Data.Stats.Completed)

	w = do(srv, http.MethodGet, "/api/v1/checklists/"+id+"/view?theme=dark", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Paint")

	w = do(srv, http.MethodDelete, "/api/v1/checklists/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(srv, http.MethodGet, "/api/v1/checklists/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
