package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cozy-creator/comfy-panel/internal/api"
	"github.com/cozy-creator/comfy-panel/internal/app"
	"github.com/cozy-creator/comfy-panel/internal/config"
	"github.com/cozy-creator/comfy-panel/internal/panel"
)

type harness struct {
	handler  http.Handler
	requests *atomic.Int32
}

func newHarness(t *testing.T, backendHandler, githubHandler http.HandlerFunc) *harness {
	t.Helper()
	return newHarnessWith(t, nil, backendHandler, githubHandler)
}

func newHarnessWith(t *testing.T, configure func(*config.Config), backendHandler, githubHandler http.HandlerFunc) *harness {
	t.Helper()

	var requests atomic.Int32
	backendSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if backendHandler != nil {
			backendHandler(w, r)
		}
	}))
	t.Cleanup(backendSrv.Close)

	githubURL := config.DefaultGithubAPIURL
	if githubHandler != nil {
		githubSrv := httptest.NewServer(githubHandler)
		t.Cleanup(githubSrv.Close)
		githubURL = githubSrv.URL
	}

	cfg := &config.Config{
		Host:         "127.0.0.1",
		Port:         0,
		Environment:  config.EnvTest,
		Language:     "en",
		BackendURL:   backendSrv.URL,
		GithubAPIURL: githubURL,
	}
	if configure != nil {
		configure(cfg)
	}

	a, err := app.NewApp(cfg)
	require.NoError(t, err)
	t.Cleanup(a.Close)

	s, err := NewServer(a)
	require.NoError(t, err)
	s.SetupRoutes()

	return &harness{handler: s.Handler(), requests: &requests}
}

func (h *harness) post(t *testing.T, action string, form url.Values) (*httptest.ResponseRecorder, api.ActionResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/ui/"+action, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(requestedWithHeader, requestedWithValue)
	w := httptest.NewRecorder()
	h.handler.ServeHTTP(w, req)

	var resp api.ActionResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestPage(t *testing.T) {
	h := newHarness(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "ComfyUI Control Panel")
	assert.Contains(t, w.Body.String(), `data-action="install-node"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Zero(t, h.requests.Load(), "the page itself does not call the backend")
}

func TestStaticAndHealth(t *testing.T) {
	h := newHarness(t, nil, nil)

	for _, path := range []string{"/static/panel.js", "/static/panel.css", "/healthz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		h.handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	h := newHarness(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	h.handler.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestUnknownAction(t *testing.T) {
	h := newHarness(t, nil, nil)

	w, _ := h.post(t, "format-disk", url.Values{})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "unknown action")
}

func TestInstallNode_MissingURL(t *testing.T) {
	h := newHarness(t, nil, nil)

	w, resp := h.post(t, "install-node", url.Values{"label": {"Install"}, "giturl": {"  "}})
	require.Equal(t, http.StatusOK, w.Code)

	assert.False(t, resp.OK)
	assert.Zero(t, h.requests.Load())
	require.Len(t, resp.Notices, 1)
	assert.Equal(t, panel.LevelAlert, resp.Notices[0].Level)
	assert.Equal(t, "Please enter a Git repository URL", resp.Notices[0].Message)
	assert.Equal(t, api.ControlState{Label: "Install", Disabled: false}, resp.Control)
}

func TestInstallNode(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/nodes/install":
			w.Write([]byte(`{"success":true,"message":"ok"}`))
		case "/api/nodes/scan":
			w.Write([]byte(`{"nodes":[{"name":"ComfyUI-<b>Foo</b>","enabled":true,"is_git_repo":true,"files_count":12}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}, nil)

	_, resp := h.post(t, "install-node", url.Values{"label": {"Install"}, "giturl": {"https://github.com/a/foo.git"}})

	assert.True(t, resp.OK)
	assert.Equal(t, []panel.Notice{{Level: panel.LevelSuccess, Message: "Node installed successfully"}}, resp.Notices)
	assert.Contains(t, resp.Regions["nodes-list"], "ComfyUI-&lt;b&gt;Foo&lt;/b&gt;")
	assert.Equal(t, api.ControlState{Label: "Install"}, resp.Control)
}

func TestCheckDeps(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total":10,"installed":7,"missing":3,"missing_packages":[{"name":"numpy"},{"name":"pillow"},{"name":"scipy"}]}`))
	}, nil)

	_, resp := h.post(t, "check-deps", url.Values{})

	out := resp.Regions["deps-status"]
	assert.Contains(t, out, "Total: 10")
	assert.Contains(t, out, "Installed: 7")
	assert.Contains(t, out, "Missing: 3")
	assert.Contains(t, out, "numpy, pillow, scipy")
}

func TestStatusFailureIsSilent(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, nil)

	w, resp := h.post(t, "check-python", url.Values{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, resp.OK)
	assert.Empty(t, resp.Notices)
	assert.Empty(t, resp.Regions)
}

func TestSearchRateLimited(t *testing.T) {
	h := newHarness(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Reset", "1714566600")
		w.WriteHeader(http.StatusForbidden)
	})

	_, resp := h.post(t, "search-author", url.Values{"label": {"Search"}, "author": {"someone"}})

	assert.False(t, resp.OK)
	assert.Contains(t, resp.Regions["search-results"], "GitHub API rate limit exceeded. Try again after ")
	assert.Equal(t, api.ControlState{Label: "Search"}, resp.Control)
}

func TestToggleNodeFormBool(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/nodes/toggle" {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, true, body["enable"])
			w.Write([]byte(`{"success":true}`))
			return
		}
		w.Write([]byte(`{"nodes":[]}`))
	}, nil)

	_, resp := h.post(t, "toggle-node", url.Values{"node": {"foo"}, "enable": {"true"}})
	assert.True(t, resp.OK)
	assert.Equal(t, "Node foo enabled", resp.Notices[0].Message)
}

func TestActionOriginGuard(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    int
	}{
		{
			name:    "foreign origin",
			headers: map[string]string{"Origin": "https://evil.example", requestedWithHeader: requestedWithValue},
			want:    http.StatusForbidden,
		},
		{
			name:    "plain form post without the panel header",
			headers: map[string]string{"Origin": "https://evil.example"},
			want:    http.StatusForbidden,
		},
		{
			name:    "no header and no origin",
			headers: map[string]string{},
			want:    http.StatusForbidden,
		},
		{
			name:    "cross-site fetch without origin",
			headers: map[string]string{"Sec-Fetch-Site": "cross-site", requestedWithHeader: requestedWithValue},
			want:    http.StatusForbidden,
		},
		{
			name:    "same host origin",
			headers: map[string]string{"Origin": "http://example.com", requestedWithHeader: requestedWithValue},
			want:    http.StatusOK,
		},
		{
			name:    "same origin fetch",
			headers: map[string]string{"Sec-Fetch-Site": "same-origin", requestedWithHeader: requestedWithValue},
			want:    http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success":true}`))
			}, nil)

			form := url.Values{"giturl": {"https://github.com/attacker/payload.git"}}
			req := httptest.NewRequest(http.MethodPost, "/ui/install-node", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			h.handler.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusForbidden {
				assert.Zero(t, h.requests.Load(), "refused actions never reach the backend")

				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, "cross-site request refused", body["message"])
			}
		})
	}
}

func TestActionAllowedOrigin(t *testing.T) {
	h := newHarnessWith(t, func(cfg *config.Config) {
		cfg.AllowedOrigins = []string{"http://localhost:8188"}
	}, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"nodes":[]}`))
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/ui/scan-nodes", nil)
	req.Header.Set("Origin", "http://localhost:8188")
	req.Header.Set(requestedWithHeader, requestedWithValue)
	w := httptest.NewRecorder()
	h.handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:8188", w.Header().Get("Access-Control-Allow-Origin"))
	assert.EqualValues(t, 1, h.requests.Load())
}

func TestSystemStatusAction(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/system", r.URL.Path)
		w.Write([]byte(`{"cpu":42,"memory":{"percent":25,"used_gb":4,"total_gb":16},"gpu":[]}`))
	}, nil)

	_, resp := h.post(t, "system-status", url.Values{})

	assert.True(t, resp.OK)
	assert.Contains(t, resp.Regions["system-status"], "CPU: 42.0%")
	assert.Contains(t, resp.Regions["system-status"], "No GPU detected")
}
