package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL + "/")
}

func TestPyTorchInfo(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/pytorch/info", r.URL.Path)
		w.Write([]byte(`{"installed":true,"version":"2.5.1+cu124","cuda_available":true,"cuda_version":"12.4","using_python":"/opt/py/bin/python"}`))
	})

	info, err := client.PyTorchInfo(context.Background())
	require.NoError(t, err)

	assert.True(t, info.Installed)
	assert.Equal(t, "2.5.1+cu124", info.Version)
	assert.True(t, info.CUDAAvailable)
	assert.Equal(t, "12.4", info.CUDAVersion)
	assert.Equal(t, "/opt/py/bin/python", info.UsingPython)
}

func TestPyTorchInfo_NotInstalledNulls(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"installed":false,"version":null,"cuda_available":false,"cuda_version":null}`))
	})

	info, err := client.PyTorchInfo(context.Background())
	require.NoError(t, err)
	assert.False(t, info.Installed)
	assert.Empty(t, info.Version)
}

func TestCheckDependencies(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dependencies/check", r.URL.Path)
		w.Write([]byte(`{"total":10,"installed":7,"missing":3,"missing_packages":[{"name":"numpy"},{"name":"pillow"},{"name":"scipy"}]}`))
	})

	report, err := client.CheckDependencies(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, report.Total)
	assert.Equal(t, 7, report.Installed)
	assert.Equal(t, 3, report.Missing)
	require.Len(t, report.MissingPackages, 3)
	assert.Equal(t, "pillow", report.MissingPackages[1].Name)
}

func TestActionBodies(t *testing.T) {
	tests := []struct {
		name string
		call func(c *Client) (*ActionResult, error)
		path string
		body map[string]any
	}{
		{
			name: "install pytorch",
			call: func(c *Client) (*ActionResult, error) { return c.InstallPyTorch(context.Background(), "2.5.1+cu124") },
			path: "/api/pytorch/install",
			body: map[string]any{"version_key": "2.5.1+cu124"},
		},
		{
			name: "save python",
			call: func(c *Client) (*ActionResult, error) {
				return c.SavePythonExecutable(context.Background(), "/opt/py/bin/python")
			},
			path: "/api/config",
			body: map[string]any{"python_executable": "/opt/py/bin/python"},
		},
		{
			name: "install dependencies",
			call: func(c *Client) (*ActionResult, error) { return c.InstallDependencies(context.Background()) },
			path: "/api/dependencies/install",
			body: map[string]any{},
		},
		{
			name: "install node",
			call: func(c *Client) (*ActionResult, error) {
				return c.InstallNode(context.Background(), "https://github.com/a/b.git")
			},
			path: "/api/nodes/install",
			body: map[string]any{"git_url": "https://github.com/a/b.git"},
		},
		{
			name: "toggle node",
			call: func(c *Client) (*ActionResult, error) { return c.ToggleNode(context.Background(), "b", false) },
			path: "/api/nodes/toggle",
			body: map[string]any{"node_name": "b", "enable": false},
		},
		{
			name: "delete node",
			call: func(c *Client) (*ActionResult, error) { return c.DeleteNode(context.Background(), "b") },
			path: "/api/nodes/delete",
			body: map[string]any{"node_name": "b"},
		},
		{
			name: "update node",
			call: func(c *Client) (*ActionResult, error) { return c.UpdateNode(context.Background(), "b") },
			path: "/api/nodes/update",
			body: map[string]any{"node_name": "b"},
		},
		{
			name: "download model default path",
			call: func(c *Client) (*ActionResult, error) {
				return c.DownloadModel(context.Background(), "https://huggingface.co/org/model", "")
			},
			path: "/api/huggingface/download",
			body: map[string]any{"model_url": "https://huggingface.co/org/model", "save_path": "models/checkpoints"},
		},
		{
			name: "stop forced",
			call: func(c *Client) (*ActionResult, error) { return c.Stop(context.Background(), true) },
			path: "/api/stop",
			body: map[string]any{"force": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var got map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, tt.body, got)

				w.Write([]byte(`{"success":true,"message":"ok"}`))
			})

			res, err := tt.call(client)
			require.NoError(t, err)
			assert.True(t, res.Success)
			assert.Equal(t, "ok", res.Text())
		})
	}
}

func TestLogsQuery(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/logs", r.URL.Path)
		assert.Equal(t, "error", r.URL.Query().Get("level"))
		assert.Equal(t, "torch", r.URL.Query().Get("search"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"logs":[{"timestamp":"12:00:00.000","message":"torch failed","level":"error"}]}`))
	})

	logs, err := client.Logs(context.Background(), LogQuery{Level: "error", Search: "torch", Limit: 50})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "torch failed", logs[0].Message)
}

func TestAPIError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	})

	_, err := client.ScanNodes(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Message)
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).PythonCheck(context.Background())
	require.Error(t, err)

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestActionResultText(t *testing.T) {
	assert.Equal(t, "", (*ActionResult)(nil).Text())
	assert.Equal(t, "msg", (&ActionResult{Message: "msg", Output: "out"}).Text())
	assert.Equal(t, "err", (&ActionResult{Error: "err", Output: "out"}).Text())
	assert.Equal(t, "out", (&ActionResult{Message: "  ", Output: "out"}).Text())
}

func TestWaitReady(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"running":false}`))
	})
	assert.NoError(t, client.WaitReady(context.Background(), time.Second))

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := NewClient(url).WaitReady(context.Background(), 300*time.Millisecond)
	assert.Error(t, err)
}

func TestWaitReady_HTTPErrorCountsAsReady(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	assert.NoError(t, client.WaitReady(context.Background(), time.Second))
}

func TestStatus_ProcessInfo(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"running":true,"pid":4242,"process_info":{"cpu_percent":12.5,"memory_mb":2048.25,"status":"running","num_threads":31}}`))
	})

	status, err := client.Status(context.Background())
	require.NoError(t, err)
	require.NotNil(t, status.ProcessInfo)
	assert.Equal(t, 12.5, status.ProcessInfo.CPUPercent)
	assert.Equal(t, 2048.25, status.ProcessInfo.MemoryMB)
	assert.Equal(t, "running", status.ProcessInfo.Status)
	assert.Equal(t, 31, status.ProcessInfo.NumThreads)

	stopped := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"running":false,"pid":null,"process_info":null}`))
	})
	status, err = stopped.Status(context.Background())
	require.NoError(t, err)
	assert.Nil(t, status.ProcessInfo)
}

func TestSystem(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/system", r.URL.Path)
		w.Write([]byte(`{
			"cpu": 37.5,
			"memory": {"percent": 50.0, "used_gb": 16.0, "total_gb": 32.0, "available_gb": 16.0},
			"gpu": [{"id": 0, "name": "RTX 4090", "load": 88.0, "memory_used": 20.5, "memory_total": 24.0, "memory_percent": 85.4, "temperature": 71}],
			"info": {"platform": "Linux", "platform_version": "6.8", "python_version": "3.11.9", "cpu_count": 16, "cpu_freq": 4200, "total_memory_gb": 32.0}
		}`))
	})

	sys, err := client.System(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 37.5, sys.CPU)
	assert.Equal(t, 32.0, sys.Memory.TotalGB)
	require.Len(t, sys.GPU, 1)
	assert.Equal(t, "RTX 4090", sys.GPU[0].Name)
	assert.Equal(t, 71.0, sys.GPU[0].Temperature)
	assert.Equal(t, "Linux", sys.Info.Platform)
	assert.Equal(t, 16, sys.Info.CPUCount)
}

func TestPresetsAndHistory(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/presets":
			w.Write([]byte(`{"presets":{"low_memory":{"lowvram":true,"extra_args":"--cache-lru 8"}}}`))
		case "/api/history":
			w.Write([]byte(`{"history":[{"timestamp":"2024-05-01T12:00:00","command":"python main.py --lowvram","config":{"port":"8188"}}]}`))
		default:
			http.NotFound(w, r)
		}
	})

	presets, err := client.Presets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, true, presets["low_memory"]["lowvram"])

	history, err := client.History(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "python main.py --lowvram", history[0].Command)
	assert.Equal(t, "8188", history[0].Config["port"])
}
