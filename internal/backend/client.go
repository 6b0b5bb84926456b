// Package backend is a typed client for the launcher backend's REST API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const DefaultModelSavePath = "models/checkpoints"

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

type ClientOption func(*Client)

// WithTimeout sets a per-request timeout. Zero disables it.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// --- PyTorch ---

func (c *Client) PyTorchInfo(ctx context.Context) (*PyTorchInfo, error) {
	var info PyTorchInfo
	if err := c.doGet(ctx, "/api/pytorch/info", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) PyTorchVersions(ctx context.Context) (PyTorchVersions, error) {
	versions := PyTorchVersions{}
	if err := c.doGet(ctx, "/api/pytorch/versions", &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

func (c *Client) InstallPyTorch(ctx context.Context, versionKey string) (*ActionResult, error) {
	return c.doAction(ctx, "/api/pytorch/install", map[string]any{"version_key": versionKey})
}

// --- Python ---

func (c *Client) PythonCheck(ctx context.Context) (*PythonCheck, error) {
	var check PythonCheck
	if err := c.doGet(ctx, "/api/python/check", &check); err != nil {
		return nil, err
	}
	return &check, nil
}

func (c *Client) FindPython(ctx context.Context) ([]PythonEnv, error) {
	var resp struct {
		Executables []PythonEnv `json:"executables"`
	}
	if err := c.doGet(ctx, "/api/python/find", &resp); err != nil {
		return nil, err
	}
	return resp.Executables, nil
}

// UpdateConfig merges updates into the backend's launcher config.
func (c *Client) UpdateConfig(ctx context.Context, updates map[string]any) (*ActionResult, error) {
	return c.doAction(ctx, "/api/config", updates)
}

func (c *Client) SavePythonExecutable(ctx context.Context, path string) (*ActionResult, error) {
	return c.UpdateConfig(ctx, map[string]any{"python_executable": path})
}

// --- Dependencies ---

func (c *Client) CheckDependencies(ctx context.Context) (*DependencyReport, error) {
	var report DependencyReport
	if err := c.doGet(ctx, "/api/dependencies/check", &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) InstallDependencies(ctx context.Context) (*ActionResult, error) {
	return c.doAction(ctx, "/api/dependencies/install", map[string]any{})
}

// --- Custom nodes ---

func (c *Client) ScanNodes(ctx context.Context) ([]CustomNode, error) {
	var resp struct {
		Nodes []CustomNode `json:"nodes"`
	}
	if err := c.doGet(ctx, "/api/nodes/scan", &resp); err != nil {
		return nil, err
	}
	return resp.Nodes, nil
}

func (c *Client) InstallNode(ctx context.Context, gitURL string) (*ActionResult, error) {
	return c.doAction(ctx, "/api/nodes/install", map[string]any{"git_url": gitURL})
}

func (c *Client) ToggleNode(ctx context.Context, name string, enable bool) (*ActionResult, error) {
	return c.doAction(ctx, "/api/nodes/toggle", map[string]any{"node_name": name, "enable": enable})
}

func (c *Client) DeleteNode(ctx context.Context, name string) (*ActionResult, error) {
	return c.doAction(ctx, "/api/nodes/delete", map[string]any{"node_name": name})
}

func (c *Client) UpdateNode(ctx context.Context, name string) (*ActionResult, error) {
	return c.doAction(ctx, "/api/nodes/update", map[string]any{"node_name": name})
}

// --- Models ---

func (c *Client) DownloadModel(ctx context.Context, modelURL, savePath string) (*ActionResult, error) {
	if savePath == "" {
		savePath = DefaultModelSavePath
	}
	return c.doAction(ctx, "/api/huggingface/download", map[string]any{
		"model_url": modelURL,
		"save_path": savePath,
	})
}

// --- Launcher ---

func (c *Client) Diagnostics(ctx context.Context) (*Diagnostics, error) {
	var diag Diagnostics
	if err := c.doGet(ctx, "/api/diagnostics", &diag); err != nil {
		return nil, err
	}
	return &diag, nil
}

func (c *Client) Status(ctx context.Context) (*LauncherStatus, error) {
	var status LauncherStatus
	if err := c.doGet(ctx, "/api/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) System(ctx context.Context) (*SystemStatus, error) {
	var status SystemStatus
	if err := c.doGet(ctx, "/api/system", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) Presets(ctx context.Context) (Presets, error) {
	var resp struct {
		Presets Presets `json:"presets"`
	}
	if err := c.doGet(ctx, "/api/presets", &resp); err != nil {
		return nil, err
	}
	return resp.Presets, nil
}

// History returns recorded launches, oldest first.
func (c *Client) History(ctx context.Context) ([]HistoryEntry, error) {
	var resp struct {
		History []HistoryEntry `json:"history"`
	}
	if err := c.doGet(ctx, "/api/history", &resp); err != nil {
		return nil, err
	}
	return resp.History, nil
}

func (c *Client) Logs(ctx context.Context, q LogQuery) ([]LogEntry, error) {
	params := url.Values{}
	if q.Level != "" {
		params.Set("level", q.Level)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	path := "/api/logs"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp struct {
		Logs []LogEntry `json:"logs"`
	}
	if err := c.doGet(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Logs, nil
}

func (c *Client) ClearLogs(ctx context.Context) (*ActionResult, error) {
	return c.doAction(ctx, "/api/logs/clear", nil)
}

func (c *Client) Start(ctx context.Context) (*ActionResult, error) {
	return c.doAction(ctx, "/api/start", nil)
}

func (c *Client) Stop(ctx context.Context, force bool) (*ActionResult, error) {
	return c.doAction(ctx, "/api/stop", map[string]any{"force": force})
}

func (c *Client) Restart(ctx context.Context) (*ActionResult, error) {
	return c.doAction(ctx, "/api/restart", nil)
}

// WaitReady polls /api/status until the backend answers or maxWait elapses.
// Any HTTP answer counts as ready; only transport failures are retried.
func (c *Client) WaitReady(ctx context.Context, maxWait time.Duration) error {
	if maxWait <= 0 {
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = maxWait

	operation := func() error {
		_, err := c.Status(ctx)
		var netErr *NetworkError
		if errors.As(err, &netErr) {
			c.logger.Debug("backend not reachable yet", zap.String("url", c.baseURL), zap.Error(err))
			return err
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return fmt.Errorf("backend at %s did not become ready: %w", c.baseURL, err)
	}
	return nil
}

// --- HTTP helpers ---

func (c *Client) doGet(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.doRequest(req, result)
}

func (c *Client) doPostJSON(ctx context.Context, path string, payload any, result any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.doRequest(req, result)
}

func (c *Client) doAction(ctx context.Context, path string, payload any) (*ActionResult, error) {
	var result ActionResult
	if err := c.doPostJSON(ctx, path, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) doRequest(req *http.Request, result any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: fmt.Errorf("read response: %w", err)}
	}

	c.logger.Debug("backend call",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("parse response from %s: %w", req.URL.Path, err)
		}
	}

	return nil
}

// errorMessage pulls "message" or "error" out of a JSON error body and falls
// back to the raw body text.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	return strings.TrimSpace(string(body))
}
