// Package github searches GitHub for ComfyUI custom node repositories.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.github.com"
	perPage        = 50
)

type Repository struct {
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	StargazersCount int       `json:"stargazers_count"`
	Description     string    `json:"description"`
	UpdatedAt       time.Time `json:"updated_at"`
	CloneURL        string    `json:"clone_url"`
	HTMLURL         string    `json:"html_url"`
}

type SearchResult struct {
	TotalCount int          `json:"total_count"`
	Items      []Repository `json:"items"`
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithToken sends the token as a bearer credential, which raises the search
// rate limit.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BuildAuthorQuery matches the author's repositories tagged comfyui or
// comfyui-nodes, or with comfyui in the name.
func BuildAuthorQuery(author string) string {
	return fmt.Sprintf("user:%[1]s topic:comfyui OR user:%[1]s topic:comfyui-nodes OR user:%[1]s comfyui in:name", author)
}

// SearchByAuthor returns the author's node repositories, most starred first.
// An empty Items slice is a valid result.
func (c *Client) SearchByAuthor(ctx context.Context, author string) (*SearchResult, error) {
	params := url.Values{}
	params.Set("q", BuildAuthorQuery(author))
	params.Set("sort", "stars")
	params.Set("order", "desc")
	params.Set("per_page", strconv.Itoa(perPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search/repositories?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("github search: read body: %w", err)
	}

	if resp.StatusCode == http.StatusForbidden {
		return nil, &RateLimitError{Reset: parseReset(resp.Header.Get("X-RateLimit-Reset"))}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &payload)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: payload.Message}
	}

	var result SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("github search: decode: %w", err)
	}
	if result.Items == nil {
		result.Items = []Repository{}
	}
	return &result, nil
}

func parseReset(header string) time.Time {
	secs, err := strconv.ParseInt(strings.TrimSpace(header), 10, 64)
	if err != nil || secs <= 0 {
		return time.Time{}
	}
	return time.Unix(secs, 0)
}
