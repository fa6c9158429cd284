package glinr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fetcher defines the interface for fetching glinrdock log data.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchLogPaths(ctx context.Context) ([]LogPath, error)
	FetchLogs(ctx context.Context, query LogQuery) ([]string, error)
	FetchSystem(ctx context.Context) (*SystemInfo, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the glinrdock HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	token     string
}

const (
	defaultAPIBind   = "127.0.0.1:8080"
	defaultUserAgent = "glinview/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client using the provided apiBind host:port value.
// The token is sent as a bearer credential when non-empty.
func NewClient(apiBind, token string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		token:     strings.TrimSpace(token),
	}, nil
}

// FetchLogPaths retrieves the available log sources.
func (c *Client) FetchLogPaths(ctx context.Context) ([]LogPath, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload logPathsResponse
	if err := c.do(ctx, http.MethodGet, "/v1/logs/paths", &payload); err != nil {
		return nil, err
	}
	return payload.list(), nil
}

// LogQuery configures /v1/logs requests.
type LogQuery struct {
	Path  string
	Lines int
}

// FetchLogs retrieves the most recent raw lines for one log source.
func (c *Client) FetchLogs(ctx context.Context, query LogQuery) ([]string, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(query.Path) == "" {
		return nil, fmt.Errorf("log path required")
	}
	values := url.Values{}
	values.Set("path", query.Path)
	if query.Lines > 0 {
		values.Set("lines", strconv.Itoa(query.Lines))
	}
	rel := &url.URL{Path: "/v1/logs", RawQuery: values.Encode()}
	var payload logsResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	return payload.Logs, nil
}

// FetchSystem retrieves daemon version and runtime information.
func (c *Client) FetchSystem(ctx context.Context) (*SystemInfo, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload SystemInfo
	if err := c.do(ctx, http.MethodGet, "/v1/system", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
