package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultTimeout           = 15 * time.Second
	defaultGenerationTimeout = 90 * time.Second
	maxBodySize              = 8 << 20
)

// TokenSource supplies the bearer token attached to requests. An empty token
// means the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client talks to the word service. Each method issues exactly one HTTP
// request and never retries; callers own loading state and error reporting.
type Client struct {
	baseURL    string
	authURL    string
	httpClient *http.Client
	slowClient *http.Client // AI-backed generation endpoints
	tokens     TokenSource
}

type Option func(*Client)

// WithTokenSource attaches "Authorization: Bearer <token>" when a token is available.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithAuthURL sets the base URL of the login service.
func WithAuthURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.authURL = strings.TrimRight(u, "/")
		}
	}
}

// WithTimeouts overrides the regular and generation request timeouts.
func WithTimeouts(regular, generation time.Duration) Option {
	return func(c *Client) {
		if regular > 0 {
			c.httpClient.Timeout = regular
		}
		if generation > 0 {
			c.slowClient.Timeout = generation
		}
	}
}

// WithHTTPClient replaces both underlying HTTP clients.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
		c.slowClient = hc
	}
}

// NewClient creates a word service client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	base := strings.TrimRight(baseURL, "/")
	c := &Client{
		baseURL:    base,
		authURL:    base,
		httpClient: &http.Client{Timeout: defaultTimeout},
		slowClient: &http.Client{Timeout: defaultGenerationTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the response wrapper shared by all endpoints.
type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message,omitempty"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}

// Pagination is the page metadata returned next to list payloads.
type Pagination struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Total int `json:"total"`
}

type request struct {
	op       string
	method   string
	url      string
	body     any
	slow     bool
	out      any          // data is decoded into out when set
	validate func() error // runs after a successful decode
}

func (c *Client) do(ctx context.Context, r request) (env *envelope, err error) {
	start := time.Now()
	defer func() { observe(r.op, start, err) }()

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to encode request: %w", r.op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, r.url, body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", r.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token, tokenErr := c.tokens.Token(ctx); tokenErr == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	hc := c.httpClient
	if r.slow {
		hc = c.slowClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, &TransportError{Op: r.op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &TransportError{Op: r.op, Err: err}
	}

	okStatus := resp.StatusCode >= 200 && resp.StatusCode < 300
	env = &envelope{}
	if err := json.Unmarshal(raw, env); err != nil {
		if !okStatus {
			return nil, &APIError{Op: r.op, StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, shapeError(r.op, "body is not a JSON envelope")
	}
	if !okStatus || !env.Success {
		return nil, &APIError{Op: r.op, StatusCode: resp.StatusCode, Message: env.Message}
	}

	if r.out != nil {
		if len(env.Data) == 0 || string(env.Data) == "null" {
			return nil, shapeError(r.op, "missing data")
		}
		if err := json.Unmarshal(env.Data, r.out); err != nil {
			return nil, shapeError(r.op, err.Error())
		}
	}
	if r.validate != nil {
		if err := r.validate(); err != nil {
			return nil, err
		}
	}
	return env, nil
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}
