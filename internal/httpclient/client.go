// Package httpclient sends domain requests over HTTP and shapes the raw
// result back into a domain response with timing attached.
package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"saffron/internal/domain"
	"saffron/internal/version"
)

// Config controls the transport-level behavior shared by all sends.
type Config struct {
	TimeoutSeconds  int
	FollowRedirects bool
	MaxRedirects    int
	UserAgent       string
	MaxResponseSize int64
}

// DefaultConfig returns the stock client settings.
func DefaultConfig() Config {
	return Config{
		TimeoutSeconds:  30,
		FollowRedirects: true,
		MaxRedirects:    10,
		UserAgent:       "saffron/" + version.Plain,
		MaxResponseSize: 100 * 1024 * 1024,
	}
}

// Client sends requests. It is safe for concurrent use.
type Client struct {
	config Config
	inner  *http.Client
}

// New creates a client from the given config.
func New(config Config) *Client {
	inner := &http.Client{
		Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
	}
	if config.FollowRedirects {
		maxRedirects := config.MaxRedirects
		inner.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		}
	} else {
		inner.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}
	return &Client{config: config, inner: inner}
}

// Send performs the request and returns the response with elapsed time.
func (c *Client) Send(ctx context.Context, req *domain.Request) (*domain.Response, error) {
	if req.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(req.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	inner := c.inner
	if !req.FollowRedirects && c.config.FollowRedirects {
		// Per-request override of the configured redirect policy.
		clone := *c.inner
		clone.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
		inner = &clone
	}

	start := time.Now()
	httpResp, err := inner.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	reader := io.Reader(httpResp.Body)
	if c.config.MaxResponseSize > 0 {
		reader = io.LimitReader(httpResp.Body, c.config.MaxResponseSize)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	elapsed := time.Since(start)

	headers := make(map[string]string, len(httpResp.Header))
	for name := range httpResp.Header {
		headers[name] = httpResp.Header.Get(name)
	}

	return &domain.Response{
		Status:     httpResp.StatusCode,
		StatusText: statusText(httpResp),
		Headers:    headers,
		Body:       body,
		Elapsed:    elapsed,
		URL:        httpResp.Request.URL.String(),
	}, nil
}

func (c *Client) buildRequest(ctx context.Context, req *domain.Request) (*http.Request, error) {
	var reader io.Reader
	contentType := ""

	switch body := req.Body.(type) {
	case nil, domain.NoBody:
		reader = nil
	case domain.TextBody:
		reader = strings.NewReader(string(body))
		contentType = "text/plain; charset=utf-8"
	case domain.JSONBody:
		reader = strings.NewReader(string(body))
		contentType = "application/json; charset=utf-8"
	case domain.FormBody:
		reader = strings.NewReader(body.Encode())
		contentType = "application/x-www-form-urlencoded"
	case domain.BinaryBody:
		reader = bytes.NewReader(body)
		contentType = "application/octet-stream"
	default:
		return nil, fmt.Errorf("unsupported body type %T", req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), req.URL, reader)
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	httpReq.Header.Set("User-Agent", c.config.UserAgent)
	for _, h := range req.Headers {
		httpReq.Header.Set(h.Name, h.Value)
	}
	if contentType != "" {
		if _, explicit := req.ContentType(); !explicit {
			httpReq.Header.Set("Content-Type", contentType)
		}
	}

	return httpReq, nil
}

// statusText extracts the reason phrase, falling back to the stdlib table.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprintf("%d", resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
