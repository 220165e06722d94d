package blogclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	connectTimeout = 30 * time.Second

	// requestTimeout bounds the whole exchange. Summary generation can take
	// over a minute, so this is deliberately generous.
	requestTimeout = 90 * time.Second
)

// Client talks to the blog platform API. All methods are safe for concurrent
// use.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// New creates a Client for the API served at baseURL. Pass a nil httpClient
// to use the default timeouts.
func New(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				DialContext:         (&net.Dialer{Timeout: connectTimeout}).DialContext,
				TLSHandshakeTimeout: connectTimeout,
			},
		}
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  httpClient,
		logger:  logger,
	}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ResolveHeroBanner turns an origin-relative hero banner path into an
// absolute URL against the API origin. Absolute URLs pass through untouched.
func (c *Client) ResolveHeroBanner(ref string) string {
	if ref == "" {
		return ""
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}

	if strings.HasPrefix(ref, "/") {
		base, err := url.Parse(c.baseURL)
		if err != nil {
			return ref
		}
		return base.Scheme + "://" + base.Host + ref
	}

	return ref
}

func (c *Client) Register(ctx context.Context, username, email, password string) (*AuthResponse, error) {
	var res AuthResponse
	err := c.do(ctx, http.MethodPost, "/register", "", registerRequest{Username: username, Email: email, Password: password}, &res)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	var res AuthResponse
	err := c.do(ctx, http.MethodPost, "/login", "", loginRequest{Username: username, Password: password}, &res)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// ListPosts fetches the full post collection in server order.
func (c *Client) ListPosts(ctx context.Context) ([]Post, error) {
	var res postsResponse
	err := c.do(ctx, http.MethodGet, "/posts", "", nil, &res)
	if err != nil {
		return nil, err
	}

	return res.Posts, nil
}

// GetPost fetches a single post. The server routes by either the identifier
// or the slug, so the argument is passed through opaquely.
func (c *Client) GetPost(ctx context.Context, idOrSlug string) (*Post, error) {
	var res postEnvelope
	err := c.do(ctx, http.MethodGet, "/posts/"+url.PathEscape(idOrSlug), "", nil, &res)
	if err != nil {
		return nil, err
	}

	return res.post(), nil
}

// SearchPosts runs a server-side search. Ranking and matching semantics are
// the server's.
func (c *Client) SearchPosts(ctx context.Context, query string) ([]Post, error) {
	v := url.Values{}
	v.Set("q", query)

	var res postsResponse
	err := c.do(ctx, http.MethodGet, "/posts/search?"+v.Encode(), "", nil, &res)
	if err != nil {
		return nil, err
	}

	return res.Posts, nil
}

func (c *Client) PostsByTag(ctx context.Context, tag string) ([]Post, error) {
	var res postsResponse
	err := c.do(ctx, http.MethodGet, "/posts/by-tag/"+url.PathEscape(tag), "", nil, &res)
	if err != nil {
		return nil, err
	}

	return res.Posts, nil
}

func (c *Client) CreatePost(ctx context.Context, token string, fields *PostFields) (*Post, error) {
	var res postEnvelope
	err := c.do(ctx, http.MethodPost, "/posts", token, fields, &res)
	if err != nil {
		return nil, err
	}

	return res.post(), nil
}

func (c *Client) UpdatePost(ctx context.Context, token, id string, fields *PostFields) (*Post, error) {
	var res postEnvelope
	err := c.do(ctx, http.MethodPut, "/posts/"+url.PathEscape(id), token, fields, &res)
	if err != nil {
		return nil, err
	}

	return res.post(), nil
}

func (c *Client) DeletePost(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+url.PathEscape(id), token, nil, nil)
}

// GenerateSummary asks the server for an AI-generated summary of the post.
// This call is slow; callers that want a bounded wait must pass a context
// with a deadline.
func (c *Client) GenerateSummary(ctx context.Context, slug string) (string, error) {
	var res summaryResponse
	err := c.do(ctx, http.MethodGet, "/generate-summary/"+url.PathEscape(slug), "", nil, &res)
	if err != nil {
		return "", err
	}

	return res.Summary, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body, dst any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("api request", slog.String("method", method), slog.String("path", path))

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}

	if res.StatusCode >= 400 {
		apiErr := newAPIError(res.StatusCode, data)
		c.logger.Debug("api error", slog.String("path", path), slog.Int("status", res.StatusCode), slog.String("message", apiErr.Message))
		return apiErr
	}

	if dst != nil {
		if err := json.Unmarshal(data, dst); err != nil {
			return fmt.Errorf("%w: %v", ErrDecode, err)
		}
	}

	return nil
}
