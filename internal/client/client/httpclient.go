package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/authdemo/internal/client/models"
	"github.com/dmitrijs2005/authdemo/internal/common"
	"github.com/dmitrijs2005/authdemo/internal/logging"
)

const usersPath = "/users"

// HTTPClient talks JSON to the record store. Every request goes through
// authTransport, which attaches the stored token and reacts to 401s.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	logger  logging.Logger
}

type options struct {
	tokens         TokenSource
	onUnauthorized UnauthorizedHandler
	timeout        time.Duration
	base           http.RoundTripper
}

type Option func(*options)

// WithTokenSource makes every request carry "Authorization: Bearer <token>"
// whenever ts yields a non-empty token.
func WithTokenSource(ts TokenSource) Option {
	return func(o *options) { o.tokens = ts }
}

// WithUnauthorizedHandler installs the hook run on any 401 response.
func WithUnauthorizedHandler(h UnauthorizedHandler) Option {
	return func(o *options) { o.onUnauthorized = h }
}

// WithTimeout caps each request. Zero, the default, means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithRoundTripper replaces the underlying transport (tests use it).
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(o *options) { o.base = rt }
}

func NewHTTPClient(baseURL string, logger logging.Logger, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse record store url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("record store url %q: scheme must be http or https", baseURL)
	}

	o := options{base: http.DefaultTransport}
	for _, opt := range opts {
		opt(&o)
	}

	logger = logger.With("module", "record_store_client")

	return &HTTPClient{
		baseURL: u,
		logger:  logger,
		http: &http.Client{
			Timeout: o.timeout,
			Transport: &authTransport{
				base:           o.base,
				tokens:         o.tokens,
				onUnauthorized: o.onUnauthorized,
				logger:         logger,
			},
		},
	}, nil
}

// ListUsers fetches the full record list, in store order.
func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.UserRecord, error) {
	var users []models.UserRecord
	if err := c.do(ctx, http.MethodGet, usersPath, nil, http.StatusOK, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser submits a new record. A 400 or 409 answer becomes ErrConflict.
func (c *HTTPClient) CreateUser(ctx context.Context, u models.NewUser) (*models.UserRecord, error) {
	var created models.UserRecord
	if err := c.do(ctx, http.MethodPost, usersPath, u, http.StatusCreated, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, http.StatusOK, nil)
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any, want int, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug(ctx, "request failed", "method", method, "path", path, "error", err)
		return errors.Join(ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return mapStatus(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %v", ErrUnexpectedResponse, method, path, err)
	}
	return nil
}

func mapStatus(resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	detail := fmt.Sprintf("%s: %s", resp.Status, strings.TrimSpace(string(msg)))

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case resp.StatusCode == http.StatusBadRequest, resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, detail)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s", ErrUnavailable, detail)
	default:
		return fmt.Errorf("%w: %s", ErrUnexpectedResponse, detail)
	}
}

// authTransport is the request/response interceptor pair of the client.
type authTransport struct {
	base           http.RoundTripper
	tokens         TokenSource
	onUnauthorized UnauthorizedHandler
	logger         logging.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	if t.tokens != nil {
		tok, err := t.tokens.Token(ctx)
		if err != nil {
			t.logger.Warn(ctx, "token lookup failed, sending request without it", "error", err)
		}
		if tok != "" {
			req = req.Clone(ctx)
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
		}
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		t.logger.Warn(ctx, "record store rejected the session", "method", req.Method, "path", req.URL.Path)
		if t.onUnauthorized != nil {
			t.onUnauthorized(ctx)
		}
	}
	return resp, nil
}
