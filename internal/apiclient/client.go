package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"odyssweb/internal/domain"
	"odyssweb/internal/session"
	"odyssweb/internal/utils"
)

// Client wraps the Odyss backend API: base URL joining, bearer injection
// from the session store, and transparent token refresh. Services never
// touch tokens themselves.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	store         *session.Store
	refreshWindow time.Duration
	now           func() time.Time

	refreshMu sync.Mutex
}

type Options struct {
	BaseURL       string
	Timeout       time.Duration
	RefreshWindow time.Duration
	HTTPClient    *http.Client
	Now           func() time.Time
}

func New(store *session.Store, opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	window := opts.RefreshWindow
	if window <= 0 {
		window = 5 * time.Minute
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Client{
		baseURL:       strings.TrimRight(opts.BaseURL, "/"),
		httpClient:    httpClient,
		store:         store,
		refreshWindow: window,
		now:           now,
	}
}

// Store exposes the session store the client persists tokens into.
func (c *Client) Store() *session.Store { return c.store }

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out, false)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out, false)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out, false)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, out, false)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", out, false)
}

// GetPublic and PostPublic skip bearer injection and the refresh cycle.
// Auth endpoints use them so a failed login never churns stored tokens.
func (c *Client) GetPublic(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out, true)
}

func (c *Client) PostPublic(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out, true)
}

// PostMultipart sends a multipart form built by fill. Used for avatar and
// intro video uploads.
func (c *Client) PostMultipart(ctx context.Context, path string, fill func(*multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := fill(w); err != nil {
		return fmt.Errorf("build multipart form: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart form: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, nil, buf.Bytes(), w.FormDataContentType(), out, false)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any, public bool) error {
	var payload []byte
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = raw
	}
	return c.do(ctx, method, path, nil, payload, "application/json", out, public)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, contentType string, out any, public bool) error {
	if !public {
		if err := c.refreshIfExpiring(ctx); err != nil {
			return err
		}
	}

	status, raw, err := c.execute(ctx, method, path, query, body, contentType, public)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && !public {
		if err := c.refresh(ctx); err != nil {
			return err
		}
		status, raw, err = c.execute(ctx, method, path, query, body, contentType, public)
		if err != nil {
			return err
		}
		// A 401 on the refreshed token means the session is beyond
		// repair; tear it down rather than retry again.
		if status == http.StatusUnauthorized {
			utils.LogEvent("", "apiclient", "still_unauthorized", method+" "+path)
			c.store.Clear()
			return fmt.Errorf("%w: unauthorized after token refresh", domain.ErrSessionExpired)
		}
	}

	if status < 200 || status > 299 {
		return &domain.APIError{Status: status, Message: extractMessage(raw)}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) execute(ctx context.Context, method, path string, query url.Values, body []byte, contentType string, public bool) (int, []byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if !public {
		if access, _ := c.store.Tokens(); access != "" {
			req.Header.Set("Authorization", "Bearer "+access)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, raw, nil
}

// RefreshIfExpiring renews the access token when its expiry falls within
// the refresh window. Used by the keepalive sweep between requests.
func (c *Client) RefreshIfExpiring(ctx context.Context) error {
	return c.refreshIfExpiring(ctx)
}

// refreshIfExpiring renews the access token ahead of its expiry so a
// request in flight does not race the deadline.
func (c *Client) refreshIfExpiring(ctx context.Context) error {
	access, refresh := c.store.Tokens()
	if access == "" || refresh == "" {
		return nil
	}
	if !ExpiresWithin(access, c.refreshWindow, c.now()) {
		return nil
	}
	return c.refresh(ctx)
}

// refresh exchanges the stored refresh token for a new access token. On
// failure the whole session is cleared and ErrSessionExpired returned.
func (c *Client) refresh(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	_, refreshToken := c.store.Tokens()
	if refreshToken == "" {
		c.store.Clear()
		return domain.ErrSessionExpired
	}

	payload, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return fmt.Errorf("encode refresh request: %w", err)
	}
	status, raw, err := c.execute(ctx, http.MethodPost, "/auth/token/refresh", nil, payload, "application/json", true)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		utils.LogEvent("", "apiclient", "refresh_failed", fmt.Sprintf("status=%d", status))
		c.store.Clear()
		return fmt.Errorf("%w: refresh rejected with status %d", domain.ErrSessionExpired, status)
	}

	var body struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.AccessToken == "" {
		utils.LogEvent("", "apiclient", "refresh_failed", "malformed refresh response")
		c.store.Clear()
		return fmt.Errorf("%w: malformed refresh response", domain.ErrSessionExpired)
	}
	if err := c.store.SetTokens(body.AccessToken, body.RefreshToken); err != nil {
		return fmt.Errorf("persist refreshed tokens: %w", err)
	}
	return nil
}

// extractMessage pulls the server's error text out of the usual shapes:
// {"detail": ...}, {"message": ...}, {"error": ...}, or a bare string.
func extractMessage(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err == nil {
		for _, key := range []string{"detail", "message", "error"} {
			v, ok := obj[key]
			if !ok {
				continue
			}
			var s string
			if err := json.Unmarshal(v, &s); err == nil && s != "" {
				return s
			}
			// detail may itself be a list of field errors
			var list []map[string]any
			if err := json.Unmarshal(v, &list); err == nil && len(list) > 0 {
				if msg, ok := list[0]["msg"].(string); ok {
					return msg
				}
			}
		}
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return ""
}
