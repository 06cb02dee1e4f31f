package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const userAgent = "signdesk/1.0"

// Client talks to the contract backend. It keeps the session cookie set by
// Login in its jar, so one Client is one signed-in user.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient uses a copy of h. Options applied after it and the default
// cookie jar change the copy, never h itself.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		cp := *h
		c.httpClient = &cp
	}
}

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

func NewClient(baseURL string, opts ...Option) *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Jar: jar},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient.Jar == nil {
		c.httpClient.Jar = jar
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// NewRequestID returns the value sent in X-Request-ID.
func NewRequestID() string {
	return "req_" + uuid.NewString()
}

type request struct {
	method      string
	path        string
	body        []byte
	contentType string
	accept      string
}

// do sends req and returns the raw body of a 2xx response.
func (c *Client) do(ctx context.Context, req request) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, bytes.NewReader(req.body))
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", req.method, req.path, err)
	}
	reqID := NewRequestID()
	accept := req.accept
	if accept == "" {
		accept = "application/json"
	}
	httpReq.Header.Set("Accept", accept)
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("X-Request-ID", reqID)
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[API] %s %s failed: %v", req.method, req.path, err)
		return nil, fmt.Errorf("%s %s: %w", req.method, req.path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", req.method, req.path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseError(resp.StatusCode, body)
		apiErr.RequestID = reqID
		log.Printf("[API] %s %s -> %d: %s", req.method, req.path, resp.StatusCode, apiErr.Message)
		return nil, apiErr
	}
	return body, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.do(ctx, request{method: http.MethodGet, path: path})
	if err != nil {
		return err
	}
	return decode(path, body, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
	}
	body, err := c.do(ctx, request{method: method, path: path, body: payload, contentType: "application/json"})
	if err != nil {
		return err
	}
	return decode(path, body, out)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	body, err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        path,
		body:        []byte(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	})
	if err != nil {
		return err
	}
	return decode(path, body, out)
}

// postMultipart builds a multipart/form-data body with fill and posts it.
func (c *Client) postMultipart(ctx context.Context, path string, fill func(*multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := fill(mw); err != nil {
		return fmt.Errorf("build form %s: %w", path, err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("build form %s: %w", path, err)
	}
	body, err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        path,
		body:        buf.Bytes(),
		contentType: mw.FormDataContentType(),
	})
	if err != nil {
		return err
	}
	return decode(path, body, out)
}

func (c *Client) getBytes(ctx context.Context, path, accept string) ([]byte, error) {
	return c.do(ctx, request{method: http.MethodGet, path: path, accept: accept})
}

func decode(path string, body []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
