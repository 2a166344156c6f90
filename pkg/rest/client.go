// Package rest is the outbound Discord REST client. It sends JSON
// bodies, or multipart bodies when file uploads are attached, and
// returns the decoded response. There is no retry logic here; transport
// failures are wrapped and propagated to the caller.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"go.uber.org/zap"

	"hookbot/pkg/discord"
	"hookbot/pkg/logger"
	"hookbot/pkg/version"
)

// APIBase is the Discord REST API root.
const APIBase = "https://discord.com/api/v10"

// Client is a thin Discord REST client, safe for concurrent use.
type Client struct {
	http    *http.Client
	log     *logger.Logger
	token   string
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Tests point this at a local
// server.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = base }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a REST client authenticated with the given bot token.
func New(token string, log *logger.Logger, opts ...Option) *Client {
	c := &Client{
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		log:     log,
		token:   token,
		baseURL: APIBase,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Post issues a POST. Files switch the body to multipart encoding.
func (c *Client) Post(ctx context.Context, path string, payload any, files []*discord.File) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, payload, files)
}

// Put issues a PUT.
func (c *Client) Put(ctx context.Context, path string, payload any, files []*discord.File) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, payload, files)
}

// Patch issues a PATCH. Files switch the body to multipart encoding.
func (c *Client) Patch(ctx context.Context, path string, payload any, files []*discord.File) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, path, payload, files)
}

func (c *Client) do(ctx context.Context, method, path string, payload any, files []*discord.File) (json.RawMessage, error) {
	var body io.Reader
	contentType := "application/json"

	if len(files) > 0 {
		buf, ct, err := encodeMultipart(payload, files)
		if err != nil {
			return nil, err
		}
		body = buf
		contentType = ct
	} else if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", version.UserAgent())
	if c.token != "" {
		req.Header.Set("Authorization", "Bot "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: reading response: %w", method, path, err)
	}

	c.log.Debug("discord api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s: discord returned %d: %s", method, path, resp.StatusCode, truncate(data, 256))
	}
	return data, nil
}

// encodeMultipart builds a multipart body with the JSON payload in a
// payload_json field and each file in an indexed files[i] part, the
// shape Discord requires for uploads.
func encodeMultipart(payload any, files []*discord.File) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, "", fmt.Errorf("encoding payload_json: %w", err)
		}
		if err := w.WriteField("payload_json", string(data)); err != nil {
			return nil, "", fmt.Errorf("writing payload_json: %w", err)
		}
	}

	for i, f := range files {
		part, err := w.CreateFormFile(fmt.Sprintf("files[%d]", i), f.Name)
		if err != nil {
			return nil, "", fmt.Errorf("creating file part %d: %w", i, err)
		}
		data, err := f.Read()
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(data); err != nil {
			return nil, "", fmt.Errorf("writing file part %d: %w", i, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

func truncate(data []byte, n int) string {
	if len(data) > n {
		return string(data[:n]) + "..."
	}
	return string(data)
}
