package discord

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client defines the remote operations used during reconciliation.
type Client interface {
	// Identity returns the id of the application that owns the token.
	Identity(ctx context.Context) (string, error)
	// List returns every emoji registered against the application.
	List(ctx context.Context, appID string) ([]Emoji, error)
	// Create uploads image as a new emoji called name.
	Create(ctx context.Context, appID, name string, image []byte, mimeType string) (Emoji, error)
	// Delete removes the emoji with the given id.
	Delete(ctx context.Context, appID, emojiID string) error
}

// NewClient creates a Client that authenticates with the given bot token.
func NewClient(cfg Config, token string) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://discord.com/api/v10"
	}

	return &httpClient{
		http:      &http.Client{Transport: transport},
		baseURL:   baseURL,
		token:     token,
		userAgent: cfg.UserAgent,
	}
}

type httpClient struct {
	http      *http.Client
	baseURL   string
	token     string
	userAgent string
}

func (c *httpClient) Identity(ctx context.Context) (string, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/users/@me", nil)
	if err != nil {
		return "", fmt.Errorf("identity: %w", err)
	}
	if !isSuccess(status) {
		return "", &AuthError{Status: status, Message: "identity request rejected"}
	}

	var u user
	if err := json.Unmarshal(body, &u); err != nil {
		return "", fmt.Errorf("identity: decode response: %w", err)
	}
	if u.ID == "" {
		return "", &AuthError{Status: status, Message: "identity response has no id"}
	}
	return u.ID, nil
}

func (c *httpClient) List(ctx context.Context, appID string) ([]Emoji, error) {
	status, body, err := c.do(ctx, http.MethodGet, emojisPath(appID), nil)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	if !isSuccess(status) {
		return nil, &RemoteError{Op: "list", Status: status}
	}

	var list emojiList
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &list); err != nil {
			return nil, fmt.Errorf("list: decode response: %w", err)
		}
	}
	if list.Items == nil {
		return []Emoji{}, nil
	}
	return list.Items, nil
}

func (c *httpClient) Create(ctx context.Context, appID, name string, image []byte, mimeType string) (Emoji, error) {
	payload, err := json.Marshal(createEmojiRequest{
		Name:  name,
		Image: DataURI(image, mimeType),
	})
	if err != nil {
		return Emoji{}, fmt.Errorf("create %s: encode request: %w", name, err)
	}

	status, body, err := c.do(ctx, http.MethodPost, emojisPath(appID), payload)
	if err != nil {
		return Emoji{}, fmt.Errorf("create %s: %w", name, err)
	}

	if !isSuccess(status) {
		return Emoji{}, &RemoteError{Op: "create " + name, Status: status, Body: summarizeBody(body)}
	}
	var created Emoji
	if err := json.Unmarshal(body, &created); err != nil {
		return Emoji{}, &RemoteError{Op: "create " + name, Status: status, Body: summarizeBody(body), Err: fmt.Errorf("decode response: %w", err)}
	}
	// Some failures come back with a success-looking envelope and no id.
	if created.ID == "" {
		return Emoji{}, &RemoteError{Op: "create " + name, Status: status, Body: summarizeBody(body)}
	}
	if created.Name == "" {
		created.Name = name
	}
	return created, nil
}

func (c *httpClient) Delete(ctx context.Context, appID, emojiID string) error {
	status, _, err := c.do(ctx, http.MethodDelete, emojisPath(appID)+"/"+url.PathEscape(emojiID), nil)
	if err != nil {
		return fmt.Errorf("delete %s: %w", emojiID, err)
	}
	if !isSuccess(status) {
		return &RemoteError{Op: "delete " + emojiID, Status: status}
	}
	return nil
}

func (c *httpClient) do(ctx context.Context, method, path string, payload []byte) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response body: %w", err)
	}
	return resp.StatusCode, body, nil
}

// DataURI embeds image as a base64 data URI with the given MIME type.
func DataURI(image []byte, mimeType string) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(image)
}

func emojisPath(appID string) string {
	return "/applications/" + url.PathEscape(appID) + "/emojis"
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
