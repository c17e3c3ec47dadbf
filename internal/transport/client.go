// Package transport implements the authenticated JSON call shared by the
// calendar and messaging clients.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/diegoclair/daily-commit-bot/internal/domain/apperr"
)

const (
	DefaultTimeout            = 10 * time.Second
	defaultMaxBodyBytes int64 = 10 << 20 // 10 MiB

	authorizationHeaderKey = "Authorization"
	contentTypeHeaderKey   = "Content-Type"
	jsonContentType        = "application/json"
)

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues bearer-token authenticated JSON requests against one provider.
type Client struct {
	Provider     string
	HTTP         HTTPDoer
	Token        string
	Headers      map[string]string
	MaxBodyBytes int64
}

func NewClient(provider, token string, doer HTTPDoer) *Client {
	if doer == nil {
		doer = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		Provider:     provider,
		HTTP:         doer,
		Token:        token,
		Headers:      map[string]string{},
		MaxBodyBytes: defaultMaxBodyBytes,
	}
}

// PostJSON posts payload to url and decodes a successful response into out.
// out may be nil when the response body is irrelevant.
func (c *Client) PostJSON(ctx context.Context, url string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshalling %s request body: %w", c.Provider, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating %s http request: %w", c.Provider, err)
	}

	req.Header.Set(contentTypeHeaderKey, jsonContentType)
	req.Header.Set(authorizationHeaderKey, "Bearer "+c.Token)
	for key, value := range c.Headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return apperr.Unavailable(err, c.Provider)
	}
	defer resp.Body.Close()

	limit := c.MaxBodyBytes
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return apperr.Unavailable(err, c.Provider)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperr.Rejected(c.Provider, resp.StatusCode, string(data))
	}

	if int64(len(data)) > limit {
		return apperr.Malformed(nil, c.Provider, fmt.Sprintf("response body exceeds %d bytes", limit))
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return apperr.Malformed(err, c.Provider, "error unmarshalling response body")
	}

	return nil
}
