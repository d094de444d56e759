// Package graphql is the HTTP transport the probes share: it POSTs one GraphQL document per
// call and classifies failures into HTTP, no-response, and other errors.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	consts "github.com/khanhnv2901/gqlaudit/internal/shared/constants"
	sharedErrors "github.com/khanhnv2901/gqlaudit/internal/shared/errors"
)

// Client posts GraphQL documents. The zero value uses a client with DefaultHTTPTimeout.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// MaxBodyBytes caps a 2xx body; longer bodies fail instead of being cut. Zero means
	// MaxResponseBytes.
	MaxBodyBytes int64
}

// NewClient builds a Client whose requests are bounded by timeout.
func NewClient(timeout time.Duration, userAgent string) *Client {
	if timeout <= 0 {
		timeout = consts.DefaultHTTPTimeout
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		UserAgent:  userAgent,
	}
}

// Response is a complete 2xx answer.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

type requestBody struct {
	Query string `json:"query"`
}

// Post sends query to endpoint with the given extra headers. Any returned error is a
// *TransportError.
func (c *Client) Post(ctx context.Context, endpoint, query string, headers http.Header) (*Response, error) {
	payload, err := json.Marshal(requestBody{Query: query})
	if err != nil {
		return nil, newOtherError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, newOtherError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	for key, values := range headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, classifyDoError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, c.maxBodyBytes()))
		return nil, newHTTPError(resp)
	}

	limit := c.maxBodyBytes()
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, &TransportError{Kind: KindNoResponse, Err: err}
	}
	if int64(len(body)) > limit {
		return nil, newOtherError(fmt.Errorf("%w: over %d bytes", sharedErrors.ErrResponseTooLarge, limit))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       body,
	}, nil
}

func (c *Client) maxBodyBytes() int64 {
	if c.MaxBodyBytes > 0 {
		return c.MaxBodyBytes
	}
	return consts.MaxResponseBytes
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: consts.DefaultHTTPTimeout}
}
