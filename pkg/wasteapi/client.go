package wasteapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/wastetrack/authprobe/pkg/common"
	"github.com/wastetrack/authprobe/pkg/context"
)

const (
	// EnvAPIURL is the environment variable consulted when no explicit base
	// URL is given.
	EnvAPIURL = "WASTE_API_URL"

	// DefaultBaseURL is the local development server.
	DefaultBaseURL = "http://localhost:5000/api"
)

// ResolveBaseURL picks the base URL for the waste-management API. An explicit
// value wins, then $WASTE_API_URL, then the local default. Resolution happens
// once, at client construction.
func ResolveBaseURL(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if fromEnv := os.Getenv(EnvAPIURL); fromEnv != "" {
		return fromEnv
	}
	return DefaultBaseURL
}

// Result is the typed outcome of a single request. Exactly one of Ok,
// HTTPError, or TransportError.
type Result interface {
	isResult()
}

// Ok is a 2xx response with a JSON-parseable body.
type Ok struct {
	StatusCode int
	Body       json.RawMessage
}

// HTTPError is a non-2xx response with a JSON-parseable body.
type HTTPError struct {
	StatusCode int
	Body       json.RawMessage
}

// TransportError is a request that produced no usable HTTP response: network,
// DNS, or timeout failure, or a body that is not valid JSON.
type TransportError struct {
	Reason string
}

func (Ok) isResult()             {}
func (HTTPError) isResult()      {}
func (TransportError) isResult() {}

// Client is a minimal JSON client for the waste-management service API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures how we set up the client.
type ClientOption func(*Client)

// WithHTTPClient allows overriding the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

// New creates a client for the API at baseURL. An empty baseURL falls back to
// $WASTE_API_URL and then the local default. The login probe must never
// retry, so the client is built with retries disabled.
func New(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    ResolveBaseURL(baseURL),
		httpClient: common.RetryableHTTPClient(common.WithMaxRetries(0)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the resolved base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Post sends payload as JSON to path under the base URL and returns exactly
// one Result. One outbound request per call, no caching, no auth.
func (c *Client) Post(ctx context.Context, path string, payload any) Result {
	ctx.Logger().V(2).Info("sending request", "path", path)

	body, err := json.Marshal(payload)
	if err != nil {
		return TransportError{Reason: fmt.Sprintf("marshaling request body: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return TransportError{Reason: fmt.Sprintf("building request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return TransportError{Reason: err.Error()}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return TransportError{Reason: fmt.Sprintf("reading response body: %v", err)}
	}
	if !json.Valid(raw) {
		return TransportError{Reason: fmt.Sprintf("unparseable response body (status %d)", resp.StatusCode)}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Ok{StatusCode: resp.StatusCode, Body: json.RawMessage(raw)}
	}
	return HTTPError{StatusCode: resp.StatusCode, Body: json.RawMessage(raw)}
}
