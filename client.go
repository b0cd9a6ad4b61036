package lnpulse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lnpulse/lnpulse-go/sse"
)

// apiPrefix is the versioned path prefix shared by every endpoint.
const apiPrefix = "/v1"

// Client is the LNPulse API client. Create one with New and share it
// freely: configuration is read-only after construction and every request
// and stream decode is independent.
type Client struct {
	config Config

	// Wallets operates on the authenticated wallet.
	Wallets *WalletsService
	// Invoices creates, lists, and watches invoices.
	Invoices *InvoicesService
	// Payments sends, lists, and watches payments.
	Payments *PaymentsService
	// Addresses manages lightning addresses.
	Addresses *AddressesService
	// Transactions lists the wallet ledger.
	Transactions *TransactionsService
	// Webhooks manages webhook subscriptions.
	Webhooks *WebhooksService
	// APIKeys manages API keys.
	APIKeys *APIKeysService
	// Backup exports and restores wallet backups.
	Backup *BackupService
	// Events streams wallet-wide events.
	Events *EventsService
}

// New creates a client from the given configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	c := &Client{config: cfg}
	c.Wallets = &WalletsService{client: c}
	c.Invoices = &InvoicesService{client: c}
	c.Payments = &PaymentsService{client: c}
	c.Addresses = &AddressesService{client: c}
	c.Transactions = &TransactionsService{client: c}
	c.Webhooks = &WebhooksService{client: c}
	c.APIKeys = &APIKeysService{client: c}
	c.Backup = &BackupService{client: c}
	c.Events = &EventsService{client: c}
	return c, nil
}

// BaseURL returns the configured API root, without trailing slashes.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Response is the normalized result of one API request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Header holds the response headers.
	Header http.Header
	// Body is the raw response body.
	Body []byte
}

// do executes one request/response cycle and classifies non-2xx statuses
// into typed errors before the body is interpreted as a result.
func (c *Client) do(ctx context.Context, method, path string, body any) (*Response, error) {
	req, err := c.newRequest(ctx, method, path, body, "application/json")
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.config.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lnpulse: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("lnpulse: read response body: %w", err)
	}

	c.config.Logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	result := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       raw,
	}
	if apiErr := Classify(resp.StatusCode, raw); apiErr != nil {
		return result, apiErr
	}
	return result, nil
}

// stream opens a body-less GET against an event-stream endpoint and hands
// the raw body to the SSE decoder. A non-2xx handshake is classified before
// any chunk is read.
func (c *Client) stream(ctx context.Context, path string, requireType bool) (*sse.Stream, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "text/event-stream")
	if err != nil {
		return nil, err
	}

	resp, err := c.config.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lnpulse: open stream %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		return nil, Classify(resp.StatusCode, raw)
	}

	c.config.Logger.Debug().Str("path", path).Msg("event stream open")
	return sse.NewStream(resp.Body, requireType), nil
}

// newRequest constructs an *http.Request from the client configuration.
func (c *Client) newRequest(ctx context.Context, method, path string, body any, accept string) (*http.Request, error) {
	rd, contentType, err := encodeBody(body)
	if err != nil {
		return nil, fmt.Errorf("lnpulse: encode body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, rd)
	if err != nil {
		return nil, fmt.Errorf("lnpulse: create request: %w", err)
	}

	req.Header.Set("Accept", accept)
	req.Header.Set("X-Request-Id", uuid.NewString())
	for k, v := range c.config.Headers {
		req.Header.Set(k, v)
	}
	if rd != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	// L402 takes precedence over the bearer key; with neither configured
	// the Authorization header is omitted entirely.
	switch {
	case c.config.L402 != nil:
		req.Header.Set("Authorization", c.config.L402.Authorization())
	case c.config.APIKey != "":
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	return req, nil
}

// encodeBody converts a body value into an io.Reader and content type.
func encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	switch v := body.(type) {
	case io.Reader:
		return v, "", nil
	case []byte:
		return bytes.NewReader(v), "application/octet-stream", nil
	case string:
		return strings.NewReader(v), "text/plain", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

// decode interprets a successful response body as a value of type T.
// 204 and empty bodies yield the zero value. JSON responses are parsed;
// any other content type is returned as raw text, which requires T to be
// string.
func decode[T any](resp *Response) (T, error) {
	var out T
	if resp.StatusCode == http.StatusNoContent || len(resp.Body) == 0 {
		return out, nil
	}
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(resp.Body, &out); err != nil {
			return out, fmt.Errorf("lnpulse: decode response: %w", err)
		}
		return out, nil
	}
	if s, ok := any(&out).(*string); ok {
		*s = string(resp.Body)
		return out, nil
	}
	return out, fmt.Errorf("lnpulse: unexpected content type %q", resp.Header.Get("Content-Type"))
}

// get performs a GET request and decodes the response into type T.
func get[T any](ctx context.Context, c *Client, path string) (T, error) {
	return request[T](ctx, c, http.MethodGet, path, nil)
}

// post performs a POST request with an optional body and decodes the
// response into type T.
func post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return request[T](ctx, c, http.MethodPost, path, body)
}

// patch performs a PATCH request with a body and decodes the response into
// type T.
func patch[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return request[T](ctx, c, http.MethodPatch, path, body)
}

// del performs a DELETE request.
func del(ctx context.Context, c *Client, path string) error {
	_, err := request[struct{}](ctx, c, http.MethodDelete, path, nil)
	return err
}

// request executes a request and decodes the result.
func request[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](resp)
}
