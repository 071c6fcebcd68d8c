// Package storefront drives the configurator API the way the browser
// storefront does: it loads the catalog, tracks a selection, prices it,
// shares it as a link and walks the shopper through ordering.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"oss-kar/internal/model"
	"oss-kar/internal/shareurl"

	"github.com/rs/zerolog"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api error %d: %s (%s)", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client is a typed client for the configurator API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAPIKey sends key in the X-API-Key header.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client for the API served at baseURL.
func NewClient(baseURL string, logger zerolog.Logger, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger.With().Str("component", "storefront-client").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Options fetches the catalog.
func (c *Client) Options(ctx context.Context) (*model.Catalog, error) {
	var out model.Catalog
	if err := c.do(ctx, http.MethodGet, "/api/options", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Calculate prices sel.
func (c *Client) Calculate(ctx context.Context, sel model.Selection) (*model.Quote, error) {
	var out model.Quote
	if err := c.do(ctx, http.MethodPost, "/api/calculate", sel, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Generate requests a shareable link for sel.
func (c *Client) Generate(ctx context.Context, sel model.Selection) (*model.ShareLink, error) {
	var out model.ShareLink
	if err := c.do(ctx, http.MethodPost, "/api/generate", sel, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Resolve decodes and prices a shareable link on the server.
func (c *Client) Resolve(ctx context.Context, link string) (*model.ResolvedLink, error) {
	path := "/api/config"
	if q := shareurl.Query(shareurl.Decode(link)); q != "" {
		path += "?" + q
	}

	var out model.ResolvedLink
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlaceOrder submits an order.
func (c *Client) PlaceOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	var out model.OrderResponse
	if err := c.do(ctx, http.MethodPost, "/api/order", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Order fetches a stored order.
func (c *Client) Order(ctx context.Context, id int64) (*model.OrderDetails, error) {
	var out model.OrderDetails
	path := "/api/orders/" + url.PathEscape(strconv.FormatInt(id, 10))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("request_id", resp.Header.Get("X-Request-ID")).
		Msg("api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var er model.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&er); err == nil && er.Error != "" {
			apiErr.Message = er.Error
			apiErr.Details = er.Details
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}

	return nil
}
