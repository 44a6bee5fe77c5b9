// Package nsapi is a client for the NS travel information API
// (reisinformatie-api).
package nsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nstravel/pkg/nsdata"
)

const DefaultBaseURL = "https://gateway.apiportal.ns.nl/reisinformatie-api"

// KeyHeader carries the subscription key of the API portal.
const KeyHeader = "Ocp-Apim-Subscription-Key"

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
	decodeOpts []nsdata.Option
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithStrictDecoding fails responses that lack required fields.
func WithStrictDecoding() Option {
	return func(c *Client) { c.decodeOpts = append(c.decodeOpts, nsdata.WithStrict()) }
}

func New(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "nsapi")
	c.decodeOpts = append(c.decodeOpts, nsdata.WithLogger(c.logger))
	return c
}

// Raw issues a GET against path and returns the decoded JSON body. Numbers
// are kept as json.Number.
func (c *Client) Raw(ctx context.Context, path string, params url.Values) (map[string]any, error) {
	reqURL := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	if c.apiKey != "" {
		req.Header.Set(KeyHeader, c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request done",
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return body, nil
}

func getInto[T any](ctx context.Context, c *Client, path string, params url.Values, decode func(map[string]any, ...nsdata.Option) (T, error)) (T, error) {
	var zero T
	body, err := c.Raw(ctx, path, params)
	if err != nil {
		return zero, err
	}
	out, err := decode(body, c.decodeOpts...)
	if err != nil {
		return zero, fmt.Errorf("mapping %s: %w", path, err)
	}
	return out, nil
}

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %d %s", e.StatusCode, e.Message)
}

type errorBody struct {
	Message string `json:"message"`
	Errors  []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(data) == 0 {
		return apiErr
	}

	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		return apiErr
	}
	switch {
	case body.Message != "":
		apiErr.Message = body.Message
	case len(body.Errors) > 0 && body.Errors[0].Message != "":
		apiErr.Message = body.Errors[0].Message
	}
	return apiErr
}
