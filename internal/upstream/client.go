// Package upstream provides the HTTP client for the radio directory API.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the public radio directory API.
	DefaultBaseURL = "https://radio.garden/api"

	defaultTimeout = 8 * time.Second
)

var (
	// ErrUnavailable marks transport failures and non-2xx directory
	// responses. Callers with a fallback strategy treat it as "no candidate
	// from this source".
	ErrUnavailable = errors.New("upstream unavailable")

	// ErrMalformed marks a 2xx response whose body was not the expected
	// JSON. It is kept distinct from ErrUnavailable so operators can tell
	// protocol drift from outages.
	ErrMalformed = errors.New("malformed upstream response")
)

// Client talks to the directory's metadata endpoints.
type Client struct {
	rc  *resty.Client
	log zerolog.Logger
}

// NewClient creates a directory client. An empty baseURL or zero timeout
// falls back to the defaults.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		rc: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout),
		log: log,
	}
}

// BaseURL returns the configured directory base URL.
func (c *Client) BaseURL() string {
	return c.rc.BaseURL
}

// get performs a GET and returns the raw body, mapping failures to the
// package's error taxonomy.
func (c *Client) get(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	req := c.rc.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrUnavailable, path, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrUnavailable, path, resp.StatusCode())
	}
	return resp.Body(), nil
}

// getJSON fetches a path and decodes its body into v, reporting a 2xx
// non-JSON body as ErrMalformed.
func (c *Client) getJSON(ctx context.Context, path string, params map[string]string, v any) ([]byte, error) {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, v); err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("upstream body is not valid JSON")
		return nil, fmt.Errorf("%w: GET %s: %v", ErrMalformed, path, err)
	}
	return body, nil
}

// Geo returns the caller geolocation object, passed through unmodified.
func (c *Client) Geo(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	_, err := c.getJSON(ctx, "/geo", nil, &raw)
	return raw, err
}

// Places returns the directory's place list body.
func (c *Client) Places(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	_, err := c.getJSON(ctx, "/ara/content/places", nil, &raw)
	return raw, err
}

// Place returns the detail body for one place.
func (c *Client) Place(ctx context.Context, placeID string) (json.RawMessage, error) {
	var raw json.RawMessage
	_, err := c.getJSON(ctx, "/ara/content/page/"+placeID, nil, &raw)
	return raw, err
}

// PlaceChannels returns the channel listing body for one place.
func (c *Client) PlaceChannels(ctx context.Context, placeID string) (json.RawMessage, error) {
	var raw json.RawMessage
	_, err := c.getJSON(ctx, "/ara/content/page/"+placeID+"/channels", nil, &raw)
	return raw, err
}

// Channel fetches channel details by ID, returning both the parsed envelope
// and the raw body for passthrough.
func (c *Client) Channel(ctx context.Context, channelID string) (*ChannelDetail, json.RawMessage, error) {
	var detail ChannelDetail
	body, err := c.getJSON(ctx, "/ara/content/channel/"+channelID, nil, &detail)
	if err != nil {
		return nil, nil, err
	}
	return &detail, body, nil
}

// Search runs the full-text search endpoint, returning both the parsed hits
// and the raw body for passthrough.
func (c *Client) Search(ctx context.Context, query string) (*SearchResult, json.RawMessage, error) {
	var result SearchResult
	body, err := c.getJSON(ctx, "/search", map[string]string{"q": query}, &result)
	if err != nil {
		return nil, nil, err
	}
	return &result, body, nil
}
