// Package webapi implements the HTTP plumbing shared by every Steam WebAPI interface: building the request
// url from a fixed base, encoding query parameters, dispatching GET requests and decoding the JSON response
// into a typed value.
package webapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/leighmacdonald/steamwebapi/pkg/json"
	"github.com/leighmacdonald/steamwebapi/pkg/log"
	"github.com/leighmacdonald/steamwebapi/pkg/sliceutil"
)

const (
	DefaultBaseURL   = "https://api.steampowered.com"
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "steamwebapi (+https://github.com/leighmacdonald/steamwebapi)"
)

// Config controls how the client reaches the WebAPI. The zero value is usable.
type Config struct {
	// BaseURL overrides DefaultBaseURL, mostly useful for tests.
	BaseURL string
	// HTTPClient is used as-is when set, Timeout is then ignored.
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
	Logger     *slog.Logger
	// RetainPayload keeps the response body on DecodeError for diagnostics.
	RetainPayload bool
}

// Client is the one http client shared by all interface facades. It holds no per request state and is safe
// for concurrent use.
type Client struct {
	baseURL       *url.URL
	httpClient    *http.Client
	userAgent     string
	logger        *slog.Logger
	retainPayload bool
}

// New constructs a Client, falling back to defaults for anything left unset. An unparsable BaseURL falls back
// to DefaultBaseURL.
func New(cfg Config) *Client {
	baseURL, errParse := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if cfg.BaseURL == "" || errParse != nil || baseURL.Host == "" {
		baseURL, _ = url.Parse(DefaultBaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: sliceutil.FirstPositive(cfg.Timeout, DefaultTimeout)}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:       baseURL,
		httpClient:    httpClient,
		userAgent:     userAgent,
		logger:        logger,
		retainPayload: cfg.RetainPayload,
	}
}

// BaseURL returns the root every endpoint path is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Get performs a GET against path with params encoded as the query string and decodes the body into T.
func Get[T any](ctx context.Context, client *Client, path string, params any) (T, error) {
	var result T

	body, errBody := client.get(ctx, path, params)
	if errBody != nil {
		return result, errBody
	}

	value, errDecode := json.Unmarshal[T](body.payload)
	if errDecode != nil {
		decodeErr := &DecodeError{URL: body.url, Err: errDecode}
		if client.retainPayload {
			decodeErr.Payload = body.payload
		}

		return result, decodeErr
	}

	return value, nil
}

type rawResponse struct {
	url     string
	payload []byte
}

func (c *Client) get(ctx context.Context, path string, params any) (rawResponse, error) {
	values, errValues := Values(params)
	if errValues != nil {
		return rawResponse{}, errValues
	}

	endpoint := c.baseURL.JoinPath(path)
	endpoint.RawQuery = values.Encode()
	logURL := redactKey(endpoint)

	req, errReq := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if errReq != nil {
		return rawResponse{}, errors.Join(errReq, ErrRequestCreate)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()

	resp, errResp := c.httpClient.Do(req)
	if errResp != nil {
		errTransport := scrubURLError(errResp)
		c.logger.Debug("Steam WebAPI request failed", slog.String("path", path), log.ErrAttr(errTransport))

		return rawResponse{}, &TransportError{Method: http.MethodGet, URL: logURL, Err: errTransport}
	}

	defer log.Closer(resp.Body)

	body, errRead := io.ReadAll(resp.Body)
	if errRead != nil {
		return rawResponse{}, &TransportError{Method: http.MethodGet, URL: logURL, Err: errRead}
	}

	c.logger.Debug("Steam WebAPI request",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return rawResponse{}, &HTTPStatusError{
			Method:     http.MethodGet,
			URL:        logURL,
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	return rawResponse{url: logURL, payload: body}, nil
}

// scrubURLError strips the request url from *url.Error, it embeds the api key otherwise.
func scrubURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}

	return err
}
