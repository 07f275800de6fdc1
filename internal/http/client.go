package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// Static errors for err113 compliance.
var (
	ErrMethodRequired = errors.New("request method is required")
)

// HeaderSource supplies the default headers of every request. It is
// satisfied by auth.Session.
type HeaderSource interface {
	// Headers returns a fresh header set carrying version.
	Headers(version recharge.Version) http.Header
	// Version returns the session's default version.
	Version() recharge.Version
}

// Client is the shared transport used by every resource client. It holds
// no per-call state and is safe for concurrent use.
type Client struct {
	baseURL      string
	session      HeaderSource
	httpClient   *http.Client
	logger       recharge.Logger
	debug        bool
	userAgent    string
	retryMax     int
	retryDelay   time.Duration
	retryWaitMax time.Duration
	backoff      BackoffStrategy
	interceptors *recharge.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// Request describes one logical call. URL is absolute, or a path joined to
// the base URL. Version selects the API version of this call only; empty
// means the session default.
type Request struct {
	Method  string
	URL     string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
	Version recharge.Version
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	URL        *url.URL
	Retries    int
	RateLimit  string
}

// NewClient creates a transport for baseURL. session may be nil, in which
// case only the JSON content headers are sent.
func NewClient(baseURL string, session HeaderSource, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		session:    session,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     recharge.NoopLogger{},
		retryMax:   recharge.DefaultRetryMax,
		retryDelay: recharge.DefaultRetryDelay,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// WithLogger sets the logger.
func WithLogger(logger recharge.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the timeout of a single attempt. A client passed to
// WithHTTPClient is copied, never modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		copied := *c.httpClient
		copied.Timeout = timeout
		c.httpClient = &copied
	}
}

// WithRetryConfig sets the retry budget, the base delay and the cap on a
// single delay. A negative retryMax disables retries.
func WithRetryConfig(retryMax int, retryDelay, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		if retryMax < 0 {
			retryMax = 0
		}

		c.retryMax = retryMax
		c.retryDelay = retryDelay
		c.retryWaitMax = retryWaitMax
	}
}

// WithBackoff sets the backoff strategy. The default is FixedBackoff with
// the configured retry delay.
func WithBackoff(strategy BackoffStrategy) Option {
	return func(c *Client) {
		c.backoff = strategy
	}
}

// WithInterceptors sets the interceptor chain run once per logical call.
func WithInterceptors(chain *recharge.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// BaseURL returns the base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get sends a GET request and extracts the payload under key.
func (c *Client) Get(ctx context.Context, rawURL string, query url.Values, key string, shape recharge.Shape, version recharge.Version) (Payload, error) {
	return c.call(ctx, &Request{Method: http.MethodGet, URL: rawURL, Query: query, Version: version}, key, shape)
}

// Post sends a POST request and extracts the payload under key.
func (c *Client) Post(ctx context.Context, rawURL string, body interface{}, query url.Values, key string, shape recharge.Shape, version recharge.Version) (Payload, error) {
	return c.call(ctx, &Request{Method: http.MethodPost, URL: rawURL, Body: body, Query: query, Version: version}, key, shape)
}

// Put sends a PUT request and extracts the payload under key.
func (c *Client) Put(ctx context.Context, rawURL string, body interface{}, query url.Values, key string, shape recharge.Shape, version recharge.Version) (Payload, error) {
	return c.call(ctx, &Request{Method: http.MethodPut, URL: rawURL, Body: body, Query: query, Version: version}, key, shape)
}

// Delete sends a DELETE request and extracts the payload under key.
func (c *Client) Delete(ctx context.Context, rawURL string, body interface{}, key string, shape recharge.Shape, version recharge.Version) (Payload, error) {
	return c.call(ctx, &Request{Method: http.MethodDelete, URL: rawURL, Body: body, Version: version}, key, shape)
}

func (c *Client) call(ctx context.Context, req *Request, key string, shape recharge.Shape) (Payload, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return Payload{}, err
	}

	decoded, ok := decodeBody(resp.Body)
	if !ok {
		c.logger.Warn("Failed to decode JSON response, expect missing data", map[string]interface{}{
			"method":      req.Method,
			"url":         RedactURL(resp.URL.String()),
			"status_code": resp.StatusCode,
		})

		return emptyPayload(shape), nil
	}

	return extract(decoded, key, shape)
}

// Do sends one logical call, retrying 429 and 5xx responses with backoff.
// Statuses of 400 and above that are not retried return the response
// together with an *recharge.HTTPError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req.Method == "" {
		return nil, ErrMethodRequired
	}

	version := c.resolveVersion(req.Version)

	target, err := c.buildURL(req.URL, req.Query)
	if err != nil {
		return nil, &recharge.TransportError{Method: req.Method, URL: RedactURL(req.URL), Err: err}
	}

	redactedURL := RedactURL(target.String())

	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, &recharge.TransportError{Method: req.Method, URL: redactedURL, Err: err}
	}

	headers := c.defaultHeaders(version)
	for name, value := range req.Headers {
		if !strings.EqualFold(name, AccessTokenHeader) {
			headers.Set(name, value)
		}
	}

	view := &recharge.Request{
		Method:   req.Method,
		Path:     target.Path,
		Version:  version,
		Headers:  withoutCredential(headers),
		Body:     body,
		Metadata: map[string]interface{}{},
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, view)
		if err != nil {
			return nil, err
		}

		for name, values := range view.Headers {
			if !strings.EqualFold(name, AccessTokenHeader) {
				headers[name] = values
			}
		}
	}

	requestID := uuid.NewString()

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"request_id": requestID,
			"method":     req.Method,
			"url":        redactedURL,
			"headers":    RedactHeaders(headers),
		})
	}

	resp, err := c.send(ctx, req.Method, target.String(), body, headers, requestID)

	if c.interceptors != nil {
		result := &recharge.Response{Error: err}
		if resp != nil {
			result.StatusCode = resp.StatusCode
			result.Headers = resp.Headers
			result.Body = resp.Body
		}

		interceptErr := c.interceptors.ExecuteResponseInterceptors(ctx, view, result)
		if interceptErr != nil && err == nil {
			err = interceptErr
		}
	}

	return resp, err
}

func (c *Client) send(ctx context.Context, method, target string, body []byte, headers http.Header, requestID string) (*Response, error) {
	redactedURL := RedactURL(target)
	redactedHeaders := RedactHeaders(headers)
	state := newRetryState(c.backoffStrategy())

	state.onRetry = func(retry int, delay time.Duration, resp *http.Response) {
		fields := map[string]interface{}{
			"request_id":  requestID,
			"retries":     retry,
			"max_retries": c.retryMax,
			"delay":       delay.String(),
			"method":      method,
			"url":         redactedURL,
			"headers":     redactedHeaders,
		}

		if resp != nil {
			fields["status_code"] = resp.StatusCode

			if resp.StatusCode == http.StatusTooManyRequests {
				c.logger.Warn("Rate limited, retrying", fields)
			} else {
				c.logger.Error("Server error, retrying", fields)
			}
		}

		c.logger.Info("Retrying", fields)
	}

	errorHandler := func(resp *http.Response, err error, attempts int) (*http.Response, error) {
		if err != nil {
			if resp != nil {
				_ = resp.Body.Close()
			}

			return nil, err
		}

		data, _ := readBody(resp)

		return nil, &recharge.MaxRetriesExceededError{
			Method:         method,
			URL:            redactedURL,
			Retries:        attempts - 1,
			LastStatusCode: resp.StatusCode,
			Body:           decodeErrorBody(data),
			RequestHeaders: redactedHeaders,
		}
	}

	var rawBody interface{}
	if body != nil {
		rawBody = body
	}

	retryReq, err := retryablehttp.NewRequestWithContext(ctx, method, target, rawBody)
	if err != nil {
		return nil, &recharge.TransportError{Method: method, URL: redactedURL, Err: err}
	}

	retryReq.Header = headers.Clone()

	started := time.Now()

	httpResp, err := c.newRetryClient(state, errorHandler).Do(retryReq)
	if err != nil {
		exhausted := &recharge.MaxRetriesExceededError{}
		if errors.As(err, &exhausted) {
			c.logger.Error("Max retries reached", map[string]interface{}{
				"request_id":  requestID,
				"retries":     exhausted.Retries,
				"max_retries": c.retryMax,
				"method":      method,
				"url":         redactedURL,
				"status_code": exhausted.LastStatusCode,
				"headers":     redactedHeaders,
			})

			return nil, exhausted
		}

		c.logger.Error("Request failed", map[string]interface{}{
			"request_id": requestID,
			"method":     method,
			"url":        redactedURL,
			"error":      err.Error(),
			"headers":    redactedHeaders,
		})

		return nil, &recharge.TransportError{Method: method, URL: redactedURL, Err: err}
	}

	data, err := readBody(httpResp)
	if err != nil {
		return nil, &recharge.TransportError{Method: method, URL: redactedURL, Err: err}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       data,
		URL:        httpResp.Request.URL,
		Retries:    state.retries,
		RateLimit:  httpResp.Header.Get(RateLimitHeader),
	}

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"request_id":  requestID,
			"status_code": resp.StatusCode,
			"retries":     resp.Retries,
			"rate_limit":  resp.RateLimit,
			"duration":    time.Since(started).String(),
		})
	}

	if resp.StatusCode >= http.StatusBadRequest {
		httpErr := &recharge.HTTPError{
			StatusCode:     resp.StatusCode,
			Method:         method,
			URL:            redactedURL,
			Body:           decodeErrorBody(data),
			RequestHeaders: redactedHeaders,
		}

		c.logger.Error("HTTP error", map[string]interface{}{
			"request_id":  requestID,
			"method":      method,
			"url":         redactedURL,
			"status_code": resp.StatusCode,
			"error":       httpErr.Message(),
			"headers":     redactedHeaders,
		})

		return resp, httpErr
	}

	return resp, nil
}

func (c *Client) backoffStrategy() BackoffStrategy {
	if c.backoff != nil {
		return c.backoff
	}

	return FixedBackoff{Delay: c.retryDelay}
}

func (c *Client) resolveVersion(version recharge.Version) recharge.Version {
	if version != "" {
		return version
	}

	if c.session != nil {
		return c.session.Version()
	}

	return recharge.DefaultVersion
}

func (c *Client) defaultHeaders(version recharge.Version) http.Header {
	var headers http.Header

	if c.session != nil {
		headers = c.session.Headers(version)
	} else {
		headers = http.Header{}
		headers.Set("Accept", "application/json")
		headers.Set("Content-Type", "application/json")
		headers.Set(VersionHeader, string(version))
	}

	if c.userAgent != "" {
		headers.Set("User-Agent", c.userAgent)
	}

	return headers
}

// buildURL resolves rawURL against the base URL and merges query into it.
func (c *Client) buildURL(rawURL string, query url.Values) (*url.URL, error) {
	target := rawURL
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		target = c.baseURL + "/" + strings.TrimLeft(rawURL, "/")
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("parsing URL: %w", err)
	}

	if len(query) > 0 {
		merged := parsed.Query()
		for key, values := range query {
			merged[key] = values
		}

		parsed.RawQuery = merged.Encode()
	}

	return parsed, nil
}

func encodeBody(body interface{}) ([]byte, error) {
	switch typed := body.(type) {
	case nil:
		return nil, nil
	case recharge.Object:
		if typed == nil {
			return nil, nil
		}

		data, err := json.Marshal(typed)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		return data, nil
	case []byte:
		return typed, nil
	case json.RawMessage:
		return typed, nil
	default:
		data, err := json.Marshal(typed)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		return data, nil
	}
}

func readBody(resp *http.Response) ([]byte, error) {
	defer func() { _ = resp.Body.Close() }()

	var buffer bytes.Buffer

	_, err := io.Copy(&buffer, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return buffer.Bytes(), nil
}

func withoutCredential(headers http.Header) http.Header {
	view := headers.Clone()
	view.Del(AccessTokenHeader)

	return view
}
