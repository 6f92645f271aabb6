// Package http provides the HTTP transport for API communication.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/personio/internal/auth"
	"github.com/fivetwenty-io/personio/internal/constants"
	"github.com/fivetwenty-io/personio/pkg/personio"
	"github.com/hashicorp/go-retryablehttp"
)

// Client is the transport-level API client. It joins URLs, sets the common
// headers, attaches the bearer token, and checks the response status against
// the expected one.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	tokenManager auth.TokenManager
	logger       personio.Logger
	debug        bool
	userAgent    string
	partnerID    string
	appID        string
	interceptors *personio.InterceptorChain
}

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string

	// ExpectedStatus is the only status code treated as success. Zero means
	// 200 OK.
	ExpectedStatus int

	// Unauthenticated skips the Authorization header.
	Unauthenticated bool

	// Beta marks the request for a beta endpoint.
	Beta bool
}

// Response represents an API response with the raw body.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets a custom logger.
func WithLogger(logger personio.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithPersonioHeaders sets the partner and app identification headers sent
// with every request.
func WithPersonioHeaders(partnerID, appID string) Option {
	return func(c *Client) {
		c.partnerID = partnerID
		c.appID = appID
	}
}

// WithTimeout overrides the default request timeout. Apply it after
// WithRetryConfig, which replaces the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetryConfig enables transport-level retries. Retries are off by
// default.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient = newHTTPClient(maxRetries, waitMin, waitMax)
	}
}

// WithInterceptors installs an interceptor chain around every request.
func WithInterceptors(chain *personio.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a new transport client. tokenManager may be nil for
// purely unauthenticated use.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		httpClient:   newHTTPClient(0, 0, 0),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func newHTTPClient(maxRetries int, waitMin, waitMax time.Duration) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = maxRetries
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Hand back the last response instead of a "giving up" error so status
	// codes reach the expected-status check.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	if waitMin > 0 {
		retryClient.RetryWaitMin = waitMin
	}

	if waitMax > 0 {
		retryClient.RetryWaitMax = waitMax
	}

	return retryClient.StandardClient()
}

// Do executes an API request. On a status code other than the expected one
// it returns both the raw response and an UnexpectedResponseError carrying
// it.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	requestURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		requestURL += "?" + req.Query.Encode()
	}

	var (
		bodyBytes  []byte
		bodyReader io.Reader
	)

	if req.Body != nil {
		var err error

		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if err := c.setHeaders(ctx, httpReq, req); err != nil {
		return nil, err
	}

	if c.interceptors != nil {
		interceptorReq := &personio.Request{
			Method:  req.Method,
			Path:    req.Path,
			Headers: httpReq.Header,
			Body:    bodyBytes,
		}
		if err := c.interceptors.ExecuteRequestInterceptors(ctx, interceptorReq); err != nil {
			return nil, fmt.Errorf("running request interceptors: %w", err)
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    requestURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &personio.CommunicationError{
			Err: fmt.Errorf("sending %s %s: %w", req.Method, req.Path, err),
		}
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &personio.CommunicationError{
			Err: fmt.Errorf("reading response body: %w", err),
		}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.interceptors != nil {
		interceptorResp := &personio.Response{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
		}
		interceptorReq := &personio.Request{
			Method:  req.Method,
			Path:    req.Path,
			Headers: httpReq.Header,
			Body:    bodyBytes,
		}
		if err := c.interceptors.ExecuteResponseInterceptors(ctx, interceptorReq, interceptorResp); err != nil {
			return resp, fmt.Errorf("running response interceptors: %w", err)
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method": req.Method,
			"url":    requestURL,
			"status": resp.StatusCode,
		})
	}

	expected := req.ExpectedStatus
	if expected == 0 {
		expected = http.StatusOK
	}

	if resp.StatusCode != expected {
		return resp, &personio.UnexpectedResponseError{
			StatusCode:     resp.StatusCode,
			ExpectedStatus: expected,
			Body:           resp.Body,
			Headers:        resp.Headers,
		}
	}

	return resp, nil
}

func (c *Client) setHeaders(ctx context.Context, httpReq *http.Request, req *Request) error {
	httpReq.Header.Set("Accept", "application/json")

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.partnerID != "" {
		httpReq.Header.Set(constants.HeaderPartnerID, c.partnerID)
	}

	if c.appID != "" {
		httpReq.Header.Set(constants.HeaderAppID, c.appID)
	}

	if req.Beta {
		httpReq.Header.Set(constants.HeaderBeta, "true")
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if !req.Unauthenticated && c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return fmt.Errorf("getting access token: %w", err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	return nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, query url.Values, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Query:  query,
		Body:   body,
	})
}
