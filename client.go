package scsdk

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/xiongerbear/lazada-scsdk/internal/useragent"
)

// sellerCenterZone is the provider's fixed timezone. The offset never
// observes daylight saving.
var sellerCenterZone = time.FixedZone("GMT+7", 7*60*60)

// timestampLayout is ISO-8601 with second precision, matching the
// provider's canonicalization.
const timestampLayout = "2006-01-02T15:04:05-07:00"

// Client dispatches signed requests to the Seller Center API. It is safe
// for concurrent use; per-request state is never shared across calls.
type Client struct {
	email  string
	apiKey string

	// options is the layered API configuration surface (base_url,
	// api_version, api_format, proxies). Per-call Options merge on top of
	// it, last writer wins.
	options Options

	httpClient    *http.Client
	transport     Transport
	timeout       time.Duration
	userAgentPool []string
	userAgents    *useragent.Manager
	pick          Picker
	now           func() time.Time

	logger  Logger
	debug   *DebugConfig
	metrics *MetricsCollector

	registry  Registry
	resources map[string]Resource

	validationError error
}

// New constructs a Client for the given seller identity using the provided
// functional options. A best effort validation is performed; call IsValid /
// ValidationError for errors.
func New(email, apiKey string, options ...Option) *Client {
	client := &Client{
		email:    email,
		apiKey:   apiKey,
		options:  defaultOptions(),
		timeout:  30 * time.Second,
		pick:     DefaultPicker,
		now:      time.Now,
		debug:    DefaultDebugConfig(),
		registry: DefaultRegistry(),
	}

	for _, option := range options {
		option(client)
	}

	if client.transport == nil {
		hc := client.httpClient
		if hc == nil {
			hc = &http.Client{Timeout: client.timeout}
		} else if hc.Timeout == 0 {
			hc.Timeout = client.timeout
		}
		client.transport = NewHTTPTransport(hc)
	}

	client.userAgents = useragent.New(func(n int) int { return client.pick(n) }, client.userAgentPool...)

	client.resources = make(map[string]Resource, len(client.registry))
	for name, factory := range client.registry {
		client.resources[name] = factory(client)
	}

	if err := client.validateConfiguration(); err != nil {
		client.validationError = err
	}

	return client
}

// IsValid reports whether the configuration passed validation.
func (c *Client) IsValid() bool {
	return c.validationError == nil
}

// ValidationError returns the configuration error detected at construction,
// if any.
func (c *Client) ValidationError() error {
	return c.validationError
}

func (c *Client) validateConfiguration() error {
	if c.email == "" {
		return newConfigError("email must not be empty")
	}
	if c.apiKey == "" {
		return newConfigError("api key must not be empty")
	}
	if c.timeout <= 0 {
		return newConfigError("timeout must be positive")
	}
	base := stringOption(c.options, "base_url")
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return newConfigError(fmt.Sprintf("base_url %q must be an absolute URL", base))
	}
	if v := stringOption(c.options, "api_version"); v == "" {
		return newConfigError("api_version must not be empty")
	}
	switch stringOption(c.options, "api_format") {
	case "json", "xml":
	default:
		return newConfigError(`api_format must be "json" or "xml"`)
	}
	return nil
}

// Get dispatches a GET request for action. Query options (from, to, count,
// skip) and residual unknown options become API parameters.
func (c *Client) Get(ctx context.Context, action string, options Options) ([]byte, error) {
	query := Merge(c.parseQueryOptions(options), c.parseParameterOptions(options))
	return c.Request(ctx, http.MethodGet, action, Merge(options, Options{"params": query}))
}

// Post dispatches a POST request for action with an XML payload. The
// payload is reparsed and reserialized before sending.
func (c *Client) Post(ctx context.Context, action, data string, options Options) ([]byte, error) {
	return c.Request(ctx, http.MethodPost, action, Merge(options, Options{"data": data}))
}

// Request builds, signs and dispatches a request, returning the normalized
// response payload.
func (c *Client) Request(ctx context.Context, method, action string, options Options) ([]byte, error) {
	if c.validationError != nil {
		return nil, c.validationError
	}

	start := time.Now()
	resolved := c.mergeOptions(options)
	requestOptions := c.parseRequestOptions(options)
	format := stringOption(resolved, "api_format")

	parameters := map[string]string{
		"UserID":    c.email,
		"Version":   stringOption(resolved, "api_version"),
		"Action":    action,
		"Format":    format,
		"Timestamp": c.now().In(sellerCenterZone).Format(timestampLayout),
	}
	if params, ok := requestOptions["params"].(map[string]string); ok {
		for k, v := range params {
			parameters[k] = v
		}
	}

	// The signature covers everything assembled so far; it is appended
	// afterwards and never signs itself.
	parameters["Signature"] = Sign(parameters, c.apiKey)

	values := make(url.Values, len(parameters))
	for k, v := range parameters {
		values.Set(k, v)
	}
	requestURL := stringOption(resolved, "base_url") + "?" + values.Encode()

	proxyURL, err := c.pickProxy(resolved["proxies"])
	if err != nil {
		return nil, err
	}

	var requestID string
	if c.debug != nil && c.debug.Enabled && c.debug.RequestIDGen != nil {
		requestID = c.debug.RequestIDGen()
	}
	if c.debug != nil && c.debug.Enabled && c.debug.LogRequests && c.logger != nil {
		c.logger.Debug("Dispatching request", "requestID", requestID, "method", method, "action", action, "url", requestURL)
	}

	c.metrics.RecordRequestStart(method, action)
	defer c.metrics.RecordRequestEnd(method, action)

	req := &Request{
		Method: method,
		URL:    requestURL,
		Header: c.requestHeaders(),
		Proxy:  proxyURL,
	}
	if method == http.MethodPost {
		data, ok := requestOptions["data"].(string)
		if !ok {
			return nil, newConfigError("post request requires a string data option")
		}
		body, err := canonicalizeXML(data)
		if err != nil {
			c.metrics.RecordError(string(ErrorTypeDecode), method, action)
			return nil, err
		}
		req.Body = bytes.NewReader(body)
		req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	}

	resp, err := c.transport.Do(ctx, req)
	duration := time.Since(start)
	if err != nil {
		c.metrics.RecordError(string(ErrorTypeTransport), method, action)
		c.metrics.RecordRequest(method, action, 0, duration)
		return nil, newTransportError("request failed", err)
	}
	if resp == nil {
		c.metrics.RecordError(string(ErrorTypeTransport), method, action)
		c.metrics.RecordRequest(method, action, 0, duration)
		return nil, newTransportError("no response received", nil)
	}
	c.metrics.RecordRequest(method, action, resp.StatusCode, duration)

	if c.debug != nil && c.debug.Enabled && c.debug.LogResponses && c.logger != nil {
		c.logger.Debug("Received response", "requestID", requestID, "status", resp.StatusCode, "bytes", len(resp.Body))
	}

	return c.normalizeResponse(method, action, format, resp)
}

// normalizeResponse applies the format-specific error-envelope check.
// Provider envelopes win over the HTTP status so error codes survive non-2xx
// replies; a non-2xx status with no envelope is an HTTP error; a body that
// fails to parse on a 2xx reply is a decode error.
func (c *Client) normalizeResponse(method, action, format string, resp *Response) ([]byte, error) {
	var envErr error
	switch format {
	case "xml":
		envErr = checkXMLResponse(resp.Body)
	default:
		envErr = checkJSONResponse(resp.Body)
	}

	success := resp.StatusCode >= 200 && resp.StatusCode < 300

	if envErr != nil {
		if apiErr, ok := AsError(envErr); ok && apiErr.Type == ErrorTypeAPI {
			c.metrics.RecordError(string(ErrorTypeAPI), method, action)
			c.metrics.RecordAPIError(action, apiErr.Code)
			return nil, apiErr
		}
		if !success {
			c.metrics.RecordError(string(ErrorTypeHTTP), method, action)
			return nil, newHTTPError(resp.StatusCode, "request rejected without an error envelope")
		}
		c.metrics.RecordError(string(ErrorTypeDecode), method, action)
		return nil, envErr
	}

	if !success {
		c.metrics.RecordError(string(ErrorTypeHTTP), method, action)
		return nil, newHTTPError(resp.StatusCode, "request rejected without an error envelope")
	}

	// Success path returns the bytes exactly as received.
	return resp.Body, nil
}

// pickProxy chooses one usable entry from the configured pool, or nil when
// no pool is configured. Empty entries are filtered up front so a pool of
// blanks degrades to direct access instead of looping.
func (c *Client) pickProxy(configured any) (*url.URL, error) {
	var pool []string
	switch v := configured.(type) {
	case nil:
		return nil, nil
	case []string:
		for _, p := range v {
			if p != "" {
				pool = append(pool, p)
			}
		}
	case []any:
		for _, e := range v {
			if p, ok := e.(string); ok && p != "" {
				pool = append(pool, p)
			}
		}
	default:
		return nil, newConfigError("proxies must be a list of proxy URLs")
	}
	if len(pool) == 0 {
		return nil, nil
	}

	raw := pool[c.pick(len(pool))]
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return nil, newConfigError(fmt.Sprintf("invalid proxy URL %q", raw))
	}

	c.metrics.RecordProxySelection(u.Host)
	if c.debug != nil && c.debug.Enabled && c.logger != nil {
		c.logger.Debug("Using proxy", "proxy", u.Host)
	}
	return u, nil
}

// requestHeaders builds the randomized per-request headers.
func (c *Client) requestHeaders() http.Header {
	header := make(http.Header)
	header.Set("Connection", "close")
	header.Set("User-Agent", c.userAgents.Random())
	return header
}

// mergeOptions merges one or more option sets with the client's options,
// returning a new set.
func (c *Client) mergeOptions(overrides ...Options) Options {
	return Merge(c.options, overrides...)
}

// selectOptions picks the provided keys (or everything except them) out of
// the fully resolved option view.
func (c *Client) selectOptions(options Options, keys map[string]struct{}, invert bool) Options {
	merged := c.mergeOptions(options)
	result := make(Options)
	for k, v := range merged {
		_, known := keys[k]
		if (invert && !known) || (!invert && known) {
			result[k] = v
		}
	}
	return result
}

// parseQueryOptions selects query string options (from, to, count, skip).
func (c *Client) parseQueryOptions(options Options) Options {
	return c.selectOptions(options, queryOptionKeys, false)
}

// parseParameterOptions selects all unknown options, which are forwarded as
// API parameters.
func (c *Client) parseParameterOptions(options Options) Options {
	return c.selectOptions(options, allOptionKeys, true)
}

// parseRequestOptions selects the params and data options and normalizes
// params values to their wire text.
func (c *Client) parseRequestOptions(options Options) Options {
	requestOptions := c.selectOptions(options, requestOptionKeys, false)
	if params, ok := requestOptions["params"]; ok {
		requestOptions["params"] = normalizeParams(params)
	}
	return requestOptions
}

// normalizeParams coerces parameter values to strings. Booleans become
// their JSON text ("true"/"false"), matching the provider's expectations.
func normalizeParams(params any) map[string]string {
	out := make(map[string]string)
	switch p := params.(type) {
	case map[string]string:
		for k, v := range p {
			out[k] = v
		}
	case map[string]any:
		for k, v := range p {
			out[k] = parameterText(v)
		}
	case Options:
		for k, v := range p {
			out[k] = parameterText(v)
		}
	}
	return out
}

func parameterText(v any) string {
	switch t := v.(type) {
	case bool:
		return strconv.FormatBool(t)
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

func stringOption(options Options, key string) string {
	s, _ := options[key].(string)
	return s
}
