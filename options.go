package scsdk

import (
	"math/rand"
	"net/http"
	"time"
)

// Options is a dynamic option set for the API surface. Keys outside the
// known client, query and request option sets are sent as extra API
// parameters.
type Options map[string]any

// Known option key sets. Everything else in an Options map is treated as an
// API parameter.
var (
	clientOptionKeys  = keySet("base_url", "api_version", "api_format", "proxies")
	queryOptionKeys   = keySet("from", "to", "count", "skip")
	requestOptionKeys = keySet("params", "data")
	allOptionKeys     = union(clientOptionKeys, queryOptionKeys, requestOptionKeys)
)

func keySet(keys ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func union(sets ...map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for _, s := range sets {
		for k := range s {
			out[k] = struct{}{}
		}
	}
	return out
}

// Merge builds a new Options by copying base then applying each override in
// order, overwriting existing keys. Inputs are never mutated.
func Merge(base Options, overrides ...Options) Options {
	result := make(Options, len(base))
	for k, v := range base {
		result[k] = v
	}
	for _, override := range overrides {
		for k, v := range override {
			result[k] = v
		}
	}
	return result
}

// defaultOptions mirrors the provider's documented configuration surface.
func defaultOptions() Options {
	return Options{
		"base_url":    "https://api.sellercenter.lazada.vn/",
		"api_version": "1.0",
		"api_format":  "json",
		"proxies":     nil,
	}
}

// Picker selects a uniformly random index in [0, n). Injectable so tests can
// pin deterministic choices.
type Picker func(n int) int

// DefaultPicker draws from the process-wide random source.
func DefaultPicker(n int) int { return rand.Intn(n) }

// Option represents a configuration option for the client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.options["base_url"] = baseURL
	}
}

// WithAPIVersion overrides the API version sent in every request.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		c.options["api_version"] = version
	}
}

// WithAPIFormat sets the wire format, "json" or "xml".
func WithAPIFormat(format string) Option {
	return func(c *Client) {
		c.options["api_format"] = format
	}
}

// WithProxies configures the proxy pool. One entry is chosen uniformly at
// random per request; empty entries are ignored.
func WithProxies(proxies []string) Option {
	return func(c *Client) {
		c.options["proxies"] = proxies
	}
}

// WithOptions merges arbitrary client-level options, overwriting existing
// keys.
func WithOptions(options Options) Option {
	return func(c *Client) {
		for k, v := range options {
			c.options[k] = v
		}
	}
}

// WithTimeout bounds each request including connection time. The zero value
// is rejected by validation; requests are never unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient supplies the *http.Client backing the default transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTransport replaces the HTTP transport entirely. Useful for tests.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithUserAgents replaces the rotating User-Agent pool.
func WithUserAgents(agents ...string) Option {
	return func(c *Client) {
		c.userAgentPool = agents
	}
}

// WithPicker sets the random-selection capability used for proxy and
// User-Agent rotation.
func WithPicker(p Picker) Option {
	return func(c *Client) {
		c.pick = p
	}
}

// WithClock sets the time source used for request timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// WithLogger sets a custom logger for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithSimpleLogger enables debug logging with a simple console logger.
func WithSimpleLogger() Option {
	return func(c *Client) {
		c.debug = DefaultDebugConfig()
		c.debug.Enabled = true
		c.logger = NewSimpleLogger()
	}
}

// WithDebug enables debug logging with default settings.
func WithDebug() Option {
	return func(c *Client) {
		c.debug = DefaultDebugConfig()
		c.debug.Enabled = true
	}
}

// WithDebugConfig sets a custom debug configuration.
func WithDebugConfig(cfg *DebugConfig) Option {
	return func(c *Client) {
		c.debug = cfg
	}
}

// WithMetricsCollector sets a custom metrics collector.
func WithMetricsCollector(mc *MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = mc
	}
}

// WithMetrics enables Prometheus metrics on the default registerer.
func WithMetrics() Option {
	return func(c *Client) {
		c.metrics = NewMetricsCollector()
	}
}

// WithRegistry replaces the resource registration table.
func WithRegistry(r Registry) Option {
	return func(c *Client) {
		c.registry = r
	}
}
