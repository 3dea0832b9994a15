// Package config loads Seller Center client settings from a file, with
// environment overrides and change notification.
package config

import (
	"os"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	scsdk "github.com/xiongerbear/lazada-scsdk"
)

// Settings is the on-disk shape of the client configuration. The API key is
// never stored in the file; APIKeyEnv names the environment variable that
// holds it.
type Settings struct {
	Email      string        `mapstructure:"email"`
	APIKeyEnv  string        `mapstructure:"api_key_env"`
	BaseURL    string        `mapstructure:"base_url"`
	APIVersion string        `mapstructure:"api_version"`
	APIFormat  string        `mapstructure:"api_format"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Proxies    []string      `mapstructure:"proxies"`
	UserAgents []string      `mapstructure:"user_agents"`
}

// APIKey resolves the shared secret from the configured environment
// variable.
func (s Settings) APIKey() string {
	if s.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(s.APIKeyEnv)
}

// ClientOptions converts the settings into scsdk constructor options. Zero
// values are skipped so client defaults apply.
func (s Settings) ClientOptions() []scsdk.Option {
	var opts []scsdk.Option
	if s.BaseURL != "" {
		opts = append(opts, scsdk.WithBaseURL(s.BaseURL))
	}
	if s.APIVersion != "" {
		opts = append(opts, scsdk.WithAPIVersion(s.APIVersion))
	}
	if s.APIFormat != "" {
		opts = append(opts, scsdk.WithAPIFormat(s.APIFormat))
	}
	if s.Timeout > 0 {
		opts = append(opts, scsdk.WithTimeout(s.Timeout))
	}
	if len(s.Proxies) > 0 {
		opts = append(opts, scsdk.WithProxies(s.Proxies))
	}
	if len(s.UserAgents) > 0 {
		opts = append(opts, scsdk.WithUserAgents(s.UserAgents...))
	}
	return opts
}

// Config watches a settings file and republishes it on change.
type Config struct {
	v        *viper.Viper
	mu       sync.RWMutex
	value    Settings
	watchers []func(old, new Settings)
}

// Option customizes loading.
type Option func(*Config)

// WithDefaults seeds default values applied beneath the file contents.
func WithDefaults(defaults map[string]any) Option {
	return func(c *Config) {
		for k, v := range defaults {
			c.v.SetDefault(k, v)
		}
	}
}

// WithEnv binds environment variables with the given prefix, replacing dots
// with underscores (SCSDK_BASE_URL overrides base_url).
func WithEnv(prefix string) Option {
	return func(c *Config) {
		c.v.SetEnvPrefix(prefix)
		c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		c.v.AutomaticEnv()
	}
}

// Load reads the settings file and begins watching it for changes.
func Load(path string, opts ...Option) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	c := &Config{v: v}
	for _, opt := range opts {
		opt(c)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, err
	}
	c.value = s

	c.watch()
	return c, nil
}

// Get returns the current settings. Slices are copied so callers cannot
// mutate shared state.
func (c *Config) Get() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneSettings(c.value)
}

// OnChange registers a callback invoked with the old and new settings after
// the file changes on disk.
func (c *Config) OnChange(callback func(old, new Settings)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watchers = append(c.watchers, callback)
}

func cloneSettings(s Settings) Settings {
	out := s
	if s.Proxies != nil {
		out.Proxies = append([]string(nil), s.Proxies...)
	}
	if s.UserAgents != nil {
		out.UserAgents = append([]string(nil), s.UserAgents...)
	}
	return out
}

func (c *Config) watch() {
	var (
		debounceTimer *time.Timer
		debounceMu    sync.Mutex
	)

	// Editors often fire several fsnotify events per save; coalesce them.
	c.v.OnConfigChange(func(_ fsnotify.Event) {
		debounceMu.Lock()
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		debounceTimer = time.AfterFunc(100*time.Millisecond, c.handleConfigChange)
		debounceMu.Unlock()
	})

	c.v.WatchConfig()
}

func (c *Config) handleConfigChange() {
	old := c.Get()

	updated, watchers, ok := c.reload()
	if !ok {
		return
	}
	if reflect.DeepEqual(old, updated) {
		return
	}

	for _, cb := range watchers {
		func() {
			defer func() { _ = recover() }()
			cb(old, updated)
		}()
	}
}

func (c *Config) reload() (Settings, []func(old, new Settings), bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.v.ReadInConfig(); err != nil {
		return Settings{}, nil, false
	}
	var s Settings
	if err := c.v.Unmarshal(&s); err != nil {
		return Settings{}, nil, false
	}
	c.value = s

	watchers := make([]func(old, new Settings), len(c.watchers))
	copy(watchers, c.watchers)

	return cloneSettings(s), watchers, true
}
