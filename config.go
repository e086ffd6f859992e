package sidenav

import (
	"fmt"
	"strings"
	"time"
)

// Config controls rendering and, when the embedded server is used, how the
// navigation panel is served.
type Config struct {
	// Title is shown in the menu header and as the page title.
	Title string `json:"title" yaml:"title"`

	// BasePath is the URL prefix the server mounts under.
	BasePath string `json:"base_path" yaml:"base_path"`

	// Addr is the listen address of the embedded server.
	Addr string `json:"addr" yaml:"addr"`

	// AssetsPath is the URL prefix static assets are served from. Relative
	// asset references in the menu resolve against it.
	AssetsPath string `json:"assets_path" yaml:"assets_path"`

	// ChooserIcon is the asset path of the icon shown on the anonymous
	// header's menu chooser button.
	ChooserIcon string `json:"chooser_icon" yaml:"chooser_icon"`

	// ReadTimeout bounds how long reading a request may take.
	ReadTimeout time.Duration `json:"read_timeout" yaml:"read_timeout"`

	// WriteTimeout bounds how long writing a response may take.
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`

	// ShutdownTimeout bounds how long Stop waits for in-flight requests.
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`

	// EnableMetrics exposes Prometheus metrics on MetricsPath.
	EnableMetrics bool `json:"enable_metrics" yaml:"enable_metrics"`

	// MetricsPath is where metrics are served when enabled.
	MetricsPath string `json:"metrics_path" yaml:"metrics_path"`

	// ScriptNonce is attached to the inline toggle script when set, for
	// pages served under a Content-Security-Policy.
	ScriptNonce string `json:"script_nonce" yaml:"script_nonce"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:           "Control Panel",
		BasePath:        "/",
		Addr:            ":7860",
		AssetsPath:      "/static",
		ChooserIcon:     "img/menu.png",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		EnableMetrics:   true,
		MetricsPath:     "/metrics",
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("sidenav: title cannot be empty")
	}
	if c.BasePath == "" {
		return fmt.Errorf("sidenav: base_path cannot be empty")
	}
	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("sidenav: base_path must start with /")
	}
	if c.Addr == "" {
		return fmt.Errorf("sidenav: addr cannot be empty")
	}
	if c.ReadTimeout < time.Second {
		return fmt.Errorf("sidenav: read_timeout must be at least 1 second")
	}
	if c.WriteTimeout < time.Second {
		return fmt.Errorf("sidenav: write_timeout must be at least 1 second")
	}
	if c.ShutdownTimeout < time.Second {
		return fmt.Errorf("sidenav: shutdown_timeout must be at least 1 second")
	}
	if c.EnableMetrics && c.MetricsPath == "" {
		return fmt.Errorf("sidenav: metrics_path cannot be empty when metrics are enabled")
	}
	return nil
}

// ConfigOption configures the renderer.
type ConfigOption func(*Config)

// WithTitle sets the menu header and page title.
func WithTitle(title string) ConfigOption {
	return func(c *Config) {
		c.Title = title
	}
}

// WithBasePath sets the URL prefix the server mounts under.
func WithBasePath(path string) ConfigOption {
	return func(c *Config) {
		c.BasePath = path
	}
}

// WithAddr sets the listen address of the embedded server.
func WithAddr(addr string) ConfigOption {
	return func(c *Config) {
		c.Addr = addr
	}
}

// WithAssetsPath sets the URL prefix static assets are served from.
func WithAssetsPath(path string) ConfigOption {
	return func(c *Config) {
		c.AssetsPath = path
	}
}

// WithChooserIcon sets the icon asset shown on the anonymous menu chooser.
func WithChooserIcon(path string) ConfigOption {
	return func(c *Config) {
		c.ChooserIcon = path
	}
}

// WithReadTimeout sets the server read timeout.
func WithReadTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.ReadTimeout = d
	}
}

// WithWriteTimeout sets the server write timeout.
func WithWriteTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.WriteTimeout = d
	}
}

// WithShutdownTimeout sets how long Stop waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.ShutdownTimeout = d
	}
}

// WithMetrics toggles the Prometheus metrics endpoint.
func WithMetrics(enabled bool) ConfigOption {
	return func(c *Config) {
		c.EnableMetrics = enabled
	}
}

// WithMetricsPath sets where metrics are served.
func WithMetricsPath(path string) ConfigOption {
	return func(c *Config) {
		c.MetricsPath = path
	}
}

// WithScriptNonce sets the CSP nonce attached to the inline toggle script.
func WithScriptNonce(nonce string) ConfigOption {
	return func(c *Config) {
		c.ScriptNonce = nonce
	}
}
