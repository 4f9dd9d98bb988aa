// Package config loads shopsim's run configuration from YAML.
//
// Values are layered: defaults, then the config file, then environment
// variables (which may come from a .env file), then command-line flags.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/entrhq/shopsim/pkg/browser"
	"github.com/entrhq/shopsim/pkg/session"
	"gopkg.in/yaml.v3"
)

// Config represents the configuration for a shopping session run
type Config struct {
	// Storefront addresses and selectors
	Site SiteConfig `yaml:"site" json:"site"`

	// Browser launch settings
	Browser BrowserConfig `yaml:"browser" json:"browser"`

	// Task-planning model
	LLM LLMConfig `yaml:"llm" json:"llm"`

	// Pacing and randomness of execution
	Execution ExecutionConfig `yaml:"execution" json:"execution"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	// Output configuration
	Output OutputConfig `yaml:"output" json:"output"`
}

// SiteConfig describes the storefront being shopped
type SiteConfig struct {
	HomeURL      string                `yaml:"home_url" json:"home_url"`
	CartURL      string                `yaml:"cart_url" json:"cart_url"`
	Selectors    browser.Selectors     `yaml:"selectors" json:"selectors"`
	PagePatterns []session.PagePattern `yaml:"page_patterns" json:"page_patterns"`
}

// BrowserConfig defines how the browser is launched
type BrowserConfig struct {
	Headless       bool    `yaml:"headless" json:"headless"`
	TimeoutMS      float64 `yaml:"timeout_ms" json:"timeout_ms"`
	ViewportWidth  int     `yaml:"viewport_width" json:"viewport_width"`
	ViewportHeight int     `yaml:"viewport_height" json:"viewport_height"`
	// Install downloads the browser driver on first run
	Install bool `yaml:"install" json:"install"`
}

// ExecutionConfig defines engine pacing
type ExecutionConfig struct {
	StepDelay time.Duration `yaml:"step_delay" json:"step_delay"`
	// Seed fixes search-term selection; 0 means random
	Seed int64 `yaml:"seed" json:"seed"`
}

// LoggingConfig defines logging configuration
type LoggingConfig struct {
	// Verbosity controls logging level: quiet, normal, verbose, debug
	Verbosity string `yaml:"verbosity" json:"verbosity"`
}

// OutputConfig defines where results are written
type OutputConfig struct {
	// SummaryFile receives the session summary as JSON; empty disables it
	SummaryFile string `yaml:"summary_file" json:"summary_file"`
}

// DefaultConfig returns a configuration for the Tira Beauty storefront
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			HomeURL:      "https://www.tirabeauty.com/",
			CartURL:      "https://www.tirabeauty.com/cart/bag",
			Selectors:    browser.DefaultSelectors(),
			PagePatterns: session.DefaultPagePatterns(),
		},
		Browser: BrowserConfig{
			Headless:       false,
			TimeoutMS:      browser.DefaultTimeout,
			ViewportWidth:  browser.DefaultViewportWidth,
			ViewportHeight: browser.DefaultViewportHeight,
			Install:        true,
		},
		LLM: LLMConfig{
			Backend: BackendAuto,
		},
		Execution: ExecutionConfig{
			StepDelay: time.Second,
		},
		Logging: LoggingConfig{
			Verbosity: "normal",
		},
		Output: OutputConfig{
			SummaryFile: "shopsim-summary.json",
		},
	}
}

// DefaultPath returns ~/.shopsim/config.yaml
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".shopsim", "config.yaml"), nil
}

// Load reads the YAML file at path over the defaults. An empty path tries
// DefaultPath and silently keeps the defaults if that file does not exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validateURL("site.home_url", c.Site.HomeURL); err != nil {
		return err
	}
	if err := validateURL("site.cart_url", c.Site.CartURL); err != nil {
		return err
	}

	sel := c.Site.Selectors
	required := map[string]string{
		"search_input":      sel.SearchInput,
		"product_cards":     sel.ProductCards,
		"card_name":         sel.CardName,
		"hover_add_button":  sel.HoverAddButton,
		"detail_add_button": sel.DetailAddButton,
		"cart_items":        sel.CartItems,
		"remove_button":     sel.RemoveButton,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("site.selectors.%s is required", name)
		}
	}

	if _, err := c.Classifier(); err != nil {
		return err
	}

	if c.Browser.TimeoutMS <= 0 {
		return fmt.Errorf("browser.timeout_ms must be positive")
	}
	if c.Browser.ViewportWidth <= 0 || c.Browser.ViewportHeight <= 0 {
		return fmt.Errorf("browser viewport must be positive, got %dx%d", c.Browser.ViewportWidth, c.Browser.ViewportHeight)
	}

	if c.Execution.StepDelay < 0 {
		return fmt.Errorf("execution.step_delay cannot be negative")
	}

	if err := c.LLM.validate(); err != nil {
		return err
	}

	// Set default verbosity if not specified
	if c.Logging.Verbosity == "" {
		c.Logging.Verbosity = "normal"
	}
	validLevels := map[string]bool{
		"quiet":   true,
		"normal":  true,
		"verbose": true,
		"debug":   true,
	}
	if !validLevels[c.Logging.Verbosity] {
		return fmt.Errorf("invalid logging verbosity: %s (must be 'quiet', 'normal', 'verbose', or 'debug')", c.Logging.Verbosity)
	}

	return nil
}

func validateURL(field, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", field)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", field, raw)
	}
	return nil
}

// Classifier compiles the configured page patterns.
func (c *Config) Classifier() (*session.Classifier, error) {
	classifier, err := session.NewClassifier(c.Site.PagePatterns)
	if err != nil {
		return nil, fmt.Errorf("site.page_patterns: %w", err)
	}
	return classifier, nil
}

// SessionOptions converts the browser settings for the session manager.
func (c *Config) SessionOptions() browser.SessionOptions {
	return browser.SessionOptions{
		Headless: c.Browser.Headless,
		Timeout:  c.Browser.TimeoutMS,
		Viewport: &browser.Viewport{
			Width:  c.Browser.ViewportWidth,
			Height: c.Browser.ViewportHeight,
		},
	}
}
