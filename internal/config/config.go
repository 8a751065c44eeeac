package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"orbiter/internal/errors"
	"orbiter/internal/nav"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It defines navigation behavior, the site to show, lead submission and theme.
type Config struct {
	Navigation struct {
		Breakpoint      int           `yaml:"breakpoint"`        // Width at or above which the header is in desktop mode
		HoverCloseDelay time.Duration `yaml:"hover_close_delay"` // Delay before a dropdown closes after the pointer leaves
		HeaderClearance int           `yaml:"header_clearance"`  // Offset subtracted when scrolling to a section
		TapGating       string        `yaml:"tap_gating"`        // Which modes toggle dropdowns on tap: mobile or any
		SmoothScroll    bool          `yaml:"smooth_scroll"`     // Animate in-page section scrolling
	} `yaml:"navigation"`
	Site struct {
		StartPath   string `yaml:"start_path"`   // Path opened on launch
		ContentFile string `yaml:"content_file"` // Optional replacement for the built-in content
	} `yaml:"site"`
	Lead struct {
		Endpoint string        `yaml:"endpoint"` // Where demo requests are POSTed
		Timeout  time.Duration `yaml:"timeout"`  // HTTP timeout for a submission
	} `yaml:"lead"`
	Theme struct {
		Name    string `yaml:"name"`    // Theme name (default, dark, light, ocean)
		Primary string `yaml:"primary"` // Brand color
		Accent  string `yaml:"accent"`  // Hover and active link color
		Muted   string `yaml:"muted"`   // Secondary text
		Border  string `yaml:"border"`  // Border color for dropdowns and the drawer
	} `yaml:"theme"`
}

// DefaultPath returns ~/.config/orbiter/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "orbiter", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewConfigError("error reading config file", path, errors.ConfigNotFound, err)
	}

	// Unmarshal over the defaults so fields missing from the file keep them
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	cfg.Navigation.TapGating = strings.ToLower(strings.TrimSpace(cfg.Navigation.TapGating))
	cfg.mergeTheme()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Navigation.Breakpoint = 100 // terminal columns
	cfg.Navigation.HoverCloseDelay = 200 * time.Millisecond
	cfg.Navigation.HeaderClearance = 1
	cfg.Navigation.TapGating = "mobile"
	cfg.Navigation.SmoothScroll = true

	cfg.Site.StartPath = "/"

	cfg.Lead.Endpoint = "http://localhost:3000/api/request-demo"
	cfg.Lead.Timeout = 10 * time.Second

	cfg.ApplyTheme("default")

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	if c.Navigation.Breakpoint < 1 {
		return errors.NewConfigError("breakpoint must be >= 1", "navigation.breakpoint", errors.InvalidConfig, nil)
	}
	if c.Navigation.HoverCloseDelay < 0 {
		return errors.NewConfigError("hover close delay must be >= 0", "navigation.hover_close_delay", errors.InvalidConfig, nil)
	}
	if c.Navigation.HeaderClearance < 0 {
		return errors.NewConfigError("header clearance must be >= 0", "navigation.header_clearance", errors.InvalidConfig, nil)
	}
	if _, ok := nav.ParseTapGating(c.Navigation.TapGating); !ok {
		return errors.NewConfigError("invalid tap gating "+c.Navigation.TapGating, "navigation.tap_gating", errors.InvalidConfig, nil)
	}

	if !strings.HasPrefix(c.Site.StartPath, "/") {
		return errors.NewConfigError("start path must begin with /", "site.start_path", errors.InvalidConfig, nil)
	}
	if c.Site.ContentFile != "" {
		if _, err := os.Stat(c.Site.ContentFile); err != nil {
			return errors.NewConfigError("content file not readable", "site.content_file", errors.InvalidConfig, err)
		}
	}

	if c.Lead.Endpoint != "" {
		u, err := url.Parse(c.Lead.Endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.NewConfigError("lead endpoint must be an http(s) URL", "lead.endpoint", errors.InvalidConfig, err)
		}
	}
	if c.Lead.Timeout <= 0 {
		return errors.NewConfigError("lead timeout must be > 0", "lead.timeout", errors.InvalidConfig, nil)
	}

	if !validTheme(c.Theme.Name) {
		return errors.NewConfigError("unknown theme "+c.Theme.Name, "theme.name", errors.InvalidConfig, nil)
	}

	return nil
}

// NavOptions converts the navigation section into controller options.
func (c *Config) NavOptions() nav.Options {
	opts := nav.DefaultOptions()
	opts.Breakpoint = c.Navigation.Breakpoint
	opts.HoverCloseDelay = c.Navigation.HoverCloseDelay
	opts.HeaderClearance = c.Navigation.HeaderClearance
	opts.SmoothScroll = c.Navigation.SmoothScroll
	if gating, ok := nav.ParseTapGating(c.Navigation.TapGating); ok {
		opts.TapGating = gating
	}
	return opts
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Navigation.Breakpoint = 80
	cfg.Navigation.HoverCloseDelay = 50 * time.Millisecond
	cfg.Navigation.HeaderClearance = 0
	cfg.Navigation.SmoothScroll = false
	cfg.Lead.Timeout = time.Second
	return cfg
}

var themes = map[string]map[string]string{
	"default": {
		"primary": "#16A34A", // Green
		"accent":  "#4ADE80", // Light green
		"muted":   "#A3A3A3", // Grey
		"border":  "#262626", // Neutral 800
	},
	"dark": {
		"primary": "78",  // Dark Green
		"accent":  "114", // Green
		"muted":   "245", // Grey
		"border":  "236", // Near black
	},
	"light": {
		"primary": "28",  // Green
		"accent":  "34",  // Bright green
		"muted":   "240", // Dark grey
		"border":  "250", // Light grey
	},
	"ocean": {
		"primary": "31", // Teal
		"accent":  "51", // Cyan
		"muted":   "248",
		"border":  "24",
	},
}

// GetTheme returns a predefined theme configuration by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	if theme, exists := themes[name]; exists {
		return theme
	}
	return themes["default"]
}

// ApplyTheme sets the theme colors in the configuration.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)

	c.Theme.Name = name
	c.Theme.Primary = theme["primary"]
	c.Theme.Accent = theme["accent"]
	c.Theme.Muted = theme["muted"]
	c.Theme.Border = theme["border"]
}

// mergeTheme fills the colors of the named theme, keeping any color the
// file set explicitly.
func (c *Config) mergeTheme() {
	base := GetTheme("default")
	overrides := c.Theme
	c.ApplyTheme(c.Theme.Name)
	if overrides.Primary != base["primary"] {
		c.Theme.Primary = overrides.Primary
	}
	if overrides.Accent != base["accent"] {
		c.Theme.Accent = overrides.Accent
	}
	if overrides.Muted != base["muted"] {
		c.Theme.Muted = overrides.Muted
	}
	if overrides.Border != base["border"] {
		c.Theme.Border = overrides.Border
	}
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "ocean"}
}

func validTheme(name string) bool {
	_, ok := themes[name]
	return ok
}
