package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"orbiter/internal/config"
	"orbiter/internal/errors"
	"orbiter/internal/nav"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary YAML config file
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	err = tmpFile.Close()
	require.NoError(t, err)
	return tmpFile.Name()
}

const (
	validYAML = `
navigation:
  breakpoint: 120
  hover_close_delay: 500ms
  header_clearance: 3
  tap_gating: Any
  smooth_scroll: false
site:
  start_path: /solutions
lead:
  endpoint: https://example.com/api/request-demo
  timeout: 5s
theme:
  name: ocean
`
	invalidSyntaxYAML = `
navigation:
  breakpoint: [1, 2
  tap_gating: "mobile
`
	invalidGatingYAML = `
navigation:
  tap_gating: hover
`
	invalidEndpointYAML = `
lead:
  endpoint: ftp://example.com/leads
`
	overrideThemeYAML = `
theme:
  name: dark
  accent: "#FF00FF"
`
)

func TestLoadConfigFile(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(createTestYAML(t, validYAML))
		require.NoError(t, err)

		assert.Equal(t, 120, cfg.Navigation.Breakpoint)
		assert.Equal(t, 500*time.Millisecond, cfg.Navigation.HoverCloseDelay)
		assert.Equal(t, 3, cfg.Navigation.HeaderClearance)
		assert.Equal(t, "any", cfg.Navigation.TapGating)
		assert.False(t, cfg.Navigation.SmoothScroll)
		assert.Equal(t, "/solutions", cfg.Site.StartPath)
		assert.Equal(t, "https://example.com/api/request-demo", cfg.Lead.Endpoint)
		assert.Equal(t, 5*time.Second, cfg.Lead.Timeout)
		assert.Equal(t, "ocean", cfg.Theme.Name)
		assert.Equal(t, config.GetTheme("ocean")["primary"], cfg.Theme.Primary)
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.New(), cfg)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(createTestYAML(t, "navigation:\n  breakpoint: 90\n"))
		require.NoError(t, err)
		assert.Equal(t, 90, cfg.Navigation.Breakpoint)
		assert.Equal(t, 200*time.Millisecond, cfg.Navigation.HoverCloseDelay)
		assert.Equal(t, "mobile", cfg.Navigation.TapGating)
		assert.Equal(t, "/", cfg.Site.StartPath)
	})

	t.Run("invalid syntax", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, invalidSyntaxYAML))
		require.Error(t, err)
		assert.True(t, errors.IsInvalidConfig(err))
	})

	t.Run("invalid tap gating", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, invalidGatingYAML))
		require.Error(t, err)
		var cfgErr *errors.ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "navigation.tap_gating", cfgErr.Param())
	})

	t.Run("invalid endpoint", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, invalidEndpointYAML))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lead.endpoint")
	})

	t.Run("explicit colors override theme", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(createTestYAML(t, overrideThemeYAML))
		require.NoError(t, err)
		assert.Equal(t, "dark", cfg.Theme.Name)
		assert.Equal(t, "#FF00FF", cfg.Theme.Accent)
		assert.Equal(t, config.GetTheme("dark")["primary"], cfg.Theme.Primary)
	})
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		param  string
	}{
		{"zero breakpoint", func(c *config.Config) { c.Navigation.Breakpoint = 0 }, "navigation.breakpoint"},
		{"negative delay", func(c *config.Config) { c.Navigation.HoverCloseDelay = -time.Second }, "navigation.hover_close_delay"},
		{"negative clearance", func(c *config.Config) { c.Navigation.HeaderClearance = -1 }, "navigation.header_clearance"},
		{"relative start path", func(c *config.Config) { c.Site.StartPath = "about" }, "site.start_path"},
		{"missing content file", func(c *config.Config) { c.Site.ContentFile = "/nonexistent/content.yaml" }, "site.content_file"},
		{"zero timeout", func(c *config.Config) { c.Lead.Timeout = 0 }, "lead.timeout"},
		{"unknown theme", func(c *config.Config) { c.Theme.Name = "neon" }, "theme.name"},
	}

	require.NoError(t, config.New().Validate())
	require.NoError(t, config.NewTestConfig().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			var cfgErr *errors.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.param, cfgErr.Param())
			assert.True(t, errors.IsInvalidConfig(err))
		})
	}
}

func TestNavOptions(t *testing.T) {
	cfg := config.New()
	cfg.Navigation.TapGating = "any"
	cfg.Navigation.HoverCloseDelay = 500 * time.Millisecond

	opts := cfg.NavOptions()
	assert.Equal(t, 100, opts.Breakpoint)
	assert.Equal(t, 500*time.Millisecond, opts.HoverCloseDelay)
	assert.Equal(t, 1, opts.HeaderClearance)
	assert.Equal(t, nav.TapAny, opts.TapGating)
	assert.True(t, opts.SmoothScroll)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := config.New()
	cfg.ApplyTheme("light")
	cfg.Navigation.HoverCloseDelay = 350 * time.Millisecond

	require.NoError(t, config.SaveConfig(cfg, path))
	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestThemes(t *testing.T) {
	assert.ElementsMatch(t, []string{"default", "dark", "light", "ocean"}, config.ListThemes())
	assert.Equal(t, config.GetTheme("default"), config.GetTheme("missing"))

	cfg := config.New()
	cfg.ApplyTheme("dark")
	assert.Equal(t, "dark", cfg.Theme.Name)
	assert.Equal(t, config.GetTheme("dark")["border"], cfg.Theme.Border)
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("navigation:\n  breakpoint: 90\n"), 0644))

	w, err := config.Watch(path)
	require.NoError(t, err)
	defer w.Close()

	// Unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("navigation:\n  breakpoint: 140\n"), 0644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Updates():
			require.NotNil(t, cfg)
			if cfg.Navigation.Breakpoint == 140 {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for config reload")
		}
	}
}

func TestWatchSkipsInvalidReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("navigation:\n  breakpoint: 90\n"), 0644))

	w, err := config.Watch(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(invalidGatingYAML), 0644))
	select {
	case cfg := <-w.Updates():
		t.Fatalf("unexpected update %+v", cfg)
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, w.Close())
	_, open := <-w.Updates()
	assert.False(t, open)
}
