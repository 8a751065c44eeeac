//go:build !nogui

package gui

import (
	"orbiter/internal/config"
	"orbiter/internal/errors"
	"orbiter/internal/site"
)

// Interface defines the contract for GUI operations
type Interface interface {
	Run()
	Watch(updates <-chan *config.Config)
	ShowError(title string, err error)
	ShowInfo(message string)
}

// Factory creates GUI instances
type Factory struct {
	config  *config.Config
	content *site.Content
	opts    []Option
}

// NewFactory creates a new GUI factory
func NewFactory(cfg *config.Config, content *site.Content, opts ...Option) *Factory {
	return &Factory{config: cfg, content: content, opts: opts}
}

// Create returns a new GUI instance
func (f *Factory) Create() (Interface, error) {
	if f.content == nil {
		return nil, errors.New("gui needs site content")
	}
	return New(f.config, f.content, f.opts...), nil
}

// Start runs the desktop front end until its window is closed, applying
// config reloads from updates when it is non-nil.
func Start(cfg *config.Config, content *site.Content, updates <-chan *config.Config) error {
	ui, err := NewFactory(cfg, content).Create()
	if err != nil {
		return err
	}
	if updates != nil {
		ui.Watch(updates)
	}
	ui.Run()
	return nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}
