package components

import (
	"strings"
	"time"

	"orbiter/internal/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

type StatusBar struct {
	location  string
	text      string
	style     lipgloss.Style
	spinner   spinner.Model
	loading   bool
	submitted time.Time
	now       func() time.Time
}

func NewStatusBar(th *styles.Theme) *StatusBar {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = th.Status

	return &StatusBar{
		style:   th.Status,
		spinner: s,
		now:     time.Now,
	}
}

func (s *StatusBar) SetTheme(th *styles.Theme) {
	s.style = th.Status
	s.spinner.Style = th.Status
}

// SetLoading starts or stops the spinner. The returned command drives the
// spinner animation.
func (s *StatusBar) SetLoading(loading bool) tea.Cmd {
	s.loading = loading
	if loading {
		return s.spinner.Tick
	}
	return nil
}

func (s *StatusBar) Loading() bool {
	return s.loading
}

func (s *StatusBar) SetText(text string) {
	s.text = text
}

func (s *StatusBar) SetLocation(location string) {
	s.location = location
}

// SetSubmitted records when the last demo request went through.
func (s *StatusBar) SetSubmitted(at time.Time) {
	s.submitted = at
}

func (s *StatusBar) Update(msg tea.Msg) tea.Cmd {
	if s.loading {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd
	}
	return nil
}

func (s *StatusBar) View(width int) string {
	parts := []string{}
	if s.location != "" {
		parts = append(parts, s.location)
	}
	if s.loading {
		parts = append(parts, s.spinner.View()+" "+s.text)
	} else if s.text != "" {
		parts = append(parts, s.text)
	}
	if !s.submitted.IsZero() {
		parts = append(parts, "demo requested "+humanize.RelTime(s.submitted, s.now(), "ago", "from now"))
	}
	line := " " + strings.Join(parts, " │ ")
	return s.style.MaxWidth(max(width, 1)).Render(line)
}
