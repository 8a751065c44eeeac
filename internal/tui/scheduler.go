package tui

import (
	"time"

	"orbiter/internal/nav"
	"orbiter/internal/tui/messages"

	tea "github.com/charmbracelet/bubbletea"
)

// teaScheduler runs delayed controller tasks through the bubbletea loop.
// AfterFunc queues a tick command; the model drains the queue at the end of
// every Update. A stopped timer's tick still arrives but finds nothing to run.
type teaScheduler struct {
	nextID int
	live   map[int]func()
	queued []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{live: make(map[int]func())}
}

type teaTimer struct {
	s  *teaScheduler
	id int
}

func (t *teaTimer) Stop() bool {
	_, ok := t.s.live[t.id]
	delete(t.s.live, t.id)
	return ok
}

func (s *teaScheduler) AfterFunc(d time.Duration, fn func()) nav.Timer {
	s.nextID++
	id := s.nextID
	s.live[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return messages.TimerFiredMsg{ID: id}
	}))
	return &teaTimer{s: s, id: id}
}

// fire runs the task for id if it is still live.
func (s *teaScheduler) fire(id int) bool {
	fn, ok := s.live[id]
	if !ok {
		return false
	}
	delete(s.live, id)
	fn()
	return true
}

// drain returns the ticks queued since the last call.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

func (s *teaScheduler) pending() int {
	return len(s.live)
}
