package tui

import (
	"testing"
	"time"

	"orbiter/internal/nav"

	"github.com/stretchr/testify/assert"
)

func TestTeaSchedulerFiresLiveTasks(t *testing.T) {
	s := newTeaScheduler()
	var ran []int

	s.AfterFunc(time.Millisecond, func() { ran = append(ran, 1) })
	timer := s.AfterFunc(time.Millisecond, func() { ran = append(ran, 2) })
	assert.Equal(t, 2, s.pending())
	assert.NotNil(t, s.drain())
	assert.Nil(t, s.drain(), "queue is emptied by drain")

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	assert.True(t, s.fire(1))
	assert.False(t, s.fire(2), "stopped task never runs")
	assert.False(t, s.fire(1), "tasks run once")
	assert.Equal(t, []int{1}, ran)
	assert.Zero(t, s.pending())
}

func TestTeaSchedulerDrivesHoverIntent(t *testing.T) {
	s := newTeaScheduler()
	var open nav.Menu
	h := nav.NewHoverIntent(s, 10*time.Millisecond, func(m nav.Menu) { open = m }, func() { open = nav.MenuNone })

	h.Enter(nav.MenuProducts)
	h.Leave()
	assert.True(t, h.Pending())
	s.fire(1)
	assert.Equal(t, nav.MenuNone, open)
	assert.False(t, h.Pending())
}

func TestTeaWindowResizeOnlyOnWidthChange(t *testing.T) {
	w := newTeaWindow(80, 24)
	var widths []int
	unsub := w.OnResize(func(width int) { widths = append(widths, width) })

	w.setSize(80, 30)
	w.setSize(120, 30)
	assert.Equal(t, []int{120}, widths)

	unsub()
	w.setSize(60, 30)
	assert.Equal(t, []int{120}, widths)
	assert.Zero(t, w.listeners())
}
