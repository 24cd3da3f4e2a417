package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/counter/internal/counter"
)

// tickScheduler implements counter.Scheduler on top of tea.Tick. Callbacks
// run inside Update, so they share the program's single event loop with
// key handling.
//
// Every does not return a command; it queues one, and the app drains the
// queue after each Update. A tick for a handle that was stopped in the
// meantime is dropped when it arrives.
type tickScheduler struct {
	nextID  int
	active  map[int]*tickHandle
	pending []tea.Cmd
}

type tickHandle struct {
	id       int
	interval time.Duration
	fn       func()
	sched    *tickScheduler
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{active: make(map[int]*tickHandle)}
}

func (s *tickScheduler) Every(interval time.Duration, fn func()) counter.Handle {
	s.nextID++
	h := &tickHandle{
		id:       s.nextID,
		interval: interval,
		fn:       fn,
		sched:    s,
	}
	s.active[h.id] = h
	s.pending = append(s.pending, h.cmd())
	return h
}

func (h *tickHandle) Stop() {
	delete(h.sched.active, h.id)
}

func (h *tickHandle) cmd() tea.Cmd {
	id := h.id
	return tea.Tick(h.interval, func(t time.Time) tea.Msg {
		return tickMsg{id: id, at: t}
	})
}

// fire runs the callback for msg and re-arms the handle if it is still
// registered afterwards.
func (s *tickScheduler) fire(msg tickMsg) tea.Cmd {
	h, ok := s.active[msg.id]
	if !ok {
		return nil
	}
	h.fn()
	if _, ok := s.active[msg.id]; !ok {
		return nil
	}
	return h.cmd()
}

// drain returns queued tick commands and clears the queue.
func (s *tickScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

func (s *tickScheduler) activeCount() int {
	return len(s.active)
}
