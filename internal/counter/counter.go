// Package counter implements a start/pause/reset seconds counter that is
// independent of any rendering toolkit. State changes are pushed to
// observers as Events carrying a derived ViewModel.
package counter

import "time"

// TickInterval is the period between two increments of a running counter.
const TickInterval = time.Second

type observer struct {
	id int
	fn func(Event)
}

// Counter is a seconds counter with two states, idle and running.
//
// A Counter is not safe for concurrent use. All actions and the tick
// callback must run on the same event loop as the Scheduler.
type Counter struct {
	sched Scheduler
	now   func() time.Time

	elapsed int
	running bool
	tick    Handle // non-nil iff running
	closed  bool

	observers []observer
	nextID    int
}

// New returns an idle counter at zero that ticks through s.
func New(s Scheduler) *Counter {
	return &Counter{
		sched: s,
		now:   time.Now,
	}
}

// Subscribe registers fn to receive every subsequent Event. The returned
// function removes the subscription.
func (c *Counter) Subscribe(fn func(Event)) func() {
	if c.closed || fn == nil {
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.observers = append(c.observers, observer{id: id, fn: fn})
	return func() { c.unsubscribe(id) }
}

func (c *Counter) unsubscribe(id int) {
	for i, o := range c.observers {
		if o.id == id {
			c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
			return
		}
	}
}

// ToggleStart starts an idle counter, or pauses a running one.
func (c *Counter) ToggleStart() {
	if c.closed {
		return
	}
	if c.running {
		c.Pause()
		return
	}
	c.running = true
	c.tick = c.sched.Every(TickInterval, c.onTick)
	c.emit(EventStarted)
}

// Pause stops a running counter. It is a no-op when idle.
func (c *Counter) Pause() {
	if !c.stop() {
		return
	}
	c.emit(EventPaused)
}

// Reset stops the counter and sets it back to zero. It is ignored when
// the counter is already at zero; the return value reports whether the
// reset was applied.
func (c *Counter) Reset() bool {
	if c.closed || c.elapsed == 0 {
		return false
	}
	c.stop()
	c.elapsed = 0
	c.emit(EventReset)
	return true
}

// Teardown releases the tick registration and detaches all observers.
// The counter ignores every action afterwards. Calling Teardown more
// than once is safe.
func (c *Counter) Teardown() {
	if c.closed {
		return
	}
	c.stop()
	c.closed = true
	c.emit(EventClosed)
	c.observers = nil
}

// stop releases the tick handle and reports whether the counter was running.
func (c *Counter) stop() bool {
	if !c.running {
		return false
	}
	if c.tick != nil {
		c.tick.Stop()
		c.tick = nil
	}
	c.running = false
	return true
}

func (c *Counter) onTick() {
	if c.closed || !c.running {
		return
	}
	c.elapsed++
	c.emit(EventTick)
}

func (c *Counter) emit(t EventType) {
	if len(c.observers) == 0 {
		return
	}
	ev := Event{Type: t, View: c.View(), At: c.now()}
	// Observers may unsubscribe while being notified.
	obs := append([]observer(nil), c.observers...)
	for _, o := range obs {
		o.fn(ev)
	}
}

// Elapsed returns the elapsed seconds.
func (c *Counter) Elapsed() int { return c.elapsed }

// Running reports whether the counter is ticking.
func (c *Counter) Running() bool { return c.running }

// Closed reports whether Teardown has been called.
func (c *Counter) Closed() bool { return c.closed }

// View returns the current view model.
func (c *Counter) View() ViewModel {
	return Derive(c.elapsed, c.running)
}
