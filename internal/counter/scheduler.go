package counter

import "time"

// Scheduler registers periodic callbacks that run on the caller's event
// loop. Callbacks must never run concurrently with each other or with the
// goroutine that drives the Counter.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Handle
}

// Handle is an active periodic registration. Stop deregisters it; once
// Stop returns the callback never fires again. Stop may be called more
// than once.
type Handle interface {
	Stop()
}
