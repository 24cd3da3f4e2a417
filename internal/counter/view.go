package counter

import "fmt"

const (
	labelStart = "START"
	labelPause = "PAUSE"
	labelReset = "RESET"
)

// ViewModel holds the render-ready values derived from counter state.
type ViewModel struct {
	Elapsed int
	Minutes int
	Seconds int

	// Progress is the fill of the current minute in [0, 1).
	Progress float64

	MM string
	SS string

	Running      bool
	StartLabel   string
	ResetLabel   string
	ResetEnabled bool
}

// Percent returns the progress bar fill as a percentage.
func (v ViewModel) Percent() float64 {
	return v.Progress * 100
}

// Clock formats the view as MM:SS.
func (v ViewModel) Clock() string {
	return v.MM + ":" + v.SS
}

// Derive computes the view model for the given elapsed seconds.
func Derive(elapsed int, running bool) ViewModel {
	if elapsed < 0 {
		elapsed = 0
	}
	m := elapsed / 60
	s := elapsed % 60

	start := labelStart
	if running {
		start = labelPause
	}

	return ViewModel{
		Elapsed:      elapsed,
		Minutes:      m,
		Seconds:      s,
		Progress:     float64(s) / 60,
		MM:           fmt.Sprintf("%02d", m),
		SS:           fmt.Sprintf("%02d", s),
		Running:      running,
		StartLabel:   start,
		ResetLabel:   labelReset,
		ResetEnabled: elapsed != 0,
	}
}
