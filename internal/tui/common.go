package tui

import (
	"time"

	"github.com/sadopc/counter/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewCounter viewState = iota
	viewSettings
)

var viewNames = []string{"Counter", "Settings"}

// --- Messages ---

// tickMsg is delivered by tea.Tick for a scheduled handle.
type tickMsg struct {
	id int
	at time.Time
}

type statusMsg struct {
	text    string
	isError bool
}

type prefsSavedMsg struct {
	prefs store.Prefs
}
