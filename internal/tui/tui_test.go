package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/counter/internal/counter"
	"github.com/sadopc/counter/internal/router"
	"github.com/sadopc/counter/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestApp(t *testing.T, opts ...Option) App {
	t.Helper()
	a, err := NewApp(newTestStore(t), opts...)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(a.Teardown)
	return send(a, tea.WindowSizeMsg{Width: 80, Height: 30})
}

func send(a App, msg tea.Msg) App {
	next, _ := a.Update(msg)
	return next.(App)
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// tick delivers n tick messages for handle id.
func tick(a App, id, n int) App {
	for i := 0; i < n; i++ {
		a = send(a, tickMsg{id: id, at: time.Now()})
	}
	return a
}

// ============================================================
// Tick scheduler
// ============================================================

func TestSchedulerEveryQueuesTick(t *testing.T) {
	s := newTickScheduler()
	if s.drain() != nil {
		t.Fatal("empty scheduler should have nothing to drain")
	}

	s.Every(time.Second, func() {})
	if s.activeCount() != 1 {
		t.Fatalf("expected 1 active handle, got %d", s.activeCount())
	}
	if s.drain() == nil {
		t.Fatal("expected a queued tick command")
	}
	if s.drain() != nil {
		t.Fatal("drain should clear the queue")
	}
}

func TestSchedulerFireRearms(t *testing.T) {
	s := newTickScheduler()
	calls := 0
	s.Every(time.Second, func() { calls++ })
	s.drain()

	if cmd := s.fire(tickMsg{id: 1}); cmd == nil {
		t.Fatal("live handle should re-arm")
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestSchedulerStopDropsPendingTick(t *testing.T) {
	s := newTickScheduler()
	calls := 0
	h := s.Every(time.Second, func() { calls++ })
	h.Stop()
	h.Stop()

	if cmd := s.fire(tickMsg{id: 1}); cmd != nil {
		t.Fatal("stopped handle should not re-arm")
	}
	if calls != 0 {
		t.Fatal("stopped handle should not fire")
	}
	if s.activeCount() != 0 {
		t.Fatal("stopped handle should be removed")
	}
}

func TestSchedulerStopInsideCallback(t *testing.T) {
	s := newTickScheduler()
	var h counter.Handle
	h = s.Every(time.Second, func() { h.Stop() })

	if cmd := s.fire(tickMsg{id: 1}); cmd != nil {
		t.Fatal("handle stopped by its own callback should not re-arm")
	}
}

func TestSchedulerUnknownID(t *testing.T) {
	s := newTickScheduler()
	if cmd := s.fire(tickMsg{id: 42}); cmd != nil {
		t.Fatal("unknown id should be ignored")
	}
}

// ============================================================
// App routing
// ============================================================

func TestNewAppDefaultRoute(t *testing.T) {
	a := newTestApp(t)
	if a.route.View != router.ViewCounter || a.route.Path != "counter" {
		t.Fatalf("unexpected route %+v", a.route)
	}
	if len(a.route.Redirects) != 1 {
		t.Fatalf("empty path should redirect once, got %v", a.route.Redirects)
	}
}

func TestNewAppStartPathOverride(t *testing.T) {
	a := newTestApp(t, WithStartPath("/counter"))
	if a.route.Path != "counter" || len(a.route.Redirects) != 0 {
		t.Fatalf("unexpected route %+v", a.route)
	}
}

func TestNewAppStartPathFromPrefs(t *testing.T) {
	s := newTestStore(t)
	p := store.DefaultPrefs()
	p.StartPath = "counter"
	if err := s.SavePrefs(p); err != nil {
		t.Fatal(err)
	}

	a, err := NewApp(s)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Teardown()
	if len(a.route.Redirects) != 0 {
		t.Fatalf("expected direct match, got %+v", a.route)
	}
}

func TestNewAppUnknownPath(t *testing.T) {
	_, err := NewApp(newTestStore(t), WithStartPath("stats"))
	if !errors.Is(err, router.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNewAppUnknownView(t *testing.T) {
	r, err := router.New(router.Route{Path: "", View: "clock"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewApp(newTestStore(t), WithRouter(r)); err == nil {
		t.Fatal("expected error for a view the app cannot build")
	}
}

// ============================================================
// Counter view
// ============================================================

func TestAppToggleStartsAndPauses(t *testing.T) {
	a := newTestApp(t)

	a = send(a, keySpace)
	if !a.counter.widget.Running() {
		t.Fatal("space should start the counter")
	}
	if a.sched.activeCount() != 1 {
		t.Fatalf("expected 1 active tick, got %d", a.sched.activeCount())
	}

	a = send(a, keySpace)
	if a.counter.widget.Running() {
		t.Fatal("second space should pause")
	}
	if a.sched.activeCount() != 0 {
		t.Fatal("pause should cancel the tick")
	}
}

func TestAppTicksAdvanceView(t *testing.T) {
	a := newTestApp(t)
	a = send(a, keySpace)
	a = tick(a, 1, 65)

	vm := *a.counter.vm
	if vm.Minutes != 1 || vm.Seconds != 5 {
		t.Fatalf("expected 1:05, got %d:%d", vm.Minutes, vm.Seconds)
	}

	out := a.View()
	for _, want := range []string{"01", "05", "MIN", "SEC", "PAUSE", "RESET"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "START") {
		t.Fatal("running counter should not show START")
	}
}

func TestAppStaleTickAfterPause(t *testing.T) {
	a := newTestApp(t)
	a = send(a, keySpace)
	a = tick(a, 1, 3)
	a = send(a, keySpace)

	// The tick that was already in flight for handle 1 arrives late.
	a = tick(a, 1, 2)
	if a.counter.widget.Elapsed() != 3 {
		t.Fatalf("stale tick changed state: %d", a.counter.widget.Elapsed())
	}

	// Restart gets a fresh handle; only it drives the counter.
	a = send(a, keySpace)
	a = tick(a, 1, 2)
	a = tick(a, 2, 2)
	if a.counter.widget.Elapsed() != 5 {
		t.Fatalf("expected 5, got %d", a.counter.widget.Elapsed())
	}
}

func TestAppInitialView(t *testing.T) {
	a := newTestApp(t)
	out := a.View()
	for _, want := range []string{"Counter", "00", "START", "RESET", "/counter"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestAppResetDisabledAtZero(t *testing.T) {
	a := newTestApp(t)
	events := 0
	a.counter.widget.Subscribe(func(counter.Event) { events++ })

	a = send(a, runeKey('r'))
	a = send(a, keyRight)
	a = send(a, keyEnter)

	if events != 0 {
		t.Fatalf("reset at zero should not reach the counter, got %d events", events)
	}
}

func TestAppResetKey(t *testing.T) {
	a := newTestApp(t)
	a = send(a, keySpace)
	a = tick(a, 1, 10)

	a = send(a, runeKey('r'))
	w := a.counter.widget
	if w.Running() || w.Elapsed() != 0 {
		t.Fatalf("expected idle at 0, got running=%v elapsed=%d", w.Running(), w.Elapsed())
	}
	if a.sched.activeCount() != 0 {
		t.Fatal("reset should cancel the tick")
	}
	if a.counter.statusText() != "Counter reset" {
		t.Fatalf("unexpected status %q", a.counter.statusText())
	}
}

func TestAppButtonFocus(t *testing.T) {
	a := newTestApp(t)

	a = send(a, keyEnter) // start button focused by default
	if !a.counter.widget.Running() {
		t.Fatal("enter on START should start")
	}
	a = tick(a, 1, 4)

	a = send(a, keyRight)
	a = send(a, keyEnter)
	if a.counter.widget.Elapsed() != 0 || a.counter.widget.Running() {
		t.Fatal("enter on RESET should reset")
	}
}

func TestAppQuitTearsDown(t *testing.T) {
	a := newTestApp(t)
	a = send(a, keySpace)
	a = tick(a, 1, 2)

	next, cmd := a.Update(runeKey('q'))
	a = next.(App)
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
	if !a.counter.widget.Closed() {
		t.Fatal("quit should tear down the counter")
	}
	if a.sched.activeCount() != 0 {
		t.Fatal("teardown should cancel the tick")
	}

	a = tick(a, 1, 5)
	if a.counter.widget.Elapsed() != 2 {
		t.Fatalf("ticks after teardown changed state: %d", a.counter.widget.Elapsed())
	}
}

func TestAppHelpToggle(t *testing.T) {
	a := newTestApp(t)
	a = send(a, runeKey('?'))
	if !a.showHelp || !a.help.ShowAll {
		t.Fatal("? should expand help")
	}
	a = send(a, runeKey('?'))
	if a.showHelp {
		t.Fatal("? should collapse help")
	}
}

// ============================================================
// Settings
// ============================================================

func TestAppSettingsOpenAndCancel(t *testing.T) {
	a := newTestApp(t)
	a = send(a, keySpace)

	a = send(a, runeKey(','))
	if a.activeView != viewSettings || !a.settings.formActive {
		t.Fatal(", should open the settings form")
	}
	if !strings.Contains(a.View(), "Settings") {
		t.Fatal("settings view should render")
	}

	// Ticks keep flowing while the form is open.
	a = tick(a, 1, 3)
	if a.counter.widget.Elapsed() != 3 {
		t.Fatalf("expected 3, got %d", a.counter.widget.Elapsed())
	}

	a = send(a, keyEsc)
	if a.activeView != viewCounter {
		t.Fatal("esc should close the form")
	}
}

func TestAppPrefsSaved(t *testing.T) {
	a := newTestApp(t)
	prefs := store.Prefs{
		ProgressStyle: store.ProgressSolid,
		AccentColor:   "#ED8936",
		ShowHelp:      true,
	}
	a = send(a, prefsSavedMsg{prefs: prefs})

	if a.prefs != prefs {
		t.Fatalf("prefs not applied: %+v", a.prefs)
	}
	if !a.help.ShowAll {
		t.Fatal("show help pref should expand help")
	}
	if a.status != "Settings saved" {
		t.Fatalf("unexpected status %q", a.status)
	}
}

func TestSettingsSavePersists(t *testing.T) {
	s := newTestStore(t)
	m := newSettingsModel(s, router.Default())
	*m.startPath = "/counter/"
	*m.progressStyle = store.ProgressSolid
	*m.accentColor = "#123456"
	*m.showHelp = true

	msg := m.save()()
	saved, ok := msg.(prefsSavedMsg)
	if !ok {
		t.Fatalf("expected prefsSavedMsg, got %T", msg)
	}
	if saved.prefs.StartPath != "counter" {
		t.Fatalf("start path should be normalized, got %q", saved.prefs.StartPath)
	}

	got, err := s.LoadPrefs()
	if err != nil {
		t.Fatal(err)
	}
	if got != saved.prefs {
		t.Fatalf("expected %+v, got %+v", saved.prefs, got)
	}
}

func TestSettingsSaveInvalid(t *testing.T) {
	s := newTestStore(t)
	m := newSettingsModel(s, router.Default())
	*m.progressStyle = store.ProgressSolid
	*m.accentColor = "orange"

	msg := m.save()()
	st, ok := msg.(statusMsg)
	if !ok || !st.isError {
		t.Fatalf("expected error status, got %#v", msg)
	}
}

func TestSettingsValidators(t *testing.T) {
	m := newSettingsModel(nil, router.Default())
	if err := m.validatePath(""); err != nil {
		t.Fatalf("empty path should resolve: %v", err)
	}
	if err := m.validatePath("nope"); err == nil {
		t.Fatal("unknown path should fail validation")
	}
	if err := validateColor("#ABCDEF"); err != nil {
		t.Fatal(err)
	}
	if err := validateColor("ABCDEF"); err == nil {
		t.Fatal("color without # should fail")
	}
}
