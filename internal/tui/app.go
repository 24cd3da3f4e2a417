package tui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/counter/internal/counter"
	"github.com/sadopc/counter/internal/router"
	"github.com/sadopc/counter/internal/store"
)

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	router *router.Router
	sched  *tickScheduler
	width  int
	height int

	route      router.Match
	prefs      store.Prefs
	activeView viewState
	showHelp   bool

	counter  counterModel
	settings settingsModel

	help      help.Model
	status    string
	statusErr bool
}

type options struct {
	startPath *string
	router    *router.Router
}

// Option configures NewApp.
type Option func(*options)

// WithStartPath overrides the start path stored in preferences.
func WithStartPath(path string) Option {
	return func(o *options) { o.startPath = &path }
}

// WithRouter replaces the default routes.
func WithRouter(r *router.Router) Option {
	return func(o *options) { o.router = r }
}

// NewApp resolves the start path and builds the view it routes to.
func NewApp(s *store.Store, opts ...Option) (App, error) {
	o := options{router: router.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	prefs, err := s.LoadPrefs()
	if err != nil {
		log.Printf("load prefs, using defaults: %v", err)
	}

	path := prefs.StartPath
	if o.startPath != nil {
		path = *o.startPath
	}
	match, err := o.router.Resolve(path)
	if err != nil {
		return App{}, fmt.Errorf("resolve start path: %w", err)
	}
	log.Printf("route %q -> %s (redirects %v)", path, match.View, match.Redirects)

	h := help.New()
	h.ShowAll = prefs.ShowHelp

	sched := newTickScheduler()
	a := App{
		store:      s,
		router:     o.router,
		sched:      sched,
		route:      match,
		prefs:      prefs,
		activeView: viewCounter,
		showHelp:   prefs.ShowHelp,
		settings:   newSettingsModel(s, o.router),
		help:       h,
	}

	switch match.View {
	case router.ViewCounter:
		a.counter = newCounterModel(counter.New(sched), prefs)
	default:
		return App{}, fmt.Errorf("route %q: unknown view %q", match.Path, match.View)
	}
	return a, nil
}

func (a App) Init() tea.Cmd {
	return a.sched.drain()
}

// Update handles msg and then flushes tick registrations made while
// handling it.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.update(msg)
	return next, tea.Batch(cmd, a.sched.drain())
}

func (a App) update(msg tea.Msg) (App, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.counter.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tickMsg:
		return a, a.sched.fire(msg)

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isError
		return a, nil

	case prefsSavedMsg:
		a.prefs = msg.prefs
		a.counter.applyPrefs(msg.prefs)
		a.showHelp = msg.prefs.ShowHelp
		a.help.ShowAll = msg.prefs.ShowHelp
		a.status = "Settings saved"
		a.statusErr = false
		return a, nil

	case tea.KeyMsg:
		if a.activeView == viewSettings {
			return a.updateSettings(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			a.Teardown()
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Settings):
			a.activeView = viewSettings
			var cmd tea.Cmd
			a.settings, cmd = a.settings.showForm(a.prefs)
			return a, cmd
		}

		a.status = ""
		var cmd tea.Cmd
		a.counter, cmd = a.counter.update(msg)
		return a, cmd
	}

	if a.activeView == viewSettings {
		return a.updateSettings(msg)
	}
	return a, nil
}

func (a App) updateSettings(msg tea.Msg) (App, tea.Cmd) {
	var cmd tea.Cmd
	a.settings, cmd = a.settings.update(msg)
	if !a.settings.formActive {
		a.activeView = viewCounter
	}
	return a, cmd
}

// Teardown releases the counter's tick. It is safe to call more than once.
func (a App) Teardown() {
	a.counter.teardown()
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewCounter:
		content = a.counter.view()
	case viewSettings:
		content = a.settings.view()
	}

	// Calculate available height for content
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	tab := activeTabStyle.Render(viewNames[a.activeView])

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("counter")
	path := mutedStyle.Render(" /" + a.route.Path)
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(path) - lipgloss.Width(tab) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, path, spacer, tab),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := a.status
	if status == "" {
		status = a.counter.statusText()
	}
	if status != "" {
		if a.statusErr {
			status = errorStyle.Render(" " + status)
		} else {
			status = mutedStyle.Render(" " + status)
		}
	}

	// Counter indicator in footer
	indicator := ""
	vm := *a.counter.vm
	switch {
	case vm.Running:
		indicator = successStyle.Render(" ● " + vm.Clock())
	case vm.Elapsed > 0:
		indicator = warningStyle.Render(" ⏸ " + vm.Clock())
	}

	left := footerStyle.Render(helpView)
	right := indicator + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}
