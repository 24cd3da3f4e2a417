package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/counter/internal/router"
	"github.com/sadopc/counter/internal/store"
)

type settingsModel struct {
	store  *store.Store
	router *router.Router
	width  int
	height int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	startPath     *string
	progressStyle *string
	accentColor   *string
	showHelp      *bool
}

func newSettingsModel(s *store.Store, r *router.Router) settingsModel {
	sp, ps, ac := "", "", ""
	sh := false
	return settingsModel{
		store:         s,
		router:        r,
		startPath:     &sp,
		progressStyle: &ps,
		accentColor:   &ac,
		showHelp:      &sh,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) showForm(current store.Prefs) (settingsModel, tea.Cmd) {
	*s.startPath = current.StartPath
	*s.progressStyle = current.ProgressStyle
	*s.accentColor = current.AccentColor
	*s.showHelp = current.ShowHelp

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Start path").
				Description("Route opened at launch").
				Validate(s.validatePath).
				Value(s.startPath),
			huh.NewSelect[string]().Title("Progress bar").
				Options(
					huh.NewOption("Gradient", store.ProgressGradient),
					huh.NewOption("Solid", store.ProgressSolid),
				).Value(s.progressStyle),
			huh.NewInput().Title("Accent color").
				Description("Hex, e.g. #4299E1").
				Validate(validateColor).
				Value(s.accentColor),
			huh.NewConfirm().Title("Show full help").Value(s.showHelp),
		).Title("Display"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) validatePath(p string) error {
	if _, err := s.router.Resolve(p); err != nil {
		return err
	}
	return nil
}

func validateColor(c string) error {
	p := store.DefaultPrefs()
	p.AccentColor = c
	return p.Validate()
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if !s.formActive || s.form == nil {
		return s, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	switch s.form.State {
	case huh.StateCompleted:
		s.formActive = false
		return s, s.save()
	case huh.StateAborted:
		s.formActive = false
		return s, nil
	}

	return s, cmd
}

func (s settingsModel) save() tea.Cmd {
	prefs := store.Prefs{
		StartPath:     router.Normalize(*s.startPath),
		ProgressStyle: *s.progressStyle,
		AccentColor:   *s.accentColor,
		ShowHelp:      *s.showHelp,
	}
	return func() tea.Msg {
		if err := s.store.SavePrefs(prefs); err != nil {
			return statusMsg{text: fmt.Sprintf("Settings error: %v", err), isError: true}
		}
		return prefsSavedMsg{prefs: prefs}
	}
}

func (s settingsModel) view() string {
	w := s.width - 4
	title := titleStyle.Render("Settings")
	if s.form == nil {
		return panelStyle.Width(w).Render(title)
	}
	return activePanelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
	)
}
