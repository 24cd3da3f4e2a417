package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/counter/internal/counter"
	"github.com/sadopc/counter/internal/store"
)

type button int

const (
	buttonStart button = iota
	buttonReset
)

// counterModel renders a counter.Counter. It never reads widget state
// while drawing; it draws the last ViewModel pushed by the observer.
type counterModel struct {
	widget *counter.Counter
	width  int
	height int

	// Written by the observer; pointers survive value copies.
	vm   *counter.ViewModel
	last *counter.Event // last non-tick event

	unsubscribe func()
	bar         progress.Model
	focus       button
}

func newCounterModel(c *counter.Counter, prefs store.Prefs) counterModel {
	vm := c.View()
	m := counterModel{
		widget: c,
		vm:     &vm,
		last:   &counter.Event{},
		bar:    newProgressBar(prefs),
	}
	vmp, last := m.vm, m.last
	m.unsubscribe = c.Subscribe(func(ev counter.Event) {
		*vmp = ev.View
		if ev.Type != counter.EventTick {
			*last = ev
			log.Printf("counter %s at %s", ev.Type, ev.View.Clock())
		}
	})
	return m
}

func newProgressBar(prefs store.Prefs) progress.Model {
	opts := []progress.Option{progress.WithoutPercentage()}
	if prefs.ProgressStyle == store.ProgressSolid {
		opts = append(opts, progress.WithSolidFill(prefs.AccentColor))
	} else {
		opts = append(opts, progress.WithGradient(prefs.AccentColor, string(colorActive)))
	}
	return progress.New(opts...)
}

func (c *counterModel) setSize(w, h int) {
	c.width = w
	c.height = h
	c.bar.Width = max(10, w-12)
}

func (c *counterModel) applyPrefs(prefs store.Prefs) {
	width := c.bar.Width
	c.bar = newProgressBar(prefs)
	c.bar.Width = width
}

func (c counterModel) update(msg tea.Msg) (counterModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Toggle):
			c.widget.ToggleStart()
		case key.Matches(msg, keys.Reset):
			c.pressReset()
		case key.Matches(msg, keys.Left):
			c.focus = buttonStart
		case key.Matches(msg, keys.Right):
			c.focus = buttonReset
		case key.Matches(msg, keys.Enter):
			if c.focus == buttonStart {
				c.widget.ToggleStart()
			} else {
				c.pressReset()
			}
		}
	}
	return c, nil
}

// pressReset drops the key press while the button is disabled.
func (c counterModel) pressReset() {
	if !c.vm.ResetEnabled {
		return
	}
	c.widget.Reset()
}

func (c counterModel) teardown() {
	c.widget.Teardown()
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
}

func (c counterModel) view() string {
	if c.width < 20 {
		return "Terminal too small"
	}
	w := c.width - 4
	vm := *c.vm

	title := titleStyle.Render("Counter")

	clock := lipgloss.JoinHorizontal(lipgloss.Top,
		renderUnit(vm.MM, "MIN"),
		separatorStyle.Render(":"),
		renderUnit(vm.SS, "SEC"),
	)

	bar := c.bar.ViewAs(vm.Progress)

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		clock,
		"",
		bar,
		"",
		c.renderButtons(vm),
	)

	style := panelStyle
	if vm.Running {
		style = activePanelStyle
	}
	return style.Width(w).Align(lipgloss.Center).Render(content)
}

func renderUnit(value, label string) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		digitStyle.Render(value),
		unitLabelStyle.Render(label),
	)
}

func (c counterModel) renderButtons(vm counter.ViewModel) string {
	start := startButtonStyle
	if vm.Running {
		start = pauseButtonStyle
	}
	reset := resetButtonStyle
	if !vm.ResetEnabled {
		reset = disabledButtonStyle
	}

	switch c.focus {
	case buttonStart:
		start = start.Border(lipgloss.ThickBorder())
	case buttonReset:
		reset = reset.Border(lipgloss.ThickBorder())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		start.Render(vm.StartLabel),
		reset.Render(vm.ResetLabel),
	)
}

// statusText describes the last widget event for the footer.
func (c counterModel) statusText() string {
	switch c.last.Type {
	case counter.EventStarted:
		return "Counter started"
	case counter.EventPaused:
		return "Counter paused"
	case counter.EventReset:
		return "Counter reset"
	}
	return ""
}
