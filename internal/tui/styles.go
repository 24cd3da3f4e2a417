package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorPrimary = lipgloss.Color("#4299E1")
	colorActive  = lipgloss.Color("#ED8936")
	colorDigits  = lipgloss.Color("#E2E8F0")
	colorMuted   = lipgloss.Color("#718096")
	colorSubtle  = lipgloss.Color("#4A5568")
	colorError   = lipgloss.Color("#E74C3C")
	colorSuccess = lipgloss.Color("#2ECC71")
	colorFg      = lipgloss.Color("#C0CAF5")
)

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(1, 2)

	// Clock
	digitStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorDigits)

	unitLabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	separatorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorDigits).
			Padding(0, 1)

	// Buttons
	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 3).
			Margin(0, 1).
			Border(lipgloss.RoundedBorder())

	startButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("#FFFFFF")).
				BorderForeground(colorPrimary)

	pauseButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("#FFFFFF")).
				BorderForeground(colorActive)

	resetButtonStyle = buttonStyle.
				Foreground(colorFg).
				BorderForeground(colorSubtle)

	disabledButtonStyle = buttonStyle.
				Foreground(colorSubtle).
				BorderForeground(colorSubtle).
				Faint(true)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorActive)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)
)
