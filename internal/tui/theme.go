package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette, the subset the presentation uses.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

var (
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	greetingStyle    = lipgloss.NewStyle().Foreground(colorMauve)
	counterStyle     = lipgloss.NewStyle().Foreground(colorSubtext0)
	scoreStyle       = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorOverlay1).
				Padding(0, 1)

	widgetBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	cursorStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(colorOverlay0)
	labelStyle    = lipgloss.NewStyle().Foreground(colorSubtext1)
	focusStyle    = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	correctStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	wrongStyle    = lipgloss.NewStyle().Foreground(colorError)
	promptStyle   = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	busyStyle     = lipgloss.NewStyle().Foreground(colorWarning)
	explainStyle  = lipgloss.NewStyle().Foreground(colorSubtext0).Italic(true)

	lineInfoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	lineCommandStyle = lipgloss.NewStyle().Foreground(colorBlue)
	lineResultStyle  = lipgloss.NewStyle().Foreground(colorText)
	lineErrorStyle   = lipgloss.NewStyle().Foreground(colorError)
	lineHintStyle    = lipgloss.NewStyle().Foreground(colorWarning)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	statusErrStyle = statusBarStyle.Foreground(colorError)

	footerStyle = lipgloss.NewStyle().Padding(0, 2)
)
