package picker

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("#7C3AED")
	success = lipgloss.Color("#10B981")
	muted   = lipgloss.Color("#6B7280")
	white   = lipgloss.Color("#FFFFFF")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			MarginBottom(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			Background(primary).
			Foreground(white).
			Bold(true)

	idStyle = lipgloss.NewStyle().
		Foreground(muted).
		Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(muted).
			MarginTop(1)

	noticeStyle = lipgloss.NewStyle().
			Foreground(success).
			Bold(true)
)
