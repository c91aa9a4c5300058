package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds one color scheme. The saved dark-mode preference picks
// between LightTheme and DarkTheme.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Danger     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#101F38"),
		Primary:    lipgloss.Color("#1F4E8C"),
		Accent:     lipgloss.Color("#E07A1F"),
		Muted:      lipgloss.Color("#7A8494"),
		Border:     lipgloss.Color("#C9CED6"),
		Success:    lipgloss.Color("#2E7D32"),
		Danger:     lipgloss.Color("#C62828"),
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#F2F2F2"),
		Primary:    lipgloss.Color("#8AB4F8"),
		Accent:     lipgloss.Color("#FFB74D"),
		Muted:      lipgloss.Color("#8C96A8"),
		Border:     lipgloss.Color("#2A3850"),
		Success:    lipgloss.Color("#8BC34A"),
		Danger:     lipgloss.Color("#EF5350"),
		IsDark:     true,
	}
}

type styles struct {
	title     lipgloss.Style
	subtitle  lipgloss.Style
	section   lipgloss.Style
	text      lipgloss.Style
	muted     lipgloss.Style
	cursor    lipgloss.Style
	selected  lipgloss.Style
	barFill   lipgloss.Style
	barPick   lipgloss.Style
	majority  lipgloss.Style
	minority  lipgloss.Style
	panel     lipgloss.Style
	statusMsg lipgloss.Style
	errorMsg  lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		subtitle:  lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		section:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent).MarginTop(1),
		text:      lipgloss.NewStyle().Foreground(t.Foreground),
		muted:     lipgloss.NewStyle().Foreground(t.Muted),
		cursor:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		selected:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		barFill:   lipgloss.NewStyle().Foreground(t.Muted),
		barPick:   lipgloss.NewStyle().Foreground(t.Accent),
		majority:  lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		minority:  lipgloss.NewStyle().Bold(true).Foreground(t.Danger),
		panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1),
		statusMsg: lipgloss.NewStyle().Foreground(t.Success),
		errorMsg:  lipgloss.NewStyle().Foreground(t.Danger),
	}
}
