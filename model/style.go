package model

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/electr1fy0/valuevault/appraisal"
)

var (
	primaryColor = lipgloss.Color("12")
	accentColor  = lipgloss.Color("13")
	successColor = lipgloss.Color("10")
	warningColor = lipgloss.Color("11")
	mutedColor   = lipgloss.Color("8")
	borderColor  = lipgloss.Color("238")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(successColor)
	warningStyle = lipgloss.NewStyle().Foreground(warningColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	labelStyle   = lipgloss.NewStyle().Foreground(mutedColor).Width(20)
	focusStyle   = lipgloss.NewStyle().Foreground(primaryColor).Bold(true).Width(20)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("0")).
			Background(primaryColor).
			Bold(true)
	buttonIdleStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(primaryColor)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	encryptedBadge = lipgloss.NewStyle().Foreground(primaryColor).Render("◈ Encrypted")
)

func paletteColor(p appraisal.Palette) lipgloss.Color {
	switch p {
	case appraisal.PaletteSuccess:
		return successColor
	case appraisal.PaletteWarning:
		return warningColor
	case appraisal.PalettePrimary:
		return primaryColor
	case appraisal.PaletteAccent:
		return accentColor
	default:
		return mutedColor
	}
}

func statusBadge(s appraisal.Status) string {
	st := appraisal.StyleFor(s)
	text := s.Label()
	if st.Icon != "" {
		text = st.Icon + " " + text
	}
	return lipgloss.NewStyle().
		Foreground(paletteColor(st.Palette)).
		Bold(true).
		Render("[" + text + "]")
}
