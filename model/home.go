package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/electr1fy0/valuevault/appraisal"
)

func landingMarkdown() string {
	var s strings.Builder
	s.WriteString("# Property Values, Privately Computed\n\n")
	s.WriteString("Revolutionary encrypted real estate appraisals that protect sensitive data while ")
	s.WriteString("delivering accurate valuations using zero-knowledge proofs.\n\n")
	s.WriteString("## Why Choose Encrypted Appraisals?\n\n")
	s.WriteString("Advanced cryptographic techniques ensure your property data remains completely ")
	s.WriteString("private throughout the valuation process.\n\n")
	for _, f := range appraisal.Features() {
		fmt.Fprintf(&s, "- **%s**: %s\n", f.Title, f.Description)
	}
	return s.String()
}

func (m Model) landing() string {
	w := m.width
	if w <= 0 {
		w = 80
	}
	if out, ok := m.renderCache[w]; ok {
		return out
	}
	out := renderCopy(landingMarkdown(), w)
	m.renderCache[w] = out
	return out
}

func (m Model) homeView() string {
	var s strings.Builder
	s.WriteString(m.landing())

	s.WriteString(buttonStyle.Render("[enter] Start Encrypted Appraisal"))
	s.WriteString("  ")
	s.WriteString(buttonIdleStyle.Render("[v] View Dashboard"))
	s.WriteString("\n\n")

	stats := appraisal.LandingStats()
	cells := make([]string, 0, len(stats))
	for _, st := range stats {
		value := lipgloss.NewStyle().Bold(true).Foreground(paletteColor(st.Palette)).Render(st.Value)
		cells = append(cells, lipgloss.NewStyle().Width(22).Align(lipgloss.Center).Render(value+"\n"+mutedStyle.Render(st.Label)))
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))

	if m.vault.IsZero() {
		s.WriteString("\n\n")
		s.WriteString(helpStyle.Render("Secure vault contract: " + m.vault.Hex() + " (not deployed)"))
	}
	return s.String()
}
