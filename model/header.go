package model

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) headerView() string {
	brand := titleStyle.Render("◈ "+m.appName) + "\n" + mutedStyle.Render("FHE-Encrypted Property Valuations")

	var right []string
	right = append(right, successStyle.Render("◆")+" "+mutedStyle.Render("FHE Encrypted"))

	switch m.walletState {
	case walletConnecting:
		right = append(right, m.spinner.View()+" Connecting…")
	case walletConnected:
		acct := m.session.Account.Short()
		net := m.session.Network.Name
		if m.session.Offline {
			net += " (offline)"
		}
		right = append(right, successStyle.Render("●")+" "+acct+" "+mutedStyle.Render(net))
	default:
		right = append(right, buttonIdleStyle.Render("[w] Connect Wallet"))
	}

	if m.wallet != nil && m.wallet.IsConnected() {
		right = append(right, buttonStyle.Render("[D] Dashboard"))
	}

	rightView := strings.Join(right, "  ")
	gap := m.width - lipgloss.Width(brand) - lipgloss.Width(rightView)
	if gap < 2 {
		gap = 2
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, brand, strings.Repeat(" ", gap), rightView)
}

func renderTabs(active tab, width int) string {
	activeStyle := lipgloss.NewStyle().
		Border(lipgloss.Border{Bottom: "━"}, false, false, true, false).
		BorderForeground(primaryColor).
		Foreground(primaryColor).
		Bold(true).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().
		Border(lipgloss.Border{Bottom: "─"}, false, false, true, false).
		BorderForeground(borderColor).
		Foreground(mutedColor).
		Padding(0, 1)

	rendered := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		label := string(rune('1'+i)) + " " + name
		if tab(i) == active {
			rendered = append(rendered, activeStyle.Render(label))
		} else {
			rendered = append(rendered, inactiveStyle.Render(label))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...)

	gapWidth := width - lipgloss.Width(row)
	if gapWidth <= 0 {
		return row
	}
	gap := lipgloss.NewStyle().
		Border(lipgloss.Border{Bottom: "─"}, false, false, true, false).
		BorderForeground(borderColor).
		Width(gapWidth).
		Render("")
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}
