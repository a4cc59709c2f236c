package model

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const toastDuration = 3 * time.Second

type toast struct {
	title   string
	body    string
	seq     int
	visible bool
}

// toastDismissMsg carries the sequence number of the toast it hides, so a
// stale tick never clears a newer notification.
type toastDismissMsg struct {
	seq int
}

func (t *toast) show(title, body string) tea.Cmd {
	t.seq++
	t.title = title
	t.body = body
	t.visible = true
	seq := t.seq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastDismissMsg{seq: seq}
	})
}

func (t *toast) dismiss(seq int) {
	if seq == t.seq {
		t.visible = false
	}
}

func (t toast) View() string {
	if !t.visible {
		return ""
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(successColor).Render("✓ " + t.title)
	return cardStyle.BorderForeground(successColor).Render(title + "\n" + mutedStyle.Render(t.body))
}
