package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/electr1fy0/valuevault/appraisal"
)

type recordDelegate struct {
	bar progress.Model
}

func newRecordDelegate() recordDelegate {
	bar := progress.New(
		progress.WithSolidFill(string(warningColor)),
		progress.WithoutPercentage(),
		progress.WithWidth(30),
	)
	return recordDelegate{bar: bar}
}

func (d recordDelegate) Height() int                             { return 4 }
func (d recordDelegate) Spacing() int                            { return 1 }
func (d recordDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d recordDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(appraisal.Record)
	if !ok {
		return
	}
	fmt.Fprint(w, renderRecord(r, index == m.Index(), d.bar))
}

func renderRecord(r appraisal.Record, selected bool, bar progress.Model) string {
	gutter := "  "
	if selected {
		gutter = titleStyle.Render("│ ")
	}

	head := lipgloss.NewStyle().Bold(true).Render(r.Address)
	if r.Encrypted {
		head += "  " + encryptedBadge
	}

	meta := []string{"ID: " + r.ID, "Date: " + r.Date}
	if r.ShowsConfidence() {
		meta = append(meta, fmt.Sprintf("Confidence: %d%%", r.Confidence))
	}

	value := lipgloss.NewStyle().Bold(true).Render(r.Value) + "  " + statusBadge(r.Status)

	var actions []string
	for _, a := range appraisal.ActionsFor(r) {
		switch a {
		case appraisal.ActionView:
			actions = append(actions, "v:view")
		case appraisal.ActionDownload:
			actions = append(actions, "x:download")
		}
	}
	value += "  " + helpStyle.Render(strings.Join(actions, " "))

	last := ""
	if st := appraisal.StyleFor(r.Status); st.ShowProgress {
		last = bar.ViewAs(st.Progress)
	}

	lines := []string{head, mutedStyle.Render(strings.Join(meta, "   ")), value, last}
	for i := range lines {
		lines[i] = gutter + lines[i]
	}
	return strings.Join(lines, "\n")
}

type dashboard struct {
	list list.Model
}

func newDashboard(width int) dashboard {
	records := appraisal.SampleRecords()
	items := make([]list.Item, 0, len(records))
	for _, r := range records {
		items = append(items, r)
	}

	l := list.New(items, newRecordDelegate(), 0, 0)
	l.Title = "Recent Encrypted Appraisals"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()

	d := dashboard{list: l}
	d.setSize(width)
	return d
}

// listChrome is the title bar plus a spare line.
const listChrome = 3

// setSize fits the width to the terminal. The height holds every record on
// one page.
func (d *dashboard) setSize(width int) {
	if width <= 0 {
		width = 80
	}
	d.list.SetWidth(width - 4)
	dl := newRecordDelegate()
	d.list.SetHeight(len(d.list.Items())*(dl.Height()+dl.Spacing()) + listChrome)
}

func (d dashboard) selected() (appraisal.Record, bool) {
	it := d.list.SelectedItem()
	if it == nil {
		return appraisal.Record{}, false
	}
	r, ok := it.(appraisal.Record)
	return r, ok
}

func (d dashboard) Update(msg tea.Msg) (dashboard, tea.Cmd) {
	var cmd tea.Cmd
	d.list, cmd = d.list.Update(msg)
	return d, cmd
}

func renderStatCard(st appraisal.Stat, width int) string {
	value := lipgloss.NewStyle().Bold(true).Foreground(paletteColor(st.Palette)).Render(st.Value)
	body := mutedStyle.Render(st.Label) + "\n" + value
	if st.Note != "" {
		body += "\n" + helpStyle.Render(st.Note)
	}
	return cardStyle.BorderForeground(paletteColor(st.Palette)).Width(width).Render(body)
}

func (d dashboard) View(width int) string {
	stats := appraisal.DashboardStats()
	cardWidth := 24
	if width > 0 {
		cardWidth = max((width-4)/len(stats)-4, 20)
	}
	cards := make([]string, 0, len(stats))
	for _, st := range stats {
		cards = append(cards, renderStatCard(st, cardWidth))
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("Appraisal Dashboard"))
	s.WriteString("\n")
	s.WriteString(mutedStyle.Render("Monitor your encrypted appraisals and download privacy-sealed reports."))
	s.WriteString("\n\n")
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	s.WriteString("\n")
	s.WriteString(mutedStyle.Render("All appraisals are performed on encrypted data with zero-knowledge proofs"))
	s.WriteString("\n")
	s.WriteString(d.list.View())
	return s.String()
}
