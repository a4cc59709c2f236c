package model

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/electr1fy0/valuevault/appraisal"
	"github.com/electr1fy0/valuevault/utils"
	"github.com/electr1fy0/valuevault/wallet"
	"go.uber.org/zap"
)

type editorFinishedMsg struct {
	path string
	err  error
}

func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.AppName == "" {
		opts.AppName = "Secure Value Vault"
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = warningStyle

	return Model{
		appName:     opts.AppName,
		vault:       opts.Vault,
		wallet:      opts.Wallet,
		logger:      opts.Logger,
		activeTab:   tabHome,
		renderCache: make(map[int]string),
		form:        newIntakeForm(),
		dashboard:   newDashboard(0),
		spinner:     sp,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// selectTab switches the visible view. Entering a view mounts it fresh, so the
// intake form comes back unencrypted and the dashboard cursor starts at the top.
func (m *Model) selectTab(t tab) tea.Cmd {
	if t == m.activeTab || t < 0 || t >= tabCount {
		return nil
	}
	if m.activeTab == tabAppraise {
		m.form.Blur()
	}
	m.logger.Debug("select tab", zap.Stringer("from", m.activeTab), zap.Stringer("to", t))
	m.activeTab = t

	switch t {
	case tabAppraise:
		m.form = newIntakeForm()
		return m.form.Focus()
	case tabDashboard:
		m.dashboard = newDashboard(m.width)
	}
	return nil
}

func (m Model) editing() bool {
	return m.activeTab == tabAppraise && m.form.editing
}

func (m *Model) submitForm() tea.Cmd {
	m.logger.Info("intake form submitted", zap.Bool("encrypted", m.form.encrypted))
	m.lastError = ""
	m.status = ""
	return m.toast.show(submitTitle, submitBody)
}

func (m *Model) openEditor() tea.Cmd {
	cmd, path, err := utils.EditorCommand(m.form.details.Value())
	if err != nil {
		m.status = "Editor failed: " + err.Error()
		m.lastError = err.Error()
		return nil
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{path: path, err: err}
	})
}

func (m *Model) toggleWallet() tea.Cmd {
	if m.wallet == nil {
		m.status = "No wallet provider configured"
		m.lastError = m.status
		return nil
	}
	switch m.walletState {
	case walletConnecting:
		return nil
	case walletConnected:
		return m.wallet.DisconnectCmd()
	}
	m.walletState = walletConnecting
	m.status = "Connecting to " + m.wallet.Network().String() + "..."
	m.lastError = ""
	return tea.Batch(m.spinner.Tick, m.wallet.ConnectCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dashboard.setSize(msg.Width)
		return m, nil

	case toastDismissMsg:
		m.toast.dismiss(msg.seq)
		return m, nil

	case spinner.TickMsg:
		if m.walletState != walletConnecting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case wallet.ConnectedMsg:
		m.walletState = walletConnected
		m.session = msg.Session
		m.status = "Connected " + msg.Session.Account.Short() + " on " + msg.Session.Network.Name
		m.lastError = ""
		m.logger.Info("wallet connected", zap.String("account", msg.Session.Account.Hex()))
		if m.wallet == nil {
			return m, nil
		}
		return m, m.wallet.WatchCmd()

	case wallet.DisconnectedMsg:
		m.walletState = walletDisconnected
		m.session = wallet.Session{}
		if msg.Err != nil {
			m.status = "Wallet disconnected: " + msg.Err.Error()
			m.lastError = msg.Err.Error()
			m.logger.Warn("wallet dropped", zap.Error(msg.Err))
			return m, nil
		}
		m.status = "Wallet disconnected"
		m.lastError = ""
		return m, nil

	case wallet.ErrorMsg:
		m.walletState = walletDisconnected
		m.status = "Wallet error: " + msg.Err.Error()
		m.lastError = msg.Err.Error()
		m.logger.Warn("wallet error", zap.Error(msg.Err))
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			_ = os.Remove(msg.path)
			m.status = "Editor failed: " + msg.err.Error()
			m.lastError = msg.err.Error()
			return m, nil
		}
		content, err := utils.ReadEdited(msg.path)
		if err != nil {
			m.status = "Editor failed: " + err.Error()
			m.lastError = err.Error()
			return m, nil
		}
		m.form.setDetails(content)
		m.status = "Updated additional details"
		m.lastError = ""
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.editing() {
		var (
			cmd tea.Cmd
			ev  formEvent
		)
		m.form, cmd, ev = m.form.Update(msg)
		switch ev {
		case eventSubmitted:
			return m, tea.Batch(cmd, m.submitForm())
		case eventOpenEditor:
			return m, m.openEditor()
		}
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q":
		return m, tea.Quit
	case "1", "h":
		return m, m.selectTab(tabHome)
	case "2", "a":
		return m, m.selectTab(tabAppraise)
	case "3", "d":
		return m, m.selectTab(tabDashboard)
	case "left":
		return m, m.selectTab((m.activeTab + tabCount - 1) % tabCount)
	case "right":
		return m, m.selectTab((m.activeTab + 1) % tabCount)
	case "w":
		return m, m.toggleWallet()
	case "D":
		if m.wallet != nil && m.wallet.IsConnected() {
			return m, m.selectTab(tabDashboard)
		}
		return m, nil
	}

	switch m.activeTab {
	case tabHome:
		switch key.String() {
		case "enter", "s":
			return m, m.selectTab(tabAppraise)
		case "v":
			return m, m.selectTab(tabDashboard)
		}

	case tabAppraise:
		switch key.String() {
		case "enter", "i", "tab":
			return m, m.form.Focus()
		}

	case tabDashboard:
		switch key.String() {
		case "v":
			// view is offered on every row but has nothing behind it yet
			return m, nil
		case "x":
			if r, ok := m.dashboard.selected(); ok && appraisal.CanDownload(r) {
				m.logger.Debug("download requested", zap.String("id", r.ID))
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(key)
		return m, cmd
	}

	return m, nil
}

func (m Model) helpLine() string {
	var parts []string
	switch {
	case m.editing():
		parts = append(parts, "tab/shift+tab:move", "←/→:type", "ctrl+e:edit details", "ctrl+s:submit", "esc:done")
	case m.activeTab == tabHome:
		parts = append(parts, "enter:start appraisal", "v:view dashboard")
	case m.activeTab == tabAppraise:
		parts = append(parts, "enter:edit form")
	case m.activeTab == tabDashboard:
		parts = append(parts, "↑/↓:select", "v:view")
		if r, ok := m.dashboard.selected(); ok && appraisal.CanDownload(r) {
			parts = append(parts, "x:download")
		}
	}
	if !m.editing() {
		parts = append(parts, "1-3:tabs", "w:wallet")
		if m.wallet != nil && m.wallet.IsConnected() {
			parts = append(parts, "D:dashboard")
		}
		parts = append(parts, "q:quit")
	}
	return helpStyle.Render(strings.Join(parts, "  "))
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(m.headerView())
	s.WriteString("\n")
	s.WriteString(renderTabs(m.activeTab, m.width))
	s.WriteString("\n\n")

	switch m.activeTab {
	case tabHome:
		s.WriteString(m.homeView())
	case tabAppraise:
		s.WriteString(titleStyle.Render("New Encrypted Appraisal"))
		s.WriteString("\n")
		s.WriteString(mutedStyle.Render("Submit your property information securely. All data is encrypted before processing and never exposed to assessors."))
		s.WriteString("\n\n")
		s.WriteString(m.form.View(m.width))
	case tabDashboard:
		s.WriteString(m.dashboard.View(m.width))
	}

	if t := m.toast.View(); t != "" {
		s.WriteString("\n")
		s.WriteString(t)
	}

	s.WriteString("\n")
	s.WriteString(m.helpLine())

	if m.status != "" {
		s.WriteString("\n")
		if m.lastError != "" {
			s.WriteString(errorStyle.Render(m.status))
		} else {
			s.WriteString(successStyle.Render(m.status))
		}
	}

	return s.String()
}
