package model

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/electr1fy0/valuevault/chain"
	"github.com/electr1fy0/valuevault/wallet"
	"go.uber.org/zap"
)

type tab int

const (
	tabHome tab = iota
	tabAppraise
	tabDashboard
	tabCount
)

var tabNames = []string{
	"Home",
	"New Appraisal",
	"Dashboard",
}

func (t tab) String() string {
	switch t {
	case tabHome:
		return "home"
	case tabAppraise:
		return "appraise"
	case tabDashboard:
		return "dashboard"
	}
	return "unknown"
}

type walletState int

const (
	walletDisconnected walletState = iota
	walletConnecting
	walletConnected
)

// Wallet is the part of the wallet provider the shell uses.
type Wallet interface {
	IsConnected() bool
	Network() chain.Network
	ConnectCmd() tea.Cmd
	DisconnectCmd() tea.Cmd
	// WatchCmd reports an unrequested drop as a wallet.DisconnectedMsg.
	WatchCmd() tea.Cmd
}

type Options struct {
	AppName string
	Vault   chain.Address
	Wallet  Wallet
	Logger  *zap.Logger
}

type Model struct {
	appName string
	vault   chain.Address
	wallet  Wallet
	logger  *zap.Logger

	activeTab   tab
	renderCache map[int]string

	width  int
	height int

	form      intakeForm
	dashboard dashboard
	toast     toast

	walletState walletState
	session     wallet.Session
	spinner     spinner.Model

	status    string
	lastError string
}
