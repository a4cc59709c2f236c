package wallet

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/electr1fy0/valuevault/chain"
	"github.com/electr1fy0/valuevault/config"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var (
	ErrChainMismatch  = errors.New("wrong network")
	ErrNoEndpoint     = errors.New("no rpc endpoint configured")
	ErrConnecting     = errors.New("connection already in progress")
	ErrConnectionLost = errors.New("connection to node lost")
	ErrClosed         = errors.New("wallet provider closed")
)

// Session is what a connected wallet exposes to the UI.
type Session struct {
	Account chain.Address
	Network chain.Network
	Offline bool
}

type Options struct {
	Network chain.Network
	WSURL   string
	Account chain.Address
	Offline bool
	Timeout time.Duration
	Logger  *zap.Logger
	Dialer  *websocket.Dialer
}

// Provider owns the wallet connection for the lifetime of the program. It is
// built by the caller and closed on exit; nothing here is package-global.
//
// The mutex only guards the fields below. Dialing and the chain id check run
// without it, so IsConnected never waits on the network.
type Provider struct {
	opts Options

	mu         sync.Mutex
	client     *Client
	connected  bool
	connecting bool
	closed     bool
	lost       chan tea.Msg
}

func New(opts Options) *Provider {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &Provider{opts: opts}
}

func FromConfig(cfg *config.Config, logger *zap.Logger) (*Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("wallet config: %w", err)
	}
	return New(Options{
		Network: cfg.ChainNetwork(),
		WSURL:   cfg.Network.WSURL,
		Account: cfg.Wallet.Account,
		Offline: cfg.Wallet.Offline,
		Timeout: cfg.WalletTimeout(),
		Logger:  logger,
	}), nil
}

func (p *Provider) Network() chain.Network {
	return p.opts.Network
}

func (p *Provider) IsConnected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connected
}

func (p *Provider) session() Session {
	return Session{Account: p.opts.Account, Network: p.opts.Network, Offline: p.opts.Offline}
}

// Connect checks that the configured endpoint serves the expected chain and
// marks the wallet connected. In offline mode no endpoint is contacted.
func (p *Provider) Connect(ctx context.Context) (Session, error) {
	log := p.opts.Logger.With(zap.String("network", p.opts.Network.String()))

	p.mu.Lock()
	switch {
	case p.closed:
		p.mu.Unlock()
		return Session{}, ErrClosed
	case p.connected:
		p.mu.Unlock()
		return p.session(), nil
	case p.connecting:
		p.mu.Unlock()
		return Session{}, ErrConnecting
	case p.opts.Offline:
		p.connected = true
		p.mu.Unlock()
		log.Info("wallet connected", zap.Bool("offline", true))
		return p.session(), nil
	case p.opts.WSURL == "":
		p.mu.Unlock()
		return Session{}, ErrNoEndpoint
	}
	p.connecting = true
	p.mu.Unlock()

	client, err := p.dial(ctx, log)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.connecting = false
	if err != nil {
		return Session{}, err
	}
	if p.closed {
		_ = client.Close()
		return Session{}, ErrClosed
	}

	p.client = client
	p.connected = true
	p.lost = make(chan tea.Msg, 1)
	go p.watch(client, p.lost)
	log.Info("wallet connected", zap.String("account", p.opts.Account.Hex()))
	return p.session(), nil
}

func (p *Provider) dial(ctx context.Context, log *zap.Logger) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
	defer cancel()

	client, err := Dial(ctx, p.opts.WSURL, p.opts.Dialer)
	if err != nil {
		log.Warn("wallet dial failed", zap.Error(err))
		return nil, err
	}

	var hexID string
	if err := client.Call(ctx, "eth_chainId", &hexID); err != nil {
		_ = client.Close()
		log.Warn("eth_chainId failed", zap.Error(err))
		return nil, err
	}
	id, err := chain.ParseQuantity(hexID)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	if id != p.opts.Network.ChainID {
		_ = client.Close()
		return nil, fmt.Errorf("%w: node reports chain %d, want %d", ErrChainMismatch, id, p.opts.Network.ChainID)
	}
	return client, nil
}

// watch waits for c to stop reading. A drop the provider did not ask for
// clears the connection and is reported on lost.
func (p *Provider) watch(c *Client, lost chan<- tea.Msg) {
	defer close(lost)
	<-c.Done()

	p.mu.Lock()
	if p.client != c {
		p.mu.Unlock()
		return
	}
	p.client = nil
	p.connected = false
	p.lost = nil
	p.mu.Unlock()

	err := c.Err()
	_ = c.Close()
	p.opts.Logger.Warn("wallet connection lost", zap.Error(err))
	lost <- DisconnectedMsg{Err: fmt.Errorf("%w: %v", ErrConnectionLost, err)}
}

func (p *Provider) Disconnect() error {
	p.mu.Lock()
	client := p.client
	p.client = nil
	p.connected = false
	p.lost = nil
	p.mu.Unlock()

	if client == nil {
		return nil
	}
	err := client.Close()
	p.opts.Logger.Info("wallet disconnected")
	return err
}

// Close disconnects and makes any later or in-flight Connect fail.
func (p *Provider) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return p.Disconnect()
}

func (p *Provider) ConnectCmd() tea.Cmd {
	return func() tea.Msg {
		s, err := p.Connect(context.Background())
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConnectedMsg{Session: s}
	}
}

func (p *Provider) DisconnectCmd() tea.Cmd {
	return func() tea.Msg {
		if err := p.Disconnect(); err != nil {
			return ErrorMsg{Err: err}
		}
		return DisconnectedMsg{}
	}
}

// WatchCmd blocks until the live connection drops and then yields a
// DisconnectedMsg carrying the cause. It yields nothing when the connection
// is closed through Disconnect, and is nil when there is nothing to watch.
func (p *Provider) WatchCmd() tea.Cmd {
	p.mu.Lock()
	lost := p.lost
	p.mu.Unlock()
	if lost == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-lost
		if !ok {
			return nil
		}
		return msg
	}
}
