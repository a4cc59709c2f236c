package wallet

import (
	"context"
	"net"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/electr1fy0/valuevault/chain"
	"github.com/electr1fy0/valuevault/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var testAccount = mustAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")

func mustAddress(s string) chain.Address {
	a, err := chain.ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// startDevnet returns a stop func instead of using t.Cleanup so that it runs
// before the deferred leak check. Calling stop twice is fine.
func startDevnet(t *testing.T, network chain.Network) (*Devnet, string, func()) {
	t.Helper()
	d := NewDevnet(network, nil)
	srv := httptest.NewServer(d.Handler())
	var once sync.Once
	stop := func() {
		once.Do(func() {
			d.Close()
			srv.Close()
		})
	}
	return d, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws", stop
}

// silentListener accepts TCP connections and never answers, so a websocket
// handshake against it hangs until the dialer gives up.
func silentListener(t *testing.T) (string, <-chan struct{}, func()) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	accepted := make(chan struct{}, 1)
	var (
		mu    sync.Mutex
		conns []net.Conn
		wg    sync.WaitGroup
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, conn)
			mu.Unlock()
			select {
			case accepted <- struct{}{}:
			default:
			}
		}
	}()

	stop := func() {
		ln.Close()
		wg.Wait()
		mu.Lock()
		for _, c := range conns {
			c.Close()
		}
		mu.Unlock()
	}
	return "ws://" + ln.Addr().String() + "/ws", accepted, stop
}

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func waitMsg(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	out := make(chan tea.Msg, 1)
	go func() { out <- cmd() }()
	select {
	case msg := <-out:
		return msg
	case <-time.After(3 * time.Second):
		t.Fatal("command did not return")
		return nil
	}
}

func TestConnectAgainstDevnet(t *testing.T) {
	defer goleak.VerifyNone(t)

	devnet, url, stop := startDevnet(t, chain.Sepolia)
	defer stop()
	p := New(Options{Network: chain.Sepolia, WSURL: url, Account: testAccount, Timeout: 2 * time.Second})

	assert.False(t, p.IsConnected())
	s, err := p.Connect(context.Background())
	require.NoError(t, err)
	assert.True(t, p.IsConnected())
	assert.Equal(t, testAccount, s.Account)
	assert.Equal(t, chain.Sepolia, s.Network)
	assert.Equal(t, 1, devnet.Clients())

	// second connect reuses the session
	_, err = p.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, devnet.Clients())

	require.NoError(t, p.Disconnect())
	assert.False(t, p.IsConnected())
	require.Eventually(t, func() bool { return devnet.Clients() == 0 }, time.Second, 10*time.Millisecond)
}

func TestConnectChainMismatch(t *testing.T) {
	defer goleak.VerifyNone(t)

	_, url, stop := startDevnet(t, chain.Network{ChainID: 1, Name: "Mainnet"})
	defer stop()
	p := New(Options{Network: chain.Sepolia, WSURL: url, Account: testAccount, Timeout: 2 * time.Second})

	_, err := p.Connect(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChainMismatch)
	assert.False(t, p.IsConnected())
}

func TestConnectOffline(t *testing.T) {
	p := New(Options{Network: chain.Sepolia, Offline: true, Account: testAccount})
	s, err := p.Connect(context.Background())
	require.NoError(t, err)
	assert.True(t, s.Offline)
	assert.True(t, p.IsConnected())
	require.NoError(t, p.Close())
	assert.False(t, p.IsConnected())
}

func TestConnectNoEndpoint(t *testing.T) {
	p := New(Options{Network: chain.Sepolia, Account: testAccount})
	_, err := p.Connect(context.Background())
	assert.ErrorIs(t, err, ErrNoEndpoint)
}

func TestConnectDialFailure(t *testing.T) {
	p := New(Options{Network: chain.Sepolia, WSURL: "ws://127.0.0.1:1/ws", Account: testAccount, Timeout: time.Second})
	_, err := p.Connect(context.Background())
	assert.Error(t, err)
	assert.False(t, p.IsConnected())
}

func TestClientCalls(t *testing.T) {
	defer goleak.VerifyNone(t)

	_, url, stop := startDevnet(t, chain.Sepolia)
	defer stop()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c, err := Dial(ctx, url, nil)
	require.NoError(t, err)
	defer c.Close()

	var version, code string
	require.NoError(t, c.Call(ctx, "net_version", &version))
	assert.Equal(t, "11155111", version)

	require.NoError(t, c.Call(ctx, "eth_getCode", &code, chain.ZeroAddress.Hex(), "latest"))
	assert.Equal(t, "0x", code)

	err = c.Call(ctx, "eth_sendTransaction", nil)
	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, codeMethodNotFound, rpcErr.Code)
}

func TestCmds(t *testing.T) {
	p := New(Options{Network: chain.Sepolia, Offline: true, Account: testAccount})

	msg := p.ConnectCmd()()
	connected, ok := msg.(ConnectedMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, testAccount, connected.Session.Account)

	msg = p.DisconnectCmd()()
	assert.IsType(t, DisconnectedMsg{}, msg)

	bad := New(Options{Network: chain.Sepolia, Account: testAccount})
	msg = bad.ConnectCmd()()
	errMsg, ok := msg.(ErrorMsg)
	require.True(t, ok)
	assert.ErrorIs(t, errMsg.Err, ErrNoEndpoint)
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Wallet.Offline = true
	p, err := FromConfig(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, chain.Sepolia, p.Network())

	cfg.Wallet.Offline = false
	cfg.Network.WSURL = ""
	_, err = FromConfig(cfg, nil)
	assert.ErrorContains(t, err, "ws_url")
}

func TestConnectDoesNotBlockReaders(t *testing.T) {
	defer goleak.VerifyNone(t)

	url, accepted, stopListener := silentListener(t)
	defer stopListener()
	p := New(Options{Network: chain.Sepolia, WSURL: url, Account: testAccount, Timeout: 500 * time.Millisecond})

	done := make(chan error, 1)
	go func() {
		_, err := p.Connect(context.Background())
		done <- err
	}()

	select {
	case <-accepted:
	case <-time.After(2 * time.Second):
		t.Fatal("dial never reached the listener")
	}

	start := time.Now()
	assert.False(t, p.IsConnected())
	assert.Less(t, time.Since(start), 50*time.Millisecond)

	_, err := p.Connect(context.Background())
	assert.ErrorIs(t, err, ErrConnecting)

	select {
	case err := <-done:
		assert.Error(t, err, "handshake never completes")
	case <-time.After(3 * time.Second):
		t.Fatal("connect did not honour its timeout")
	}
	assert.False(t, p.IsConnected())
}

func TestNodeGoingAwayDisconnects(t *testing.T) {
	defer goleak.VerifyNone(t)

	_, url, stop := startDevnet(t, chain.Sepolia)
	defer stop()
	p := New(Options{Network: chain.Sepolia, WSURL: url, Account: testAccount, Timeout: 2 * time.Second})

	_, err := p.Connect(context.Background())
	require.NoError(t, err)
	watch := p.WatchCmd()
	require.NotNil(t, watch)

	stop()

	msg := waitMsg(t, watch)
	disconnected, ok := msg.(DisconnectedMsg)
	require.True(t, ok, "got %T", msg)
	assert.ErrorIs(t, disconnected.Err, ErrConnectionLost)
	assert.False(t, p.IsConnected())
	assert.Nil(t, p.WatchCmd())

	// the provider can connect again once a node is back
	_, url, stop2 := startDevnet(t, chain.Sepolia)
	defer stop2()
	p.opts.WSURL = url
	_, err = p.Connect(context.Background())
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestDisconnectEndsWatch(t *testing.T) {
	defer goleak.VerifyNone(t)

	_, url, stop := startDevnet(t, chain.Sepolia)
	defer stop()
	p := New(Options{Network: chain.Sepolia, WSURL: url, Account: testAccount, Timeout: 2 * time.Second})

	_, err := p.Connect(context.Background())
	require.NoError(t, err)
	watch := p.WatchCmd()

	require.NoError(t, p.Disconnect())
	assert.Nil(t, waitMsg(t, watch))

	_, err = p.Connect(context.Background())
	require.NoError(t, err)
	require.NoError(t, p.Close())
	_, err = p.Connect(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestOfflineHasNothingToWatch(t *testing.T) {
	p := New(Options{Network: chain.Sepolia, Offline: true, Account: testAccount})
	_, err := p.Connect(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p.WatchCmd())
}

func TestServeShutsDownOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	addr := freeAddr(t)
	d := NewDevnet(chain.Sepolia, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	served := make(chan error, 1)
	go func() { served <- d.Serve(ctx, addr) }()

	var c *Client
	require.Eventually(t, func() bool {
		dialCtx, dialCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer dialCancel()
		var err error
		c, err = Dial(dialCtx, "ws://"+addr+"/ws", nil)
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)

	var id string
	require.NoError(t, c.Call(context.Background(), "eth_chainId", &id))
	assert.Equal(t, "0xaa36a7", id)
	assert.Equal(t, 1, d.Clients())

	cancel()
	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}

	select {
	case <-c.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("client not dropped on shutdown")
	}
	assert.Equal(t, 0, d.Clients())
	_ = c.Close()
}

func TestServeListenError(t *testing.T) {
	defer goleak.VerifyNone(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	err = NewDevnet(chain.Sepolia, nil).Serve(context.Background(), ln.Addr().String())
	assert.Error(t, err)
}
