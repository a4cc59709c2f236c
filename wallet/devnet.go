package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/electr1fy0/valuevault/chain"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
)

// Devnet is a placeholder node: it answers the handful of read-only calls the
// wallet makes and reports that no contract code is deployed anywhere.
type Devnet struct {
	network  chain.Network
	logger   *zap.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	closed  bool
	wg      sync.WaitGroup
}

func NewDevnet(network chain.Network, logger *zap.Logger) *Devnet {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Devnet{
		network: network,
		logger:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*websocket.Conn]bool),
	}
}

func (d *Devnet) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", d)
	return mux
}

func (d *Devnet) Clients() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.clients)
}

func (d *Devnet) register(conn *websocket.Conn) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return false
	}
	d.clients[conn] = true
	d.wg.Add(1)
	d.logger.Debug("client registered", zap.Int("clients", len(d.clients)))
	return true
}

func (d *Devnet) unregister(conn *websocket.Conn) {
	d.mu.Lock()
	if _, ok := d.clients[conn]; ok {
		delete(d.clients, conn)
		d.logger.Debug("client unregistered", zap.Int("clients", len(d.clients)))
	}
	d.mu.Unlock()
	conn.Close()
	d.wg.Done()
}

func (d *Devnet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := d.upgrader.Upgrade(w, r, nil)
	if err != nil {
		d.logger.Warn("upgrade error", zap.Error(err))
		return
	}
	if !d.register(conn) {
		conn.Close()
		return
	}
	defer d.unregister(conn)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			d.logger.Debug("read error", zap.Error(err))
			return
		}

		var req rpcRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			d.logger.Debug("invalid message", zap.Error(err))
			resp := rpcResponse{JSONRPC: jsonrpcVersion, Error: &RPCError{Code: codeParseError, Message: "parse error"}}
			if err := conn.WriteJSON(resp); err != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(d.handle(req)); err != nil {
			d.logger.Debug("write error", zap.Error(err))
			return
		}
	}
}

func (d *Devnet) handle(req rpcRequest) rpcResponse {
	resp := rpcResponse{JSONRPC: jsonrpcVersion, ID: req.ID}

	var result string
	switch req.Method {
	case "eth_chainId":
		result = d.network.ChainIDHex()
	case "net_version":
		result = strconv.FormatUint(d.network.ChainID, 10)
	case "eth_blockNumber":
		result = "0x0"
	case "eth_getCode":
		result = "0x"
	default:
		resp.Error = &RPCError{Code: codeMethodNotFound, Message: "method not found: " + req.Method}
		return resp
	}

	d.logger.Debug("rpc", zap.String("method", req.Method), zap.Uint64("id", req.ID))
	resp.Result, _ = json.Marshal(result)
	return resp
}

// Close drops every client and waits for their handlers to return.
func (d *Devnet) Close() {
	d.mu.Lock()
	d.closed = true
	for conn := range d.clients {
		conn.Close()
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// Serve runs the devnet on addr until ctx is cancelled.
func (d *Devnet) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           d.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	d.logger.Info("devnet listening", zap.String("addr", addr), zap.String("network", d.network.String()))

	select {
	case err := <-errc:
		d.Close()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	d.Close()
	if err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
