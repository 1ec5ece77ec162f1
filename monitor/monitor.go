// This file is part of Resdl.
//
// Resdl is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Resdl is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Resdl.  If not, see <https://www.gnu.org/licenses/>.


package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/resdl/resdl/curated"
	"github.com/resdl/resdl/input"
	"github.com/resdl/resdl/logger"
)

// Sentinal error patterns.
const (
	ServerError = "monitor: %v"
)

// Path is the websocket endpoint.
const Path = "/ws"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,

	// the monitor is a local debugging aid. allow all origins
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Monitor publishes input snapshots to websocket clients.
type Monitor struct {
	hub *Hub

	mu      sync.Mutex
	last    input.Snapshot
	hasLast bool
	seq     int64

	srv *http.Server
	ln  net.Listener
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor() *Monitor {
	return &Monitor{
		hub: NewHub(),
	}
}

// Hub returns the client hub.
func (m *Monitor) Hub() *Hub {
	return m.hub
}

// Handler returns the HTTP handler serving the websocket endpoint.
func (m *Monitor) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(Path, m.serveWS)
	return mux
}

func (m *Monitor) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Logf(logger.Allow, logTag, "upgrade: %v", err)
		return
	}

	c := newClient(m.hub, conn)
	m.hub.register(c, m.full)

	go c.writePump()
	go c.readPump()
}

// full returns the encoded "full" message for the most recent snapshot. It
// returns nil if nothing has been published.
func (m *Monitor) full() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.hasLast {
		return nil
	}

	data, err := json.Marshal(NewMessage(TypeFull, m.seq, &m.last))
	if err != nil {
		logger.Logf(logger.Allow, logTag, "%v", err)
		return nil
	}
	return data
}

// Publish sends the snapshot to every client. Nothing is sent if the snapshot
// is the same as the previously published snapshot. Publish never blocks.
//
// Publish has the correct signature for input.Manager.Observe().
func (m *Monitor) Publish(snap *input.Snapshot) {
	m.mu.Lock()
	if m.hasLast && m.last == *snap {
		m.mu.Unlock()
		return
	}
	m.last = *snap
	m.hasLast = true
	m.seq++
	msg := NewMessage(TypeUpdate, m.seq, snap)
	m.mu.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		logger.Logf(logger.Allow, logTag, "%v", err)
		return
	}

	m.hub.broadcast(data)
}

// Start serving on the address. The server runs in its own goroutine.
func (m *Monitor) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return curated.Errorf(ServerError, err)
	}

	m.ln = ln
	m.srv = &http.Server{Handler: m.Handler()}

	go func() {
		err := m.srv.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logf(logger.Allow, logTag, "%v", err)
		}
	}()

	logger.Logf(logger.Allow, logTag, "listening on ws://%s%s", ln.Addr(), Path)

	return nil
}

// Addr returns the address being served. Returns nil if the server has not
// been started.
func (m *Monitor) Addr() net.Addr {
	if m.ln == nil {
		return nil
	}
	return m.ln.Addr()
}

// Shutdown disconnects every client and stops the server.
func (m *Monitor) Shutdown(ctx context.Context) error {
	m.hub.closeAll()
	if m.srv == nil {
		return nil
	}
	if err := m.srv.Shutdown(ctx); err != nil {
		return curated.Errorf(ServerError, err)
	}
	return nil
}
