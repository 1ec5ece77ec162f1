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
	"sync"

	"github.com/resdl/resdl/logger"
)

const logTag = "monitor"

// Hub keeps track of connected clients and broadcasts messages to them.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]bool
}

// NewHub is the preferred method of initialisation for the Hub type.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// register adds the client. The result of initial, if not nil, is the first
// message queued for the client.
func (h *Hub) register(c *Client, initial func() []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[c] = true
	if initial != nil {
		if msg := initial(); msg != nil {
			c.send <- msg
		}
	}

	logger.Logf(logger.Allow, logTag, "client connected (total: %d)", len(h.clients))
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(c)
}

// remove must be called with the mutex held.
func (h *Hub) remove(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	logger.Logf(logger.Allow, logTag, "client disconnected (total: %d)", len(h.clients))
}

// broadcast sends the message to every client. Clients whose send queue is
// full are removed.
func (h *Hub) broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.remove(c)
		}
	}
}

// closeAll removes every client.
func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.remove(c)
	}
}
