// Package relay fans live updates out to connected websocket clients.
// Game state changes, chat messages, and cursor movements all flow
// through a single Hub so every open page sees the same stream.
package relay

import (
	"sync"

	"github.com/google/uuid"
)

// Hub tracks every connected client and distributes messages to them.
// Register/unregister requests are serialized through Run so the client
// map is only mutated from one goroutine.
type Hub struct {
	clients    map[uuid.UUID]*Client
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run processes register and unregister requests until Shutdown is
// called. It should be started in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.ID] = c
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c.ID]; ok {
				delete(h.clients, c.ID)
				c.close()
			}
			h.mu.Unlock()

		case <-h.done:
			return
		}
	}
}

// Broadcast queues msg for every connected client. A client whose send
// buffer is full is disconnected rather than allowed to stall the rest.
func (h *Hub) Broadcast(msg []byte) {
	h.broadcast(msg, uuid.Nil)
}

// BroadcastExcept queues msg for every client other than sender. Used
// for relayed events where the sender already applied the change
// locally.
func (h *Hub) BroadcastExcept(sender uuid.UUID, msg []byte) {
	h.broadcast(msg, sender)
}

func (h *Hub) broadcast(msg []byte, skip uuid.UUID) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, c := range h.clients {
		if id == skip {
			continue
		}
		select {
		case c.send <- msg:
		default:
			// The client is not draining its buffer. Close the
			// connection; its read pump will unregister it.
			c.close()
		}
	}
}

// ClientCount returns the number of currently connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Shutdown stops the Run loop and closes every connection.
func (h *Hub) Shutdown() {
	close(h.done)

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		delete(h.clients, id)
		c.close()
	}
}
