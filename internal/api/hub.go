/*
Package api
File: hub.go
Description:
    The WebSocket Hub pushes the hotel to every connected browser.

    It maintains a registry of active clients and a broadcast channel.
    The hub subscribes to the hotel, so each day tick and each applied
    command reaches every open socket as a "state" message.

    Architecture:
    - Hub: one per process, runs in its own goroutine.
    - Client: one browser connection.
    - ServeWs: upgrades a GET request to a WebSocket.
*/

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/everforgeworks/hotel-tycoon/internal/game"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 256
)

// Message is the JSON envelope of every real-time message.
type Message struct {
	Type    string `json:"type"`    // "state"
	Payload any    `json:"payload"` // StateView for "state"
}

// Client is one connected browser tab.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte // Buffered outbound messages
	seed []byte      // First message when the hub has not broadcast yet
}

// Hub maintains the set of active clients and broadcasts messages to them.
type Hub struct {
	clients map[*Client]bool

	// Broadcast carries encoded messages to every client.
	Broadcast chan []byte

	register   chan *Client
	unregister chan *Client
	done       chan struct{} // Closed when Run returns

	// latest is the last message broadcast, handed to clients as they join.
	latest []byte

	logger *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		Broadcast:  make(chan []byte, sendBufferSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run is the hub's event loop. It blocks until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			return

		case client := <-h.register:
			first := h.latest
			if first == nil {
				first = client.seed
			}
			client.seed = nil
			if first != nil {
				client.send <- first
			}
			h.clients[client] = true
			h.logger.Debug("ws client registered", "clients", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case message := <-h.Broadcast:
			h.latest = message
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Buffer full: the client hung or went away.
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Publish encodes msg and queues it for broadcast. It never blocks: when
// the queue is full the oldest queued message is dropped so the newest
// state always goes out.
func (h *Hub) Publish(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("ws marshal", "type", msg.Type, "err", err)
		return
	}
	for {
		select {
		case h.Broadcast <- data:
			return
		default:
		}
		select {
		case <-h.Broadcast:
			h.logger.Warn("ws broadcast queue full, dropping oldest message")
		default:
		}
	}
}

// Observe implements game.Listener: every change that touched the state is pushed.
func (h *Hub) Observe(ev game.Event) {
	if ev.Kind == game.EventCommand && !ev.Result.Applied {
		return
	}
	h.Publish(Message{Type: "state", Payload: NewStateView(ev.State)})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWs upgrades the request and sends the current state straight away.
func ServeWs(hub *Hub, hotel *game.Hotel, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.logger.Warn("ws upgrade", "err", err)
		return
	}

	client := &Client{hub: hub, conn: conn, send: make(chan []byte, sendBufferSize)}

	// The hub prefers its latest broadcast; the snapshot covers a hub that has sent nothing yet.
	if data, err := json.Marshal(Message{Type: "state", Payload: NewStateView(hotel.Snapshot())}); err == nil {
		client.seed = data
	}
	select {
	case hub.register <- client:
	case <-hub.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// readPump drains the connection so close frames are processed.
// The UI talks to the REST API, inbound messages are ignored.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("ws read", "err", err)
			}
			return
		}
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
