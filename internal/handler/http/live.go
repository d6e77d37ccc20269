// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/internal/service"
	"github.com/MKhiriev/go-object-sync/internal/utils"
	"github.com/MKhiriev/go-object-sync/models"
)

const (
	// Time allowed to write a message to the peer.
	liveWriteWait = 10 * time.Second

	// Time allowed between two frames from the peer. Clients ping every 10s.
	livePongWait = 60 * time.Second

	// Server pings keep idle connections open through proxies.
	livePingPeriod = (livePongWait * 9) / 10

	liveMaxMessageSize = 64 << 10

	liveSendBuffer = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// bearer auth already ran; browsers are not the audience
	CheckOrigin: func(r *http.Request) bool { return true },
}

var _ service.ObjectPublisher = (*LiveHub)(nil)

// LiveHub keeps the live-update connections of every account and pushes
// saved objects to them.
type LiveHub struct {
	mu      sync.RWMutex
	clients map[string]map[*liveClient]struct{}
	closed  bool

	logger *logger.Logger
}

func NewLiveHub(logger *logger.Logger) *LiveHub {
	return &LiveHub{
		clients: make(map[string]map[*liveClient]struct{}),
		logger:  logger,
	}
}

// Publish implements [service.ObjectPublisher]. A connection whose send
// buffer is full misses the message; the next full sync catches it up.
func (h *LiveHub) Publish(accountID string, objects ...models.SyncObject) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients := h.clients[accountID]
	if len(clients) == 0 {
		return
	}

	for i := range objects {
		msg, err := json.Marshal(models.LiveMessage{Type: models.LiveMessageObject, Object: &objects[i]})
		if err != nil {
			h.logger.Err(err).Str("func", "*LiveHub.Publish").Str("object_id", objects[i].ID).Send()
			continue
		}

		for c := range clients {
			select {
			case c.send <- msg:
			default:
				h.logger.Warn().
					Str("func", "*LiveHub.Publish").
					Str("account_id", accountID).
					Str("object_id", objects[i].ID).
					Msg("live client send buffer full, message dropped")
			}
		}
	}
}

// Connections returns the number of open connections of accountID.
func (h *LiveHub) Connections(accountID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[accountID])
}

// Close disconnects every client and refuses new ones.
func (h *LiveHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for accountID, clients := range h.clients {
		for c := range clients {
			close(c.send)
		}
		delete(h.clients, accountID)
	}
}

func (h *LiveHub) register(c *liveClient) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	if h.clients[c.accountID] == nil {
		h.clients[c.accountID] = make(map[*liveClient]struct{})
	}
	h.clients[c.accountID][c] = struct{}{}
	return true
}

func (h *LiveHub) unregister(c *liveClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[c.accountID]
	if !ok {
		return
	}
	if _, ok = clients[c]; !ok {
		return
	}
	delete(clients, c)
	close(c.send)
	if len(clients) == 0 {
		delete(h.clients, c.accountID)
	}
}

type liveClient struct {
	accountID string
	conn      *websocket.Conn
	send      chan []byte
}

// serveLive handles GET /api/objects/live.
func (h *Handler) serveLive(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		http.Error(w, service.ErrNoAccountID.Error(), http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the request
		log.Err(err).Str("func", "*Handler.serveLive").Msg("websocket upgrade failed")
		return
	}

	c := &liveClient{
		accountID: accountID,
		conn:      conn,
		send:      make(chan []byte, liveSendBuffer),
	}
	if !h.live.register(c) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(liveWriteWait))
		conn.Close()
		return
	}
	log.Info().Str("account_id", accountID).Msg("live client connected")

	go c.writePump()
	c.readPump()

	h.live.unregister(c)
	log.Info().Str("account_id", accountID).Msg("live client disconnected")
}

// readPump discards client frames and returns when the connection fails.
// Control frames are answered by the default handlers.
func (c *liveClient) readPump() {
	c.conn.SetReadLimit(liveMaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(livePongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(livePongWait))
	})
	c.conn.SetPingHandler(func(data string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(livePongWait))
		err := c.conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(liveWriteWait))
		if err == websocket.ErrCloseSent {
			return nil
		}
		return err
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(livePongWait))
	}
}

// writePump sends queued messages and pings until send is closed.
func (c *liveClient) writePump() {
	ticker := time.NewTicker(livePingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
