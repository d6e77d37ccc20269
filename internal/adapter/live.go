package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-object-sync/internal/config"
	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/models"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = 10 * time.Second

	// Time allowed to read the next message or pong from the peer.
	pongWait = 3 * pingPeriod

	// Maximum message size allowed from peer.
	maxMessageSize = 16 << 20

	minReconnectDelay = time.Second
	maxReconnectDelay = time.Minute
)

type liveUpdatesClient struct {
	url    string
	token  func() string
	dialer *websocket.Dialer

	pingPeriod time.Duration
	pongWait   time.Duration
	newBackoff func() retry.Backoff

	connected atomic.Bool
	logger    *logger.Logger
}

// NewLiveUpdatesClient returns a [LiveUpdates] implementation speaking the
// websocket protocol of GET /api/objects/live. token is read on every
// connect so a refreshed token is picked up on reconnect.
func NewLiveUpdatesClient(adapterCfg config.ClientAdapter, token func() string, logger *logger.Logger) LiveUpdates {
	return &liveUpdatesClient{
		url:        adapterCfg.WebSocketAddress,
		token:      token,
		dialer:     &websocket.Dialer{HandshakeTimeout: adapterCfg.RequestTimeout},
		pingPeriod: pingPeriod,
		pongWait:   pongWait,
		newBackoff: defaultReconnectBackoff,
		logger:     logger,
	}
}

func defaultReconnectBackoff() retry.Backoff {
	return retry.WithCappedDuration(maxReconnectDelay, retry.WithJitterPercent(10, retry.NewExponential(minReconnectDelay)))
}

func (c *liveUpdatesClient) Connected() bool {
	return c.connected.Load()
}

// Subscribe implements [LiveUpdates]. It returns ctx.Err() once ctx is
// cancelled, or ErrUnauthorized / ErrNotAuthenticated which are not retried.
func (c *liveUpdatesClient) Subscribe(ctx context.Context, handle LiveUpdateHandler) error {
	backoff := c.newBackoff()

	for {
		established, err := c.session(ctx, handle)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrNotAuthenticated) {
			return err
		}
		if established {
			backoff = c.newBackoff()
		}

		delay, stop := backoff.Next()
		if stop {
			return err
		}

		c.logger.Warn().Err(err).
			Str("func", "liveUpdatesClient.Subscribe").
			Dur("retry_in", delay).
			Msg("live updates disconnected")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

// session runs one connection until it fails. established reports whether
// the handshake succeeded.
func (c *liveUpdatesClient) session(ctx context.Context, handle LiveUpdateHandler) (established bool, err error) {
	token := c.token()
	if token == "" {
		return false, ErrNotAuthenticated
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	conn, resp, err := c.dialer.DialContext(ctx, c.url, header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return false, ErrUnauthorized
		}
		return false, fmt.Errorf("%w: dial live updates: %w", ErrNetworkUnavailable, err)
	}

	c.connected.Store(true)
	defer c.connected.Store(false)
	c.logger.Info().Str("func", "liveUpdatesClient.session").Msg("live updates connected")

	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.writePump(sessionCtx, conn)
	}()

	err = c.readPump(sessionCtx, conn, handle)
	cancel()
	<-done
	conn.Close()

	return true, err
}

// readPump decodes messages until the connection fails. Every message and
// pong extends the read deadline.
func (c *liveUpdatesClient) readPump(ctx context.Context, conn *websocket.Conn, handle LiveUpdateHandler) error {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(c.pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(c.pongWait))
	})

	for {
		var msg models.LiveMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return fmt.Errorf("read live message: %w", err)
		}
		_ = conn.SetReadDeadline(time.Now().Add(c.pongWait))

		if msg.Type != models.LiveMessageObject || msg.Object == nil {
			continue
		}

		if err := handle(ctx, *msg.Object); err != nil {
			c.logger.Err(err).
				Str("func", "liveUpdatesClient.readPump").
				Str("object_id", msg.Object.ID).
				Str("object_type", string(msg.Object.Type)).
				Msg("failed to apply live update")
		}
	}
}

// writePump sends pings until ctx is done, then closes the connection
// gracefully which unblocks readPump.
func (c *liveUpdatesClient) writePump(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(c.pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			_ = conn.SetReadDeadline(time.Now())
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				_ = conn.SetReadDeadline(time.Now())
				return
			}
		}
	}
}
