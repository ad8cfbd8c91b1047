// Package ws implements the realtime transcription feed over the media
// service's websocket event stream. It is a read-only consumer: audio
// transport, codecs and reconnection stay on the service side.
package ws

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/Crusty-Banana/medbot-client/internal/observability/metrics"
	"github.com/Crusty-Banana/medbot-client/internal/transcript"
	"github.com/Crusty-Banana/medbot-client/internal/voice"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Event is one message on the transcription stream. Transcription events
// carry the full current snapshot for one role.
type Event struct {
	Type     string               `json:"type"`
	Role     string               `json:"role,omitempty"`
	Segments []transcript.Segment `json:"segments,omitempty"`
	Reason   string               `json:"reason,omitempty"`
}

// Event types on the wire.
const (
	EventTranscription = "transcription"
	EventDisconnected  = "disconnected"
)

// Client is a voice.Feed over a websocket event stream.
type Client struct {
	url     string
	token   string
	log     zerolog.Logger
	metrics *metrics.Metrics

	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
	stop   chan struct{}
}

// New creates a feed client for the given event stream URL. The session
// token is sent as a bearer header during the handshake.
func New(url, token string, log zerolog.Logger) *Client {
	return &Client{
		url:     url,
		token:   token,
		log:     log.With().Str("component", "wsfeed").Logger(),
		metrics: metrics.DefaultMetrics,
		stop:    make(chan struct{}),
	}
}

// Start implements voice.Feed. It dials the stream and spawns the read and
// keepalive loops. The handler's OnDisconnected fires exactly once, from
// the read loop, whatever ends the connection.
func (c *Client) Start(ctx context.Context, h voice.Handler) error {
	header := http.Header{}
	if c.token != "" {
		header.Set("Authorization", "Bearer "+c.token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, c.url, header)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("dial transcription stream (%d): %w", resp.StatusCode, err)
		}
		return fmt.Errorf("dial transcription stream: %w", err)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		conn.Close()
		return fmt.Errorf("feed already closed")
	}
	c.conn = conn
	c.mu.Unlock()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go c.readLoop(conn, h)
	go c.pingLoop(conn)

	c.log.Info().Str("url", c.url).Msg("Transcription stream connected")
	return nil
}

func (c *Client) readLoop(conn *websocket.Conn, h voice.Handler) {
	defer conn.Close()

	for {
		var ev Event
		if err := conn.ReadJSON(&ev); err != nil {
			reason := "connection closed"
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && !c.isClosed() {
				reason = err.Error()
				c.log.Warn().Err(err).Msg("Transcription stream read failed")
			}
			h.OnDisconnected(reason)
			return
		}

		c.metrics.RecordFeedEvent(ev.Type)

		switch ev.Type {
		case EventTranscription:
			switch transcript.Role(ev.Role) {
			case transcript.RoleUser:
				h.OnTranscription(transcript.RoleUser, ev.Segments)
			case transcript.RoleAssistant:
				h.OnTranscription(transcript.RoleAssistant, ev.Segments)
			default:
				c.log.Debug().Str("role", ev.Role).Msg("Ignoring transcription for unknown role")
			}
		case EventDisconnected:
			h.OnDisconnected(ev.Reason)
			return
		default:
			// Unknown event types are ignored so the service can add new
			// ones without breaking older clients.
			c.log.Debug().Str("type", ev.Type).Msg("Ignoring unknown feed event")
		}
	}
}

func (c *Client) pingLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-c.stop:
			return
		}
	}
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Close implements voice.Feed. It sends a close frame and tears down the
// connection; the read loop then delivers OnDisconnected.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	conn := c.conn
	close(c.stop)
	c.mu.Unlock()

	if conn == nil {
		return nil
	}
	deadline := time.Now().Add(writeWait)
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := conn.WriteControl(websocket.CloseMessage, msg, deadline); err != nil {
		return conn.Close()
	}
	return nil
}
