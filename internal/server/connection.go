package server

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lox/pongforbots/internal/control"
	"github.com/lox/pongforbots/internal/protocol"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096

	sendBufferSize = 256
)

var ErrConnectionClosed = errors.New("connection closed")

type frame struct {
	kind int // websocket.TextMessage or websocket.BinaryMessage
	data []byte
}

// Connection represents a WebSocket connection to a client
type Connection struct {
	id        string
	conn      *websocket.Conn
	send      chan frame
	encoding  atomic.Int32
	match     *Match
	logger    zerolog.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
	mu        sync.Mutex
	closed    bool
}

// NewConnection wraps an upgraded socket. Replies use JSON until the client
// sends a binary frame.
func NewConnection(conn *websocket.Conn, match *Match, logger zerolog.Logger) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	id := uuid.NewString()

	return &Connection{
		id:     id,
		conn:   conn,
		send:   make(chan frame, sendBufferSize),
		match:  match,
		logger: logger.With().Str("component", "conn").Str("conn_id", id).Logger(),
		ctx:    ctx,
		cancel: cancel,
	}
}

// ID returns the connection's unique identifier
func (c *Connection) ID() string {
	return c.id
}

// Done is closed when the connection shuts down
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		c.mu.Lock()
		c.closed = true
		close(c.send)
		c.mu.Unlock()
		err = c.conn.Close()
	})
	return err
}

// Encoding returns the encoding replies are sent in
func (c *Connection) Encoding() protocol.Encoding {
	return protocol.Encoding(c.encoding.Load())
}

// Send encodes msg in the connection's current encoding and queues it
func (c *Connection) Send(msg protocol.Message) error {
	enc := c.Encoding()
	data, err := protocol.Marshal(enc, msg)
	if err != nil {
		return err
	}
	return c.sendFrame(enc, data)
}

func (c *Connection) sendFrame(enc protocol.Encoding, data []byte) error {
	kind := websocket.TextMessage
	if enc == protocol.MsgPack {
		kind = websocket.BinaryMessage
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrConnectionClosed
	}

	select {
	case c.send <- frame{kind: kind, data: data}:
		return nil
	default:
		c.logger.Warn().Msg("Connection send buffer full, closing connection")
		go func() { _ = c.Close() }()
		return ErrConnectionClosed
	}
}

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		kind, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				c.logger.Error().Err(err).Msg("WebSocket error")
			}
			return
		}

		enc := protocol.JSON
		if kind == websocket.BinaryMessage {
			enc = protocol.MsgPack
		}
		c.encoding.Store(int32(enc))

		msg, err := protocol.Decode(enc, data)
		if err != nil {
			c.logger.Debug().Err(err).Str("encoding", enc.String()).Msg("Invalid message")
			c.sendError("invalid_message", err.Error())
			continue
		}
		c.handleMessage(msg)
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case f, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(f.kind, f.data); err != nil {
				c.logger.Debug().Err(err).Msg("Failed to write message")
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// handleMessage routes a decoded client message to the match
func (c *Connection) handleMessage(msg protocol.Message) {
	var err error

	switch m := msg.(type) {
	case *protocol.Reset:
		err = c.match.Reset(c.ctx)

	case *protocol.Action:
		if !m.Side().Valid() {
			c.sendError("invalid_player", "player must be 1 or 2")
			return
		}
		err = c.match.SetIntent(c.ctx, m.Side(), m.Intent())

	case *protocol.Mode:
		if !m.Side().Valid() {
			c.sendError("invalid_player", "player must be 1 or 2")
			return
		}
		kind, perr := control.ParseKind(m.Mode)
		if perr != nil {
			c.sendError("invalid_mode", perr.Error())
			return
		}
		c.logger.Info().Int("player", m.Player).Stringer("mode", kind).Msg("Mode change requested")
		err = c.match.SetMode(c.ctx, m.Side(), kind, c)

	case *protocol.GetState:
		err = c.match.RequestState(c.ctx, c)

	default:
		c.sendError("unexpected_message", "clients may not send "+msg.MessageType())
		return
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		c.sendError("match_unavailable", err.Error())
	}
}

// sendError sends an error message to the client
func (c *Connection) sendError(code, message string) {
	_ = c.Send(protocol.NewError(code, message))
}
