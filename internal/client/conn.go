package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lox/pongforbots/internal/protocol"
)

const writeWait = 5 * time.Second

// ErrNotConnected is returned when sending without a live connection. It is
// transient: the message is dropped and the session keeps reconnecting.
var ErrNotConnected = errors.New("not connected")

// Conn is one websocket connection speaking a fixed encoding.
type Conn struct {
	ws  *websocket.Conn
	enc protocol.Encoding

	mu     sync.Mutex // serialises writes
	closed bool
}

// Dial connects to a server URL.
func Dial(ctx context.Context, dialer *websocket.Dialer, url string, enc protocol.Encoding) (*Conn, error) {
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	ws, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	return &Conn{ws: ws, enc: enc}, nil
}

// Send writes one message.
func (c *Conn) Send(msg protocol.Message) error {
	data, err := protocol.Marshal(c.enc, msg)
	if err != nil {
		return err
	}
	kind := websocket.TextMessage
	if c.enc == protocol.MsgPack {
		kind = websocket.BinaryMessage
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrNotConnected
	}
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteMessage(kind, data)
}

// Read blocks for the next message.
func (c *Conn) Read() (protocol.Message, error) {
	kind, data, err := c.ws.ReadMessage()
	if err != nil {
		return nil, err
	}
	enc := protocol.JSON
	if kind == websocket.BinaryMessage {
		enc = protocol.MsgPack
	}
	return protocol.Decode(enc, data)
}

// Close sends a close frame and closes the socket.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	_ = c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.ws.Close()
}
