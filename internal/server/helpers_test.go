package server

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lox/pongforbots/internal/protocol"
	"github.com/lox/pongforbots/internal/randutil"
)

const testInterval = time.Second / 60

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// recorder collects broadcasts and replies.
type recorder struct {
	msgs chan protocol.Message
}

func newRecorder() *recorder {
	return &recorder{msgs: make(chan protocol.Message, 256)}
}

func (r *recorder) Broadcast(msg protocol.Message) { r.msgs <- msg }

func (r *recorder) Send(msg protocol.Message) error {
	r.msgs <- msg
	return nil
}

func (r *recorder) next(t *testing.T) protocol.Message {
	t.Helper()
	select {
	case msg := <-r.msgs:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

// startTestServer runs a server on an httptest listener driven by a mock clock.
func startTestServer(t *testing.T, cfg *Config) (*Server, *httptest.Server, *quartz.Mock) {
	t.Helper()

	mClock := quartz.NewMock(t)
	srv, err := NewServer(testLogger(), randutil.New(42), WithConfig(cfg), WithClock(mClock))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Match().Run(ctx)
	}()
	<-srv.Match().Started()

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		_ = srv.Shutdown(context.Background())
		ts.Close()
		cancel()
		<-done
	})
	return srv, ts, mClock
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func writeMsg(t *testing.T, conn *websocket.Conn, enc protocol.Encoding, msg protocol.Message) {
	t.Helper()
	data, err := protocol.Marshal(enc, msg)
	require.NoError(t, err)
	kind := websocket.TextMessage
	if enc == protocol.MsgPack {
		kind = websocket.BinaryMessage
	}
	require.NoError(t, conn.WriteMessage(kind, data))
}

// readUntil reads frames until one has the wanted type.
func readUntil(t *testing.T, conn *websocket.Conn, typ string) (protocol.Message, protocol.Encoding) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	for {
		kind, data, err := conn.ReadMessage()
		require.NoError(t, err)
		enc := protocol.JSON
		if kind == websocket.BinaryMessage {
			enc = protocol.MsgPack
		}
		msg, err := protocol.Decode(enc, data)
		require.NoError(t, err)
		if msg.MessageType() == typ {
			return msg, enc
		}
	}
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}
