package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pongforbots/internal/control"
	"github.com/lox/pongforbots/internal/game"
	"github.com/lox/pongforbots/internal/policy"
	"github.com/lox/pongforbots/internal/protocol"
	"github.com/lox/pongforbots/internal/randutil"
)

func TestServerHealth(t *testing.T) {
	t.Parallel()
	srv, err := NewServer(testLogger(), randutil.New(42))
	require.NoError(t, err)

	for _, path := range []string{"/health", "/"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "OK", w.Body.String(), path)
	}
}

func TestServerStatus(t *testing.T) {
	t.Parallel()

	t.Run("without a policy", func(t *testing.T) {
		srv, err := NewServer(testLogger(), randutil.New(42))
		require.NoError(t, err)

		w := httptest.NewRecorder()
		srv.handleStatus(w, httptest.NewRequest(http.MethodGet, "/status", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var resp StatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "running", resp.Status)
		assert.Equal(t, 0, resp.Clients)
		assert.False(t, resp.AILoaded)
		assert.Equal(t, "0-0", resp.GameScore)
		assert.Equal(t, "human", resp.Player1)
		assert.Equal(t, "ai", resp.Player2)
	})

	t.Run("with a policy", func(t *testing.T) {
		srv, err := NewServer(testLogger(), randutil.New(42), WithPolicy(policy.NewTracker(game.DefaultConfig())))
		require.NoError(t, err)

		w := httptest.NewRecorder()
		srv.handleStatus(w, httptest.NewRequest(http.MethodGet, "/status", nil))

		var resp StatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.AILoaded)
	})
}

func TestNewServerRejectsInvalidKinds(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.Match.Player2 = "robot"

	_, err := NewServer(testLogger(), randutil.New(1), WithConfig(cfg))
	require.ErrorIs(t, err, control.ErrInvalidKind)
}

func TestWebSocketSession(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Match.Player1 = "human"
	cfg.Match.Player2 = "human"
	srv, ts, mClock := startTestServer(t, cfg)

	conn := dial(t, ts)

	// The server pushes the current state on connect.
	msg, enc := readUntil(t, conn, protocol.TypeState)
	assert.Equal(t, protocol.JSON, enc)
	state := msg.(*protocol.State)
	assert.Equal(t, 420.0, state.Paddle1.Y)
	assert.Equal(t, 1, srv.ClientCount())

	t.Run("mode change is acknowledged", func(t *testing.T) {
		writeMsg(t, conn, protocol.JSON, protocol.NewMode(2, "bot"))
		msg, _ := readUntil(t, conn, protocol.TypeMode)
		assert.Equal(t, &protocol.Mode{Type: protocol.TypeMode, Player: 2, Mode: "bot"}, msg)
		require.Eventually(t, func() bool {
			return srv.Match().Status().Kinds[1] == control.Bot
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("invalid mode is reported", func(t *testing.T) {
		writeMsg(t, conn, protocol.JSON, protocol.NewMode(1, "wizard"))
		msg, _ := readUntil(t, conn, protocol.TypeError)
		assert.Equal(t, "invalid_mode", msg.(*protocol.Error).Code)
	})

	t.Run("malformed frames are answered not fatal", func(t *testing.T) {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{nope")))
		msg, _ := readUntil(t, conn, protocol.TypeError)
		assert.Equal(t, "invalid_message", msg.(*protocol.Error).Code)
	})

	t.Run("actions move the paddle on the next ticks", func(t *testing.T) {
		writeMsg(t, conn, protocol.JSON, protocol.NewAction(1, int(game.Up)))
		writeMsg(t, conn, protocol.JSON, protocol.NewGetState())
		readUntil(t, conn, protocol.TypeState)

		ctx := testContext(t)
		mClock.Advance(testInterval).MustWait(ctx)
		require.Eventually(t, func() bool { return srv.Match().Status().Seq >= 1 }, time.Second, 5*time.Millisecond)
		mClock.Advance(testInterval).MustWait(ctx)

		msg, _ := readUntil(t, conn, protocol.TypeState)
		state := msg.(*protocol.State)
		assert.Equal(t, uint64(2), state.Seq)
		assert.Equal(t, 420.0-2*4*14, state.Paddle1.Y)
	})

	t.Run("binary frames switch replies to msgpack", func(t *testing.T) {
		writeMsg(t, conn, protocol.MsgPack, protocol.NewGetState())
		msg, enc := readUntil(t, conn, protocol.TypeState)
		assert.Equal(t, protocol.MsgPack, enc)
		assert.Equal(t, uint64(2), msg.(*protocol.State).Seq)
	})

	t.Run("reset broadcasts a fresh state", func(t *testing.T) {
		writeMsg(t, conn, protocol.MsgPack, protocol.NewReset())
		msg, _ := readUntil(t, conn, protocol.TypeState)
		state := msg.(*protocol.State)
		assert.Equal(t, uint64(3), state.Seq)
		assert.Equal(t, 420.0, state.Paddle1.Y)
	})
}
