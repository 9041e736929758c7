package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pongforbots/internal/game"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want string
	}{
		{"ws://localhost:8765/ws", "ws://localhost:8765/ws"},
		{"http://localhost:8765", "ws://localhost:8765/ws"},
		{"https://pong.example.com/", "wss://pong.example.com/ws"},
		{"localhost:8765", "ws://localhost:8765/ws"},
		{"ws://localhost:8765/game", "ws://localhost:8765/game"},
	}
	for _, tt := range tests {
		got, err := NormalizeURL(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := NormalizeURL("ftp://localhost")
	assert.Error(t, err)
	_, err = NormalizeURL("ws://")
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvServer, "ws://pong:8765/ws")
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvPlayer, "2")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "ws://pong:8765/ws", cfg.ServerURL)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, game.Player2, cfg.Player)

	t.Setenv(EnvPlayer, "3")
	_, err = FromEnv()
	assert.Error(t, err)

	t.Setenv(EnvPlayer, "")
	t.Setenv(EnvSeed, "lots")
	_, err = FromEnv()
	assert.Error(t, err)
}
