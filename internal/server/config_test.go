package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pongforbots/internal/control"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "0.0.0.0:8765", cfg.Address())
	assert.Equal(t, time.Second/60, cfg.TickInterval())
	assert.Equal(t, 2, cfg.Server.BroadcastEvery)
	assert.Equal(t, "human", cfg.Match.Player1)
	assert.Equal(t, "ai", cfg.Match.Player2)
	assert.Equal(t, 20, cfg.GameConfig().TopScore)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
server {
  port      = 9000
  tick_rate = 30
}

match {
  player1        = "bot"
  player2        = "human"
  bot_difficulty = "easy"
  top_score      = 5
}

policy {
  kind      = "linear"
  name      = "pong"
  version   = 3
  url       = "https://models.example.com"
  cache_dir = "/tmp/models"
}
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, time.Second/30, cfg.TickInterval())
	assert.Equal(t, 2, cfg.Server.BroadcastEvery, "unset values are defaulted")
	assert.Equal(t, 5, cfg.GameConfig().TopScore)
	assert.Equal(t, 3, cfg.Policy.Version)

	c1, c2, err := cfg.Controllers(nil)
	require.NoError(t, err)
	assert.Equal(t, control.Bot, c1.Kind)
	assert.Equal(t, control.Human, c2.Kind)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		kind   bool
	}{
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, false},
		{"bad tick rate", func(c *Config) { c.Server.TickRate = -1 }, false},
		{"unknown player kind", func(c *Config) { c.Match.Player1 = "alien" }, true},
		{"unknown difficulty", func(c *Config) { c.Match.BotDifficulty = "brutal" }, false},
		{"linear without url", func(c *Config) { c.Policy.Kind = "linear" }, false},
		{"unknown policy", func(c *Config) { c.Policy.Kind = "oracle" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			if tt.kind {
				assert.ErrorIs(t, err, control.ErrInvalidKind)
			}
		})
	}
}

func TestLoadConfigRejectsBadHCL(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `server { port = `))
	require.Error(t, err)
}
